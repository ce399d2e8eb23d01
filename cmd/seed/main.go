package main

import (
	"context"
	"os"

	"shareit/internal/config"
	"shareit/internal/database"
	"shareit/internal/logging"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		file  string
		reset bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load users, items, requests, bookings and comments from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), file, reset)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&file, "file", "f", "seed.yaml", "path to the seed file")
	cmd.Flags().BoolVar(&reset, "reset", false, "delete all existing rows before seeding")

	return cmd
}

func runSeed(ctx context.Context, path string, reset bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Load()

	log, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		zlog.Error().Err(err).Msg("failed to build logger")
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	seedFile, err := loadSeedFile(path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("failed to load seed file")
		return err
	}

	db, err := database.Open(cfg.Database, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to open database")
		return err
	}
	defer database.Close(db, log)

	if err := database.Migrate(db); err != nil {
		log.Error().Err(err).Msg("failed to migrate schema")
		return err
	}

	if reset {
		if err := resetTables(db); err != nil {
			log.Error().Err(err).Msg("failed to reset tables")
			return err
		}
		log.Info().Msg("existing rows removed")
	}

	sum, err := newSeeder(db).run(ctx, seedFile)
	if err != nil {
		log.Error().Err(err).Msg("seed failed")
		return err
	}

	log.Info().
		Int("users", sum.Users).
		Int("requests", sum.Requests).
		Int("items", sum.Items).
		Int("bookings", sum.Bookings).
		Int("comments", sum.Comments).
		Msg("seed completed successfully")
	return nil
}
