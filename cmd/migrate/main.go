package main

import (
	"fmt"

	"shareit/internal/config"
	"shareit/internal/database"
	"shareit/internal/logging"

	zlog "github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	log, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to build logger")
	}
	if closer != nil {
		defer closer.Close()
	}

	log.Info().Msg("starting migration")

	db, err := database.Open(cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer database.Close(db, log)

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	for _, m := range database.Models() {
		log.Info().Str("model", modelName(db, m)).Msg("table ready")
	}
	log.Info().Msg("migration completed successfully")
}

func modelName(db *gorm.DB, m interface{}) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(m); err != nil {
		return fmt.Sprintf("%T", m)
	}
	return stmt.Schema.Table
}
