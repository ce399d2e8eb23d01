//go:build api

// Package testdb starts the database behind the API test server.
package testdb

import (
	"context"
	"time"

	"shareit/internal/config"
	"shareit/internal/database"
	"shareit/internal/logging"

	"github.com/testcontainers/testcontainers-go/modules/mysql"
	"gorm.io/gorm"
)

// MySQLContainer wraps a MySQL testcontainer for API tests.
type MySQLContainer struct {
	Container *mysql.MySQLContainer
	DSN       string
	DB        *gorm.DB
}

// SetupMySQL starts a MySQL testcontainer and migrates the schema.
// Unlike the integration test version, this doesn't use t.Cleanup since the
// lifecycle is managed in TestMain.
func SetupMySQL(ctx context.Context, dbName string) (*MySQLContainer, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Minute)
	defer cancel()

	container, err := mysql.Run(ctx, "mysql:8.0",
		mysql.WithDatabase(dbName),
		mysql.WithUsername("shareit"),
		mysql.WithPassword("shareit"),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "parseTime=true", "loc=UTC", "charset=utf8mb4")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := database.Open(config.DatabaseConfig{Driver: "mysql", DSN: dsn}, logging.Nop())
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err := database.Migrate(db); err != nil {
		database.Close(db, logging.Nop())
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &MySQLContainer{
		Container: container,
		DSN:       dsn,
		DB:        db,
	}, nil
}

// Cleanup closes the pool and terminates the container.
func (mc *MySQLContainer) Cleanup(ctx context.Context) error {
	if mc.DB != nil {
		database.Close(mc.DB, logging.Nop())
	}
	if mc.Container != nil {
		return mc.Container.Terminate(ctx)
	}
	return nil
}

// Truncate deletes every row, children before parents.
func (mc *MySQLContainer) Truncate(ctx context.Context) error {
	all := database.Models()
	for i := len(all) - 1; i >= 0; i-- {
		err := mc.DB.WithContext(ctx).
			Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(all[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}
