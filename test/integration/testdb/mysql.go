//go:build integration

// Package testdb starts disposable databases for integration tests.
package testdb

import (
	"context"
	"testing"
	"time"

	"shareit/internal/config"
	"shareit/internal/database"
	"shareit/internal/logging"

	"github.com/testcontainers/testcontainers-go/modules/mysql"
	"gorm.io/gorm"
)

// MySQLContainer wraps a MySQL testcontainer with a migrated gorm handle.
type MySQLContainer struct {
	Container *mysql.MySQLContainer
	DSN       string
	DB        *gorm.DB
}

// SetupMySQL starts a MySQL testcontainer for integration tests.
func SetupMySQL(t *testing.T) *MySQLContainer {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	container, err := mysql.Run(ctx, "mysql:8.0",
		mysql.WithDatabase("shareit"),
		mysql.WithUsername("shareit"),
		mysql.WithPassword("shareit"),
	)
	if err != nil {
		t.Fatalf("Failed to start MySQL container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "parseTime=true", "loc=UTC", "charset=utf8mb4")
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}

	db, err := database.Open(config.DatabaseConfig{Driver: "mysql", DSN: dsn}, logging.Nop())
	if err != nil {
		t.Fatalf("Failed to connect to MySQL: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	t.Cleanup(func() {
		database.Close(db, logging.Nop())
		_ = container.Terminate(context.Background())
	})

	return &MySQLContainer{
		Container: container,
		DSN:       dsn,
		DB:        db,
	}
}

// Truncate empties every table.
func (mc *MySQLContainer) Truncate(t *testing.T) {
	t.Helper()
	all := database.Models()
	for i := len(all) - 1; i >= 0; i-- {
		if err := mc.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(all[i]).Error; err != nil {
			t.Fatalf("Failed to truncate %T: %v", all[i], err)
		}
	}
}
