package repository

import (
	"context"
	"testing"
	"time"

	"shareit/internal/config"
	"shareit/internal/database"
	"shareit/internal/logging"
	"shareit/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestDB holds an in-memory SQLite database with all tables migrated.
type TestDB struct {
	DB *gorm.DB
}

// SetupTestDB opens a fresh in-memory database.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite", DSN: "file::memory:"}, logging.Nop())
	require.NoError(t, err, "Failed to open SQLite database")
	require.NoError(t, database.Migrate(db), "Failed to migrate")

	return &TestDB{DB: db}
}

// Cleanup closes the database.
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	database.Close(tdb.DB, logging.Nop())
}

// ClearTable removes all rows from a table.
func (tdb *TestDB) ClearTable(t *testing.T, table string) {
	t.Helper()
	require.NoError(t, tdb.DB.Exec("DELETE FROM "+table).Error, "Failed to clear table %s", table)
}

// ClearAll empties every table.
func (tdb *TestDB) ClearAll(t *testing.T) {
	t.Helper()
	for _, table := range []string{"comments", "bookings", "items", "item_requests", "users"} {
		tdb.ClearTable(t, table)
	}
}

// baseTime is a fixed, second-aligned instant used as "now" in queries.
var baseTime = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

func (tdb *TestDB) createUser(t *testing.T, name, email string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email}
	require.NoError(t, tdb.DB.Create(u).Error)
	return u
}

func (tdb *TestDB) createItem(t *testing.T, ownerID int64, name, description string, available bool) *models.Item {
	t.Helper()
	item := &models.Item{Name: name, Description: description, Available: available, OwnerID: ownerID}
	require.NoError(t, tdb.DB.Create(item).Error)
	return item
}

func (tdb *TestDB) createBooking(t *testing.T, itemID, bookerID int64, start, end time.Time, status models.BookingStatus) *models.Booking {
	t.Helper()
	b := &models.Booking{ItemID: itemID, BookerID: bookerID, Start: start, End: end, Status: status}
	require.NoError(t, NewBookingRepository(tdb.DB).Create(context.Background(), b))
	return b
}
