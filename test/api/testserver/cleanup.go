//go:build api

package testserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// CleanupBetweenTests clears all data between tests.
// Call this at the start of each test function for isolation.
func (ts *TestServer) CleanupBetweenTests(t *testing.T) {
	t.Helper()

	err := ts.MySQL.Truncate(context.Background())
	require.NoError(t, err, "failed to truncate MySQL tables")
}
