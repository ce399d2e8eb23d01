package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds a single test's database work.
const DefaultTimeout = 10 * time.Second

// Context returns a context cancelled at test cleanup or after DefaultTimeout.
func Context(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	t.Cleanup(cancel)
	return ctx
}
