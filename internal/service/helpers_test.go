package service

import (
	"time"

	"shareit/internal/logging"
)

// fixedNow is the instant every service under test believes it is.
var fixedNow = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

var testLogger = logging.Nop()

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64 { return &i }
