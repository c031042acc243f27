//go:build unit

package booth_test

import (
	"time"

	"github.com/google/uuid"
)

var (
	daterangeEventID = uuid.MustParse("0b9f3a3e-2f4c-4c5e-9a39-7e2a4a0f1c11")
	now              = time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)
)
