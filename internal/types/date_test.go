package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, 7, 26, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-07-26", FormatDate(ts))
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "July 26, 2025", FormatDisplayDate("2025-07-26"))
	assert.Equal(t, "August 1, 2099", FormatDisplayDate("2099-08-01"))

	// Unparseable input passes through unchanged
	assert.Equal(t, "soon", FormatDisplayDate("soon"))
}

func TestIsFutureDate(t *testing.T) {
	assert.True(t, IsFutureDate("2025-07-26", "2025-07-01"))
	assert.False(t, IsFutureDate("2025-07-01", "2025-07-01"))
	assert.False(t, IsFutureDate("2025-06-30", "2025-07-01"))
}

func TestIsPastOrToday(t *testing.T) {
	assert.True(t, IsPastOrToday("2025-07-01", "2025-07-01"))
	assert.True(t, IsPastOrToday("2025-06-30", "2025-07-01"))
	assert.False(t, IsPastOrToday("2025-07-02", "2025-07-01"))
}
