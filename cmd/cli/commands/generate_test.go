package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwhitfield/club-scheduler/pkg/core/scheduler"
)

func TestResolveYearMonth_DefaultsToFallbackMonth(t *testing.T) {
	// Generating in December with no arguments plans for January
	fallback := scheduler.NextMonthInfo(time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC))

	year, month, err := resolveYearMonth(nil, fallback)

	require.NoError(t, err)
	assert.Equal(t, 2026, year)
	assert.Equal(t, 1, month)
}

func TestResolveYearMonth_ExplicitArgsWin(t *testing.T) {
	fallback := scheduler.CurrentMonthInfo(time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC))

	year, month, err := resolveYearMonth([]string{"2025", "9"}, fallback)

	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 9, month)
}

func TestResolveYearMonth_RejectsSingleArg(t *testing.T) {
	fallback := scheduler.CurrentMonthInfo(time.Now())

	_, _, err := resolveYearMonth([]string{"2025"}, fallback)

	assert.ErrorContains(t, err, "both year and month")
}

func TestResolveYearMonth_RejectsNonNumericArgs(t *testing.T) {
	fallback := scheduler.CurrentMonthInfo(time.Now())

	_, _, err := resolveYearMonth([]string{"twenty", "9"}, fallback)

	assert.ErrorContains(t, err, "year must be a number")
}
