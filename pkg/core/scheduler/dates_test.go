package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeetingDatesForMonth_FiveTuesdays(t *testing.T) {
	dates := MeetingDatesForMonth(2025, time.September, time.Tuesday)

	require.Len(t, dates, 5)
	expected := []string{"2025-09-02", "2025-09-09", "2025-09-16", "2025-09-23", "2025-09-30"}
	for i, date := range dates {
		assert.Equal(t, expected[i], date.Format("2006-01-02"))
		assert.Equal(t, time.Tuesday, date.Weekday())
	}
}

func TestMeetingDatesForMonth_FirstOfMonthOnMeetingDay(t *testing.T) {
	// 2025-06-01 is itself a Sunday
	dates := MeetingDatesForMonth(2025, time.June, time.Sunday)

	require.Len(t, dates, 5)
	assert.Equal(t, "2025-06-01", dates[0].Format("2006-01-02"))
	assert.Equal(t, "2025-06-29", dates[4].Format("2006-01-02"))
}

func TestMeetingDatesForMonth_FourOccurrences(t *testing.T) {
	dates := MeetingDatesForMonth(2025, time.February, time.Wednesday)

	require.Len(t, dates, 4)
	assert.Equal(t, "2025-02-05", dates[0].Format("2006-01-02"))
	assert.Equal(t, "2025-02-26", dates[3].Format("2006-01-02"))
}

func TestNextMonthInfo_YearRollover(t *testing.T) {
	now := time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC)

	info := NextMonthInfo(now)
	assert.Equal(t, 2026, info.Year)
	assert.Equal(t, 1, info.Month)
	assert.True(t, info.IsNext)
}

func TestCurrentMonthInfo(t *testing.T) {
	now := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	info := CurrentMonthInfo(now)
	assert.Equal(t, 2025, info.Year)
	assert.Equal(t, 9, info.Month)
	assert.Equal(t, "September 2025", info.DisplayName)
	assert.True(t, info.IsCurrent)
}
