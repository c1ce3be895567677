package scheduler

import (
	"fmt"
	"time"
)

// MeetingDatesForMonth returns every date in the given month falling on the
// club's meeting weekday, starting from its first occurrence.
func MeetingDatesForMonth(year int, month time.Month, weekday time.Weekday) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysToAdd := (int(weekday) - int(first.Weekday()) + 7) % 7
	date := first.AddDate(0, 0, daysToAdd)

	var dates []time.Time
	for date.Month() == month {
		dates = append(dates, date)
		date = date.AddDate(0, 0, 7)
	}
	return dates
}

// MonthInfo describes a schedule month for planning purposes
type MonthInfo struct {
	Year        int
	Month       int // 1-12
	DisplayName string
	IsCurrent   bool
	IsNext      bool
}

// CurrentMonthInfo returns the month containing the given instant
func CurrentMonthInfo(now time.Time) MonthInfo {
	return MonthInfo{
		Year:        now.Year(),
		Month:       int(now.Month()),
		DisplayName: fmt.Sprintf("%s %d", now.Month(), now.Year()),
		IsCurrent:   true,
	}
}

// NextMonthInfo returns the month after the one containing the given instant
func NextMonthInfo(now time.Time) MonthInfo {
	year, month := now.Year(), int(now.Month())+1
	if month > 12 {
		month = 1
		year++
	}
	return MonthInfo{
		Year:        year,
		Month:       month,
		DisplayName: fmt.Sprintf("%s %d", time.Month(month), year),
		IsNext:      true,
	}
}
