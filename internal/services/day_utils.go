package services

import (
	"errors"
	"strings"
	"time"
)

const DayLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

var ErrInvalidDate = errors.New("invalid date")

// CivilDay drops the time of day and zone, keeping the calendar date the value
// shows in its own location.
func CivilDay(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ParseDay(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation(DayLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return parsed, nil
}

func FormatDay(day time.Time) string {
	return day.Format(DayLayout)
}

func AddDays(day time.Time, days int) time.Time {
	return CivilDay(day).AddDate(0, 0, days)
}

// DaysBetween returns to - from in whole calendar days. It works on Unix seconds
// so spans beyond time.Duration's range stay exact.
func DaysBetween(from time.Time, to time.Time) int {
	return int((CivilDay(to).Unix() - CivilDay(from).Unix()) / secondsPerDay)
}

func sameCalendarDay(a time.Time, b time.Time) bool {
	return CivilDay(a).Equal(CivilDay(b))
}
