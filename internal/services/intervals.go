package services

import (
	"time"

	"github.com/terraincognita07/cyclenote/internal/models"
)

// ExtractIntervals scans entries in ascending date order and returns the
// maximal runs of consecutive period days, oldest first. Any gap, even a single
// missing day, closes the open interval.
func ExtractIntervals(entries []DayEntry) []models.PeriodInterval {
	intervals := make([]models.PeriodInterval, 0)
	var open *models.PeriodInterval

	for _, entry := range entries {
		day := CivilDay(entry.Date)
		if !entry.Record.IsPeriod {
			if open != nil {
				intervals = append(intervals, *open)
				open = nil
			}
			continue
		}

		switch {
		case open == nil:
			open = &models.PeriodInterval{Start: day, End: day}
		case day.Equal(open.End.AddDate(0, 0, 1)):
			open.End = day
		default:
			intervals = append(intervals, *open)
			open = &models.PeriodInterval{Start: day, End: day}
		}
	}
	if open != nil {
		intervals = append(intervals, *open)
	}
	return intervals
}

func ReverseIntervals(intervals []models.PeriodInterval) []models.PeriodInterval {
	reversed := make([]models.PeriodInterval, len(intervals))
	for index, interval := range intervals {
		reversed[len(intervals)-1-index] = interval
	}
	return reversed
}

// IntervalStartsDescending returns interval start dates, most recent first.
func IntervalStartsDescending(intervals []models.PeriodInterval) []time.Time {
	starts := make([]time.Time, 0, len(intervals))
	for index := len(intervals) - 1; index >= 0; index-- {
		starts = append(starts, intervals[index].Start)
	}
	return starts
}

func findIntervalContaining(intervals []models.PeriodInterval, day time.Time) (models.PeriodInterval, bool) {
	for _, interval := range intervals {
		if interval.Contains(day) {
			return interval, true
		}
	}
	return models.PeriodInterval{}, false
}
