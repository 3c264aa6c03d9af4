package services

import (
	"math"
	"time"

	"github.com/terraincognita07/cyclenote/internal/models"
)

type CyclePoint struct {
	Date  time.Time `json:"date"`
	Value int       `json:"value"`
}

// AverageCycleLength averages the day differences between adjacent starts,
// given most recent first. Only strictly positive differences count. The
// boolean is false when fewer than two starts (or no positive difference) exist.
func AverageCycleLength(startsDescending []time.Time) (int, bool) {
	if len(startsDescending) < 2 {
		return 0, false
	}

	sum := 0
	count := 0
	for index := 0; index < len(startsDescending)-1; index++ {
		diff := DaysBetween(startsDescending[index+1], startsDescending[index])
		if diff > 0 {
			sum += diff
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return int(math.Round(float64(sum) / float64(count))), true
}

// CycleLengthSeries yields one point per interval after the first: the start
// date and the days elapsed since the previous start.
func CycleLengthSeries(intervals []models.PeriodInterval) []CyclePoint {
	if len(intervals) < 2 {
		return []CyclePoint{}
	}
	points := make([]CyclePoint, 0, len(intervals)-1)
	for index := 1; index < len(intervals); index++ {
		points = append(points, CyclePoint{
			Date:  intervals[index].Start,
			Value: DaysBetween(intervals[index-1].Start, intervals[index].Start),
		})
	}
	return points
}

// PainSeries reports the pain logged on each interval's first day, 0 when none.
func PainSeries(intervals []models.PeriodInterval, lookup func(time.Time) (models.DayRecord, bool)) []CyclePoint {
	points := make([]CyclePoint, 0, len(intervals))
	for _, interval := range intervals {
		value := 0
		if record, ok := lookup(interval.Start); ok && record.Pain != nil {
			value = *record.Pain
		}
		points = append(points, CyclePoint{Date: interval.Start, Value: value})
	}
	return points
}
