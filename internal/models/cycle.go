package models

import "time"

const secondsPerDay = 24 * 60 * 60

// PeriodInterval is a maximal run of consecutive period days, both ends inclusive.
type PeriodInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Length counts the days of the interval, both ends included. Start and End are
// UTC midnights, so whole days divide evenly out of Unix seconds.
func (interval PeriodInterval) Length() int {
	return int((interval.End.Unix()-interval.Start.Unix())/secondsPerDay) + 1
}

func (interval PeriodInterval) Contains(day time.Time) bool {
	return !day.Before(interval.Start) && !day.After(interval.End)
}

// Days returns every calendar day of the interval in ascending order.
func (interval PeriodInterval) Days() []time.Time {
	days := make([]time.Time, 0, interval.Length())
	for day := interval.Start; !day.After(interval.End); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

type FertileWindow struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Ovulation time.Time `json:"ovulation"`
}

func (window FertileWindow) Contains(day time.Time) bool {
	return !day.Before(window.Start) && !day.After(window.End)
}

type ForecastedCycle struct {
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
	OvulationDate      time.Time `json:"ovulation_date"`
	FertileWindowStart time.Time `json:"fertile_window_start"`
	FertileWindowEnd   time.Time `json:"fertile_window_end"`
}

func (cycle ForecastedCycle) PeriodContains(day time.Time) bool {
	return !day.Before(cycle.StartDate) && !day.After(cycle.EndDate)
}

func (cycle ForecastedCycle) FertileWindow() FertileWindow {
	return FertileWindow{
		Start:     cycle.FertileWindowStart,
		End:       cycle.FertileWindowEnd,
		Ovulation: cycle.OvulationDate,
	}
}
