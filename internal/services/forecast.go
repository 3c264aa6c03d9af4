package services

import (
	"time"

	"github.com/terraincognita07/cyclenote/internal/models"
)

// ResolveCycleLength prefers the observed average, then the configured
// fallback, then the model default.
func ResolveCycleLength(average int, averageOK bool, fallback int) int {
	if averageOK && average > 0 {
		return average
	}
	if fallback > 0 {
		return fallback
	}
	return models.DefaultCycleLength
}

// PredictNextStarts walks forward from the most recent start, adding
// cycleLength to the previous forecast each step. No starts means no forecast.
func PredictNextStarts(count int, startsDescending []time.Time, cycleLength int) []time.Time {
	if len(startsDescending) == 0 || count <= 0 || cycleLength <= 0 {
		return []time.Time{}
	}

	starts := make([]time.Time, 0, count)
	anchor := CivilDay(startsDescending[0])
	for index := 0; index < count; index++ {
		anchor = anchor.AddDate(0, 0, cycleLength)
		starts = append(starts, anchor)
	}
	return starts
}

func ForecastedPeriodEnd(start time.Time, periodLength int) time.Time {
	if periodLength <= 0 {
		periodLength = models.DefaultPeriodLength
	}
	return start.AddDate(0, 0, periodLength-1)
}

// ForecastCycles builds full forecasted cycles: period span plus the fertile
// window derived from each cycle's own start.
func ForecastCycles(count int, startsDescending []time.Time, cycleLength int, periodLength int) []models.ForecastedCycle {
	starts := PredictNextStarts(count, startsDescending, cycleLength)
	cycles := make([]models.ForecastedCycle, 0, len(starts))
	for _, start := range starts {
		window := FertileWindowFor(start)
		cycles = append(cycles, models.ForecastedCycle{
			StartDate:          start,
			EndDate:            ForecastedPeriodEnd(start, periodLength),
			OvulationDate:      window.Ovulation,
			FertileWindowStart: window.Start,
			FertileWindowEnd:   window.End,
		})
	}
	return cycles
}
