package services

import (
	"time"

	"github.com/terraincognita07/cyclenote/internal/models"
)

const (
	LutealPhaseDays            = 14
	FertileDaysBeforeOvulation = 5
)

// FertileWindowFor places ovulation LutealPhaseDays before the forecasted
// start; the window runs from five days earlier through ovulation.
func FertileWindowFor(forecastStart time.Time) models.FertileWindow {
	ovulation := CivilDay(forecastStart).AddDate(0, 0, -LutealPhaseDays)
	return models.FertileWindow{
		Start:     ovulation.AddDate(0, 0, -FertileDaysBeforeOvulation),
		End:       ovulation,
		Ovulation: ovulation,
	}
}

func FertileWindows(forecastStarts []time.Time) []models.FertileWindow {
	windows := make([]models.FertileWindow, 0, len(forecastStarts))
	for _, start := range forecastStarts {
		windows = append(windows, FertileWindowFor(start))
	}
	return windows
}
