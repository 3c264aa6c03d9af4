package services

import (
	"errors"

	"github.com/terraincognita07/cyclenote/internal/models"
)

const (
	DefaultForecastCycles   = 3
	MaxForecastCycles       = 12
	DefaultReminderLeadDays = 2
)

var (
	ErrCycleLengthOutOfRange  = errors.New("cycle length out of range")
	ErrPeriodLengthOutOfRange = errors.New("period length out of range")
	ErrForecastCyclesInvalid  = errors.New("forecast cycles out of range")
	ErrReminderLeadInvalid    = errors.New("reminder lead days out of range")
)

type CycleSettings struct {
	FallbackCycleLength int
	PeriodLength        int
	ForecastCycles      int
	ReminderLeadDays    int
}

func DefaultCycleSettings() CycleSettings {
	return CycleSettings{
		FallbackCycleLength: models.DefaultCycleLength,
		PeriodLength:        models.DefaultPeriodLength,
		ForecastCycles:      DefaultForecastCycles,
		ReminderLeadDays:    DefaultReminderLeadDays,
	}
}

func (settings CycleSettings) Validate() error {
	if !IsValidCycleLength(settings.FallbackCycleLength) {
		return ErrCycleLengthOutOfRange
	}
	if !IsValidPeriodLength(settings.PeriodLength) {
		return ErrPeriodLengthOutOfRange
	}
	if settings.ForecastCycles < 1 || settings.ForecastCycles > MaxForecastCycles {
		return ErrForecastCyclesInvalid
	}
	if settings.ReminderLeadDays < 0 || settings.ReminderLeadDays > settings.FallbackCycleLength {
		return ErrReminderLeadInvalid
	}
	return nil
}

func IsValidCycleLength(value int) bool {
	return value >= 15 && value <= 90
}

func IsValidPeriodLength(value int) bool {
	return value >= 1 && value <= 14
}

// ClampForecastCycles maps a requested count to the supported range, using the
// configured default for non-positive requests.
func (settings CycleSettings) ClampForecastCycles(requested int) int {
	if requested <= 0 {
		return settings.ForecastCycles
	}
	if requested > MaxForecastCycles {
		return MaxForecastCycles
	}
	return requested
}
