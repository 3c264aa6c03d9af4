package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/cyclenote/internal/models"
)

const MaxDayNoteLength = 2000

var (
	ErrInvalidDayFlow = errors.New("invalid day flow")
	ErrInvalidPain    = errors.New("invalid pain level")
)

// NormalizeDayPatch validates the supplied fields and trims the note.
func NormalizeDayPatch(patch models.DayPatch) (models.DayPatch, error) {
	if patch.Flow != nil {
		flow := models.Flow(strings.ToLower(strings.TrimSpace(string(*patch.Flow))))
		if flow != "" && !IsValidDayFlow(flow) {
			return patch, ErrInvalidDayFlow
		}
		patch.Flow = &flow
	}
	if patch.Pain != nil && !IsValidPainLevel(*patch.Pain) {
		return patch, ErrInvalidPain
	}
	if patch.Note != nil {
		note := TrimDayNote(*patch.Note)
		patch.Note = &note
	}
	return patch, nil
}

func IsValidDayFlow(flow models.Flow) bool {
	switch flow {
	case models.FlowLight, models.FlowMedium, models.FlowHeavy:
		return true
	default:
		return false
	}
}

func IsValidPainLevel(pain int) bool {
	return pain >= models.MinPainLevel && pain <= models.MaxPainLevel
}

func TrimDayNote(value string) string {
	value = strings.TrimSpace(value)
	if len(value) <= MaxDayNoteLength {
		return value
	}
	cut := MaxDayNoteLength
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return value[:cut]
}
