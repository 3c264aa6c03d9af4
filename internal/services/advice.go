package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/cyclenote/internal/models"
)

const maxDayAdviceIndex = 5

// Translator resolves a message key, returning the key itself when unknown.
type Translator func(key string) string

// ClassifyDate places day against recorded intervals and forecasts. Recorded
// data wins over any forecast; ovulation wins over the fertile window that
// contains it; fertile wins over a forecasted period day.
func ClassifyDate(day time.Time, intervals []models.PeriodInterval, windows []models.FertileWindow, forecasts []models.ForecastedCycle) models.DayClassification {
	day = CivilDay(day)

	if interval, ok := findIntervalContaining(intervals, day); ok {
		return models.DayClassification{
			Kind:     models.DayKindRecordedPeriod,
			DayIndex: DaysBetween(interval.Start, day) + 1,
		}
	}

	for _, window := range windows {
		if sameCalendarDay(window.Ovulation, day) {
			return models.DayClassification{Kind: models.DayKindOvulation}
		}
	}
	for _, window := range windows {
		if window.Contains(day) {
			return models.DayClassification{Kind: models.DayKindFertile}
		}
	}
	for _, cycle := range forecasts {
		if cycle.PeriodContains(day) {
			return models.DayClassification{
				Kind:     models.DayKindForecastedPeriod,
				DayIndex: DaysBetween(cycle.StartDate, day) + 1,
			}
		}
	}
	return models.DayClassification{Kind: models.DayKindNeutral}
}

// GenerateGuidance renders the advice for a classified day. record may be nil.
func GenerateGuidance(day time.Time, classification models.DayClassification, record *models.DayRecord, translate Translator) models.Guidance {
	text := guidanceText(translate)
	guidance := models.Guidance{
		Date:           FormatDay(day),
		Classification: classification,
	}

	switch classification.Kind {
	case models.DayKindRecordedPeriod, models.DayKindForecastedPeriod:
		labelKey := "guidance.phase.recorded_period"
		if classification.Kind == models.DayKindForecastedPeriod {
			labelKey = "guidance.phase.forecasted_period"
		}
		guidance.PhaseLabel = strings.ReplaceAll(text(labelKey), "{day}", strconv.Itoa(classification.DayIndex))
		guidance.Advice = text(periodDayAdviceKey(classification.DayIndex))
		guidance.Education = text("guidance.education.general")
	case models.DayKindOvulation:
		guidance.PhaseLabel = text("guidance.phase.ovulation")
		guidance.Advice = text("guidance.ovulation.advice")
		guidance.Education = text("guidance.ovulation.education")
		return guidance
	case models.DayKindFertile:
		guidance.PhaseLabel = text("guidance.phase.fertile")
		guidance.Advice = text("guidance.fertile.advice")
		guidance.Education = text("guidance.fertile.education")
		return guidance
	default:
		guidance.PhaseLabel = text("guidance.phase.neutral")
		guidance.Advice = text("guidance.neutral.advice")
		guidance.Education = text("guidance.education.general")
	}

	guidance.Attributes = recordAttributeLines(record, text)
	return guidance
}

func periodDayAdviceKey(dayIndex int) string {
	if dayIndex < 1 {
		dayIndex = 1
	}
	if dayIndex > maxDayAdviceIndex {
		dayIndex = maxDayAdviceIndex
	}
	return "guidance.period.day" + strconv.Itoa(dayIndex)
}

func recordAttributeLines(record *models.DayRecord, text Translator) []string {
	if record == nil {
		return nil
	}
	lines := make([]string, 0, 3)
	if record.Pain != nil {
		lines = append(lines, strings.ReplaceAll(text("guidance.attribute.pain"), "{value}", strconv.Itoa(*record.Pain)))
	}
	if record.Flow != "" {
		lines = append(lines, strings.ReplaceAll(text("guidance.attribute.flow"), "{value}", string(record.Flow)))
	}
	if record.Note != "" {
		lines = append(lines, strings.ReplaceAll(text("guidance.attribute.note"), "{value}", record.Note))
	}
	return lines
}

// guidanceText falls back to the built-in English catalog for keys the
// supplied translator does not know.
func guidanceText(translate Translator) Translator {
	return func(key string) string {
		if translate != nil {
			if value := translate(key); value != "" && value != key {
				return value
			}
		}
		if value, ok := defaultGuidanceMessages[key]; ok {
			return value
		}
		return key
	}
}
