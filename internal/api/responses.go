package api

import (
	"time"

	"github.com/terraincognita07/cyclenote/internal/models"
	"github.com/terraincognita07/cyclenote/internal/services"
)

// Dates leave the API as YYYY-MM-DD strings.

type dayResponse struct {
	Date   string           `json:"date"`
	Record models.DayRecord `json:"record"`
}

type intervalResponse struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Length int    `json:"length"`
}

type forecastResponse struct {
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	OvulationDate      string `json:"ovulation_date"`
	FertileWindowStart string `json:"fertile_window_start"`
	FertileWindowEnd   string `json:"fertile_window_end"`
}

type fertileWindowResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Ovulation string `json:"ovulation"`
}

type statsResponse struct {
	PeriodCount        int     `json:"period_count"`
	AverageCycleLength *int    `json:"average_cycle_length"`
	CycleLength        int     `json:"cycle_length"`
	PeriodLength       int     `json:"period_length"`
	LastPeriodStart    *string `json:"last_period_start"`
	NextPeriodStart    *string `json:"next_period_start"`
}

type reminderResponse struct {
	Kind      models.ReminderKind `json:"kind"`
	DaysUntil int                 `json:"days_until"`
	Date      string              `json:"date"`
}

type chartPointResponse struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

func newDayResponse(day time.Time, record models.DayRecord) dayResponse {
	return dayResponse{Date: services.FormatDay(day), Record: record}
}

func newIntervalResponses(intervals []models.PeriodInterval) []intervalResponse {
	result := make([]intervalResponse, 0, len(intervals))
	for _, interval := range intervals {
		result = append(result, intervalResponse{
			Start:  services.FormatDay(interval.Start),
			End:    services.FormatDay(interval.End),
			Length: interval.Length(),
		})
	}
	return result
}

func newForecastResponses(cycles []models.ForecastedCycle) []forecastResponse {
	result := make([]forecastResponse, 0, len(cycles))
	for _, cycle := range cycles {
		result = append(result, forecastResponse{
			StartDate:          services.FormatDay(cycle.StartDate),
			EndDate:            services.FormatDay(cycle.EndDate),
			OvulationDate:      services.FormatDay(cycle.OvulationDate),
			FertileWindowStart: services.FormatDay(cycle.FertileWindowStart),
			FertileWindowEnd:   services.FormatDay(cycle.FertileWindowEnd),
		})
	}
	return result
}

func newFertileWindowResponses(windows []models.FertileWindow) []fertileWindowResponse {
	result := make([]fertileWindowResponse, 0, len(windows))
	for _, window := range windows {
		result = append(result, fertileWindowResponse{
			Start:     services.FormatDay(window.Start),
			End:       services.FormatDay(window.End),
			Ovulation: services.FormatDay(window.Ovulation),
		})
	}
	return result
}

func newStatsResponse(summary services.CycleSummary, periodLength int) statsResponse {
	return statsResponse{
		PeriodCount:        summary.PeriodCount,
		AverageCycleLength: summary.AverageCycleLength,
		CycleLength:        summary.CycleLength,
		PeriodLength:       periodLength,
		LastPeriodStart:    formatOptionalDay(summary.LastPeriodStart),
		NextPeriodStart:    formatOptionalDay(summary.NextPeriodStart),
	}
}

func newReminderResponses(reminders []models.Reminder) []reminderResponse {
	result := make([]reminderResponse, 0, len(reminders))
	for _, reminder := range reminders {
		result = append(result, reminderResponse{
			Kind:      reminder.Kind,
			DaysUntil: reminder.DaysUntil,
			Date:      services.FormatDay(reminder.Date),
		})
	}
	return result
}

func newChartResponse(points []services.CyclePoint) []chartPointResponse {
	result := make([]chartPointResponse, 0, len(points))
	for _, point := range points {
		result = append(result, chartPointResponse{Date: services.FormatDay(point.Date), Value: point.Value})
	}
	return result
}

func formatOptionalDay(day *time.Time) *string {
	if day == nil {
		return nil
	}
	formatted := services.FormatDay(*day)
	return &formatted
}
