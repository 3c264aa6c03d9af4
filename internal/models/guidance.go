package models

import "time"

type DayKind string

const (
	DayKindRecordedPeriod   DayKind = "recorded_period"
	DayKindOvulation        DayKind = "ovulation"
	DayKindFertile          DayKind = "fertile"
	DayKindForecastedPeriod DayKind = "forecasted_period"
	DayKindNeutral          DayKind = "neutral"
)

// DayClassification places a date in the cycle. DayIndex is 1-based and only set
// for recorded or forecasted period days.
type DayClassification struct {
	Kind     DayKind `json:"kind"`
	DayIndex int     `json:"day_index,omitempty"`
}

type Guidance struct {
	Date           string            `json:"date"`
	Classification DayClassification `json:"classification"`
	PhaseLabel     string            `json:"phase_label"`
	Advice         string            `json:"advice"`
	Education      string            `json:"education"`
	Attributes     []string          `json:"attributes,omitempty"`
}

type ReminderKind string

const (
	ReminderUpcomingPeriod ReminderKind = "upcoming_period"
	ReminderPeriodDay      ReminderKind = "period_day"
)

type Reminder struct {
	Kind      ReminderKind `json:"kind"`
	DaysUntil int          `json:"days_until"`
	Date      time.Time    `json:"date"`
}

type ReminderResult struct {
	ShouldNotify bool       `json:"should_notify"`
	Reminders    []Reminder `json:"reminders"`
}
