package models

type Flow string

const (
	FlowLight  Flow = "light"
	FlowMedium Flow = "medium"
	FlowHeavy  Flow = "heavy"
)

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
	MinPainLevel        = 0
	MaxPainLevel        = 10
)

// DayRecord holds what the owner logged for one calendar day.
type DayRecord struct {
	IsPeriod bool   `json:"period"`
	Pain     *int   `json:"pain,omitempty"`
	Flow     Flow   `json:"flow,omitempty"`
	Note     string `json:"note,omitempty"`
}

// IsEmpty reports whether the record carries nothing worth storing.
func (record DayRecord) IsEmpty() bool {
	return !record.IsPeriod && record.Pain == nil && record.Flow == "" && record.Note == ""
}

// DayPatch is a partial update. Nil fields keep the stored value.
type DayPatch struct {
	IsPeriod *bool   `json:"period,omitempty"`
	Pain     *int    `json:"pain,omitempty"`
	Flow     *Flow   `json:"flow,omitempty"`
	Note     *string `json:"note,omitempty"`

	// ClearPain removes the stored pain rating; a Pain in the same patch is applied after the clear.
	ClearPain bool `json:"clear_pain,omitempty"`
}

func (patch DayPatch) ApplyTo(record DayRecord) DayRecord {
	if patch.IsPeriod != nil {
		record.IsPeriod = *patch.IsPeriod
	}
	if patch.ClearPain {
		record.Pain = nil
	}
	if patch.Pain != nil {
		pain := *patch.Pain
		record.Pain = &pain
	}
	if patch.Flow != nil {
		record.Flow = *patch.Flow
	}
	if patch.Note != nil {
		record.Note = *patch.Note
	}
	return record
}
