package services

var defaultGuidanceMessages = map[string]string{
	"guidance.phase.recorded_period":   "Period, day {day}",
	"guidance.phase.forecasted_period": "Forecasted period, day {day}",
	"guidance.phase.ovulation":         "Ovulation day",
	"guidance.phase.fertile":           "Fertile window",
	"guidance.phase.neutral":           "Outside your period",

	"guidance.period.day1": "Day 1: rest when you can and keep warm. If bleeding is heavy, watch it and see a doctor if needed.",
	"guidance.period.day2": "Day 2: drink plenty of water and eat iron-rich food such as red meat and leafy greens. A hot water bottle can ease cramps.",
	"guidance.period.day3": "Day 3: gentle movement helps relax cramping muscles. Avoid strenuous exercise.",
	"guidance.period.day4": "Day 4: keep up good nutrition and sleep, and note how flow and pain change.",
	"guidance.period.day5": "Day 5: flow usually tapers off now. If heavy bleeding or unusual pain continues, see a doctor.",

	"guidance.education.general": "Good to know: menstruation reflects your hormonal cycle, which stress, sleep and medication can shift. If your cycle stays irregular, talk to a doctor.",

	"guidance.ovulation.advice":    "The chance of conception is high around ovulation. Take the precautions that fit your plans; ovulation often comes with more, clearer discharge.",
	"guidance.ovulation.education": "Good to know: ovulation usually happens about 14 days before the next period starts.",
	"guidance.fertile.advice":      "This is the fertile window (usually the 5 days before ovulation through ovulation day). Use contraception if you want to avoid pregnancy, or plan ahead if you are trying to conceive.",
	"guidance.fertile.education":   "Good to know: sperm can survive several days in the reproductive tract, so sex before ovulation can still lead to pregnancy.",
	"guidance.neutral.advice":      "Keep a healthy daily routine and keep logging so changes in your cycle show up over time.",

	"guidance.attribute.pain": "Pain: {value}",
	"guidance.attribute.flow": "Flow: {value}",
	"guidance.attribute.note": "Note: {value}",

	"reminder.upcoming_period.title": "Period reminder",
	"reminder.upcoming_period.body":  "Your period is expected in {days} day(s), on {date}.",
	"reminder.period_day.title":      "Period day",
	"reminder.period_day.body":       "Today falls within your period. Check today's tips and health advice.",
}

// DefaultMessage returns the built-in English text for key.
func DefaultMessage(key string) string {
	if value, ok := defaultGuidanceMessages[key]; ok {
		return value
	}
	return key
}
