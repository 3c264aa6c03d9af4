package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclenote/internal/models"
)

func (handler *Handler) ListIntervals(c *fiber.Ctx) error {
	return c.JSON(newIntervalResponses(handler.tracker.ListIntervals()))
}

func (handler *Handler) DeleteInterval(c *fiber.Ctx) error {
	start, err := parseDayParam(c, "start")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	interval, err := handler.tracker.DeleteInterval(c.UserContext(), start)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(newIntervalResponses([]models.PeriodInterval{interval})[0])
}

func (handler *Handler) GetStats(c *fiber.Ctx) error {
	return c.JSON(newStatsResponse(handler.tracker.Summary(), handler.tracker.Settings().PeriodLength))
}

func (handler *Handler) GetForecast(c *fiber.Ctx) error {
	count, ok := handler.forecastCount(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid cycles")
	}
	return c.JSON(newForecastResponses(handler.tracker.ForecastCycles(count)))
}

func (handler *Handler) GetFertileWindows(c *fiber.Ctx) error {
	count, ok := handler.forecastCount(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid cycles")
	}
	return c.JSON(newFertileWindowResponses(handler.tracker.FertileWindows(count)))
}

func (handler *Handler) GetAdvice(c *fiber.Ctx) error {
	day, err := parseDayParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	language := handler.requestLanguage(c)
	c.Set(fiber.HeaderContentLanguage, language)
	return c.JSON(handler.tracker.AdviseFor(day, handler.i18n.Translator(language)))
}

func (handler *Handler) GetReminders(c *fiber.Ctx) error {
	today, err := handler.todayOrQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	result := handler.tracker.Poll(today)
	return c.JSON(fiber.Map{
		"should_notify": result.ShouldNotify,
		"reminders":     newReminderResponses(result.Reminders),
	})
}

func (handler *Handler) GetCycleLengthChart(c *fiber.Ctx) error {
	return c.JSON(newChartResponse(handler.tracker.CycleLengthSeries()))
}

func (handler *Handler) GetPainChart(c *fiber.Ctx) error {
	return c.JSON(newChartResponse(handler.tracker.PainSeries()))
}
