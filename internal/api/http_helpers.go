package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclenote/internal/services"
	"go.uber.org/zap"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps tracker errors onto HTTP statuses.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidDate):
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	case errors.Is(err, services.ErrInvalidPain):
		return apiError(c, fiber.StatusBadRequest, "pain must be between 0 and 10")
	case errors.Is(err, services.ErrInvalidDayFlow):
		return apiError(c, fiber.StatusBadRequest, "invalid flow value")
	case errors.Is(err, services.ErrMalformedDocument):
		return apiError(c, fiber.StatusBadRequest, "unrecognized document")
	case errors.Is(err, services.ErrIntervalNotFound):
		return apiError(c, fiber.StatusNotFound, "period not found")
	default:
		handler.logger.Error("request failed",
			zap.String("path", c.Path()),
			zap.Any("request_id", c.Locals("requestid")),
			zap.Error(err),
		)
		return apiError(c, fiber.StatusInternalServerError, "failed to save data")
	}
}

func parseDayParam(c *fiber.Ctx, name string) (time.Time, error) {
	return services.ParseDay(strings.TrimSpace(c.Params(name)))
}

func (handler *Handler) todayOrQuery(c *fiber.Ctx) (time.Time, error) {
	raw := strings.TrimSpace(c.Query("today"))
	if raw == "" {
		return services.CivilDay(handler.now()), nil
	}
	return services.ParseDay(raw)
}

func (handler *Handler) forecastCount(c *fiber.Ctx) (int, bool) {
	raw := strings.TrimSpace(c.Query("cycles"))
	if raw == "" {
		return handler.tracker.Settings().ForecastCycles, true
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 1 {
		return 0, false
	}
	return handler.tracker.Settings().ClampForecastCycles(count), true
}

func (handler *Handler) requestLanguage(c *fiber.Ctx) string {
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return handler.i18n.NormalizeLanguage(lang)
	}
	return handler.i18n.DetectFromAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
}
