package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclenote/internal/models"
	"github.com/terraincognita07/cyclenote/internal/services"
)

func (handler *Handler) ListDays(c *fiber.Ctx) error {
	entries := handler.tracker.ListDays()
	result := make([]dayResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, newDayResponse(entry.Date, entry.Record))
	}
	return c.JSON(result)
}

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	record, ok := handler.tracker.GetDay(day)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "day not found")
	}
	return c.JSON(newDayResponse(day, record))
}

func (handler *Handler) UpsertDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	patch := models.DayPatch{}
	if err := c.BodyParser(&patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	record, stored, err := handler.tracker.UpsertDay(c.UserContext(), day, patch)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if !stored {
		return c.JSON(fiber.Map{"date": services.FormatDay(day), "deleted": true})
	}
	return c.JSON(newDayResponse(day, record))
}

func (handler *Handler) DeleteDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	if err := handler.tracker.DeleteDay(c.UserContext(), day); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
