package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const maxImportBytes = 4 << 20

func (handler *Handler) Export(c *fiber.Ctx) error {
	payload, err := handler.tracker.Export()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	filename := fmt.Sprintf("cyclenote-export-%s.json", handler.now().UTC().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(payload)
}

func (handler *Handler) Import(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return apiError(c, fiber.StatusBadRequest, "empty document")
	}
	if len(body) > maxImportBytes {
		return apiError(c, fiber.StatusRequestEntityTooLarge, "document too large")
	}

	count, err := handler.tracker.Import(c.UserContext(), body)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	handler.logger.Info("records imported", zap.Int("days", count))
	return c.JSON(fiber.Map{"imported_days": count})
}

func (handler *Handler) ClearAll(c *fiber.Ctx) error {
	if err := handler.tracker.ClearAll(c.UserContext()); err != nil {
		return handler.respondServiceError(c, err)
	}
	handler.logger.Info("records cleared")
	return c.JSON(fiber.Map{"ok": true})
}
