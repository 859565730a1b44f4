package apis

import (
	"github.com/gofiber/fiber/v2"
	"referral_backend/data"
)

// Index
//
//	@Produce	application/json
//	@Router		/ [get]
//	@Success	200	{object}	map[string]string
func Index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data.MetaData)
}
