package referral

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(routes fiber.Router) {
	routes.Post("/referral", CreateReferral)
}
