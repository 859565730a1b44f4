package middlewares

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"referral_backend/config"
	"referral_backend/utils"
	"time"
)

func RegisterMiddlewares(app *fiber.App) {
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(MyLogger)
	app.Use(cors.New(cors.Config{AllowOrigins: "*"}))

	// prometheus
	prom := fiberprometheus.New(config.AppName)
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
}

func MyLogger(c *fiber.Ctx) error {
	startTime := time.Now()
	chainErr := c.Next()

	if chainErr != nil {
		if err := c.App().ErrorHandler(c, chainErr); err != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	latency := time.Since(startTime).Milliseconds()
	output := []zap.Field{
		zap.Int("status_code", c.Response().StatusCode()),
		zap.String("method", c.Method()),
		zap.String("origin_url", c.OriginalURL()),
		zap.String("remote_ip", realIP(c)),
		zap.Int64("latency", latency),
	}
	if requestID, ok := c.Locals("requestid").(string); ok {
		output = append(output, zap.String("request_id", requestID))
	}
	if chainErr != nil {
		output = append(output, zap.Error(chainErr))
	}
	utils.Logger.Info("http log", output...)
	return nil
}

// realIP prefers the first X-Forwarded-For hop when running behind a proxy
func realIP(c *fiber.Ctx) string {
	if ips := c.IPs(); len(ips) > 0 {
		return ips[0]
	}
	return c.Get("X-Real-Ip", c.IP())
}
