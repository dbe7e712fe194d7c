package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"tutorku_backend/internals/configs"
)

// LoggerMiddleware mencatat semua request, berikut request-id yang dipasang
// di main supaya baris log bisa dikorelasikan dengan header X-Request-ID.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   configs.GetEnv("LOG_TIMEZONE", "Asia/Jakarta"),
		Format:     "[${time}] ${locals:reqid} ${ip} ${method} ${path} - ${status} (${latency})\n",
	})
}
