package middleware

import (
	"errors"

	m "metalfolio/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog/log"
)

func SetupMiddleware(router fiber.Router) {

	router.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "*",
	}))
	router.Use(errorHandle)
	router.Use(logRequest)

}

func errorHandle(c *fiber.Ctx) error {

	err := c.Next()
	if err != nil {
		log.Error().Err(err).Msg("Error in middleware")
		return c.Status(statusFor(err)).SendString(err.Error())
	}
	return nil
}

// Bad input is the caller's fault; a broken scrape or a bad disk is not.
func statusFor(err error) int {
	var ce *m.ConfigError
	var se *m.ScrapeError
	var ve validator.ValidationErrors
	switch {
	case errors.As(err, &ce), errors.As(err, &ve):
		return fiber.StatusBadRequest
	case errors.As(err, &se):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func logRequest(c *fiber.Ctx) error {
	log.Info().Str("endpoint", c.Path()).Msg("Request endpoint")
	return c.Next()
}
