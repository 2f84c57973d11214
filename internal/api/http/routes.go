package httpapi

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weathernow/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	api := app.Group("/api")

	api.Get("/weather", func(c *fiber.Ctx) error {
		q, err := parseWeatherQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "city query parameter is required")
		}

		body, err := service.Lookup(c.UserContext(), q.City, q.Lang)
		if err != nil {
			if errors.Is(err, weather.ErrCityNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "city not found")
			}

			var upErr *weather.UpstreamError
			if errors.As(err, &upErr) {
				log.Printf("ERROR: upstream weather failed for %q: status %d", q.City, upErr.Status)
				c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
				return c.Status(upErr.Status).Send(upErr.Body)
			}

			log.Printf("ERROR: weather lookup failed for %q: %v", q.City, err)
			return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.Send(body)
	})
}

// ErrorHandler renders every handler error as {"error": message}. Errors that
// are not *fiber.Error become a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal server error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		msg = e.Message
	} else {
		log.Printf("ERROR: unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Map{
		"error": msg,
	})
}

// weatherQuery holds query parameters for the weather endpoint.
type weatherQuery struct {
	City string `validate:"required"`
	Lang string
}

func parseWeatherQuery(c *fiber.Ctx) (weatherQuery, error) {
	var q weatherQuery

	q.City = c.Query("city")
	q.Lang = c.Query("lang", weather.DefaultLang)

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}
