package presenters

import (
	"github.com/gofiber/fiber/v2"
)

// SuccessResponse writes the response envelope: the message plus the
// payload keys spread at the top level.
func SuccessResponse(c *fiber.Ctx, data fiber.Map, status int, message string) error {
	body := fiber.Map{"message": message}
	for k, v := range data {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	body := fiber.Map{"message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	return c.Status(status).JSON(body)
}
