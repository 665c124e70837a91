package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// APIKeyAuth requires an X-API-Key header on every route. Checking keys
// against a backend is not implemented yet: every key is accepted unless it
// starts with "dud0-".
func APIKeyAuth(c *fiber.Ctx) error {
	apiKey := c.Get("X-API-Key")
	if apiKey == "" || strings.HasPrefix(apiKey, "dud0-") {
		return JsonResponse(c, fiber.StatusForbidden, false, "Not authenticated", nil)
	}
	return c.Next()
}
