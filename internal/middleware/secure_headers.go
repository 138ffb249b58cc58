package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// SecureHeaders is a Fiber middleware that hardens responses carrying
// credentials forms against framing, sniffing and caching.
func SecureHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
		c.Set(fiber.HeaderXFrameOptions, "DENY")
		c.Set(fiber.HeaderReferrerPolicy, "same-origin")
		c.Set(fiber.HeaderCacheControl, "no-store")

		return c.Next()
	}
}
