// Package auth implements the operator authorization gate.
//
// Every mutating ledger operation requires the caller to act as the
// authorized operator: one composite capability covering both the catalog
// owner and trusted verifier roles. The capability is presented as an API
// key in the X-API-Key header.
package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// HeaderName is the header carrying the operator API key.
const HeaderName = "X-API-Key"

// Config holds the middleware configuration.
type Config struct {
	// ApiKey is the expected operator key. An empty key disables the gate,
	// which is only sensible in local development.
	ApiKey string
}

// New creates the operator gate middleware. Requests without the correct
// key are rejected with 401 before any handler runs.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		presented := c.Get(HeaderName)
		if subtle.ConstantTimeCompare([]byte(presented), []byte(cfg.ApiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "operator authorization required",
			})
		}
		return c.Next()
	}
}
