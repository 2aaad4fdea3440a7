// Package rayid assigns every incoming request a unique RayID for tracing.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the generated id.
const HeaderName = "X-Ray-ID"

// New creates the RayID middleware. The id is stored in the request locals
// under "ray_id" and echoed in the response headers.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Locals("ray_id", id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
