package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const (
	// SessionIDHeader carries the analytics session a request belongs to.
	SessionIDHeader = "X-Session-ID"
	// SessionLocalKey is the Fiber locals key holding the session id.
	SessionLocalKey = "session_id"
)

// Session resolves the analytics session of a request. Clients without a session id get
// a new one in the response header and should send it back on later requests.
// The id outlives the request as a cache key, so it is copied out of the request buffer.
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := utils.CopyString(c.Get(SessionIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(SessionLocalKey, id)
		c.Set(SessionIDHeader, id)
		return c.Next()
	}
}

// SessionID returns the session id stored by Session.
func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(SessionLocalKey).(string)
	return id
}
