package middleware

import (
	"github.com/gin-gonic/gin"

	"aayatana/internal/shared/constants"
)

// Actor resolves the acting admin for audit attribution. The console is
// operated by platform staff; the X-Actor header carries the display name
// and falls back to the super admin identity.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader("X-Actor")
		if actor == "" {
			actor = constants.DefaultActor
		}
		c.Set(constants.ContextKeyActor, actor)
		c.Next()
	}
}

// ActorFrom returns the actor stored on the request context.
func ActorFrom(c *gin.Context) string {
	if actor, ok := c.Get(constants.ContextKeyActor); ok {
		if s, ok := actor.(string); ok && s != "" {
			return s
		}
	}
	return constants.DefaultActor
}
