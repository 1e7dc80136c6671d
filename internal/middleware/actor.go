package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arylegal/ary-backend/internal/logger"
	"github.com/arylegal/ary-backend/internal/requestdata"
)

type ActorMiddleware struct {
	log *logger.Logger
}

func NewActorMiddleware(log *logger.Logger) *ActorMiddleware {
	return &ActorMiddleware{log: log.With("middleware", "ActorMiddleware")}
}

// Attach propagates the caller identity from the X-Actor-Id header into the
// request context. Services fall back to "system"/"operator" when absent;
// there is no authentication in this deployment.
func (am *ActorMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader("X-Actor-Id"))
		if actor != "" {
			ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{ActorID: actor})
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
