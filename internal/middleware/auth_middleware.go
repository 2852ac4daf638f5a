package middleware

import (
	"strings"

	"fleetops/internal/models"
	"fleetops/internal/utils"

	"github.com/gin-gonic/gin"
)

const actorContextKey = "actor"

// AuthRequired validates the bearer token and sets the calling actor on the
// request context. Tokens are issued by the external identity provider; only
// the user id and fleet role are consumed here.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, secret)
		if err != nil {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		actor := models.Actor{
			ID:   claims.UserID,
			Role: models.Role(claims.Role),
		}
		if actor.ID == "" || !actor.Role.IsValid() {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		c.Set(actorContextKey, actor)
		c.Set("user_id", actor.ID)

		c.Next()
	}
}

// ActorFromContext returns the actor set by AuthRequired.
func ActorFromContext(c *gin.Context) (models.Actor, bool) {
	value, exists := c.Get(actorContextKey)
	if !exists {
		return models.Actor{}, false
	}
	actor, ok := value.(models.Actor)
	return actor, ok
}

// RoleRequired rejects callers whose role is not in the allowed set. It runs
// after AuthRequired; the service layer still enforces per-record ownership.
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		if _, ok := allowed[actor.Role]; !ok {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
