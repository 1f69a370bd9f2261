package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fieldserve/internal/domain/identity"
	"fieldserve/internal/infrastructure/auth"
	"fieldserve/internal/shared/constants"
	"fieldserve/internal/shared/logger"
	"fieldserve/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		actor, err := claims.Actor()
		if err != nil {
			m.logger.Warnw("token carries invalid actor", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyActorID, actor.ID)
		c.Set(constants.ContextKeyActorRole, actor.Role.String())

		c.Next()
	}
}

// ActorFromContext reconstructs the authenticated actor set by RequireAuth.
func ActorFromContext(c *gin.Context) (identity.Actor, bool) {
	idVal, ok := c.Get(constants.ContextKeyActorID)
	if !ok {
		return identity.Actor{}, false
	}
	roleVal, ok := c.Get(constants.ContextKeyActorRole)
	if !ok {
		return identity.Actor{}, false
	}

	id, ok := idVal.(uint)
	if !ok {
		return identity.Actor{}, false
	}
	roleStr, ok := roleVal.(string)
	if !ok {
		return identity.Actor{}, false
	}

	role, err := identity.NewRole(roleStr)
	if err != nil {
		return identity.Actor{}, false
	}

	return identity.Actor{ID: id, Role: role}, true
}
