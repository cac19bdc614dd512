package middleware

import (
	"slices"
	"strings"

	deliverycontext "compras/internal/delivery/context"
	"compras/internal/delivery/http/response"
	"compras/internal/domain/entity"
	"compras/internal/domain/repository"
	"compras/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUID   = "uid"
	ContextKeyRole  = "role"
	ContextKeyActor = "actor"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
// The role asserted by the token is the role the lifecycle engine gates on;
// the user document is read only to address notifications.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the JWT access token and sets the acting identity
// on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Autenticação necessária")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Formato de token inválido")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token inválido ou expirado")
		}

		actor := &entity.Actor{
			UID:  claims.UID,
			Role: claims.Role,
		}

		// Addressing fields for notification payloads; a failed read leaves
		// them empty rather than refusing the request.
		if user, err := m.userRepo.FindByUID(c.Request().Context(), claims.UID); err == nil {
			actor.Nome = user.Nome
			actor.Email = user.Email
		}

		c.Set(ContextKeyUID, claims.UID)
		c.Set(ContextKeyRole, claims.Role.String())
		c.Set(ContextKeyActor, actor)

		ctx := deliverycontext.WithActorUID(c.Request().Context(), claims.UID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole is a middleware factory that admits only the given roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(string)
			if !ok {
				return response.Forbidden(c, "ROLE_MISSING", "Permissão negada")
			}

			if !slices.Contains(allowed, role) {
				return response.Forbidden(c, "ROLE_NOT_ALLOWED", "Seu perfil não permite esta ação")
			}

			return next(c)
		}
	}
}

// ActorFromContext retrieves the acting identity set by Authenticate.
func ActorFromContext(c echo.Context) *entity.Actor {
	if actor, ok := c.Get(ContextKeyActor).(*entity.Actor); ok {
		return actor
	}

	return &entity.Actor{}
}
