// Package middleware contains the HTTP middleware chain: request IDs,
// request logging, session authentication, and error mapping.
package middleware

import (
	"strings"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/delivery/http/response"
	"canteen/internal/domain/entity"
	"canteen/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates session tokens and gates admin-only routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer session token and stores the member
// identity on the request context for handlers and usecases.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "NOT_LOGGED_IN", "请先登录")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "NOT_LOGGED_IN", "无效的登录凭证")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "NOT_LOGGED_IN", "登录已过期，请重新登录")
		}

		deliverycontext.SetUserID(c, claims.UserID)
		c.Set("role", claims.Role)

		return next(c)
	}
}

// RequireAdmin rejects non-admin sessions. It must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := c.Get("role").(entity.Role)
		if !ok || role != entity.RoleAdmin {
			return response.Forbidden(c, "FORBIDDEN", "需要管理员权限")
		}

		return next(c)
	}
}
