package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Eursukkul/humorshub/internal/models"
	"github.com/Eursukkul/humorshub/internal/service"
	"github.com/Eursukkul/humorshub/pkg/auth"
	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// JWTAuth verifies the bearer token and stores the caller's identity on the
// context. Emails in admins get the admin role whatever the token says.
func JWTAuth(parser TokenParser, admins auth.AdminSet) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(h, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			claims, err := parser.Parse(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			userID, err := strconv.ParseUint(claims.Subject, 10, 64)
			if err != nil || claims.Email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			role := models.Role(claims.Role)
			if admins.Contains(claims.Email) {
				role = models.RoleAdmin
			}
			if !role.Valid() {
				role = models.RoleUser
			}

			SetIdentity(c, service.Identity{
				UserID: uint(userID),
				Email:  strings.ToLower(claims.Email),
				Role:   role,
			})
			return next(c)
		}
	}
}

func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			if !id.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}

func SetIdentity(c echo.Context, id service.Identity) {
	c.Set(identityKey, id)
}

func IdentityFrom(c echo.Context) (service.Identity, bool) {
	id, ok := c.Get(identityKey).(service.Identity)
	return id, ok
}
