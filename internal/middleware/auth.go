package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Eursukkul/venue-staffing/internal/auth"
	"github.com/Eursukkul/venue-staffing/internal/metrics"
)

const ContextKeyAuth = "auth"

// Authenticate resolves the bearer token, if any, into an AuthContext and
// stores it on the request. It never rejects; guarded sections decide.
func Authenticate(parser *auth.TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextKeyAuth, parser.Resolve(bearerToken(c.Request())))
			return next(c)
		}
	}
}

func bearerToken(r *http.Request) string {
	parts := strings.SplitN(r.Header.Get(echo.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AuthFromContext returns the caller stored by Authenticate, or an
// anonymous caller when nothing was stored.
func AuthFromContext(c echo.Context) auth.AuthContext {
	if ac, ok := c.Get(ContextKeyAuth).(auth.AuthContext); ok {
		return ac
	}
	return auth.Anonymous()
}

// WithAuth stores ac on the context. Handler tests use it in place of a token.
func WithAuth(c echo.Context, ac auth.AuthContext) {
	c.Set(ContextKeyAuth, ac)
}

// RequireRoles lets a request through only when the caller holds one of
// roles. Denials never reach the wrapped handler.
func RequireRoles(section string, roles auth.RoleSet, log *zap.Logger, m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ac := AuthFromContext(c)
			decision := auth.Guard(ac, roles)
			m.ObserveGuard(section, decision.String())

			switch decision {
			case auth.Allowed:
				return next(c)
			case auth.Unauthenticated:
				log.Info("guard denied",
					zap.String("section", section),
					zap.String("uri", c.Request().RequestURI),
					zap.String("reason", decision.String()),
				)
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			default:
				log.Info("guard denied",
					zap.String("section", section),
					zap.String("uri", c.Request().RequestURI),
					zap.String("user_id", ac.UserID),
					zap.String("role", string(ac.Role)),
					zap.String("reason", decision.String()),
				)
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}
		}
	}
}

// Decorate marks responses of an unguarded section with its layout name.
func Decorate(section string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("X-Layout", section)
			return next(c)
		}
	}
}
