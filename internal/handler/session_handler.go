package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Eursukkul/venue-staffing/internal/auth"
	"github.com/Eursukkul/venue-staffing/internal/dto"
	"github.com/Eursukkul/venue-staffing/internal/layout"
	"github.com/Eursukkul/venue-staffing/internal/middleware"
)

// SessionHandler tells a client who it is and which sections it may enter,
// so navigation can be built without probing guarded routes.
type SessionHandler struct {
	table []layout.Policy
}

func NewSessionHandler(table []layout.Policy) *SessionHandler {
	return &SessionHandler{table: table}
}

func (h *SessionHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/session", h.GetSession)
	g.GET("/access", h.CheckAccess)
}

func (h *SessionHandler) GetSession(c echo.Context) error {
	ac := middleware.AuthFromContext(c)

	var sections []string
	for _, p := range h.table {
		if decide(ac, p) == auth.Allowed {
			sections = append(sections, p.Section)
		}
	}
	return c.JSON(http.StatusOK, dto.ToSessionResponse(ac, sections))
}

func (h *SessionHandler) CheckAccess(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "path is required")
	}

	resp := dto.AccessResponse{Path: path, Decision: auth.Allowed.String()}
	if p, ok := layout.Lookup(h.table, path); ok {
		resp.Section = p.Section
		resp.Decision = decide(middleware.AuthFromContext(c), p).String()
	}
	return c.JSON(http.StatusOK, resp)
}

func decide(ac auth.AuthContext, p layout.Policy) auth.Decision {
	if p.Decorative {
		return auth.Allowed
	}
	return auth.Guard(ac, p.Roles)
}
