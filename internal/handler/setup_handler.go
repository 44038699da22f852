package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Eursukkul/venue-staffing/internal/dto"
)

const (
	setupSucceeded     = "Database setup completed successfully"
	setupFailedDefault = "Failed to set up database"
)

var errSetupFailed = errors.New(setupFailedDefault)

// SetupFunc initialises the database. It is called once per request.
type SetupFunc func(ctx context.Context) error

type SetupHandler struct {
	setup SetupFunc
	log   *zap.Logger
}

func NewSetupHandler(setup SetupFunc, log *zap.Logger) *SetupHandler {
	return &SetupHandler{setup: setup, log: log}
}

func (h *SetupHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/setup-database", h.SetupDatabase)
}

// SetupDatabase answers with its own {"error": ...} body instead of going
// through the shared error handler.
func (h *SetupHandler) SetupDatabase(c echo.Context) error {
	if err := h.run(c.Request().Context()); err != nil {
		msg := err.Error()
		if msg == "" {
			msg = setupFailedDefault
		}
		h.log.Error("database setup failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, dto.SetupErrorResponse{Error: msg})
	}

	h.log.Info("database setup completed")
	return c.JSON(http.StatusOK, dto.SetupResponse{Message: setupSucceeded})
}

func (h *SetupHandler) run(ctx context.Context) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = e
			return
		}
		h.log.Error("database setup panicked", zap.String("value", fmt.Sprint(r)))
		err = errSetupFailed
	}()
	return h.setup(ctx)
}
