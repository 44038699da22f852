package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Eursukkul/venue-staffing/internal/auth"
	"github.com/Eursukkul/venue-staffing/internal/handler"
	"github.com/Eursukkul/venue-staffing/internal/layout"
	"github.com/Eursukkul/venue-staffing/internal/metrics"
	"github.com/Eursukkul/venue-staffing/internal/middleware"
	"github.com/Eursukkul/venue-staffing/internal/repository"
	"github.com/Eursukkul/venue-staffing/internal/service"
	"github.com/Eursukkul/venue-staffing/pkg/database"
)

type serverDeps struct {
	DB        *gorm.DB
	Publisher service.EventPublisher
	Tokens    *auth.TokenParser
	Metrics   *metrics.Metrics
	Log       *zap.Logger
}

func newServer(d serverDeps) (*echo.Echo, error) {
	// Repositories
	shiftRepo := repository.NewShiftRepository(d.DB)
	assignmentRepo := repository.NewAssignmentRepository(d.DB)
	venueRepo := repository.NewVenueRepository(d.DB)
	feedbackRepo := repository.NewFeedbackRepository(d.DB)
	documentRepo := repository.NewDocumentRepository(d.DB)
	profileRepo := repository.NewProfileRepository(d.DB)
	activityRepo := repository.NewActivityRepository(d.DB)

	// Services
	shiftSvc := service.NewShiftService(shiftRepo, assignmentRepo, venueRepo, d.Publisher, d.Log)
	venueSvc := service.NewVenueService(venueRepo)
	feedbackSvc := service.NewFeedbackService(feedbackRepo, venueRepo, d.Publisher, d.Log)
	documentSvc := service.NewDocumentService(documentRepo, venueRepo, d.Publisher, d.Log)
	profileSvc := service.NewProfileService(profileRepo)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.NewErrorHandler(d.Log)
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(d.Metrics.Middleware())
	e.Use(echoMw.Recover())
	e.Use(middleware.Authenticate(d.Tokens))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "staffing-service"})
	})
	e.GET("/metrics", d.Metrics.Handler())

	handler.NewSetupHandler(func(ctx context.Context) error {
		return database.Setup(ctx, d.DB)
	}, d.Log).RegisterRoutes(e)
	handler.NewSessionHandler(layout.Table).RegisterRoutes(e.Group("/api"))

	groups, err := layout.MountAll(e, layout.Table, d.Log, d.Metrics)
	if err != nil {
		return nil, fmt.Errorf("mount layouts: %w", err)
	}
	handler.NewDashboardHandler(shiftSvc, profileSvc, feedbackSvc, documentSvc).RegisterRoutes(groups["dashboard"])
	handler.NewManagerHandler(shiftSvc, feedbackSvc, documentSvc, activityRepo).RegisterRoutes(groups["manager"])
	handler.NewVenueHandler(venueSvc, shiftSvc, feedbackSvc).RegisterRoutes(groups["venue"])
	handler.NewAdminHandler(venueSvc).RegisterRoutes(groups["admin"])

	return e, nil
}
