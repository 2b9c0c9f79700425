package main

import (
	"gearshare/config"
	"gearshare/internal/handler"
	"gearshare/internal/logging"
	"gearshare/internal/metrics"
	"gearshare/internal/middleware"
	"gearshare/internal/repository"
	"gearshare/internal/service"
	"gearshare/pkg/database"
	"gearshare/pkg/rabbitmq"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	db, err := database.NewPostgresDB(cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	// Booking lifecycle events go to a topic exchange; without a broker
	// URL the service runs with publishing disabled.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL, log)
		if err != nil {
			log.Fatal().Err(err).Msg("rabbitmq init failed")
		}
		defer publisher.Close()
	} else {
		log.Warn().Msg("RABBITMQ_URL not set, event publishing disabled")
	}

	metrics.Register()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Services
	userSvc := service.NewUserService(userRepo, log)
	itemSvc := service.NewItemService(itemRepo, userRepo, bookingRepo, commentRepo, log)
	bookingSvc := service.NewBookingService(bookingRepo, userRepo, itemRepo, publisher, log)
	requestSvc := service.NewRequestService(requestRepo, userRepo, itemRepo, log)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.Recover())
	e.Use(echoMw.RequestIDWithConfig(echoMw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Msg("request")
			return nil
		},
	}))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			metrics.IncHTTP(c.Path())
			return next(c)
		}
	})

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "gearshare"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler.NewUserHandler(userSvc).RegisterRoutes(e)
	handler.NewItemHandler(itemSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)
	handler.NewRequestHandler(requestSvc).RegisterRoutes(e)

	log.Info().Str("port", cfg.ServerPort).Msg("gearshare starting")
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
