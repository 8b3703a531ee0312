package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Eursukkul/humorshub/config"
	"github.com/Eursukkul/humorshub/internal/cache"
	"github.com/Eursukkul/humorshub/internal/consumer"
	"github.com/Eursukkul/humorshub/internal/handler"
	"github.com/Eursukkul/humorshub/internal/middleware"
	"github.com/Eursukkul/humorshub/internal/models"
	"github.com/Eursukkul/humorshub/internal/notifier"
	"github.com/Eursukkul/humorshub/internal/repository"
	"github.com/Eursukkul/humorshub/internal/service"
	"github.com/Eursukkul/humorshub/pkg/auth"
	"github.com/Eursukkul/humorshub/pkg/database"
	"github.com/Eursukkul/humorshub/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

const venueID = 1

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	}

	tickets, err := service.ParseTicketPolicy(cfg.TicketPolicy)
	if err != nil {
		logrus.WithError(err).Fatal("invalid TICKET_POLICY")
	}
	deletePolicy, err := service.ParseDeletePolicy(cfg.UserDeletePolicy)
	if err != nil {
		logrus.WithError(err).Fatal("invalid USER_DELETE_POLICY")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(cfg.DSN())
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	// Repositories
	venueRepo := repository.NewVenueRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewUserRepository(db)

	venue := &models.Venue{ID: venueID, Name: cfg.VenueName, Capacity: cfg.VenueCapacity}
	if err := venueRepo.Ensure(ctx, venue); err != nil {
		logrus.WithError(err).Fatal("failed to seed venue")
	}

	var opts []service.Option

	// Redis venue-status cache is optional
	if cfg.RedisAddr != "" {
		client := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			logrus.WithError(err).Warn("redis unreachable, continuing without venue status cache")
		} else {
			opts = append(opts, service.WithVenueCache(cache.NewVenueStatusCache(client, cfg.VenueStatusCacheTTL)))
		}
	}

	// RabbitMQ: publish status events and deliver them to the notifier
	if cfg.RabbitURL != "" {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			logrus.WithError(err).Fatal("failed to connect to RabbitMQ")
		}
		defer publisher.Close()
		opts = append(opts, service.WithPublisher(publisher))

		mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL, consumer.QueueName, consumer.Bindings...)
		if err != nil {
			logrus.WithError(err).Fatal("failed to declare notification queue")
		}
		defer mqConsumer.Close()

		msgs, err := mqConsumer.Consume()
		if err != nil {
			logrus.WithError(err).Fatal("failed to start consuming")
		}
		consumer.NewNotificationConsumer(notifier.NewLogNotifier(logrus.StandardLogger())).Start(ctx, msgs)
	}

	tokens := auth.NewManager(cfg.JWTSecret, cfg.JWTTTL)
	admins := auth.NewAdminSet(cfg.AdminEmails...)
	tx := database.NewTransactor(db)

	// Services
	bookingSvc := service.NewBookingService(bookingRepo, venueRepo, tx, service.BookingConfig{
		VenueID:         venueID,
		Capacity:        cfg.VenueCapacity,
		Tickets:         tickets,
		EnforceCapacity: cfg.EnforceCapacityOnApprove,
	}, opts...)
	comedianSvc := service.NewComedianService(userRepo, opts...)
	adminSvc := service.NewAdminService(bookingRepo, userRepo, tx, deletePolicy, opts...)
	userSvc := service.NewUserService(userRepo, opts...)
	authSvc := service.NewAuthService(userRepo, tokens, admins, opts...)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = middleware.NewValidator()
	e.Use(echoMw.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "humorshub"})
	})

	authMw := middleware.JWTAuth(tokens, admins)
	api := e.Group("/api/v1")

	handler.NewAuthHandler(authSvc).RegisterRoutes(api.Group("/auth"))
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(api.Group("/bookings"), authMw)
	handler.NewComedianHandler(comedianSvc).RegisterRoutes(api.Group("/comedians", authMw))
	handler.NewUserHandler(userSvc).RegisterRoutes(api.Group("/users", authMw))
	handler.NewAdminHandler(bookingSvc, comedianSvc, adminSvc).
		RegisterRoutes(api.Group("/admin", authMw, middleware.RequireAdmin()))

	go func() {
		addr := ":" + cfg.ServerPort
		logrus.WithFields(logrus.Fields{
			"addr":     addr,
			"capacity": cfg.VenueCapacity,
			"tickets":  tickets.String(),
		}).Info("humorshub starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
	logrus.Info("humorshub stopped")
}
