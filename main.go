package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/02priyeshraj/Restaurant_Management_Backend/config"
	controller "github.com/02priyeshraj/Restaurant_Management_Backend/controllers"
	"github.com/02priyeshraj/Restaurant_Management_Backend/events"
	"github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	middleware "github.com/02priyeshraj/Restaurant_Management_Backend/middlewares"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/telemetry"
	"github.com/02priyeshraj/Restaurant_Management_Backend/routes"
	"github.com/02priyeshraj/Restaurant_Management_Backend/services"
	"github.com/02priyeshraj/Restaurant_Management_Backend/store"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.ILogger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName:  cfg.ServiceName,
		Exporter:     cfg.TraceExporter,
		OTLPEndpoint: cfg.OTLPEndpoint,
	})
	if err != nil {
		return err
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	client, err := config.ConnectMongo(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := store.New(client.Database(cfg.MongoDatabase))
	if err := db.EnsureIndexes(ctx); err != nil {
		return err
	}

	redisClient, err := config.ConnectRedis(ctx, cfg)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	} else {
		log.Warning("REDIS_HOST not set, logout will not revoke access tokens")
	}
	revocations := store.NewTokenRevocations(redisClient)

	kafkaWriter := config.NewKafkaWriter(cfg)
	if kafkaWriter != nil {
		defer kafkaWriter.Close()
	}
	publisher := events.NewOrderPublisher(kafkaWriter)

	tokens := helper.NewTokenManager(cfg.SecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	loc := cfg.Location()

	authService := services.NewAuthService(db.Users, tokens, revocations, cfg.BcryptCost, log)
	userService := services.NewUserService(db.Users, cfg.BcryptCost, log)
	menuService := services.NewMenuService(db.MenuItems, log)
	tableService := services.NewTableService(db.Tables, db.Reservations, cfg.DefaultReservationMinutes, loc, log)
	orderService := services.NewOrderService(services.OrderServiceDeps{
		Orders:         db.Orders,
		MenuItems:      db.MenuItems,
		Reservations:   db.Reservations,
		Payments:       db.Payments,
		Publisher:      publisher,
		ReceiptBaseURL: cfg.PublicBaseURL,
		Log:            log,
	})
	reservationService := services.NewReservationService(db.Reservations, db.Tables, cfg.DefaultReservationMinutes, loc, log)
	feedbackService := services.NewFeedbackService(db.Feedback, db.Orders, db.Reservations, log)
	reportService := services.NewReportService(db.Reports, db.Orders, db.Reservations, db.Feedback, loc, log)

	timeout := cfg.RequestTimeout
	router := mux.NewRouter()
	router.Use(middleware.Recovery(log), middleware.RequestLogger(log))

	routes.Register(router, routes.Controllers{
		Auth:        controller.NewAuthController(authService, timeout, log),
		Users:       controller.NewUserController(userService, timeout, log),
		MenuItems:   controller.NewMenuItemController(menuService, timeout, log),
		Tables:      controller.NewTableController(tableService, timeout, log),
		Orders:      controller.NewOrderController(orderService, timeout, log),
		Reservation: controller.NewReservationController(reservationService, timeout, log),
		Feedback:    controller.NewFeedbackController(feedbackService, timeout, log),
		Reports:     controller.NewReportController(reportService, timeout, log),
		Health:      controller.NewHealthController(client, timeout, log),
	}, middleware.Authentication(tokens, revocations, log))

	var handler http.Handler = router
	if cfg.StaticDir != "" {
		handler = withStatic(router, cfg.StaticDir)
	}
	handler = cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	}).Handler(handler)
	handler = telemetry.Middleware(cfg.ServiceName, handler)

	server := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.AppPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", logger.Int("port", cfg.AppPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// withStatic serves the SPA bundle for any path the API router does not match.
func withStatic(api *mux.Router, dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var match mux.RouteMatch
		if api.Match(r, &match) || match.MatchErr == mux.ErrMethodMismatch {
			api.ServeHTTP(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
