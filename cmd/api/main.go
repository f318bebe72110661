package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/smilodon-digital/invoicing-service/internal/config"
	"github.com/smilodon-digital/invoicing-service/internal/handler"
	"github.com/smilodon-digital/invoicing-service/internal/jobs"
	"github.com/smilodon-digital/invoicing-service/internal/middleware"
	"github.com/smilodon-digital/invoicing-service/internal/notify"
	"github.com/smilodon-digital/invoicing-service/internal/realtime"
	"github.com/smilodon-digital/invoicing-service/internal/seed"
	"github.com/smilodon-digital/invoicing-service/internal/service"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize stores and layers
	stores := service.NewStores()
	if cfg.SeedDemoData {
		seed.Demo(stores)
		logger.Info("Demo fixture data loaded")
	}

	mailer := notify.NewSender(cfg, logger)
	svc := service.NewService(stores, mailer, logger, cfg)
	h := handler.NewHandler(svc, logger)

	// Realtime stream for UI consumers
	hub := realtime.NewHub(logger)
	hub.Watch(stores)
	go hub.Run()

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.Metrics)
	h.Routes(r)
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/ws", hub.Handle).Methods("GET")

	// Payment reminders
	reminder := jobs.NewReminder(svc, mailer, cfg, logger)
	if err := reminder.Start(); err != nil {
		logger.Fatalf("Failed to start reminder job: %v", err)
	}

	// Start server. The write timeout stays unset so websocket streams
	// are not cut off.
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           middleware.CORS(cfg.CORSAllowedOrigins)(r),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Shut down on SIGINT/SIGTERM, draining in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	reminder.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
}
