package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"checkout-relay/internal/config"
	"checkout-relay/internal/gateway"
	"checkout-relay/internal/payments"
	"checkout-relay/internal/payments/handlers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	_ "go.uber.org/automaxprocs"
)

func main() {
	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(logHandler))

	cfg := config.Load()
	if cfg.GatewayUsername == "" || cfg.GatewayPassword == "" {
		slog.Warn("worldpay credentials not set; gateway calls will fail authentication")
	}

	gatewayClient := gateway.NewClient(cfg.GatewayBaseURL, cfg.GatewayUsername, cfg.GatewayPassword)
	paymentService := payments.NewService(gatewayClient, cfg)

	processPaymentHandler := handlers.NewProcessPaymentHandler(paymentService)
	queryPaymentsHandler := handlers.NewQueryPaymentsHandler(paymentService)
	clientConfigHandler := handlers.NewClientConfigHandler(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.Gzip())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				slog.Error("request", "method", v.Method, "uri", v.URI, "status", v.Status, "error", v.Error)
				return nil
			}
			slog.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))

	api := e.Group("/api")
	api.POST("/payments/process", processPaymentHandler.Handle)
	api.GET("/payments/query", queryPaymentsHandler.Handle)
	api.GET("/config", clientConfigHandler.Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.Static("/", "web")

	go func() {
		slog.Info("server started", "port", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	e.Shutdown(shutdownCtx)
}
