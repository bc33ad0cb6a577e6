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

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/rahatfaruk/pha12-meals-track-server/config"
	controller "github.com/rahatfaruk/pha12-meals-track-server/controllers"
	"github.com/rahatfaruk/pha12-meals-track-server/database"
	"github.com/rahatfaruk/pha12-meals-track-server/helper"
	middleware "github.com/rahatfaruk/pha12-meals-track-server/middlewares"
	"github.com/rahatfaruk/pha12-meals-track-server/routes"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error("mongodb disconnect failed", "error", err)
		}
	}()
	logger.Info("connected to mongodb", "database", cfg.DBName)

	store := database.NewStore(client, cfg.DBName)
	tokens := helper.NewTokenService(cfg.AuthPrivateKey, helper.TokenTTL)
	payments := helper.NewStripeService(cfg.SecretPaymentKey)
	c := controller.New(store, tokens, payments, logger)

	router := mux.NewRouter()
	routes.Register(router, c, tokens, store)

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.Origins()),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      middleware.Chain(cors(router), middleware.Recover(logger)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}
