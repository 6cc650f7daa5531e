package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"croche-storefront/internal/client"
	"croche-storefront/internal/config"
	"croche-storefront/internal/repository"
	"croche-storefront/internal/server"
	"croche-storefront/internal/service"
	"croche-storefront/internal/session"
	"croche-storefront/pkg/logger"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	db, err := client.OpenDatabase(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	googleClient := client.NewGoogleClient(&cfg.Google)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	codec := session.NewCodec(cfg.Session.Secret, cfg.Session.TTL)

	authService := service.NewAuthService(googleClient, userRepo, cfg.BaseURL, cfg.AdminEmail, log)
	catalogService := service.NewCatalogService(productRepo, log)
	orderService := service.NewOrderService(orderRepo, productRepo, log)

	srv := server.NewServer(log, codec, authService, catalogService, orderService)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Info().Str("addr", serverAddr).Str("env", cfg.Environment.Name).Msg("starting HTTP server")
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info().Msg("signal received, shutting down")

	if err := srv.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("HTTP server shutdown error")
	}
}
