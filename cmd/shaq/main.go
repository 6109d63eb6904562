package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Sumatoha/shaq-web/internal/api"
	"github.com/Sumatoha/shaq-web/internal/config"
	"github.com/Sumatoha/shaq-web/internal/logging"
	"github.com/Sumatoha/shaq-web/internal/render/blocks"
	"github.com/Sumatoha/shaq-web/internal/server"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.Setup(cfg.LogLevel)

	blocks.MapsEmbedKey = cfg.MapsEmbedKey

	client := api.NewClient(api.Config{BaseURL: cfg.APIURL})
	srv := server.New(client, server.Config{PublicURL: cfg.PublicURL}, logger)
	client.OnUnauthorized(srv.Sessions().InvalidateToken)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Expired rate-limit windows pile up without a sweep.
	go func() {
		for range time.Tick(10 * time.Minute) {
			srv.RateLimiter().Cleanup()
		}
	}()

	go func() {
		fmt.Printf("Shaq running at http://localhost:%s\n", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
