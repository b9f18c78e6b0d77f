package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/zhuxinjianbtc-hue/codex-offerwall/core"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/middleware"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/routes"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/storage"
)

func main() {
	// Load .env if present (do not overwrite already-set environment variables).
	if envMap, err := godotenv.Read(); err == nil {
		for k, v := range envMap {
			if os.Getenv(k) == "" {
				os.Setenv(k, v)
			}
		}
	}

	kv := storage.Open()
	defer kv.Close()

	var policy core.SessionPolicy = core.SingleGuestPolicy{}
	if strings.ToLower(os.Getenv("SESSION_POLICY")) == "multi" {
		policy = core.MultiUserPolicy{}
		log.Println("[main] multi-user session policy enabled")
	}

	app := core.NewApp(core.AppConfig{
		KV:     kv,
		Policy: policy,
	})
	if err := app.Load(context.Background()); err != nil {
		log.Fatalf("failed to load store: %v", err)
	}

	// Approval sweeper: every pending record older than the review latency
	// gets approved on the next tick.
	interval := time.Second
	if s := os.Getenv("SWEEP_INTERVAL_MS"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			interval = time.Duration(v) * time.Millisecond
		}
	}
	sweeper := core.NewScheduler(app, interval)
	sweeper.Start()
	defer sweeper.Stop()

	router := routes.InitRouter(app)

	// Wrap router with global middleware: logging -> security headers ->
	// request id -> max body -> recovery.
	handler := middleware.RequestLogMiddleware(
		middleware.SecurityHeadersMiddleware(
			middleware.RequestIDMiddleware(
				middleware.MaxBodyMiddleware(
					middleware.RecoveryMiddleware(router),
				),
			),
		),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
