package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"adipo-server/internal/server"
	"adipo-server/internal/webclient"
)

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	_ = godotenv.Load() // best-effort

	apiBase := getEnv("API_BASE_URL", "http://localhost:8080")
	port := getEnv("WEB_PORT", "3000")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := webclient.New(apiBase)
	if err != nil {
		log.Fatal().Err(err).Msg("webclient init failed")
	}

	addr := ":" + port
	go func() {
		log.Info().Str("addr", addr).Str("api", apiBase).Msg("webclient listening")
		if err := server.StartHTTP(ctx, addr, app.Router()); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	_, _ = fmt.Fprintln(os.Stderr, "shutting down...")
	time.Sleep(200 * time.Millisecond)
}
