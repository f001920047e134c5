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

	"adipo-server/internal/config"
	"adipo-server/internal/jobs"
	"adipo-server/internal/migrate"
	"adipo-server/internal/repos"
	"adipo-server/internal/routes"
	"adipo-server/internal/server"
	pkgauth "adipo-server/pkg/auth"
	"adipo-server/pkg/cache"
	pkgdb "adipo-server/pkg/db"
	pkghttpx "adipo-server/pkg/httpx"
	"adipo-server/pkg/signer"
	"adipo-server/pkg/uploads"
)

func main() {
	_ = godotenv.Load() // best-effort
	cfg := config.FromEnv()
	pkghttpx.SetVerboseErrors(!config.IsProduction(cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pkgdb.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer pool.Close()

	if err := migrate.Up(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	var c cache.Cache
	if addr := cfg.ValkeyAddr; addr != "" {
		vc, err := cache.NewValkey(addr, cfg.ValkeyPassword)
		if err != nil {
			log.Error().Err(err).Msg("valkey connect failed, using in-memory cache")
			c = cache.NewInMemory()
		} else {
			c = vc
		}
	} else {
		c = cache.NewInMemory()
	}

	repository := repos.New(pool)

	if err := jobs.EnsureAdmin(ctx, repository, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}
	if err := jobs.SeedCatalogIfEmpty(ctx, repository); err != nil {
		log.Error().Err(err).Msg("sample catalog seed failed")
	}

	uploadStore, err := uploads.New(cfg.UploadDir, cfg.UploadMaxBytes)
	if err != nil {
		log.Fatal().Err(err).Msg("upload store init failed")
	}

	deps := routes.Deps{
		Documentaries: repository.Documentaries,
		Comments:      repository.Comments,
		Users:         repository.Users,
		Cache:         c,
		Cursors:       signer.NewHMAC(cfg.TokenSecret),
		Tokens:        pkgauth.NewTokens(cfg.TokenSecret, cfg.TokenTTL),
		Uploads:       uploadStore,
		MaxUploadSize: cfg.UploadMaxBytes,
		Env:           cfg.Env,
		StartedAt:     time.Now().UTC(),
	}
	api := server.New(deps, cfg.UploadDir, cfg.CORSAllowedOrigins)

	addr := ":" + cfg.Port
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
		if err := server.StartHTTP(ctx, addr, api.Router()); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	_, _ = fmt.Fprintln(os.Stderr, "shutting down...")
	time.Sleep(200 * time.Millisecond)
}
