package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vnkhanh/pg-server/backendclient"
	"github.com/vnkhanh/pg-server/config"
	"github.com/vnkhanh/pg-server/controllers"
	"github.com/vnkhanh/pg-server/logger"
	"github.com/vnkhanh/pg-server/middleware"
	"github.com/vnkhanh/pg-server/routes"
	"github.com/vnkhanh/pg-server/services"
	"github.com/vnkhanh/pg-server/storage"
	"github.com/vnkhanh/pg-server/store"
)

func main() {
	mode := flag.String("m", config.ModeAPI, "run mode: api (database-backed) or web (forwards to API_BASE_URL)")
	cfgPath := flag.String("config", config.DefaultConfigPath, "path to optional YAML config")
	flag.Parse()

	if err := run(*mode, *cfgPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(mode, cfgPath string) error {
	cfg, err := config.Load(cfgPath, mode)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer log.Sync()

	intakeLimiter := middleware.NewIPRateLimiter(cfg.IntakeRatePerMin, cfg.IntakeRatePerMin, 10*time.Minute)
	defer intakeLimiter.Close()
	loginLimiter := middleware.NewIPRateLimiter(cfg.LoginRatePerMin, cfg.LoginRatePerMin, 15*time.Minute)
	defer loginLimiter.Close()

	h := routes.Handlers{
		IntakeLimiter: intakeLimiter,
		LoginLimiter:  loginLimiter,
		CookieName:    cfg.SessionCookieName,
	}

	var cleanup func()
	switch cfg.RunMode {
	case config.ModeAPI:
		cleanup, err = wireAPI(cfg, log, &h)
	case config.ModeWeb:
		cleanup, err = wireWeb(cfg, log, &h)
	}
	if err != nil {
		return err
	}
	defer cleanup()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	routes.SetupRoutes(r, h)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("port", cfg.Port), zap.String("mode", cfg.RunMode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// wireAPI connects PostgreSQL (and Redis when configured) and mounts the full surface.
func wireAPI(cfg *config.Config, log *zap.Logger, h *routes.Handlers) (func(), error) {
	db, err := config.ConnectDB(cfg, log)
	if err != nil {
		return nil, err
	}
	rdb, err := config.ConnectRedis(cfg)
	if err != nil {
		return nil, err
	}

	var revoker services.SessionRevoker = store.NoopSessionRevoker{}
	if rdb != nil {
		revoker = store.NewRedisSessionRevoker(rdb)
		log.Info("session revocation backed by Redis")
	} else {
		log.Warn("REDIS_ADDR not set; logout will not revoke issued sessions")
	}

	// Left as a nil interface when storage is off so uploads report it.
	var uploader services.MediaUploader
	if cfg.StorageEnabled() {
		sb, err := storage.NewSupabase(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseBucket)
		if err != nil {
			return nil, err
		}
		uploader = sb
	} else {
		log.Warn("Supabase storage not configured; file uploads are disabled")
	}

	st := store.NewGormStore(db)
	auth := services.NewAuthService(st, revoker, cfg.SessionSecret, cfg.SessionTTL, log)

	h.Health = controllers.NewHealthController(db, rdb)
	h.PG = controllers.NewPGController(services.NewListingService(st, log))
	h.Intake = controllers.NewIntakeController(
		services.NewInquiryService(st, log),
		services.NewOnboardingService(st, log),
	)
	h.Auth = controllers.NewAuthController(auth, controllers.CookieConfig{
		Name:   cfg.SessionCookieName,
		Domain: cfg.SessionCookieDomain,
		Secure: cfg.SessionCookieSecure,
	})
	h.Admin = controllers.NewAdminController(services.NewAdminService(st, log))
	h.Content = controllers.NewContentController(services.NewContentService(st, uploader, log))
	h.Export = controllers.NewExportController(services.NewExportService(st, log))
	h.Sessions = auth

	return func() {
		if rdb != nil {
			rdb.Close()
		}
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}, nil
}

// wireWeb serves the public pages and forms by forwarding to the API.
func wireWeb(cfg *config.Config, log *zap.Logger, h *routes.Handlers) (func(), error) {
	client := backendclient.New(cfg.APIBaseURL, cfg.APITimeout, log)
	log.Info("forwarding public requests", zap.String("api_base_url", cfg.APIBaseURL))

	h.Health = controllers.NewHealthController(nil, nil)
	h.PG = controllers.NewPGController(client)
	h.Intake = controllers.NewIntakeController(client, client)
	return func() {}, nil
}
