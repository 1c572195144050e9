// Command seed creates the first superadmin from SEED_ADMIN_* when the
// admins table is empty. Running it again is a no-op.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/vnkhanh/pg-server/config"
	"github.com/vnkhanh/pg-server/logger"
	"github.com/vnkhanh/pg-server/services"
	"github.com/vnkhanh/pg-server/store"
)

func main() {
	cfgPath := flag.String("config", config.DefaultConfigPath, "path to optional YAML config")
	flag.Parse()

	if err := run(*cfgPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfgPath string) error {
	cfg, err := config.Load(cfgPath, config.ModeAPI)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return errors.New("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required")
	}

	db, err := config.ConnectDB(cfg, log)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st := store.NewGormStore(db)
	n, err := st.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if n > 0 {
		log.Info("admins already exist, nothing to seed", zap.Int64("count", n))
		return nil
	}

	auth := services.NewAuthService(st, nil, cfg.SessionSecret, cfg.SessionTTL, log)
	admin, err := auth.CreateAdmin(ctx, nil, services.CreateAdminInput{
		Name:     cfg.SeedAdminName,
		Email:    cfg.SeedAdminEmail,
		Password: cfg.SeedAdminPassword,
	})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	log.Info("superadmin created", zap.String("id", admin.ID), zap.String("email", admin.Email))
	return nil
}
