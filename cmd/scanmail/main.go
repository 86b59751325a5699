// Command scanmail runs one mailbox scan against the configured database and
// prints the resulting scan job stats.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/manasvohal/aiInternshipTracker/internal/common"
	"github.com/manasvohal/aiInternshipTracker/internal/mail"
	repo "github.com/manasvohal/aiInternshipTracker/internal/repository"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL env var is required")
		os.Exit(2)
	}

	source := cfg.Mail.SourceFile
	if len(os.Args) == 2 {
		source = os.Args[1]
	}
	if source == "" {
		logger.Error("usage", "cmd", "scanmail <mailbox.json> (or set MAILBOX_FILE)")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	var seen *mail.SeenCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		seen = mail.NewSeenCache(rdb, cfg.Redis.SeenTTL, logger)
	}

	scanner := mail.NewScanner(
		logger,
		cfg.Mail,
		mail.NewFileProvider(source),
		repo.NewApplicationRepository(entc, logger),
		repo.NewScanJobRepository(entc, logger),
		seen,
	)

	job, err := scanner.Scan(ctx)
	if err != nil {
		logger.Error("scan failed", "error", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		logger.Error("encode scan job", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
