package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	trackerpb "github.com/manasvohal/aiInternshipTracker/gen/proto/tracker/v1"
	"github.com/manasvohal/aiInternshipTracker/internal/async"
	"github.com/manasvohal/aiInternshipTracker/internal/common"
	"github.com/manasvohal/aiInternshipTracker/internal/core"
	"github.com/manasvohal/aiInternshipTracker/internal/export"
	"github.com/manasvohal/aiInternshipTracker/internal/ingest"
	"github.com/manasvohal/aiInternshipTracker/internal/llm"
	"github.com/manasvohal/aiInternshipTracker/internal/mail"
	"github.com/manasvohal/aiInternshipTracker/internal/ocr"
	"github.com/manasvohal/aiInternshipTracker/internal/pipeline"
	repo "github.com/manasvohal/aiInternshipTracker/internal/repository"
	"github.com/manasvohal/aiInternshipTracker/internal/scan"
	svc "github.com/manasvohal/aiInternshipTracker/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	appsRepo := repo.NewApplicationRepository(entc, logger)
	jobsRepo := repo.NewScanJobRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.TesseractBin,
		TesseractLang: cfg.OCR.Languages,
		TessdataDir:   cfg.OCR.TessdataDir,
	}, logger)

	var parser pipeline.PostingParser
	if cfg.LLM.Enabled {
		parser = llm.NewParser(cfg.LLM, logger)
	}
	pipe := pipeline.NewScreenshotPipeline(logger, extractor, parser)
	processor := core.NewProcessor(logger, pipe, appsRepo)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(4),
		async.WithQueueSize(256),
		async.WithProcessTimeout(2*time.Minute),
	)

	if len(cfg.Ingest.WatchDirs) > 0 {
		ingestor := ingest.NewService(logger, queue)
		go func() {
			if err := ingestor.Run(ctx, ingest.WatchConfig{
				Roots:       cfg.Ingest.WatchDirs,
				InitialScan: cfg.Ingest.InitialScan,
				Debounce:    cfg.Ingest.Debounce,
			}); err != nil && ctx.Err() == nil {
				logger.Error("ingest watcher stopped", "error", err)
			}
		}()
	}

	var scanner *mail.Scanner
	if cfg.Mail.SourceFile != "" {
		var seen *mail.SeenCache
		if cfg.Redis.Addr != "" {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			seen = mail.NewSeenCache(rdb, cfg.Redis.SeenTTL, logger)
		}
		provider := mail.NewFileProvider(cfg.Mail.SourceFile)
		scanner = mail.NewScanner(logger, cfg.Mail, provider, appsRepo, jobsRepo, seen)

		scheduler := scan.NewScheduler(logger, cfg.Scan, scanner)
		if err := scheduler.Start(); err != nil {
			logger.Error("failed to start scan scheduler", "error", err)
			os.Exit(1)
		}
		defer scheduler.Stop()
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	trackerpb.RegisterTrackerServiceServer(grpcServer, svc.NewTrackerServer(appsRepo, processor, logger))
	trackerpb.RegisterScanServiceServer(grpcServer, svc.NewScanServer(scanner, jobsRepo, logger))
	trackerpb.RegisterExportServiceServer(grpcServer, svc.NewExportServer(export.NewService(appsRepo, logger), logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("internship-tracker listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
