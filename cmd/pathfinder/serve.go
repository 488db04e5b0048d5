package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/career-pathfinder/internal/config"
	"github.com/jonathan/career-pathfinder/internal/db"
	"github.com/jonathan/career-pathfinder/internal/gamification"
	"github.com/jonathan/career-pathfinder/internal/logging"
	"github.com/jonathan/career-pathfinder/internal/server"
	"github.com/jonathan/career-pathfinder/internal/server/ratelimit"
)

func newServeCmd(configPath *string) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  `Start an HTTP server that exposes the catalog, recommendations, roadmaps and progress tracking.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on (overrides PORT)")
	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	jwtConfig, err := cfg.JWT()
	if err != nil {
		return fmt.Errorf("invalid auth configuration: %w", err)
	}
	passwordConfig, err := cfg.Password()
	if err != nil {
		return fmt.Errorf("invalid auth configuration: %w", err)
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cat, err := loadCatalog(ctx, cfg.Catalog.Dir)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info("catalog loaded",
		zap.Int("careers", len(cat.Careers())),
		zap.Int("skills", len(cat.Skills())),
		zap.String("dir", cfg.Catalog.Dir),
	)

	database, err := db.Open(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()
	if err := database.Migrate(ctx); err != nil {
		return err
	}

	deps := server.Deps{Store: database, Catalog: cat, Logger: logger}
	if cfg.Redis.Address != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = client.Close() }()
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Address, err)
		}
		deps.Leaderboard = gamification.NewLeaderboard(client)
		logger.Info("leaderboard enabled", zap.String("redis", cfg.Redis.Address))
	} else {
		logger.Info("leaderboard disabled, no redis address configured")
	}

	srv, err := server.New(server.Config{
		Addr:            cfg.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		RateLimit: ratelimit.NewConfig(
			cfg.RateLimit.Enabled,
			cfg.RateLimit.DefaultLimit,
			cfg.RateLimit.DefaultWindow,
			cfg.RateLimit.Whitelist,
			cfg.RateLimit.Blacklist,
		),
		JWT:      jwtConfig,
		Password: passwordConfig,
	}, deps)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start(ctx)
}
