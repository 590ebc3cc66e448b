// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/carterperez-dev/templates/loyalty/internal/config"
	"github.com/carterperez-dev/templates/loyalty/internal/core"
	"github.com/carterperez-dev/templates/loyalty/internal/loyalty"
	"github.com/carterperez-dev/templates/loyalty/internal/seed"
	"github.com/carterperez-dev/templates/loyalty/internal/store"
	"github.com/carterperez-dev/templates/loyalty/internal/task"
)

const shutdownTimeout = 10 * time.Second

var errUsage = errors.New("usage")

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Usage = usage
	flag.Parse()

	if err := run(*configPath, flag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			usage()
			os.Exit(2)
		}
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `usage: loyalty [-config file] <command> [args]

commands:
  dashboard                 admin dashboard counters
  statistics                admin statistics
  users                     all users
  tasks [category]          tasks, optionally by category
  rewards                   reward catalog
  leaderboard [limit]       top users by earned rewards
  achievements <user-id>    achievement progress of a user
  notifications <user-id>   notifications of a user
  transactions [user-id]    ledger entries
  search <query>            search tasks and users
`)
}

func run(configPath string, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Debug("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Debug("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db := store.New()
	repos := loyalty.NewRepositories(db)

	if cfg.Seed.Enabled {
		if err := seed.Load(ctx, db, repos); err != nil {
			return err
		}
		logger.Debug("fixture data loaded")
	}

	svc := loyalty.New(db, repos, facadeOptions(cfg, telemetry, logger))

	cmdErr := dispatch(ctx, svc, args, os.Stdout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		logger.Error("telemetry shutdown error", "error", err)
	}

	return cmdErr
}

// facadeOptions traces through tel when telemetry came up and otherwise
// leaves the facade on the global tracer.
func facadeOptions(
	cfg *config.Config,
	tel *core.Telemetry,
	logger *slog.Logger,
) loyalty.Options {
	opts := loyalty.Options{
		Boundary: core.NewBoundary(cfg.Latency),
		Logger:   logger,
	}
	if tel != nil {
		opts.Tracer = tel.Tracer
	}
	return opts
}

func dispatch(ctx context.Context, svc *loyalty.Service, args []string, out io.Writer) error {
	var (
		result any
		err    error
	)

	switch args[0] {
	case "dashboard":
		result, err = svc.DashboardStats(ctx)
	case "statistics":
		result, err = svc.Statistics(ctx)
	case "users":
		result, err = svc.ListUsers(ctx)
	case "tasks":
		filter := task.Filter{}
		if len(args) > 1 {
			filter.Category = args[1]
		}
		result, err = svc.ListTasks(ctx, filter)
	case "rewards":
		result, err = svc.ListRewards(ctx)
	case "leaderboard":
		limit := 0
		if len(args) > 1 {
			if limit, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("parse limit: %w", err)
			}
		}
		result, err = svc.Leaderboard(ctx, limit)
	case "achievements":
		if len(args) < 2 {
			return errUsage
		}
		result, err = svc.UserAchievements(ctx, args[1])
	case "notifications":
		if len(args) < 2 {
			return errUsage
		}
		result, err = svc.ListNotifications(ctx, args[1])
	case "transactions":
		userID := ""
		if len(args) > 1 {
			userID = args[1]
		}
		result, err = svc.ListTransactions(ctx, userID)
	case "search":
		if len(args) < 2 {
			return errUsage
		}
		result, err = svc.SearchAll(ctx, args[1])
	default:
		return errUsage
	}

	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	// stdout carries command output
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
