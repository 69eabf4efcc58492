package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gameguild/gg-client/internal/client/api"
	"github.com/gameguild/gg-client/internal/client/auth"
	"github.com/gameguild/gg-client/internal/client/cli"
	"github.com/gameguild/gg-client/internal/client/entries"
	"github.com/gameguild/gg-client/internal/client/friends"
	"github.com/gameguild/gg-client/internal/client/games"
	"github.com/gameguild/gg-client/internal/client/iocli"
	"github.com/gameguild/gg-client/internal/client/leaderboard"
	"github.com/gameguild/gg-client/internal/client/session"
	"github.com/gameguild/gg-client/internal/client/state"
	"github.com/gameguild/gg-client/internal/client/storage/boltdb"
	"github.com/gameguild/gg-client/internal/client/users"
	"github.com/gameguild/gg-client/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "Server URL (overrides config)")
	dbPath := flag.String("db", "", "Path to local database (overrides config)")
	configPath := flag.String("config", "", "Path to config file")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Флаги поверх файла и окружения
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	setupLogging(cfg.LogLevel)

	ctx := context.Background()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Собираем клиентский стек
	apiClient := api.NewClient(cfg.ServerURL)
	sessions := session.NewStore(boltStorage)
	authService := auth.NewService(apiClient, sessions)
	usersService := users.NewService(apiClient)
	manager := state.NewManager(authService, usersService, apiClient, sessions, cfg.DevAuthBypass)

	c := cli.New(
		manager,
		games.NewService(apiClient),
		entries.NewService(apiClient),
		friends.NewService(apiClient),
		leaderboard.NewService(apiClient),
		iocli.NewStdio(),
	)

	// Стартовая последовательность: проба сервера + восстановление сессии
	manager.Bootstrap(ctx)

	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("GameGuild Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
