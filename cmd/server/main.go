package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/hazyhaar/normy/pkg/api"
	"github.com/hazyhaar/normy/pkg/profile"
)

type config struct {
	Addr         string `yaml:"addr"`
	ProfilesFile string `yaml:"profiles_file"`
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: normy <command>\n\nCommands:\n  serve   Start the HTTP normalization server\n")
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := loadConfig(*cfgPath, logger)

	reg := profile.NewRegistry(logger)
	if err := loadProfiles(reg, cfg.ProfilesFile); err != nil {
		logger.Error("failed to load profiles", "error", err)
		os.Exit(1)
	}
	logger.Info("profiles loaded", "count", len(reg.Names()))

	router := api.NewRouter(reg, logger)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	// SIGHUP: hot reload profiles. SIGINT/SIGTERM: graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sighup := make(chan os.Signal, 1)
	signal.Notify(sighup, syscall.SIGHUP)
	go func() {
		for range sighup {
			logger.Info("SIGHUP received, reloading profiles")
			if err := loadProfiles(reg, cfg.ProfilesFile); err != nil {
				logger.Error("reload failed", "error", err)
			} else {
				logger.Info("profiles reloaded", "count", len(reg.Names()))
			}
		}
	}()

	go func() {
		logger.Info("normy listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	srv.Shutdown(context.Background())
}

func loadProfiles(reg *profile.Registry, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read profiles file: %w", err)
	}
	return reg.Load(data)
}

func loadConfig(path string, logger *slog.Logger) config {
	cfg := config{
		Addr:         ":8420",
		ProfilesFile: "profiles.yaml",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no config file, using defaults", "path", path)
			return cfg
		}
		logger.Error("read config", "error", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}
	return cfg
}
