// Copyright © 2026 Omi Shrestha
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/OmiShrestha/rpi5-system-info/internal/collector"
	"github.com/OmiShrestha/rpi5-system-info/internal/config"
	"github.com/OmiShrestha/rpi5-system-info/internal/errors"
	"github.com/OmiShrestha/rpi5-system-info/internal/history"
	"github.com/OmiShrestha/rpi5-system-info/internal/hostinfo"
	"github.com/OmiShrestha/rpi5-system-info/internal/logger"
	"github.com/OmiShrestha/rpi5-system-info/internal/pid"
	"github.com/OmiShrestha/rpi5-system-info/internal/server"
	"github.com/OmiShrestha/rpi5-system-info/internal/sysinfo"
)

var version = "dev"

func main() {
	for _, arg := range os.Args[1:] {
		if arg == "--version" {
			fmt.Printf("sysinfod %s\n", version)
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())
	if !cfg.Debug && !cfg.Verbose {
		applyLogLevel(cfg.LogLevel)
	}
	logger.Debug().Msg("Config loaded")

	if err := run(cfg); err != nil {
		var domainErr errors.Error
		if errors.As(err, &domainErr) {
			logger.FatalWithCode(domainErr).Msg("sysinfod failed")
		}
		logger.Fatal().Err(err).Msg("sysinfod failed")
	}
}

func run(cfg *config.Config) error {
	if err := pid.Write(); err != nil {
		return err
	}
	defer func() {
		if err := pid.Remove(); err != nil {
			logger.Error().Err(err).Msg("Failed to remove PID file")
		}
	}()

	log := logger.New()

	store, err := history.NewStore(history.Config{
		LogDir:     cfg.LogDir,
		MaxEntries: cfg.MaxEntries,
	}, log)
	if err != nil {
		return err
	}

	sampler := sysinfo.New(sysinfo.WithLogger(log))

	svc, err := collector.NewService(sampler, store, log)
	if err != nil {
		return err
	}

	srv := server.New(cfg, svc, hostinfo.New(log), version, log)
	srv.Routes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	logger.Info().Str("version", version).Str("addr", cfg.Addr()).Msg("sysinfod starting")

	return srv.ListenAndServe(ctx)
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

func applyLogLevel(level string) {
	switch config.LogLevel(level) {
	case config.LogLevelDebug:
		logger.SetLogLevel(logger.DebugLevel)
	case config.LogLevelInfo:
		logger.SetLogLevel(logger.InfoLevel)
	case config.LogLevelWarning:
		logger.SetLogLevel(logger.WarnLevel)
	case config.LogLevelError:
		logger.SetLogLevel(logger.ErrorLevel)
	}
}
