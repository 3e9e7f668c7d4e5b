package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"punch/config"
	"punch/game"
	"punch/logger"
	"punch/network"
	"punch/room"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "punch: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Development: !cfg.Production()})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	rules, err := game.LoadRules(cfg.RulesFile)
	if err != nil {
		return err
	}

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	rooms := room.NewManager(rules, cfg.Seed, log)
	rooms.IdleTimeout = cfg.RoomIdle
	defer rooms.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           network.NewServer(rooms, log, cfg.SendBuffer, !cfg.Production()).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening",
			zap.String("addr", cfg.Addr),
			zap.Int("max_life", rules.MaxLife),
			zap.Duration("tick", rules.TickInterval),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
