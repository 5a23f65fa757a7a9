package main

import (
	"context"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/glowkv/glowkv/internal/config"
	"github.com/glowkv/glowkv/internal/keyspace"
	"github.com/glowkv/glowkv/internal/logger"
	"github.com/glowkv/glowkv/internal/server"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync() //nolint:errcheck

	log.Info("glowkv starting", zap.String("host", cfg.Server.Host), zap.String("port", cfg.Server.Port))

	ks := keyspace.New()

	var sweeper *keyspace.Sweeper
	if cfg.GC.Enabled {
		sweeper = keyspace.NewSweeper(ks, cfg.GC.Interval, log)
		go sweeper.Run()
	}

	engine := server.NewEngine(ks, log)
	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	srv := server.New(addr, engine, log)

	if err := srv.Listen(); err != nil {
		log.Error("listen failed", zap.Error(err))
		return
	}
	log.Info("listening", zap.String("address", srv.Addr().String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go srv.Serve()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown did not complete cleanly", zap.Error(err))
	} else {
		log.Info("all connections closed gracefully")
	}

	if sweeper != nil {
		sweeper.Stop()
	}

	log.Info("glowkv stopped")
}
