package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/scorestack/rankboard-server/internal/env"
	"github.com/scorestack/rankboard-server/internal/httpapi"
	"github.com/scorestack/rankboard-server/internal/rankcell"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(cfg env.Config) (*zap.Logger, error) {
	if cfg.IsDev() {
		logConfig := zap.NewDevelopmentConfig()
		logConfig.EncoderConfig.TimeKey = ""
		logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logConfig.DisableStacktrace = true
		logConfig.DisableCaller = true
		return logConfig.Build()
	}
	logConfig := zap.NewProductionConfig()
	logConfig.DisableStacktrace = true
	return logConfig.Build()
}

func main() {
	cfg := env.Load()

	log, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log = log.Named("main")

	cell := rankcell.New()
	router := httpapi.NewRouter(cfg, cell, log)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,

		MaxHeaderBytes: 1 << 15,

		ErrorLog: zap.NewStdLog(log.Named("http").WithOptions(zap.AddCallerSkip(1))),
	}

	go func() {
		log.Info("listening", zap.String("addr", cfg.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
