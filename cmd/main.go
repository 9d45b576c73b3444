package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/St0pfen/Steam-Market-REST-API-server/internal/config"
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/ctrl"
	hdl "github.com/St0pfen/Steam-Market-REST-API-server/internal/hdl/http"
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/market"
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/observability/metrics/prometheus"
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/observability/tracing/jaeger"
	"github.com/St0pfen/Steam-Market-REST-API-server/internal/steam"
	"go.uber.org/zap"
)

const configPath = "configs/local.config.yaml"

func mustBuildLogger(mode string) *zap.Logger {
	switch mode {
	case "prod":
		return zap.Must(zap.NewProduction())
	default:
		return zap.Must(zap.NewDevelopment())
	}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.MustLoad(configPath)
	log := mustBuildLogger(conf.Server.Mode)
	defer func() {
		if err := recover(); err != nil {
			log.Panic("panic occurred", zap.Any("error", err))
		}
	}()

	go prometheus.New(conf.Server.Port+5, log).Start(ctx)
	go jaeger.Start(ctx, conf.ServiceName, conf.Jaeger, log)

	cli := steam.NewClient(log)
	svc := ctrl.New(
		steam.NewResolver(cli, conf.Steam.APIKey, log),
		steam.NewProfileSource(cli, conf.Steam.APIKey, log),
		steam.NewInventorySource(cli, log),
		market.New(cli, log),
		steam.NewAppSource(cli, log),
		log,
	)
	h := hdl.New(conf, svc, log)

	if conf.Steam.APIKey == "" {
		log.Warn("no steam api key configured, profile data will be limited")
	}

	log.Info(
		fmt.Sprintf(
			"Starting server on %v://%v:%v",
			conf.Server.Scheme,
			conf.Server.Domain,
			conf.Server.Port,
		),
	)
	go h.Start(conf.Server.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	log.Info("Shutting down gracefully...")
	if err := h.Close(ctx); err != nil {
		log.Warn("Error closing handler", zap.Error(err))
	}

	os.Exit(0)
}
