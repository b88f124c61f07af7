package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"busbot/config"
	"busbot/gateway"
	"busbot/gateway/mock"
	"busbot/gateway/remote"
	"busbot/pkg/bot"
	"busbot/pkg/logger"
	"busbot/service"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Initialize Logger
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	// 3. Pick the gateway at composition time; nothing downstream knows
	// which one it talks to.
	var gw gateway.IGateway
	if cfg.UseMockAPI {
		log.Info("using mock gateway", logger.Int64("seed", cfg.MockSeed))
		gw = mock.New(cfg.MockSeed)
	} else {
		rg := remote.New(cfg, log)
		if err := rg.Ping(context.Background()); err != nil {
			log.Warning("booking backend unreachable at startup", logger.Error(err))
		} else {
			log.Info("booking backend reachable", logger.String("base_url", cfg.APIBaseURL))
		}
		gw = rg
	}

	// 4. Service layer
	svc := service.New(gw, log)

	// 5. Initialize the booking bot
	b, err := bot.New(&cfg, svc, log)
	if err != nil {
		log.Error("Failed to initialize bot", logger.Error(err))
		os.Exit(1)
	}

	go func() {
		b.Start()
	}()

	log.Info("🚀 Bus booking client is now running.")

	// 6. Graceful shutdown listener
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Info("Stopping bot and shutting down...")
}
