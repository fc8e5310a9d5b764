package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/rcrowley/go-metrics"
	"go.uber.org/zap"

	"sjf-scheduler/api"
	"sjf-scheduler/config"
	"sjf-scheduler/internal/cache"
)

func main() {
	cfg := config.GetSchedulerConfig()

	logger, err := newLogger(cfg.LogDevelopment)
	if err != nil {
		log.Fatalln(err)
	}
	defer logger.Sync()

	var resultCache *cache.ResultCache
	if cfg.CacheEnabled {
		resultCache, err = cache.NewResultCache(cfg.CacheMaxCost)
		if err != nil {
			logger.Fatal("error initializing result cache", zap.Error(err))
		}
		defer resultCache.Close()
		logger.Debug("result cache initialized", zap.Int64("max_cost", cfg.CacheMaxCost))
	}

	registry := metrics.NewRegistry()
	handler := api.NewSchedulerHandlerImpl(cfg, logger, resultCache, registry)

	app := fiber.New()
	api.RegisterRoutes(app, handler, logger, registry)

	logger.Info("starting sjf scheduler", zap.Int("port", cfg.Port))
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
