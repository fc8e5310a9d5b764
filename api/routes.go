package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/rcrowley/go-metrics"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// RegisterRoutes mounts the scheduler endpoints under /api/v1.
func RegisterRoutes(app *fiber.App, handler SchedulerHandler, logger *zap.Logger, registry metrics.Registry) {
	app.Use(requestLogger(logger, registry))
	app.Use(recover.New())

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/sjf/form", handler.ShortestJobFirstForm)
		v1.Post("/sjf/report", handler.ShortestJobFirstReport)
		v1.Get("/metrics", handler.Metrics)
		v1.Get("/health", handler.Health)
	}
}

// requestLogger tags every request with an id and records its latency.
func requestLogger(logger *zap.Logger, registry metrics.Registry) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := ctx.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		ctx.Locals(requestIDHeader, id)
		ctx.Set(requestIDHeader, id)

		start := time.Now()
		err := ctx.Next()
		metrics.GetOrRegisterTimer("http.requests", registry).UpdateSince(start)

		logger.Info("request",
			zap.String("request_id", id),
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.Path()),
			zap.Int("status", ctx.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err))
		return err
	}
}

func requestID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(requestIDHeader).(string)
	return id
}
