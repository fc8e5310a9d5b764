package api

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rcrowley/go-metrics"
	"go.uber.org/zap"

	"sjf-scheduler/config"
	"sjf-scheduler/internal/cache"
	"sjf-scheduler/internal/render"
	"sjf-scheduler/internal/requests"
	"sjf-scheduler/internal/responses"
	"sjf-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestJobFirstForm(ctx *fiber.Ctx) error
	ShortestJobFirstReport(ctx *fiber.Ctx) error
	Metrics(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config   *config.SchedulerConfig
	logger   *zap.Logger
	cache    *cache.ResultCache
	registry metrics.Registry
}

// NewSchedulerHandlerImpl wires a handler; resultCache may be nil.
func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *zap.Logger, resultCache *cache.ResultCache, registry metrics.Registry) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:   config,
		logger:   logger,
		cache:    resultCache,
		registry: registry,
	}
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	response, err := s.schedule(ctx, request)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) ShortestJobFirstForm(ctx *fiber.Ctx) error {
	var form requests.FormRequest
	if err := ctx.BodyParser(&form); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	request, err := form.Parse(s.limits())
	if err != nil {
		return s.writeError(ctx, err)
	}
	response, err := s.schedule(ctx, request)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) ShortestJobFirstReport(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	response, err := s.schedule(ctx, request)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var buf bytes.Buffer
	render.Report(&buf, "Shortest-job-first", response)
	ctx.Type("txt")
	return ctx.Send(buf.Bytes())
}

func (s *SchedulerHandlerImpl) Metrics(ctx *fiber.Ctx) error {
	var buf bytes.Buffer
	metrics.WriteJSONOnce(s.registry, &buf)
	ctx.Type("json")
	return ctx.Send(buf.Bytes())
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	logger := s.logger.With(zap.String("request_id", requestID(ctx)))

	key := cache.Key(request, s.config.UnitIdleSteps)
	if response, ok := s.cache.Get(key); ok {
		metrics.GetOrRegisterCounter("sjf.cache.hits", s.registry).Inc(1)
		logger.Debug("sjf schedule served from cache", zap.Int("jobs", len(request.Jobs)))
		return response, nil
	}

	var opts []schedulers.Option
	if s.config.UnitIdleSteps {
		opts = append(opts, schedulers.WithUnitIdleSteps())
	}
	timer := metrics.GetOrRegisterTimer("sjf.simulations", s.registry)
	var (
		response responses.ScheduleResponse
		err      error
	)
	timer.Time(func() {
		response, err = schedulers.ScheduleShortestJobFirst(request, s.limits(), logger, opts...)
	})
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	s.cache.Set(key, response)
	return response, nil
}

func (s *SchedulerHandlerImpl) limits() requests.Limits {
	return requests.Limits{MaxProcesses: s.config.MaxProcesses, MaxTime: s.config.MaxTime}
}

func (s *SchedulerHandlerImpl) writeError(ctx *fiber.Ctx, err error) error {
	metrics.GetOrRegisterCounter("sjf.rejected", s.registry).Inc(1)
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, requests.ErrMissingInput),
		errors.Is(err, requests.ErrLengthMismatch),
		errors.Is(err, requests.ErrInvalidNumber),
		errors.Is(err, requests.ErrTooManyProcesses):
		status = fiber.StatusBadRequest
	case errors.Is(err, schedulers.ErrContractViolation):
		status = fiber.StatusUnprocessableEntity
	default:
		s.logger.Error("can not process request", zap.Error(err))
		return ctx.Status(status).JSON(fiber.Map{"error": "can not process request"})
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
