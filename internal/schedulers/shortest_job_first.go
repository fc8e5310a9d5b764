package schedulers

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"sjf-scheduler/internal/core"
	"sjf-scheduler/internal/requests"
	"sjf-scheduler/internal/responses"
	"sjf-scheduler/internal/util"
)

// ErrContractViolation is returned when Simulate is handed input that the
// caller should have rejected.
var ErrContractViolation = errors.New("contract violation")

type options struct {
	unitIdleSteps bool
}

// Option tweaks how Simulate records the timeline.
type Option func(*options)

// WithUnitIdleSteps advances an idle cpu one time unit at a time, emitting
// one idle segment per unit instead of jumping to the next arrival.
func WithUnitIdleSteps() Option {
	return func(o *options) { o.unitIdleSteps = true }
}

// Totals are the exact per-process sums behind the averages.
type Totals struct {
	Waiting    int
	Turnaround int
	Completion int
	Response   int
}

// Result is the final state of one simulation run.
type Result struct {
	Processes  []core.Process
	Timeline   []core.Segment
	Order      []int
	FinalClock int
	Cpu        core.CpuMetric
	Totals     Totals

	AvgWaiting    float64
	AvgTurnaround float64
	AvgCompletion float64
	AvgResponse   float64
}

// Simulate runs non-preemptive shortest-job-first over the given processes.
// Among the arrived, unvisited processes the smallest burst wins and ties go
// to the earliest input position.
func Simulate(ids, arrivals, bursts []int, opts ...Option) (Result, error) {
	if err := checkContract(ids, arrivals, bursts); err != nil {
		return Result{}, err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	table := core.NewProcessTable(ids, arrivals, bursts)
	timeline := &core.Timeline{}
	order := make([]int, 0, table.Len())

	var clock int
	var totals Totals
	for !table.Done() {
		selected := selectShortest(table, clock)
		if selected < 0 {
			next := clock + 1
			if !o.unitIdleSteps {
				next, _ = table.NextArrival(clock)
			}
			timeline.Idle(clock, next)
			clock = next
			continue
		}

		p := table.At(selected)
		c := table.Dispatch(selected, clock)
		timeline.Dispatch(p.ID, c.Start, c.Completion)
		order = append(order, p.ID)
		clock = c.Completion

		totals.Waiting += c.Waiting
		totals.Turnaround += c.Turnaround
		totals.Completion += c.Completion
		totals.Response += c.Start - p.Arrival
	}

	n := table.Len()
	return Result{
		Processes:     table.Processes(),
		Timeline:      timeline.Segments(),
		Order:         order,
		FinalClock:    clock,
		Cpu:           core.MeasureCpu(timeline),
		Totals:        totals,
		AvgWaiting:    util.Mean(totals.Waiting, n),
		AvgTurnaround: util.Mean(totals.Turnaround, n),
		AvgCompletion: util.Mean(totals.Completion, n),
		AvgResponse:   util.Mean(totals.Response, n),
	}, nil
}

// selectShortest returns the input position of the next process to run, or -1.
func selectShortest(table *core.ProcessTable, clock int) int {
	selected := -1
	for i := 0; i < table.Len(); i++ {
		p := table.At(i)
		if p.Visited() || p.Arrival > clock {
			continue
		}
		if selected < 0 || p.Burst < table.At(selected).Burst {
			selected = i
		}
	}
	return selected
}

func checkContract(ids, arrivals, bursts []int) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: no processes", ErrContractViolation)
	}
	if len(arrivals) != len(ids) || len(bursts) != len(ids) {
		return fmt.Errorf("%w: %d ids, %d arrivals, %d bursts", ErrContractViolation, len(ids), len(arrivals), len(bursts))
	}
	seen := make(map[int]struct{}, len(ids))
	for i, id := range ids {
		if id <= 0 {
			return fmt.Errorf("%w: process id %d is not positive", ErrContractViolation, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate process id %d", ErrContractViolation, id)
		}
		seen[id] = struct{}{}
		if arrivals[i] < 0 {
			return fmt.Errorf("%w: process %d arrives at %d", ErrContractViolation, id, arrivals[i])
		}
		if bursts[i] <= 0 {
			return fmt.Errorf("%w: process %d has burst %d", ErrContractViolation, id, bursts[i])
		}
	}
	if _, ok := core.Horizon(arrivals, bursts, core.MaxClock); !ok {
		return fmt.Errorf("%w: latest arrival plus total burst time exceeds %d", ErrContractViolation, core.MaxClock)
	}
	return nil
}

// ScheduleShortestJobFirst validates a request, simulates it and builds the response.
func ScheduleShortestJobFirst(request requests.ScheduleRequests, limits requests.Limits, logger *zap.Logger, opts ...Option) (responses.ScheduleResponse, error) {
	logger.Debug("running sjf algorithm", zap.Int("jobs", len(request.Jobs)))
	if err := request.Validate(limits); err != nil {
		logger.Debug("rejected sjf request", zap.Error(err))
		return responses.ScheduleResponse{}, err
	}

	ids, arrivals, bursts := request.Columns()
	result, err := Simulate(ids, arrivals, bursts, opts...)
	if err != nil {
		logger.Error("sjf simulation failed", zap.Error(err))
		return responses.ScheduleResponse{}, err
	}

	for _, s := range result.Timeline {
		if s.Idle() {
			logger.Debug("cpu idle", zap.Int("start", s.Start), zap.Int("end", s.End))
			continue
		}
		logger.Debug("dispatch", zap.Int("pid", s.ProcessID), zap.Int("start", s.Start), zap.Int("end", s.End))
	}

	response := generateResponse(result)
	logger.Info("sjf schedule computed",
		zap.Int("jobs", len(request.Jobs)),
		zap.Int("total_time", response.TotalTime),
		zap.Float64("average_waiting_time", response.AverageWaitingTime))
	return response, nil
}
