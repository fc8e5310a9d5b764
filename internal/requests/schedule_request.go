package requests

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"sjf-scheduler/internal/core"
)

var (
	ErrMissingInput     = errors.New("missing input")
	ErrLengthMismatch   = errors.New("length mismatch")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrTooManyProcesses = errors.New("too many processes")
)

// Limits caps the size of a request. Zero or negative fields disable a cap.
type Limits struct {
	MaxProcesses int
	// MaxTime bounds the latest arrival plus the sum of all bursts.
	MaxTime int
}

func (l Limits) timeLimit() int {
	if l.MaxTime <= 0 {
		return math.MaxInt
	}
	return l.MaxTime
}

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
}
type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
}

// FormRequest carries the three free-text fields of the calculator form.
// Process ids are assigned 1..N in input order.
type FormRequest struct {
	ProcessCount string `json:"process_count"`
	ArrivalTimes string `json:"arrival_times"`
	BurstTimes   string `json:"burst_times"`
}

// Columns splits the jobs into the parallel sequences the simulator takes.
func (r ScheduleRequests) Columns() (ids, arrivals, bursts []int) {
	ids = make([]int, len(r.Jobs))
	arrivals = make([]int, len(r.Jobs))
	bursts = make([]int, len(r.Jobs))
	for i, job := range r.Jobs {
		ids[i] = job.ProcessId
		arrivals[i] = job.ArrivalTime
		bursts[i] = job.BurstTime
	}
	return
}

// Validate rejects requests the simulator must never see.
func (r ScheduleRequests) Validate(limits Limits) error {
	if len(r.Jobs) == 0 {
		return fmt.Errorf("%w: at least one job is required", ErrMissingInput)
	}
	if limits.MaxProcesses > 0 && len(r.Jobs) > limits.MaxProcesses {
		return fmt.Errorf("%w: %d jobs given, at most %d allowed", ErrTooManyProcesses, len(r.Jobs), limits.MaxProcesses)
	}
	seen := make(map[int]struct{}, len(r.Jobs))
	for i, job := range r.Jobs {
		if job.ProcessId <= 0 {
			return fmt.Errorf("%w: job %d has process id %d, must be positive", ErrInvalidNumber, i+1, job.ProcessId)
		}
		if _, dup := seen[job.ProcessId]; dup {
			return fmt.Errorf("%w: process id %d is used more than once", ErrInvalidNumber, job.ProcessId)
		}
		seen[job.ProcessId] = struct{}{}
		if job.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d has arrival time %d, must not be negative", ErrInvalidNumber, job.ProcessId, job.ArrivalTime)
		}
		if job.BurstTime <= 0 {
			return fmt.Errorf("%w: process %d has burst time %d, must be positive", ErrInvalidNumber, job.ProcessId, job.BurstTime)
		}
	}
	return checkHorizon(r, limits)
}

func checkHorizon(r ScheduleRequests, limits Limits) error {
	_, arrivals, bursts := r.Columns()
	if _, ok := core.Horizon(arrivals, bursts, limits.timeLimit()); !ok {
		return fmt.Errorf("%w: latest arrival plus total burst time exceeds %d", ErrInvalidNumber, limits.timeLimit())
	}
	return nil
}

// Parse turns the form fields into a validated request.
func (f FormRequest) Parse(limits Limits) (ScheduleRequests, error) {
	countText := strings.TrimSpace(f.ProcessCount)
	if countText == "" || strings.TrimSpace(f.ArrivalTimes) == "" || strings.TrimSpace(f.BurstTimes) == "" {
		return ScheduleRequests{}, fmt.Errorf("%w: please fill in all fields", ErrMissingInput)
	}
	count, err := strconv.Atoi(countText)
	if err != nil || count <= 0 {
		return ScheduleRequests{}, fmt.Errorf("%w: number of processes must be a positive integer, got %q", ErrInvalidNumber, countText)
	}
	if limits.MaxProcesses > 0 && count > limits.MaxProcesses {
		return ScheduleRequests{}, fmt.Errorf("%w: %d processes given, at most %d allowed", ErrTooManyProcesses, count, limits.MaxProcesses)
	}

	arrivalFields := strings.Fields(f.ArrivalTimes)
	burstFields := strings.Fields(f.BurstTimes)
	if len(arrivalFields) != count || len(burstFields) != count {
		return ScheduleRequests{}, fmt.Errorf("%w: arrival times must have exactly %d values and burst times must have exactly %d values",
			ErrLengthMismatch, count, count)
	}

	request := ScheduleRequests{Jobs: make([]Job, count)}
	for i := 0; i < count; i++ {
		arrival, err := strconv.Atoi(arrivalFields[i])
		if err != nil || arrival < 0 {
			return ScheduleRequests{}, fmt.Errorf("%w: arrival time %q is not a non-negative integer", ErrInvalidNumber, arrivalFields[i])
		}
		burst, err := strconv.Atoi(burstFields[i])
		if err != nil || burst <= 0 {
			return ScheduleRequests{}, fmt.Errorf("%w: burst time %q is not a positive integer", ErrInvalidNumber, burstFields[i])
		}
		request.Jobs[i] = Job{ProcessId: i + 1, ArrivalTime: arrival, BurstTime: burst}
	}
	if err := checkHorizon(request, limits); err != nil {
		return ScheduleRequests{}, err
	}
	return request, nil
}
