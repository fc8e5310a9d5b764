package cache

import (
	"strconv"
	"strings"

	"github.com/dgraph-io/ristretto"

	"sjf-scheduler/internal/requests"
	"sjf-scheduler/internal/responses"
)

// ResultCache remembers computed schedules keyed by their input. A nil
// *ResultCache is valid and never hits.
type ResultCache struct {
	cache *ristretto.Cache
}

func NewResultCache(maxCost int64) (*ResultCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxCost * 10,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &ResultCache{cache: c}, nil
}

// Key fingerprints a request together with the idle stepping mode.
func Key(request requests.ScheduleRequests, unitIdleSteps bool) string {
	var b strings.Builder
	if unitIdleSteps {
		b.WriteString("unit|")
	} else {
		b.WriteString("jump|")
	}
	for i, job := range request.Jobs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(job.ProcessId))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(job.ArrivalTime))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(job.BurstTime))
	}
	return b.String()
}

func (c *ResultCache) Get(key string) (responses.ScheduleResponse, bool) {
	if c == nil {
		return responses.ScheduleResponse{}, false
	}
	value, found := c.cache.Get(key)
	if !found {
		return responses.ScheduleResponse{}, false
	}
	response, ok := value.(responses.ScheduleResponse)
	if !ok {
		return responses.ScheduleResponse{}, false
	}
	return clone(response), true
}

// clone copies the slices so callers can not reach the cached value.
func clone(response responses.ScheduleResponse) responses.ScheduleResponse {
	order := make([]int, len(response.Order))
	copy(order, response.Order)
	timeline := make([]responses.SegmentResponse, len(response.Timeline))
	copy(timeline, response.Timeline)
	details := make([]responses.ProcessResponse, len(response.Details))
	copy(details, response.Details)

	response.Order, response.Timeline, response.Details = order, timeline, details
	return response
}

// Set stores a response; its cost is the number of scheduled processes.
func (c *ResultCache) Set(key string, response responses.ScheduleResponse) {
	if c == nil {
		return
	}
	c.cache.Set(key, clone(response), int64(len(response.Details)))
}

// Wait blocks until pending writes are visible to Get.
func (c *ResultCache) Wait() {
	if c == nil {
		return
	}
	c.cache.Wait()
}

func (c *ResultCache) Close() {
	if c == nil {
		return
	}
	c.cache.Close()
}
