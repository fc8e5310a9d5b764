package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sjf-scheduler/internal/requests"
	"sjf-scheduler/internal/responses"
)

func TestKey(t *testing.T) {
	request := requests.ScheduleRequests{Jobs: []requests.Job{
		{ProcessId: 1, ArrivalTime: 0, BurstTime: 2},
		{ProcessId: 2, ArrivalTime: 1, BurstTime: 4},
	}}
	assert.Equal(t, "jump|1:0:2,2:1:4", Key(request, false))
	assert.Equal(t, "unit|1:0:2,2:1:4", Key(request, true))
}

func TestResultCache(t *testing.T) {
	c, err := NewResultCache(1 << 10)
	require.NoError(t, err)
	defer c.Close()

	response := responses.ScheduleResponse{
		TotalTime: 7,
		Details:   []responses.ProcessResponse{{ProcessId: 1}},
	}
	c.Set("k", response)
	c.Wait()

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, response, got)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestResultCacheReturnsCopies(t *testing.T) {
	c, err := NewResultCache(1 << 10)
	require.NoError(t, err)
	defer c.Close()

	response := responses.ScheduleResponse{
		Order:    []int{1, 2},
		Timeline: []responses.SegmentResponse{{ProcessId: 1, Start: 0, End: 2}},
		Details:  []responses.ProcessResponse{{ProcessId: 1}, {ProcessId: 2}},
	}
	c.Set("k", response)
	c.Wait()
	response.Order[0] = 99

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, got.Order)

	got.Order[1] = 42
	got.Timeline[0].End = 10
	got.Details[0].WaitingTime = 5

	again, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, again.Order)
	assert.Equal(t, 2, again.Timeline[0].End)
	assert.Equal(t, 0, again.Details[0].WaitingTime)
}

func TestNilResultCache(t *testing.T) {
	var c *ResultCache
	c.Set("k", responses.ScheduleResponse{})
	c.Wait()
	_, ok := c.Get("k")
	assert.False(t, ok)
	c.Close()
}
