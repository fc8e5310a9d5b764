package schedulers

import (
	"sjf-scheduler/internal/core"
	"sjf-scheduler/internal/responses"
	"sjf-scheduler/internal/util"
)

func generateResponse(result Result) responses.ScheduleResponse {
	n := len(result.Processes)
	details := make([]responses.ProcessResponse, 0, n)
	for _, p := range result.Processes {
		details = append(details, generateProcessDetails(p))
	}

	timeline := make([]responses.SegmentResponse, 0, len(result.Timeline))
	for _, s := range result.Timeline {
		timeline = append(timeline, responses.SegmentResponse{
			ProcessId: s.ProcessID,
			Start:     s.Start,
			End:       s.End,
			Idle:      s.Idle(),
		})
	}

	return responses.ScheduleResponse{
		TotalTime:             result.Cpu.TotalTime,
		IdleTime:              result.Cpu.IdleTime,
		CpuUtilization:        util.Round2Ratio(result.Cpu.UtilizationTime, result.Cpu.TotalTime),
		CpuThroughput:         util.Round2Ratio(n, result.Cpu.TotalTime),
		AverageWaitingTime:    util.Round2Ratio(result.Totals.Waiting, n),
		AverageResponseTime:   util.Round2Ratio(result.Totals.Response, n),
		AverageTurnAroundTime: util.Round2Ratio(result.Totals.Turnaround, n),
		AverageCompletionTime: util.Round2Ratio(result.Totals.Completion, n),
		Order:                 result.Order,
		Timeline:              timeline,
		Details:               details,
	}
}

func generateProcessDetails(process core.Process) responses.ProcessResponse {
	c, _ := process.Outcome()
	return responses.ProcessResponse{
		ProcessId:      process.ID,
		ArrivalTime:    process.Arrival,
		BurstTime:      process.Burst,
		CompletionTime: c.Completion,
		TurnAroundTime: c.Turnaround,
		WaitingTime:    c.Waiting,
		ResponseTime:   c.Start - process.Arrival,
	}
}
