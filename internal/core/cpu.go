package core

// CpuMetric summarises how the simulated cpu spent its time, in time units.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Utilization is the busy fraction of the total time.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is completed processes per time unit.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}

// MeasureCpu walks the timeline and splits it into busy and idle time.
func MeasureCpu(timeline *Timeline) CpuMetric {
	var metric CpuMetric
	for _, s := range timeline.segments {
		if s.Idle() {
			metric.IdleTime += s.Length()
		} else {
			metric.UtilizationTime += s.Length()
		}
	}
	metric.TotalTime = metric.IdleTime + metric.UtilizationTime
	return metric
}
