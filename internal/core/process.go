package core

import "fmt"

// MaxClock is the latest clock value a simulation may reach. It keeps
// completion times and their sums well inside int.
const MaxClock = 1<<31 - 1

// Horizon bounds the final clock of a run: the latest arrival plus every
// burst. It reports false once that bound would pass limit, without
// overflowing on the way.
func Horizon(arrivals, bursts []int, limit int) (int, bool) {
	latest, total := 0, 0
	for _, a := range arrivals {
		if a > limit {
			return 0, false
		}
		if a > latest {
			latest = a
		}
	}
	for _, b := range bursts {
		if b > limit-total {
			return 0, false
		}
		total += b
	}
	if latest > limit-total {
		return 0, false
	}
	return latest + total, true
}

// Completion holds the derived timings of a process that has run.
type Completion struct {
	Start      int
	Completion int
	Turnaround int
	Waiting    int
}

// Process is one row of the process table. Arrival and Burst never change;
// the outcome is nil while the process is pending and is written once.
type Process struct {
	ID      int
	Arrival int
	Burst   int
	outcome *Completion
}

// Visited reports whether the process has been dispatched.
func (p *Process) Visited() bool {
	return p.outcome != nil
}

// Outcome returns the completion record and false while still pending.
func (p *Process) Outcome() (Completion, bool) {
	if p.outcome == nil {
		return Completion{}, false
	}
	return *p.outcome, true
}

// Complete runs the process from start for its whole burst and fixes its timings.
func (p *Process) Complete(start int) Completion {
	if p.outcome != nil {
		panic(fmt.Sprintf("core: process %d completed twice", p.ID))
	}
	completion := start + p.Burst
	turnaround := completion - p.Arrival
	p.outcome = &Completion{
		Start:      start,
		Completion: completion,
		Turnaround: turnaround,
		Waiting:    turnaround - p.Burst,
	}
	return *p.outcome
}

// ProcessTable keeps processes in input order.
type ProcessTable struct {
	processes []*Process
	completed int
}

func NewProcessTable(ids, arrivals, bursts []int) *ProcessTable {
	table := &ProcessTable{processes: make([]*Process, 0, len(ids))}
	for i := range ids {
		table.processes = append(table.processes, &Process{
			ID:      ids[i],
			Arrival: arrivals[i],
			Burst:   bursts[i],
		})
	}
	return table
}

func (t *ProcessTable) Len() int { return len(t.processes) }

// At returns the process at input position i.
func (t *ProcessTable) At(i int) *Process { return t.processes[i] }

// Completed is the number of processes already dispatched.
func (t *ProcessTable) Completed() int { return t.completed }

// Done reports whether every process has been dispatched.
func (t *ProcessTable) Done() bool { return t.completed == len(t.processes) }

// Dispatch completes the process at position i starting at clock.
func (t *ProcessTable) Dispatch(i int, clock int) Completion {
	c := t.processes[i].Complete(clock)
	t.completed++
	return c
}

// NextArrival returns the earliest arrival among pending processes that is
// strictly after clock, and false if there is none.
func (t *ProcessTable) NextArrival(clock int) (int, bool) {
	next, found := 0, false
	for _, p := range t.processes {
		if p.Visited() || p.Arrival <= clock {
			continue
		}
		if !found || p.Arrival < next {
			next, found = p.Arrival, true
		}
	}
	return next, found
}

// Processes returns a snapshot of the rows in input order.
func (t *ProcessTable) Processes() []Process {
	out := make([]Process, len(t.processes))
	for i, p := range t.processes {
		out[i] = *p
	}
	return out
}
