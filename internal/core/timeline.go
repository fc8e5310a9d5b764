package core

import (
	"errors"
	"fmt"
)

// IdleProcessID marks a segment where the cpu had nothing to run.
const IdleProcessID = 0

var ErrTimelineGap = errors.New("timeline is not contiguous")

// Segment is a half-open interval [Start, End) of cpu time.
type Segment struct {
	ProcessID int
	Start     int
	End       int
}

func (s Segment) Idle() bool { return s.ProcessID == IdleProcessID }

func (s Segment) Length() int { return s.End - s.Start }

// Timeline collects segments in the order the cpu executed them.
type Timeline struct {
	segments []Segment
}

// Dispatch records a process running over [start, end).
func (t *Timeline) Dispatch(processID, start, end int) {
	t.append(Segment{ProcessID: processID, Start: start, End: end})
}

// Idle records the cpu sitting idle over [start, end).
func (t *Timeline) Idle(start, end int) {
	t.append(Segment{ProcessID: IdleProcessID, Start: start, End: end})
}

func (t *Timeline) append(s Segment) {
	if s.End <= s.Start {
		panic(fmt.Sprintf("core: empty segment [%d, %d)", s.Start, s.End))
	}
	if n := len(t.segments); n > 0 && t.segments[n-1].End != s.Start {
		panic(fmt.Sprintf("core: segment starts at %d, previous ended at %d", s.Start, t.segments[n-1].End))
	}
	t.segments = append(t.segments, s)
}

// Segments returns a copy of the recorded segments.
func (t *Timeline) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

func (t *Timeline) Len() int { return len(t.segments) }

// End is the clock value at the end of the last segment.
func (t *Timeline) End() int {
	if len(t.segments) == 0 {
		return 0
	}
	return t.segments[len(t.segments)-1].End
}

// Validate checks that the segments cover [0, End()) without gaps or overlaps.
func (t *Timeline) Validate() error {
	clock := 0
	for i, s := range t.segments {
		if s.Start != clock {
			return fmt.Errorf("%w: segment %d starts at %d, expected %d", ErrTimelineGap, i, s.Start, clock)
		}
		clock = s.End
	}
	return nil
}

// CollapseIdle merges runs of adjacent idle segments into one.
func CollapseIdle(segments []Segment) []Segment {
	out := make([]Segment, 0, len(segments))
	for _, s := range segments {
		if n := len(out); n > 0 && s.Idle() && out[n-1].Idle() {
			out[n-1].End = s.End
			continue
		}
		out = append(out, s)
	}
	return out
}
