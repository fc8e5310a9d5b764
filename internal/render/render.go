package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"sjf-scheduler/internal/core"
	"sjf-scheduler/internal/responses"
)

const idleLabel = "-"

// Report writes a title, a gantt chart and the schedule table.
func Report(w io.Writer, title string, response responses.ScheduleResponse) {
	Title(w, title)
	Gantt(w, response.Timeline)
	Table(w, response)
}

func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Gantt draws one cell per segment, runs of idle time collapsed into one cell.
func Gantt(w io.Writer, timeline []responses.SegmentResponse) {
	segments := make([]core.Segment, 0, len(timeline))
	for _, s := range timeline {
		segments = append(segments, core.Segment{ProcessID: s.ProcessId, Start: s.Start, End: s.End})
	}
	segments = core.CollapseIdle(segments)

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, s := range segments {
		label := idleLabel
		if !s.Idle() {
			label = fmt.Sprintf("P%d", s.ProcessID)
		}
		padding := strings.Repeat(" ", (8-len(label))/2)
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range segments {
		_, _ = fmt.Fprint(w, s.Start, "\t")
		if len(segments)-1 == i {
			_, _ = fmt.Fprint(w, s.End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

// Table writes the per-process timings with the averages in the footer.
func Table(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Completion", "Turnaround", "Waiting"})
	for _, d := range response.Details {
		table.Append([]string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.WaitingTime),
		})
	}
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageCompletionTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime)})
	table.Render()
}
