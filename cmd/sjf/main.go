package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"sjf-scheduler/internal/render"
	"sjf-scheduler/internal/requests"
	"sjf-scheduler/internal/schedulers"
)

var ErrInvalidArgs = errors.New("invalid args")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := pflag.NewFlagSet("sjf", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	arrivals := flags.String("arrivals", "", "space separated arrival times, e.g. \"0 1 2\"")
	bursts := flags.String("bursts", "", "space separated burst times, e.g. \"2 4 1\"")
	unitIdle := flags.Bool("unit-idle", false, "record idle time one unit at a time")
	verbose := flags.BoolP("verbose", "v", false, "log every scheduling decision to stderr")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}

	request, err := loadRequest(flags.Args(), *arrivals, *bursts)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if *verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer logger.Sync()
	}

	var opts []schedulers.Option
	if *unitIdle {
		opts = append(opts, schedulers.WithUnitIdleSteps())
	}
	response, err := schedulers.ScheduleShortestJobFirst(request, requests.Limits{}, logger, opts...)
	if err != nil {
		return err
	}

	render.Report(stdout, "Shortest-job-first", response)
	return nil
}

// loadRequest reads either a scheduling file or the arrival/burst lists.
func loadRequest(files []string, arrivals, bursts string) (requests.ScheduleRequests, error) {
	if arrivals != "" || bursts != "" {
		if len(files) != 0 {
			return requests.ScheduleRequests{}, fmt.Errorf("%w: give either a scheduling file or -arrivals/-bursts", ErrInvalidArgs)
		}
		count := len(strings.Fields(arrivals))
		return requests.FormRequest{
			ProcessCount: strconv.Itoa(count),
			ArrivalTimes: arrivals,
			BurstTimes:   bursts,
		}.Parse(requests.Limits{})
	}

	if len(files) != 1 {
		return requests.ScheduleRequests{}, fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}
	f, err := os.Open(files[0])
	if err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("%v: error opening scheduling file", err)
	}
	defer f.Close()

	return loadProcesses(f)
}

// loadProcesses parses rows of "id,burst,arrival".
func loadProcesses(r io.Reader) (requests.ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("%w: reading CSV", err)
	}

	request := requests.ScheduleRequests{Jobs: make([]requests.Job, len(rows))}
	for i, row := range rows {
		values := make([]int, len(row))
		for j, field := range row {
			if values[j], err = strconv.Atoi(strings.TrimSpace(field)); err != nil {
				return requests.ScheduleRequests{}, fmt.Errorf("%w: row %d: %q is not an integer", requests.ErrInvalidNumber, i+1, field)
			}
		}
		request.Jobs[i] = requests.Job{ProcessId: values[0], BurstTime: values[1], ArrivalTime: values[2]}
	}
	return request, nil
}
