package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sjf-scheduler/internal/requests"
)

func TestLoadProcesses(t *testing.T) {
	request, err := loadProcesses(strings.NewReader("1,2,0\n2, 4, 1\n3,1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, []requests.Job{
		{ProcessId: 1, BurstTime: 2, ArrivalTime: 0},
		{ProcessId: 2, BurstTime: 4, ArrivalTime: 1},
		{ProcessId: 3, BurstTime: 1, ArrivalTime: 2},
	}, request.Jobs)

	_, err = loadProcesses(strings.NewReader("1,x,0\n"))
	assert.ErrorIs(t, err, requests.ErrInvalidNumber)

	_, err = loadProcesses(strings.NewReader("1,2\n"))
	assert.Error(t, err)
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procs.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2,0\n2,4,1\n3,1,2\n"), 0o600))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{path}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "|   P1   |   P3   |   P2   |")
	assert.Contains(t, stdout.String(), "0.67")
}

func TestRunLists(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"--arrivals", "3", "--bursts", "2", "--unit-idle"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "|   -   |   P1   |")
	assert.Contains(t, stdout.String(), "0\t3\t5")
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.ErrorIs(t, run(nil, &stdout, &stderr), ErrInvalidArgs)
	assert.ErrorIs(t, run([]string{"--arrivals", "0 1", "--bursts", "1"}, &stdout, &stderr), requests.ErrLengthMismatch)
	assert.ErrorIs(t, run([]string{"--arrivals", "0", "--bursts", "1", "file.csv"}, &stdout, &stderr), ErrInvalidArgs)
	assert.ErrorIs(t, run([]string{"--bogus"}, &stdout, &stderr), ErrInvalidArgs)
}
