package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(10, 0))
	assert.InDelta(t, 2.0/3.0, Mean(2, 3), 1e-12)
	assert.Equal(t, 4.0, Mean(12, 3))
}

func TestRound2Ratio(t *testing.T) {
	tests := []struct {
		sum, count int
		want       float64
	}{
		{201, 200, 1.01},
		{-201, 200, -1.01},
		{9, 8, 1.13},
		{-9, 8, -1.13},
		{2, 3, 0.67},
		{10, 3, 3.33},
		{1, 3, 0.33},
		{12, 3, 4},
		{3, 7, 0.43},
		{5, -2, -2.5},
		{0, 5, 0},
		{7, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2Ratio(tt.sum, tt.count), "%d/%d", tt.sum, tt.count)
	}
}
