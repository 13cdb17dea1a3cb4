package ui

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestStepLambda(t *testing.T) {
	testCases := []struct {
		name string
		l, d float64
		want float64
	}{
		{"up", 0.3, lambdaStep, 0.4},
		{"down", 0.3, -lambdaStep, 0.2},
		{"top", 0.9, lambdaStep, 0.9},
		{"bottom", 0.1, -lambdaStep, 0.1},
		{"snaps to tenths", 0.26, lambdaStep, 0.4},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, stepLambda(tc.l, tc.d), 1e-12)
		})
	}
}

func TestClampIterations(t *testing.T) {
	testCases := []struct {
		name string
		n    int
		want int
	}{
		{"in range", 20, 20},
		{"too many", 100, maxIterations},
		{"zero", 0, minIterations},
		{"negative", -3, minIterations},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, clampIterations(tc.n))
		})
	}
}

func TestSplit(t *testing.T) {
	xp, yp := split([]mgl64.Vec2{{1, 2}, {3, 4}})
	assert.Equal(t, []float32{1, 3}, xp)
	assert.Equal(t, []float32{2, 4}, yp)
}
