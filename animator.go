package meshlab

import (
	"fmt"
	"log/slog"
)

// AnimationState is the state of a smoothing animation.
type AnimationState int

const (
	Idle AnimationState = iota
	Running
)

func (s AnimationState) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Animator applies one Laplacian pass per Tick until the requested number of
// iterations is reached or Stop is called. Ticks come from an external
// scheduler (a timer or a game loop); nothing here blocks or spawns
// goroutines. Stopping keeps every pass already applied.
type Animator struct {
	// OnStep, if set, is called after every applied pass with the current
	// and requested iteration counts.
	OnStep func(iteration, maxIterations int)

	mesh          *Mesh
	adj           *Adjacency
	state         AnimationState
	iteration     int
	maxIterations int
	lambda        float64
	err           error
}

// NewAnimator returns an idle animator for m.
func NewAnimator(m *Mesh) *Animator {
	a := &Animator{}
	a.SetMesh(m)
	return a
}

// SetMesh replaces the animated mesh, stops any run and rebuilds the
// adjacency graph.
func (a *Animator) SetMesh(m *Mesh) {
	a.mesh = m
	a.adj = nil
	if m != nil {
		a.adj = NewAdjacency(len(m.Vertices), m.Faces)
	}
	a.state = Idle
	a.iteration = 0
}

// Mesh returns the animated mesh.
func (a *Animator) Mesh() *Mesh {
	return a.mesh
}

// Start resets the counter and begins a run of maxIterations passes with the
// given blend factor. A run with no iterations, no mesh or no edges ends
// immediately.
func (a *Animator) Start(maxIterations int, lambda float64) {
	a.maxIterations = maxIterations
	a.lambda = lambda
	a.iteration = 0
	a.err = nil
	a.state = Running
	if maxIterations <= 0 || a.mesh == nil || a.adj.IsEmpty() {
		a.state = Idle
	}
	slog.Debug("smoothing started", "iterations", maxIterations, "lambda", lambda, "state", a.state)
}

// Stop ends the run. Remaining passes are discarded.
func (a *Animator) Stop() {
	a.state = Idle
}

// Tick applies one pass if running and reports whether it did. A panic
// during the pass stops the run and is kept in Err. Positions and normals are
// guarded separately, so a failure while recomputing normals still counts the
// pass whose positions were committed.
func (a *Animator) Tick() bool {
	if a.state != Running {
		return false
	}
	if a.iteration >= a.maxIterations {
		a.state = Idle
		return false
	}

	if err := a.guard(a.iteration+1, func() { a.mesh.smoothPositions(a.adj, 1, a.lambda) }); err != nil {
		a.fail(err)
		return false
	}
	a.iteration++
	if a.iteration >= a.maxIterations {
		a.state = Idle
	}
	if err := a.guard(a.iteration, a.mesh.CalculateNormals); err != nil {
		a.fail(err)
	}
	if a.OnStep != nil {
		a.OnStep(a.iteration, a.maxIterations)
	}
	return true
}

func (a *Animator) guard(pass int, step func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("smoothing pass %d: %v", pass, r)
		}
	}()
	step()
	return nil
}

func (a *Animator) fail(err error) {
	a.err = err
	a.state = Idle
	slog.Error("smoothing stopped", "err", err)
}

// State returns the current state.
func (a *Animator) State() AnimationState {
	return a.state
}

// Iteration returns the number of passes applied in the current or last run.
func (a *Animator) Iteration() int {
	return a.iteration
}

// MaxIterations returns the requested pass count of the current or last run.
func (a *Animator) MaxIterations() int {
	return a.maxIterations
}

// Lambda returns the blend factor of the current or last run.
func (a *Animator) Lambda() float64 {
	return a.lambda
}

// Err returns the failure that stopped the last run, if any.
func (a *Animator) Err() error {
	return a.err
}
