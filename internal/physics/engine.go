// internal/physics/engine.go
package physics

import (
	"time"

	"projectile-machine/internal/config"
)

// Summary holds the results of a finished run.
type Summary struct {
	MaxHeight  float64
	Range      float64
	FlightTime float64
}

// Engine owns the physical state of one projectile: the current sample, the
// trail, the preview path and the run summary. Positions are always evaluated
// from the closed form at the elapsed time, never integrated.
type Engine struct {
	params LaunchParameters

	elapsed float64
	sample  MotionSample

	trail      Trail
	prediction PredictionPath

	complete bool
	summary  Summary

	// Rate gate: a step is applied only when FrameInterval has passed since lastStep.
	lastStep time.Duration
}

// NewEngine returns an idle engine; Complete reports true until StartRun.
func NewEngine() *Engine {
	return &Engine{complete: true}
}

// SetPreviewParameters stores p and recomputes the prediction path. Time does not advance.
func (e *Engine) SetPreviewParameters(p LaunchParameters) {
	e.params = p
	e.prediction.Compute(p)
}

// StartRun resets the body to the launch point and begins a new flight.
func (e *Engine) StartRun(p LaunchParameters) {
	e.params = p
	e.elapsed = 0
	e.sample = MotionSample{
		Position: Point{X: 0, Y: p.Height},
		Velocity: p.InitialVelocity(),
	}

	e.trail.Reset()

	e.complete = false
	e.summary = Summary{MaxHeight: p.Height}
}

// Tick applies one fixed SimulationDT step if at least FrameInterval has passed
// since the previous step. Slow callers still get exactly one step per call.
// It reports whether a step was applied.
func (e *Engine) Tick(now time.Duration) bool {
	if e.complete {
		return false
	}
	if now >= e.lastStep && now-e.lastStep < config.FrameInterval {
		return false
	}
	e.lastStep = now

	e.elapsed += config.SimulationDT
	e.summary.FlightTime = e.elapsed

	e.sample = e.params.SampleAt(e.elapsed)

	if e.sample.Position.Y > e.summary.MaxHeight {
		e.summary.MaxHeight = e.sample.Position.Y
	}

	e.trail.Push(e.sample.Position)

	if e.sample.Position.Y <= 0 {
		e.sample.Position.Y = 0
		e.complete = true

		if t, ok := e.params.ImpactTime(); ok {
			e.summary.Range = e.params.InitialVelocity().X * t
		} else {
			e.summary.Range = e.sample.Position.X
		}
	}

	return true
}

// StopRun ends the flight where the body currently is and fades the whole trail.
func (e *Engine) StopRun() {
	e.complete = true
	e.summary.Range = e.sample.Position.X
	e.trail.Expire()
}

// Complete reports whether no run is in progress.
func (e *Engine) Complete() bool {
	return e.complete
}

func (e *Engine) Parameters() LaunchParameters {
	return e.params
}

func (e *Engine) Elapsed() float64 {
	return e.elapsed
}

func (e *Engine) Position() Point {
	return e.sample.Position
}

func (e *Engine) Velocity() Point {
	return e.sample.Velocity
}

func (e *Engine) Sample() MotionSample {
	return e.sample
}

func (e *Engine) Summary() Summary {
	return e.summary
}

// TrailLen returns the number of stored trail points.
func (e *Engine) TrailLen() int {
	return e.trail.Len()
}

// Trail returns a copy of the trail, oldest first.
func (e *Engine) Trail() []TrailPoint {
	return e.trail.AppendTo(make([]TrailPoint, 0, e.trail.Cap()))
}

// AppendTrail appends the trail, oldest first, to dst.
func (e *Engine) AppendTrail(dst []TrailPoint) []TrailPoint {
	return e.trail.AppendTo(dst)
}

// Prediction returns a copy of the preview path.
func (e *Engine) Prediction() []Point {
	return e.prediction.AppendTo(make([]Point, 0, e.prediction.Len()))
}

// AppendPrediction appends the preview path to dst.
func (e *Engine) AppendPrediction(dst []Point) []Point {
	return e.prediction.AppendTo(dst)
}
