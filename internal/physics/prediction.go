// internal/physics/prediction.go
package physics

import "projectile-machine/internal/config"

// PredictionPath is the whole flight from launch to ground impact, sampled at
// evenly spaced times.
type PredictionPath struct {
	points [config.MaxPredictionPoints]Point
	count  int
}

// Compute refills the path for p. The path is left empty when the body never
// returns to the ground or lands at t = 0.
func (pp *PredictionPath) Compute(p LaunchParameters) {
	pp.count = 0

	total, ok := p.ImpactTime()
	if !ok || total <= 0 {
		return
	}

	step := total / float64(len(pp.points)-1)
	for i := range pp.points {
		t := float64(i) * step
		if t > total {
			t = total
		}

		pos := p.SampleAt(t).Position
		if pos.Y < 0 {
			pos.Y = 0
			pp.points[i] = pos
			pp.count = i + 1
			break
		}

		pp.points[i] = pos
		pp.count++
	}
}

// Len returns the number of valid points.
func (pp *PredictionPath) Len() int {
	return pp.count
}

// At returns point i; i must be below Len.
func (pp *PredictionPath) At(i int) Point {
	return pp.points[i]
}

// AppendTo appends the valid points in flight order.
func (pp *PredictionPath) AppendTo(dst []Point) []Point {
	return append(dst, pp.points[:pp.count]...)
}
