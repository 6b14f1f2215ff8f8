// internal/physics/trail.go
package physics

import "projectile-machine/internal/config"

// TrailPoint is one remembered body position. Age grows every tick and saturates at 255.
type TrailPoint struct {
	X, Y float64
	Age  uint8
}

// Trail is a fixed-capacity ring of recent positions; the oldest entry is
// overwritten once the ring is full.
type Trail struct {
	points [config.MaxTrailPoints]TrailPoint
	pos    int
	length int
}

// Push stores p with age 0 and then ages every slot, the new one included.
func (t *Trail) Push(p Point) {
	t.points[t.pos] = TrailPoint{X: p.X, Y: p.Y}
	t.pos = (t.pos + 1) % len(t.points)

	for i := range t.points {
		t.points[i].Age = ageBy(t.points[i].Age, config.TrailAgeStep)
	}

	if t.length < len(t.points) {
		t.length++
	}
}

// Expire marks every slot fully faded.
func (t *Trail) Expire() {
	for i := range t.points {
		t.points[i].Age = config.TrailAgeMax
	}
}

// Reset empties the ring.
func (t *Trail) Reset() {
	t.points = [config.MaxTrailPoints]TrailPoint{}
	t.pos = 0
	t.length = 0
}

// Len returns the number of stored points.
func (t *Trail) Len() int {
	return t.length
}

// Cap returns the ring capacity.
func (t *Trail) Cap() int {
	return len(t.points)
}

// AppendTo appends the stored points oldest first.
func (t *Trail) AppendTo(dst []TrailPoint) []TrailPoint {
	start := t.pos - t.length
	if start < 0 {
		start += len(t.points)
	}
	for i := 0; i < t.length; i++ {
		dst = append(dst, t.points[(start+i)%len(t.points)])
	}
	return dst
}

func ageBy(age uint8, step int) uint8 {
	next := int(age) + step
	if next > config.TrailAgeMax {
		return config.TrailAgeMax
	}
	return uint8(next)
}
