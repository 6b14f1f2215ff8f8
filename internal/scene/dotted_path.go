// internal/scene/dotted_path.go
package scene

import (
	"projectile-machine/internal/config"
	"projectile-machine/internal/physics"
)

// DottedPath records the positions visited during a run so the travelled arc
// stays visible after the trail has moved on. When full, the oldest point is
// dropped and the rest shift left.
type DottedPath struct {
	points [config.MaxDottedPoints]physics.Point
	count  int
}

func (d *DottedPath) Add(p physics.Point) {
	if d.count < len(d.points) {
		d.points[d.count] = p
		d.count++
		return
	}
	copy(d.points[:], d.points[1:])
	d.points[len(d.points)-1] = p
}

func (d *DottedPath) Clear() {
	d.count = 0
}

func (d *DottedPath) Len() int {
	return d.count
}

// At returns point i, oldest first; i must be below Len.
func (d *DottedPath) At(i int) physics.Point {
	return d.points[i]
}

func (d *DottedPath) AppendTo(dst []physics.Point) []physics.Point {
	return append(dst, d.points[:d.count]...)
}
