// internal/physics/kinematics.go
package physics

import (
	"math"

	"projectile-machine/internal/utils"
)

// Point is a position or velocity in world units (meters, m/s).
type Point struct {
	X, Y float64
}

// MotionSample is the body state at one instant.
type MotionSample struct {
	Position Point
	Velocity Point
}

// LaunchParameters describe one shot. Angle is stored in radians.
type LaunchParameters struct {
	Height  float64
	Gravity float64
	Angle   float64
	Speed   float64
}

// NewLaunchParameters converts the values shown on the device (angle in degrees)
// into LaunchParameters.
func NewLaunchParameters(height, gravity, angleDeg, speed float64) LaunchParameters {
	return LaunchParameters{
		Height:  height,
		Gravity: gravity,
		Angle:   utils.DegToRad(angleDeg),
		Speed:   speed,
	}
}

// InitialVelocity returns (v0·cosθ, v0·sinθ).
func (p LaunchParameters) InitialVelocity() Point {
	return Point{
		X: p.Speed * math.Cos(p.Angle),
		Y: p.Speed * math.Sin(p.Angle),
	}
}

// SampleAt evaluates the closed-form equations of motion at elapsed time t:
//
//	x(t)  = v0·cosθ·t
//	y(t)  = h0 + v0·sinθ·t - g·t²/2
//	vx(t) = v0·cosθ
//	vy(t) = v0·sinθ - g·t
func (p LaunchParameters) SampleAt(t float64) MotionSample {
	v0 := p.InitialVelocity()
	return MotionSample{
		Position: Point{
			X: v0.X * t,
			Y: p.Height + v0.Y*t - 0.5*p.Gravity*t*t,
		},
		Velocity: Point{
			X: v0.X,
			Y: v0.Y - p.Gravity*t,
		},
	}
}

// ImpactTime solves h0 + v0·sinθ·t - g·t²/2 = 0 and returns the larger root.
// ok is false when the discriminant is negative.
func (p LaunchParameters) ImpactTime() (t float64, ok bool) {
	a := -0.5 * p.Gravity
	b := p.InitialVelocity().Y
	c := p.Height

	discriminant := b*b - 4*a*c
	if discriminant < 0 || a == 0 {
		return 0, false
	}

	sq := math.Sqrt(discriminant)
	t1 := (-b + sq) / (2 * a)
	t2 := (-b - sq) / (2 * a)
	return math.Max(t1, t2), true
}
