// internal/scene/camera.go
package scene

import "projectile-machine/internal/config"

// Camera is the horizontal scroll applied to world x before projection.
type Camera struct {
	OffsetX float64
}

// Follow centres the body horizontally; the camera never moves behind the origin.
func (c *Camera) Follow(bodyX float64) {
	c.OffsetX = bodyX - config.ScreenWidth/2
	if c.OffsetX < 0 {
		c.OffsetX = 0
	}
}

func (c *Camera) Reset() {
	c.OffsetX = 0
}
