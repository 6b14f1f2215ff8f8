// internal/scene/projection.go
package scene

import (
	"math"

	"projectile-machine/internal/config"
	"projectile-machine/internal/physics"
	"projectile-machine/internal/utils"
)

// WorldToScreen maps world metres to panel pixels: y flips around the ground
// line and x is measured from the cannon base, shifted by the camera.
func WorldToScreen(p physics.Point, cameraX float64) (x, y int) {
	return utils.Trunc(config.CannonX + p.X - cameraX), utils.Trunc(config.GroundY - p.Y)
}

// Muzzle returns the screen position of the barrel tip for the given aim and
// launch height.
func Muzzle(angleDeg, height float64) physics.Point {
	rad := utils.DegToRad(angleDeg)
	return physics.Point{
		X: config.CannonX + config.CannonLength*math.Cos(rad),
		Y: config.GroundY - config.CannonLength*math.Sin(rad) - height,
	}
}

// launchOffset is the screen shift that puts the launch point (0, height) on
// the muzzle tip.
func launchOffset(angleDeg, height float64) physics.Point {
	m := Muzzle(angleDeg, height)
	return physics.Point{
		X: m.X - config.CannonX,
		Y: m.Y - (config.GroundY - height),
	}
}

func onScreen(x, y int) bool {
	return x >= 0 && x < config.ScreenWidth && y >= 0 && y < config.ScreenHeight
}
