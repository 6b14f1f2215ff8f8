// internal/scene/screens.go
package scene

import (
	"fmt"
	"strconv"

	"projectile-machine/internal/config"
	"projectile-machine/internal/physics"
	"projectile-machine/internal/utils"
)

func (r *Renderer) drawBoot() {
	r.drawStars(config.BootStarCount)

	rocketY := 32 - r.bootPhase*32/config.BootPhaseFrames
	r.drawRocket(config.BootRocketX, rocketY, r.bootPhase)

	if r.bootPhase > config.BootTitlePhase {
		r.drawTitle()
	}

	progress := min(100, r.bootPhase*100/config.BootPhaseFrames)
	r.surface.DrawRect(14, 52, 100, 6)
	r.surface.FillRect(15, 53, progress, 4)
}

func (r *Renderer) drawHeightSelect() {
	s := r.surface
	r.drawGround(0)
	s.FillRect(config.CannonX-2, config.GroundY-2, 4, 4)

	markerX := config.CannonX + config.CannonLength
	markerY := utils.Trunc(config.GroundY - r.height*config.HeightPixelScale)
	s.FillCircle(markerX, markerY, 3, true)

	for y := config.CannonY; y > markerY; y -= config.HeightMarkerStep {
		s.SetPixel(markerX, y, true)
	}

	r.drawHUD("Height:", fmt.Sprintf("%4.1f", r.height))
}

func (r *Renderer) drawGravityMenu() {
	s := r.surface
	s.SetCursor(40, 10)
	s.Print("GRAVITY")

	labels := [3]string{
		"Earth=" + formatGravity(r.earthGravity),
		"Moon=" + formatGravity(r.moonGravity),
		"Custom",
	}
	for i, label := range labels {
		y := 25 + i*12
		if i == r.gravityCursor {
			s.FillTriangle(20, y, 20, y+8, 25, y+4)
		} else {
			s.DrawTriangle(20, y, 20, y+8, 25, y+4)
		}
		s.SetCursor(30, y)
		s.Print(label)
	}
}

func formatGravity(g float64) string {
	return strconv.FormatFloat(g, 'f', -1, 64)
}

func (r *Renderer) drawMorseInput() {
	s := r.surface
	s.SetCursor(40, 5)
	s.Print("CUSTOM G")

	s.SetCursor(10, 20)
	s.Print("g=" + r.morseBuffer)

	s.SetCursor(10, 35)
	s.Print("Morse: " + r.morseSequence)

	s.SetCursor(5, 50)
	s.Print(".- = Decimal")
}

func (r *Renderer) drawAngleAdjust() {
	r.drawGround(0)
	r.surface.FillRect(config.CannonX-2, config.GroundY-2, 4, 4)
	r.drawPredictedPath()
	r.drawHUD("Angle:", fmt.Sprintf("%4.1f", r.angle))
}

func (r *Renderer) drawVelocityAdjust() {
	r.drawGround(0)
	r.drawCannon(config.CannonX, r.muzzle)
	r.drawPredictedPath()
	r.drawHUD("Velocity:", fmt.Sprintf("%4.1f", r.velocity))
}

func (r *Renderer) drawSimulation() {
	s := r.surface
	sample := r.engine.Sample()

	r.camera.Follow(sample.Position.X)
	cam := r.camera.OffsetX
	r.drawGround(cam)

	cannonX := utils.Trunc(config.CannonX - cam)
	if cannonX > config.CannonMarginLeft && cannonX < config.ScreenWidth {
		mouth := physics.Point{X: r.muzzle.X - cam, Y: r.muzzle.Y}
		r.drawCannon(cannonX, mouth)
	}

	for i := 0; i < r.dotted.Len(); i += 2 {
		x, y := r.project(r.dotted.At(i))
		if onScreen(x, y) {
			s.SetPixel(x, y, true)
		}
	}

	r.drawTrail()

	bx, by := r.project(sample.Position)
	s.FillCircle(bx, by, config.BallRadius, true)
	r.drawVelocityVectors(bx, by, sample.Velocity.X, sample.Velocity.Y)

	r.drawHUD("X:", fmt.Sprintf("%5.1f", sample.Position.X))
}

// drawTrail draws every other trail point, newest first, while its faded
// alpha stays above the visibility floor.
func (r *Renderer) drawTrail() {
	r.trail = r.engine.AppendTrail(r.trail[:0])

	for i := len(r.trail) - 1; i >= 0; i -= 2 {
		tp := r.trail[i]
		if tp.Age >= config.TrailAgeMax {
			continue
		}
		if trailAlpha(tp.Age) <= config.TrailAlphaFloor {
			continue
		}
		x, y := r.project(physics.Point{X: tp.X, Y: tp.Y})
		if onScreen(x, y) {
			r.surface.SetPixel(x, y, true)
		}
	}
}

func trailAlpha(age uint8) int {
	return 255 - int(age)*config.TrailFadeFactor
}

func (r *Renderer) drawResults() {
	s := r.surface
	s.SetCursor(40, 5)
	s.Print("RESULTS")

	rows := [3]struct {
		label string
		value float64
		unit  string
	}{
		{"Range:", r.results.Range, "m"},
		{"Max H:", r.results.MaxHeight, "m"},
		{"Time:", r.results.FlightTime, "s"},
	}
	for i, row := range rows {
		y := 20 + i*10
		s.SetCursor(10, y)
		s.Print(row.label)
		s.SetCursor(70, y)
		s.Print(strconv.FormatFloat(row.value, 'f', 1, 64) + row.unit)
	}

	s.SetCursor(10, 55)
	s.Print("ENTER:restart")
}
