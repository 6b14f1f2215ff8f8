// internal/scene/glyphs.go
package scene

import (
	"math"

	"projectile-machine/internal/config"
	"projectile-machine/internal/physics"
	"projectile-machine/internal/utils"
)

// drawGround draws the ground line and a dot texture that scrolls with offsetX.
func (r *Renderer) drawGround(offsetX float64) {
	s := r.surface
	y := config.GroundY
	s.DrawLine(0, y, config.ScreenWidth, y)

	for x := utils.Trunc(offsetX) % config.GroundDotSpacing; x < config.ScreenWidth; x += config.GroundDotSpacing {
		s.SetPixel(x, y+1, true)
		s.SetPixel(x+config.GroundDotSpacing/2, y+2, true)
	}
}

// drawCannon draws the base at baseX on the ground line and a two-pixel
// barrel up to mouth.
func (r *Renderer) drawCannon(baseX int, mouth physics.Point) {
	s := r.surface
	baseY := config.GroundY
	mx, my := utils.Trunc(mouth.X), utils.Trunc(mouth.Y)

	s.FillRect(baseX-3, baseY-2, 6, 4)
	s.DrawLine(baseX, baseY, mx, my)
	s.DrawLine(baseX, baseY-1, mx, my-1)
	s.FillCircle(mx, my, config.CannonMouthOffset, true)
}

// drawPredictedPath dots every other preview sample, starting at the muzzle.
func (r *Renderer) drawPredictedPath() {
	r.prediction = r.engine.AppendPrediction(r.prediction[:0])
	if len(r.prediction) < 2 {
		return
	}

	for i := 0; i < len(r.prediction); i += 2 {
		p := r.prediction[i]
		p.X += r.offset.X
		p.Y -= r.offset.Y
		x, y := WorldToScreen(p, 0)
		if onScreen(x, y) {
			r.surface.SetPixel(x, y, true)
		}
	}
}

// drawVelocityVectors draws the horizontal and vertical velocity components
// as arrows from the body. Both lengths are clamped to MaxVectorLength; the
// horizontal arrow always points right, the vertical one follows the sign of vy.
func (r *Renderer) drawVelocityVectors(x, y int, vx, vy float64) {
	s := r.surface
	const a = config.VectorArrowSize

	vxLen := utils.Trunc(utils.Clamp(math.Abs(vx)*config.VectorScale, 0, config.MaxVectorLength))
	ex := x + vxLen
	s.DrawLine(x, y, ex, y)
	s.DrawLine(ex, y, ex-a, y-a)
	s.DrawLine(ex, y, ex-a, y+a)

	vyLen := utils.Trunc(utils.Clamp(math.Abs(vy)*config.VectorScale, 0, config.MaxVectorLength))
	if vy > 0 {
		ey := y - vyLen
		s.DrawLine(x, y, x, ey)
		s.DrawLine(x, ey, x-a, ey+a)
		s.DrawLine(x, ey, x+a, ey+a)
	} else {
		ey := y + vyLen
		s.DrawLine(x, y, x, ey)
		s.DrawLine(x, ey, x-a, ey-a)
		s.DrawLine(x, ey, x+a, ey-a)
	}
}

func (r *Renderer) drawHUD(label, value string) {
	s := r.surface
	x := config.ScreenWidth - config.HUDOffsetX
	s.SetCursor(x, 0)
	s.Print(label)
	s.SetCursor(x, config.HUDLineHeight)
	s.Print(value)
}

// ===== BOOT ASSETS =====

func (r *Renderer) drawRocket(x, y, phase int) {
	s := r.surface
	flame := (phase % 8) / 2

	s.FillTriangle(x, y, x-4, y+8, x+4, y+8)
	s.FillRect(x-2, y+8, 4, 12)
	s.FillTriangle(x-2, y+20, x+2, y+20, x, y+25)

	for i := 0; i < 3+flame; i++ {
		dx := i - (1 + flame/2)
		s.SetPixel(x+dx, y+21+flame, true)
		if flame > 0 {
			s.SetPixel(x+dx, y+22+flame, true)
		}
	}

	// Window.
	s.FillCircle(x, y+10, 1, false)
	s.DrawCircle(x, y+10, 1)
}

func (r *Renderer) drawTitle() {
	s := r.surface
	s.SetCursor(25, 44)
	s.Print("PROJECTILE")

	for i := 0; i < 20; i++ {
		s.SetPixel(10+i*5, 40-i*i/20, true)
	}
}

// drawStars places stars on a fixed index pattern; each one is lit on every
// fourth phase.
func (r *Renderer) drawStars(count int) {
	for i := 0; i < count; i++ {
		x := (i * 17) % config.ScreenWidth
		y := (i * 23) % (config.ScreenHeight - 20)
		if (r.bootPhase+i)%4 == 0 {
			r.surface.SetPixel(x, y, true)
		}
	}
}
