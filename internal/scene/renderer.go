// internal/scene/renderer.go
package scene

import (
	"projectile-machine/internal/config"
	"projectile-machine/internal/physics"
	"projectile-machine/pkg/render"
)

// EngineView is the read side of the trajectory engine the renderer draws from.
type EngineView interface {
	Sample() physics.MotionSample
	AppendTrail(dst []physics.TrailPoint) []physics.TrailPoint
	AppendPrediction(dst []physics.Point) []physics.Point
}

// Renderer redraws the whole panel for one screen per call. Everything it
// shows besides engine data is pushed in through the Set methods.
type Renderer struct {
	surface render.Surface
	engine  EngineView

	height        float64
	gravityCursor int
	earthGravity  float64
	moonGravity   float64
	morseBuffer   string
	morseSequence string
	angle         float64
	velocity      float64
	results       physics.Summary
	bootPhase     int

	muzzle physics.Point
	offset physics.Point

	camera Camera
	dotted DottedPath

	// Scratch buffers reused every frame.
	trail      []physics.TrailPoint
	prediction []physics.Point
}

func NewRenderer(surface render.Surface, engine EngineView) *Renderer {
	r := &Renderer{
		surface:      surface,
		engine:       engine,
		earthGravity: config.EarthGravity,
		moonGravity:  config.MoonGravity,
		trail:        make([]physics.TrailPoint, 0, config.MaxTrailPoints),
		prediction:   make([]physics.Point, 0, config.MaxPredictionPoints),
	}
	r.SetCannonMouthPosition(45, 0)
	return r
}

// Render clears the surface, draws screen and presents the frame. Unknown
// screens present a blank frame.
func (r *Renderer) Render(screen Screen) {
	r.surface.Clear()

	switch screen {
	case ScreenBoot:
		r.drawBoot()
	case ScreenHeight:
		r.drawHeightSelect()
	case ScreenGravity:
		r.drawGravityMenu()
	case ScreenMorse:
		r.drawMorseInput()
	case ScreenAngle:
		r.drawAngleAdjust()
	case ScreenVelocity:
		r.drawVelocityAdjust()
	case ScreenSimulation:
		r.drawSimulation()
	case ScreenResults:
		r.drawResults()
	}

	r.surface.Display()
}

// ===== STATE SETTERS =====

func (r *Renderer) SetHeight(h float64) { r.height = h }

func (r *Renderer) SetGravityMenu(cursor int) { r.gravityCursor = cursor }

// SetGravityPresets changes the values shown on the Earth and Moon rows.
func (r *Renderer) SetGravityPresets(earth, moon float64) {
	r.earthGravity = earth
	r.moonGravity = moon
}

func (r *Renderer) SetMorseInput(buffer, sequence string) {
	r.morseBuffer = buffer
	r.morseSequence = sequence
}

func (r *Renderer) SetAngle(deg float64) { r.angle = deg }

func (r *Renderer) SetVelocity(v float64) { r.velocity = v }

// SetCannonMouthPosition recomputes the muzzle tip; the preview path and the
// flight are both drawn from there.
func (r *Renderer) SetCannonMouthPosition(angleDeg, height float64) {
	r.muzzle = Muzzle(angleDeg, height)
	r.offset = launchOffset(angleDeg, height)
}

func (r *Renderer) SetResults(s physics.Summary) { r.results = s }

func (r *Renderer) SetBootPhase(phase int) { r.bootPhase = phase }

func (r *Renderer) AddDottedPathPoint(x, y float64) {
	r.dotted.Add(physics.Point{X: x, Y: y})
}

func (r *Renderer) ClearDottedPath() { r.dotted.Clear() }

// ResetRun returns the camera to the origin and forgets the previous arc.
func (r *Renderer) ResetRun() {
	r.camera.Reset()
	r.dotted.Clear()
}

// Camera returns the camera as of the last simulation frame.
func (r *Renderer) Camera() Camera { return r.camera }

// Muzzle returns the current muzzle tip in screen coordinates.
func (r *Renderer) Muzzle() physics.Point { return r.muzzle }

// DottedPath returns a copy of the recorded run path, oldest first.
func (r *Renderer) DottedPath() []physics.Point {
	return r.dotted.AppendTo(nil)
}

// project maps a world point to pixels with the launch point on the muzzle.
func (r *Renderer) project(p physics.Point) (int, int) {
	p.X += r.offset.X
	p.Y -= r.offset.Y
	return WorldToScreen(p, r.camera.OffsetX)
}

// ProjectBody returns where the body of the last simulation frame is drawn.
func (r *Renderer) ProjectBody() (int, int) {
	return r.project(r.engine.Sample().Position)
}
