// internal/config/config.go
package config

import "time"

// Display geometry (SSD1306 128x64 panel)
const (
	ScreenWidth  = 128
	ScreenHeight = 64

	GroundY           = 56
	CannonX           = 10
	CannonY           = GroundY
	CannonLength      = 15
	CannonMouthOffset = 2
	BallRadius        = 2

	HUDOffsetX    = 50
	HUDLineHeight = 8

	// Cannon is still drawn while its screen x is inside (CannonMarginLeft, ScreenWidth).
	CannonMarginLeft = -20

	GroundDotSpacing = 8
	HeightMarkerStep = 4
	HeightPixelScale = 2
)

// Physics
const (
	EarthGravity = 9.81
	MoonGravity  = 1.62
	MinGravity   = 0.1
	MaxGravity   = 20.0
	GravityStep  = 0.1

	// Bounce is disabled on this device.
	Restitution        = 0.0
	HorizontalFriction = 1.0
	MaxBounces         = 0

	MinHeight  = 0.0
	MaxHeight  = 50.0
	HeightStep = 0.5

	MinAngle  = 0.0
	MaxAngle  = 90.0
	AngleStep = 0.5

	MinVelocity  = 1.0
	MaxVelocity  = 50.0
	VelocityStep = 0.5

	SimulationDT = 0.033 // seconds per physics step
)

// Buffers
const (
	MaxPredictionPoints = 60
	MaxTrailPoints      = 8
	MaxDottedPoints     = 60

	TrailAgeStep = 8
	TrailAgeMax  = 255

	// Trail point is drawn while 255 - age*TrailFadeFactor stays above TrailAlphaFloor.
	TrailFadeFactor = 20
	TrailAlphaFloor = 30
)

// Velocity vector glyph
const (
	VectorScale     = 0.8 // pixels per m/s
	MaxVectorLength = 20
	VectorArrowSize = 3
)

// Boot animation
const (
	BootStarCount   = 15
	BootPhaseFrames = 24
	BootRocketX     = 64
	BootTitlePhase  = 8
)

// Timing
const (
	FrameInterval    = 33 * time.Millisecond
	BootDuration     = 2500 * time.Millisecond
	BootPhaseStep    = 100 * time.Millisecond
	DebounceInterval = 30 * time.Millisecond
	HoldStart        = 350 * time.Millisecond
	HoldRepeat       = 80 * time.Millisecond
	HoldRepeatFast   = 40 * time.Millisecond
	HoldAccelerate   = 1200 * time.Millisecond
	LongPress        = 1000 * time.Millisecond
)

// Buzzer
const (
	BeepShort          = 100 * time.Millisecond
	BeepMedium         = 200 * time.Millisecond
	BeepLong           = 500 * time.Millisecond
	BeepError          = 300 * time.Millisecond
	FlightBeepInterval = 150 * time.Millisecond
	FlightClick        = 5 * time.Millisecond
	BeepFrequency      = 2000.0 // Hz
)

// Morse entry
const (
	MorseMaxSymbols = 6
	MorseMaxDigits  = 6
)
