// internal/scene/screen.go
package scene

// Screen selects what Render draws. Values match the device's screen ids.
type Screen int

const (
	ScreenBoot Screen = iota
	ScreenHeight
	ScreenGravity
	ScreenMorse
	ScreenAngle
	ScreenVelocity
	ScreenSimulation
	ScreenResults
)

var screenNames = [...]string{
	ScreenBoot:       "boot",
	ScreenHeight:     "height",
	ScreenGravity:    "gravity",
	ScreenMorse:      "morse",
	ScreenAngle:      "angle",
	ScreenVelocity:   "velocity",
	ScreenSimulation: "simulation",
	ScreenResults:    "results",
}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "unknown"
	}
	return screenNames[s]
}
