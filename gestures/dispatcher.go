package gestures

import (
	"github.com/mobile-next/gestured/utils"
)

// DefaultThreshold is the minimum swipe length, in libinput's
// device-independent units, that counts as a deliberate gesture.
const DefaultThreshold = 125.0

// Launcher starts a command without waiting for it.
type Launcher interface {
	Launch(command string)
}

// Dispatcher matches completed swipes against the configured bindings.
type Dispatcher struct {
	bindings  []Binding
	threshold float64
	launcher  Launcher
}

func NewDispatcher(bindings []Binding, threshold float64, launcher Launcher) *Dispatcher {
	return &Dispatcher{
		bindings:  bindings,
		threshold: threshold,
		launcher:  launcher,
	}
}

// Complete handles a finished swipe: swipes no longer than the threshold are
// dropped, everything else is classified and dispatched.
func (d *Dispatcher) Complete(fingers int, dx, dy float64) {
	length := Length(dx, dy)
	if !(length > d.threshold) {
		utils.Verbose("Ignoring %d finger swipe of length %.1f (threshold %.1f)", fingers, length, d.threshold)
		return
	}

	dir := Classify(dx, dy)
	utils.Verbose("Swipe %s with %d fingers, length %.1f, angle %.1f", dir, fingers, length, Angle(dx, dy))
	d.Dispatch(fingers, dir)
}

// Dispatch launches the command of every binding that matches, in
// configuration order. All matches fire; there is no first-match rule.
func (d *Dispatcher) Dispatch(fingers int, dir Direction) {
	for _, b := range d.bindings {
		if b.Matches(fingers, dir) {
			d.launcher.Launch(b.Command)
		}
	}
}
