package gestures

import (
	"fmt"
	"math"
)

// Direction is the resultant direction of a completed swipe.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("unknown(%d)", int(d))
	}
}

// Angle returns atan2(dy, dx) in degrees, in the range (-180, 180].
// Positive dy points down, as reported by libinput.
func Angle(dx, dy float64) float64 {
	return math.Atan2(dy, dx) * (180 / math.Pi)
}

// Length returns the Euclidean length of the swipe vector.
func Length(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}

// Classify maps a swipe vector onto one of four 90 degree sectors centered
// on the axes. Angles of exactly 45, -45, 135 and -135 degrees fall through
// to Left; (0, 0) has angle 0 and classifies as Right.
func Classify(dx, dy float64) Direction {
	angle := Angle(dx, dy)
	switch {
	case angle < 45 && angle > -45:
		return Right
	case angle > 45 && angle < 135:
		return Down
	case angle < -45 && angle > -135:
		return Up
	default:
		return Left
	}
}
