package devices

import "fmt"

// EventKind identifies the stage of a swipe gesture's lifecycle.
type EventKind int

const (
	SwipeBegin EventKind = iota
	SwipeUpdate
	SwipeEnd
)

func (k EventKind) String() string {
	switch k {
	case SwipeBegin:
		return "begin"
	case SwipeUpdate:
		return "update"
	case SwipeEnd:
		return "end"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Event is a single swipe lifecycle event reported by an input device.
// DX and DY are only meaningful for SwipeUpdate.
type Event struct {
	Kind      EventKind
	Device    string
	Fingers   int
	DX        float64
	DY        float64
	Cancelled bool
}

// Begin returns a SwipeBegin event.
func Begin(fingers int) Event {
	return Event{Kind: SwipeBegin, Fingers: fingers}
}

// Update returns a SwipeUpdate event carrying an incremental motion delta.
func Update(fingers int, dx, dy float64) Event {
	return Event{Kind: SwipeUpdate, Fingers: fingers, DX: dx, DY: dy}
}

// End returns a SwipeEnd event.
func End(fingers int) Event {
	return Event{Kind: SwipeEnd, Fingers: fingers}
}
