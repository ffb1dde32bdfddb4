package gestures

// SwipeState accumulates the displacement of the swipe in progress.
// The zero value is ready to use.
type SwipeState struct {
	DX float64
	DY float64
}

// Begin discards whatever was left over from the previous swipe.
func (s *SwipeState) Begin() {
	s.DX = 0
	s.DY = 0
}

func (s *SwipeState) Update(dx, dy float64) {
	s.DX += dx
	s.DY += dy
}

// End returns the accumulated vector. The state is not reset until the
// next Begin.
func (s *SwipeState) End() (float64, float64) {
	return s.DX, s.DY
}
