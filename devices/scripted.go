package devices

import (
	"fmt"
	"io"
)

// ScriptedSource replays a fixed list of events. The first Dispatch queues
// all of them; every later Dispatch reports io.EOF.
type ScriptedSource struct {
	Seat string

	events     []Event
	queue      []Event
	dispatched bool
	closed     bool
}

func NewScriptedSource(events ...Event) *ScriptedSource {
	return &ScriptedSource{events: events}
}

func (s *ScriptedSource) AssignSeat(seat string) error {
	s.Seat = seat
	return nil
}

func (s *ScriptedSource) Dispatch() error {
	if s.closed {
		return fmt.Errorf("source closed")
	}
	if s.dispatched {
		return io.EOF
	}
	s.dispatched = true
	s.queue = append(s.queue, s.events...)
	return nil
}

func (s *ScriptedSource) NextEvent() (Event, bool) {
	if len(s.queue) == 0 {
		return Event{}, false
	}
	event := s.queue[0]
	s.queue = s.queue[1:]
	return event, true
}

func (s *ScriptedSource) Close() error {
	s.closed = true
	return nil
}
