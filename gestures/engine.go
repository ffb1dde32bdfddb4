package gestures

import (
	"context"
	"fmt"

	"github.com/mobile-next/gestured/devices"
)

// Engine drives a single event loop: it pulls events from a source, keeps
// the in-flight swipe and hands completed swipes to the dispatcher.
// It is not safe for concurrent use.
type Engine struct {
	source     devices.EventSource
	dispatcher *Dispatcher
	state      SwipeState
}

func NewEngine(source devices.EventSource, dispatcher *Dispatcher) *Engine {
	return &Engine{
		source:     source,
		dispatcher: dispatcher,
	}
}

// Run blocks on the source until it fails or ctx is cancelled. A source
// error is returned as-is; the loop never retries.
func (e *Engine) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := e.source.Dispatch(); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("failed to dispatch input events: %w", err)
		}

		for {
			event, ok := e.source.NextEvent()
			if !ok {
				break
			}
			e.Handle(event)
		}
	}
}

// Handle applies one event to the swipe state.
func (e *Engine) Handle(event devices.Event) {
	switch event.Kind {
	case devices.SwipeBegin:
		e.state.Begin()
	case devices.SwipeUpdate:
		e.state.Update(event.DX, event.DY)
	case devices.SwipeEnd:
		dx, dy := e.state.End()
		e.dispatcher.Complete(event.Fingers, dx, dy)
	}
}

// State returns a copy of the in-flight swipe.
func (e *Engine) State() SwipeState {
	return e.state
}
