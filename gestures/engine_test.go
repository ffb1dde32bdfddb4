package gestures

import (
	"context"
	"io"
	"testing"

	"github.com/mobile-next/gestured/devices"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_RunDispatchesCompletedSwipes(t *testing.T) {
	source := devices.NewScriptedSource(
		devices.Begin(3),
		devices.Update(3, 80, 1),
		devices.Update(3, 120, -1),
		devices.End(3),
		devices.Begin(4),
		devices.Update(4, 0, -65),
		devices.Update(4, 0, -65),
		devices.End(4),
	)
	launcher := &recordingLauncher{}
	d := NewDispatcher(mustBindings(t, "3,L,R,echo hi", "4,D,U,notify-send up"), DefaultThreshold, launcher)

	err := NewEngine(source, d).Run(context.Background())

	require.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []string{"echo hi", "notify-send up"}, launcher.commands)
}

func TestEngine_BeginResetsPreviousSwipe(t *testing.T) {
	launcher := &recordingLauncher{}
	d := NewDispatcher(mustBindings(t, "3,L,R,echo hi"), DefaultThreshold, launcher)
	e := NewEngine(devices.NewScriptedSource(), d)

	e.Handle(devices.Begin(3))
	e.Handle(devices.Update(3, 3, 4))
	e.Handle(devices.End(3))
	assert.Equal(t, SwipeState{DX: 3, DY: 4}, e.State())

	e.Handle(devices.Begin(3))
	e.Handle(devices.End(3))
	assert.Equal(t, SwipeState{}, e.State())
	assert.Empty(t, launcher.commands)
}

func TestEngine_LeftoverStateIsReplacedBeforeUse(t *testing.T) {
	launcher := &recordingLauncher{}
	d := NewDispatcher(mustBindings(t, "3,L,R,echo hi"), DefaultThreshold, launcher)
	e := NewEngine(devices.NewScriptedSource(), d)

	e.Handle(devices.Begin(3))
	e.Handle(devices.Update(3, 500, 0))
	e.Handle(devices.End(3))
	require.Len(t, launcher.commands, 1)

	e.Handle(devices.Begin(3))
	e.Handle(devices.Update(3, 10, 0))
	e.Handle(devices.End(3))
	assert.Len(t, launcher.commands, 1)
}

func TestEngine_RunStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDispatcher(nil, DefaultThreshold, &recordingLauncher{})
	err := NewEngine(devices.NewScriptedSource(devices.Begin(3)), d).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_RunReturnsSourceError(t *testing.T) {
	source := devices.NewScriptedSource()
	require.NoError(t, source.Close())

	d := NewDispatcher(nil, DefaultThreshold, &recordingLauncher{})
	err := NewEngine(source, d).Run(context.Background())

	assert.ErrorContains(t, err, "failed to dispatch input events")
}
