package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/TheBadkraft/sigui"
	"github.com/TheBadkraft/sigui/backend/terminal"
)

// endlessKeys never runs out of events.
type endlessKeys struct{}

func (endlessKeys) PollEvent() tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
}

func TestPumpEventsStopsWhenBufferFull(t *testing.T) {
	events := make(chan tcell.Event, 1)
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		pumpEvents(endlessKeys{}, events, stop)
		close(done)
	}()

	close(stop)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pumpEvents did not return after stop")
	}

	// events is closed once the pump exits
	for range events {
	}
}

type finishedScreen struct{}

func (finishedScreen) PollEvent() tcell.Event { return nil }

func TestPumpEventsClosesOnFinalizedScreen(t *testing.T) {
	events := make(chan tcell.Event, 1)
	pumpEvents(finishedScreen{}, events, make(chan struct{}))
	if _, ok := <-events; ok {
		t.Error("events should be closed")
	}
}

func TestDrainTerminalEventsQuitsOnEscape(t *testing.T) {
	events := make(chan tcell.Event, 2)
	events <- tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)

	input := terminal.NewInputAdapter()
	if err := drainTerminalEvents(events, input); err != errQuit {
		t.Errorf("err = %v, want errQuit", err)
	}
	if snap := input.Update(); !snap.KeyDown(sigui.KeySpace) {
		t.Error("keys before Escape should reach the adapter")
	}
}
