package replay

import (
	"bytes"
	"testing"

	"github.com/corvid-run/pathbot/pathfinder"
	"github.com/corvid-run/pathbot/state"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := []pathfinder.PathStep{
		{Action: state.None, Duration: 1.0 / 240 * 10},
		{Action: state.Press, Duration: 1.0 / 240},
		{Action: state.None, Duration: 1.0 / 240 * 30},
		{Action: state.Release, Duration: 1.0 / 240},
		{Action: state.None, Duration: 1.0 / 240 * 5},
	}

	var buf bytes.Buffer
	if err := Write(&buf, path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	rep, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if rep.TickRate != TickRate {
		t.Fatalf("tick rate = %d, want %d", rep.TickRate, TickRate)
	}
	if len(rep.Events) != 2 {
		t.Fatalf("expected 2 transition events, got %d: %+v", len(rep.Events), rep.Events)
	}
	if rep.Events[0].Action != state.Press || rep.Events[0].Tick != 10 {
		t.Fatalf("unexpected first event: %+v", rep.Events[0])
	}
	if rep.Events[1].Action != state.Release || rep.Events[1].Tick != 41 {
		t.Fatalf("unexpected second event: %+v", rep.Events[1])
	}
	if rep.TotalTicks != 47 {
		t.Fatalf("total ticks = %d, want 47", rep.TotalTicks)
	}
}

func TestReadRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("not a replay file at all")
	if _, err := Read(buf); err == nil {
		t.Fatal("expected an error for an invalid header")
	}
}

func TestWriteEmitsNoRecordsForPureHold(t *testing.T) {
	path := []pathfinder.PathStep{{Action: state.None, Duration: 1.0}}

	var buf bytes.Buffer
	if err := Write(&buf, path); err != nil {
		t.Fatalf("Write: %v", err)
	}
	rep, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(rep.Events) != 0 {
		t.Fatalf("expected no transition events, got %+v", rep.Events)
	}
}
