// Package replay serializes a reconstructed action sequence into a
// compact binary format an external replay driver can step through tick
// by tick. The core search never reads or writes this format itself; it
// is purely an output concern, so the layout lives here rather than in
// the pathfinder package.
package replay

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/corvid-run/pathbot/pathfinder"
	"github.com/corvid-run/pathbot/state"
)

// magic identifies the format and version: "PBRP" + format version 1,
// little-endian.
var magic = [8]byte{'P', 'B', 'R', 'P', 0x01, 0x00, 0x00, 0x00}

// TickRate is the nominal playback rate every replay assumes, matching
// the simulator's fixed 1/240s tick.
const TickRate uint32 = 240

// actionCode maps state.Action to its on-wire byte. Action.None is never
// written as a record; a reader holds the previous action until the next
// one, so only Press/Release transitions are recorded.
func actionCode(a state.Action) uint8 {
	switch a {
	case state.Press:
		return 1
	case state.Release:
		return 2
	default:
		return 0
	}
}

// Write encodes path as a sequence of (tick, action) transition records
// and the total tick count, matching the nominal 240Hz replay rate.
func Write(w io.Writer, path []pathfinder.PathStep) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.Write(magic[:]); err != nil {
		return fmt.Errorf("writing magic header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, TickRate); err != nil {
		return fmt.Errorf("writing tick rate: %w", err)
	}

	type record struct {
		tick uint32
		code uint8
	}
	var records []record

	var tick uint32
	for _, step := range path {
		durationTicks := uint32(step.Duration*float32(TickRate) + 0.5)
		if code := actionCode(step.Action); code != 0 {
			records = append(records, record{tick: tick, code: code})
		}
		tick += durationTicks
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(len(records))); err != nil {
		return fmt.Errorf("writing event count: %w", err)
	}
	for _, r := range records {
		if err := binary.Write(bw, binary.LittleEndian, r.tick); err != nil {
			return fmt.Errorf("writing record tick: %w", err)
		}
		if err := binary.Write(bw, binary.LittleEndian, r.code); err != nil {
			return fmt.Errorf("writing record action: %w", err)
		}
	}
	if err := binary.Write(bw, binary.LittleEndian, tick); err != nil {
		return fmt.Errorf("writing total tick count: %w", err)
	}

	return bw.Flush()
}

// Event is a single decoded action transition.
type Event struct {
	Tick   uint32
	Action state.Action
}

// Replay is a fully decoded binary replay: every transition plus the
// total run length in ticks.
type Replay struct {
	TickRate   uint32
	Events     []Event
	TotalTicks uint32
}

// Read decodes a replay previously written by Write.
func Read(r io.Reader) (*Replay, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("reading magic header: %w", err)
	}
	if header != magic {
		return nil, fmt.Errorf("unrecognized replay format header %v", header)
	}

	var tickRate, eventCount uint32
	if err := binary.Read(r, binary.LittleEndian, &tickRate); err != nil {
		return nil, fmt.Errorf("reading tick rate: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &eventCount); err != nil {
		return nil, fmt.Errorf("reading event count: %w", err)
	}

	events := make([]Event, 0, eventCount)
	for i := uint32(0); i < eventCount; i++ {
		var tick uint32
		var code uint8
		if err := binary.Read(r, binary.LittleEndian, &tick); err != nil {
			return nil, fmt.Errorf("reading record %d tick: %w", i, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &code); err != nil {
			return nil, fmt.Errorf("reading record %d action: %w", i, err)
		}

		var action state.Action
		switch code {
		case 1:
			action = state.Press
		case 2:
			action = state.Release
		default:
			return nil, fmt.Errorf("record %d has invalid action code %d", i, code)
		}
		events = append(events, Event{Tick: tick, Action: action})
	}

	var totalTicks uint32
	if err := binary.Read(r, binary.LittleEndian, &totalTicks); err != nil {
		return nil, fmt.Errorf("reading total tick count: %w", err)
	}

	return &Replay{TickRate: tickRate, Events: events, TotalTicks: totalTicks}, nil
}
