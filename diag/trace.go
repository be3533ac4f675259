package diag

import (
	"fmt"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/tinylib/msgp/msgp"
)

// TraceEntry is one compact record of a session transfer's outcome,
// appended to a MessagePack-encoded trace buffer rather than logged as
// structured text — the volume of these at the transfer layer favors a
// binary sink over zap's formatting.
type TraceEntry struct {
	ID    ksuid.KSUID
	State uint8
	At    time.Time
}

// AppendTrace appends entry to b as a three-element MessagePack array and
// returns the grown slice, using msgp's direct AppendXxx functions rather
// than a generated Marshaler.
func AppendTrace(b []byte, entry TraceEntry) []byte {
	b = msgp.AppendArrayHeader(b, 3)
	b = msgp.AppendString(b, entry.ID.String())
	b = msgp.AppendUint8(b, entry.State)
	b = msgp.AppendTime(b, entry.At)
	return b
}

// ReadTrace decodes one TraceEntry from the front of b and returns the
// remaining bytes.
func ReadTrace(b []byte) (TraceEntry, []byte, error) {
	var entry TraceEntry

	sz, b, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil {
		return entry, nil, fmt.Errorf("diag: trace array header: %w", err)
	}
	if sz != 3 {
		return entry, nil, fmt.Errorf("diag: trace entry has %d fields, want 3", sz)
	}

	idStr, b, err := msgp.ReadStringBytes(b)
	if err != nil {
		return entry, nil, fmt.Errorf("diag: trace id: %w", err)
	}
	id, err := ksuid.Parse(idStr)
	if err != nil {
		return entry, nil, fmt.Errorf("diag: trace id parse: %w", err)
	}
	entry.ID = id

	state, b, err := msgp.ReadUint8Bytes(b)
	if err != nil {
		return entry, nil, fmt.Errorf("diag: trace state: %w", err)
	}
	entry.State = state

	at, b, err := msgp.ReadTimeBytes(b)
	if err != nil {
		return entry, nil, fmt.Errorf("diag: trace time: %w", err)
	}
	entry.At = at

	return entry, b, nil
}
