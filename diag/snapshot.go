// Package diag builds structured, loggable views of wire.Record values:
// a full field-map snapshot (CBOR) for golden-file and debug dumps, and a
// compact transfer trace (MessagePack) sized for high-volume log sinks.
package diag

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Snapshot CBOR-encodes fields, a caller-built map from field name to
// decoded value, for logging or golden-file comparison. The wire package
// has no reflection over a Record's field names, so callers name their
// own fields when building the map (typically right after
// wire.FieldValue/wire.BitFieldValue calls).
func Snapshot(fields map[string]any) ([]byte, error) {
	b, err := cbor.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("diag: snapshot marshal: %w", err)
	}
	return b, nil
}

// ParseSnapshot decodes a Snapshot back into a field map, for tests that
// want to assert on individual fields without re-deriving the CBOR shape.
func ParseSnapshot(b []byte) (map[string]any, error) {
	var fields map[string]any
	if err := cbor.Unmarshal(b, &fields); err != nil {
		return nil, fmt.Errorf("diag: snapshot unmarshal: %w", err)
	}
	return fields, nil
}
