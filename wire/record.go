package wire

// Nested wraps a *Record as a field inside another Record. A Nested field
// is aligned: like Field, it pads the cursor forward to the next byte
// boundary before it begins, and — because every Record's own tail is
// itself padded to a byte boundary — it always leaves the cursor aligned
// for whatever follows it.
type Nested struct {
	Value *Record
}

// NewNested wraps v as a Nested field.
func NewNested(v *Record) *Nested {
	return &Nested{Value: v}
}

func (n *Nested) sizeBits() uint    { return n.Value.SizeBits() }
func (n *Nested) padsBefore() bool  { return true }
func (n *Nested) encodeField(buf []byte, cursor *uint) Result { return n.Value.Encode(buf, cursor) }
func (n *Nested) decodeField(buf []byte, cursor *uint) Result { return n.Value.Decode(buf, cursor) }

// Record is an ordered, heterogeneous, fixed-length sequence of fields.
// NumFields, SizeBits, and SizeBytes are computed once, at construction,
// and cached — Go's analogue of the original design's compile-time
// constants (see DESIGN.md OQ-1).
//
// Two Records built by the same factory function (the same ordered field
// kinds and bit widths) always report identical SizeBits/SizeBytes; it is
// the caller's responsibility to build a given logical record "type"
// through one factory function so that invariant holds.
type Record struct {
	fields   []fieldKind
	sizeBits uint
}

// NewRecord composes fields, in the order given, into a Record.
func NewRecord(fields ...fieldKind) *Record {
	r := &Record{fields: fields}

	cursor := uint(0)
	for _, f := range fields {
		if f.padsBefore() {
			cursor = nextByteBoundary(cursor)
		}
		cursor += f.sizeBits()
	}
	r.sizeBits = nextByteBoundary(cursor)
	return r
}

// NumFields returns the number of fields the Record holds.
func (r *Record) NumFields() int { return len(r.fields) }

// SizeBits returns the Record's total encoded size in bits, including
// padding. It is always a multiple of 8.
func (r *Record) SizeBits() uint { return r.sizeBits }

// SizeBytes returns the Record's total encoded size in bytes.
func (r *Record) SizeBytes() uint { return bytesToContain(r.sizeBits) }

// Encode copies every field's value into buf, in declaration order,
// padding byte-aligned and nested fields to the next byte boundary and
// bit-packing adjacent bit fields. On success cursor is advanced to the
// byte boundary following the last field; on failure cursor is left
// unchanged and buf's contents are undefined beyond the byte the failing
// field started at.
func (r *Record) Encode(buf []byte, cursor *uint) Result {
	byteStart := bytesToContain(*cursor)
	if byteStart+r.SizeBytes() > uint(len(buf)) {
		return Failure()
	}

	local := bitsToContain(byteStart)
	for _, f := range r.fields {
		if f.encodeField(buf, &local).IsFailure() {
			return Failure()
		}
	}

	*cursor = nextByteBoundary(local)
	return Success()
}

// Decode is the inverse of Encode.
func (r *Record) Decode(buf []byte, cursor *uint) Result {
	byteStart := bytesToContain(*cursor)
	if byteStart+r.SizeBytes() > uint(len(buf)) {
		return Failure()
	}

	local := bitsToContain(byteStart)
	for _, f := range r.fields {
		if f.decodeField(buf, &local).IsFailure() {
			return Failure()
		}
	}

	*cursor = nextByteBoundary(local)
	return Success()
}

// Clone returns a Record with an independent copy of the field slice
// header. Field values are not deep-copied field by field — that is only
// needed when a caller intends to decode into one Record while retaining
// another's values, which Clone's callers do explicitly rather than by
// accidental aliasing of the variadic slice passed to NewRecord.
func (r *Record) Clone() *Record {
	fields := make([]fieldKind, len(r.fields))
	copy(fields, r.fields)
	return &Record{fields: fields, sizeBits: r.sizeBits}
}

// FieldValue reads the value stored at index, which must have been built
// as a *Field[T]. It panics if index is out of range or was built as a
// different field kind — the Go analogue of the original design's
// compile-time field-kind mismatch being a build error.
func FieldValue[T Primitive](r *Record, index int) T {
	return r.fields[index].(*Field[T]).Value
}

// SetFieldValue writes v into the *Field[T] stored at index.
func SetFieldValue[T Primitive](r *Record, index int, v T) {
	r.fields[index].(*Field[T]).Value = v
}

// BitFieldValue reads the value stored at index, which must have been
// built as a *BitField[T].
func BitFieldValue[T BitCarrier](r *Record, index int) T {
	return r.fields[index].(*BitField[T]).Value
}

// SetBitFieldValue writes v into the *BitField[T] stored at index.
func SetBitFieldValue[T BitCarrier](r *Record, index int, v T) {
	r.fields[index].(*BitField[T]).Value = v
}

// ConstFieldValue reads the value stored at index, which must have been
// built as a ConstBitField[T].
func ConstFieldValue[T BitCarrier](r *Record, index int) T {
	return r.fields[index].(ConstBitField[T]).Value
}

// NestedValue returns the nested Record stored at index, which must have
// been built with NewNested.
func NestedValue(r *Record, index int) *Record {
	return r.fields[index].(*Nested).Value
}
