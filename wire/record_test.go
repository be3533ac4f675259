package wire

import "testing"

// TestRecordSingleByteRoundTrip is scenario 1: an aligned uint8_t round
// trips through a 1-byte buffer.
func TestRecordSingleByteRoundTrip(t *testing.T) {
	f := NewField(uint8(0xFF))
	r := NewRecord(f)

	buf := make([]byte, 1)
	cursor := uint(0)
	if res := r.Encode(buf, &cursor); !res.IsSuccess() {
		t.Fatalf("Encode failed")
	}
	if cursor != 8 {
		t.Fatalf("cursor = %d, want 8", cursor)
	}
	if buf[0] != 0xFF {
		t.Fatalf("buf = %#v, want {0xff}", buf)
	}

	dst := NewField(uint8(0))
	r2 := NewRecord(dst)
	cursor = 0
	if res := r2.Decode(buf, &cursor); !res.IsSuccess() {
		t.Fatalf("Decode failed")
	}
	if FieldValue[uint8](r2, 0) != 0xFF {
		t.Fatalf("decoded value = %#x, want 0xff", FieldValue[uint8](r2, 0))
	}
}

// TestRecordBitPackedFourFields is scenario 2 at the Record level.
func TestRecordBitPackedFourFields(t *testing.T) {
	r := NewRecord(Bits8(3, 0x06), Bits8(4, 0x0A), Bits8(6, 0x15), Bits8(3, 0x03))

	if r.SizeBits() != 16 {
		t.Fatalf("SizeBits() = %d, want 16", r.SizeBits())
	}

	buf := make([]byte, 2)
	cursor := uint(0)
	if res := r.Encode(buf, &cursor); !res.IsSuccess() {
		t.Fatalf("Encode failed")
	}
	if cursor != 16 {
		t.Fatalf("cursor = %d, want 16", cursor)
	}
	want := []byte{0xD6, 0x6A}
	if buf[0] != want[0] || buf[1] != want[1] {
		t.Fatalf("buf = %#v, want %#v", buf, want)
	}
}

// TestRecordCrossByteBitFields is scenario 3: four bit fields of widths
// 13, 17, 9, 9 splice across six bytes.
func TestRecordCrossByteBitFields(t *testing.T) {
	r := NewRecord(Bits16(13, 0x0AD6), Bits32(17, 0x56B3), Bits16(9, 0x015B), Bits16(9, 0x0195))

	buf := make([]byte, 6)
	cursor := uint(0)
	if res := r.Encode(buf, &cursor); !res.IsSuccess() {
		t.Fatalf("Encode failed")
	}
	if cursor != 48 {
		t.Fatalf("cursor = %d, want 48", cursor)
	}
	want := []byte{0xD6, 0x6A, 0xD6, 0xCA, 0xD6, 0xCA}
	for i, b := range want {
		if buf[i] != b {
			t.Fatalf("buf[%d] = %#x, want %#x (buf=%#v)", i, buf[i], b, buf)
		}
	}
}

// TestRecordPaddingBetweenAlignedFields is scenario 4: Bit, uint8_t, bool,
// BitField<14>, uint16_t, exercising padding between aligned fields.
func TestRecordPaddingBetweenAlignedFields(t *testing.T) {
	r := NewRecord(Bit(false), NewField(uint8(255)), NewField(true), Bits16(14, 0x1FFF), NewField(uint16(0xA55A)))

	if r.SizeBits() != 56 {
		t.Fatalf("SizeBits() = %d, want 56", r.SizeBits())
	}
	if r.SizeBytes() != 7 {
		t.Fatalf("SizeBytes() = %d, want 7", r.SizeBytes())
	}

	buf := make([]byte, 7)
	cursor := uint(0)
	if res := r.Encode(buf, &cursor); !res.IsSuccess() {
		t.Fatalf("Encode failed")
	}
	want := []byte{0x00, 0xFF, 0x01, 0xFF, 0x1F, 0x5A, 0xA5}
	for i, b := range want {
		if buf[i] != b {
			t.Fatalf("buf[%d] = %#x, want %#x (buf=%#v)", i, buf[i], b, buf)
		}
	}
}

// TestRecordEncodeAtNonzeroStartOffset is scenario 5.
func TestRecordEncodeAtNonzeroStartOffset(t *testing.T) {
	r := NewRecord(NewField(uint8(0xFF)))

	buf := make([]byte, 2)
	cursor := uint(3)
	if res := r.Encode(buf, &cursor); !res.IsSuccess() {
		t.Fatalf("Encode failed")
	}
	if buf[0] != 0x00 || buf[1] != 0xFF {
		t.Fatalf("buf = %#v, want {0x00 0xff}", buf)
	}
	if cursor != 16 {
		t.Fatalf("cursor = %d, want 16", cursor)
	}
}

// TestRecordOverflowRefusal is scenario 6: a record sized 5 bytes refuses
// to encode into a 2-byte buffer and leaves cursor untouched.
func TestRecordOverflowRefusal(t *testing.T) {
	r := NewRecord(NewField(uint8(0)), NewField(uint32(0)))
	if r.SizeBytes() != 5 {
		t.Fatalf("SizeBytes() = %d, want 5", r.SizeBytes())
	}

	buf := make([]byte, 2)
	cursor := uint(1)
	if res := r.Encode(buf, &cursor); res.IsSuccess() {
		t.Fatalf("Encode succeeded against an undersized buffer")
	}
	if cursor != 1 {
		t.Fatalf("cursor = %d, want unchanged 1", cursor)
	}
}

// TestRecordNested is scenario 7: a record containing a Nested record,
// padded to a byte boundary before the nested record begins.
func TestRecordNested(t *testing.T) {
	inner := NewRecord(Bit(false), Bits16(15, 0x5A5A))
	r := NewRecord(Bits8(4, 0x0F), Bits16(11, 0x5A4), Bit(true), Bit(false), NewNested(inner), NewField(int8(-42)))

	if r.SizeBits() != 48 {
		t.Fatalf("SizeBits() = %d, want 48", r.SizeBits())
	}

	buf := make([]byte, 6)
	cursor := uint(0)
	if res := r.Encode(buf, &cursor); !res.IsSuccess() {
		t.Fatalf("Encode failed")
	}
	want := []byte{0x4F, 0xDA, 0x00, 0xB4, 0xB4, 0xD6}
	for i, b := range want {
		if buf[i] != b {
			t.Fatalf("buf[%d] = %#x, want %#x (buf=%#v)", i, buf[i], b, buf)
		}
	}

	decoded := NewRecord(Bits8(4, 0), Bits16(11, 0), Bit(false), Bit(false),
		NewNested(NewRecord(Bit(false), Bits16(15, 0))), NewField(int8(0)))
	cursor = 0
	if res := decoded.Decode(buf, &cursor); !res.IsSuccess() {
		t.Fatalf("Decode failed")
	}
	if BitFieldValue[uint8](decoded, 0) != 0x0F {
		t.Fatalf("field 0 = %#x, want 0x0f", BitFieldValue[uint8](decoded, 0))
	}
	if BitFieldValue[uint16](decoded, 1) != 0x5A4 {
		t.Fatalf("field 1 = %#x, want 0x5a4", BitFieldValue[uint16](decoded, 1))
	}
	if BitFieldValue[bool](decoded, 2) != true || BitFieldValue[bool](decoded, 3) != false {
		t.Fatalf("Bit fields 2,3 mismatch")
	}
	innerDecoded := NestedValue(decoded, 4)
	if BitFieldValue[bool](innerDecoded, 0) != false {
		t.Fatalf("nested Bit mismatch")
	}
	if BitFieldValue[uint16](innerDecoded, 1) != 0x5A5A {
		t.Fatalf("nested BitField15 = %#x, want 0x5a5a", BitFieldValue[uint16](innerDecoded, 1))
	}
	if FieldValue[int8](decoded, 5) != -42 {
		t.Fatalf("field 5 = %d, want -42", FieldValue[int8](decoded, 5))
	}
}

// TestRecordConstBitFieldIdentityOnDecode checks that a ConstBitField's
// decode leaves the stored value unchanged while still advancing cursor.
func TestRecordConstBitFieldIdentityOnDecode(t *testing.T) {
	r := NewRecord(ConstBits8(4, 0x0A), NewField(uint8(0x11)))
	buf := make([]byte, 2)
	cursor := uint(0)
	if res := r.Encode(buf, &cursor); !res.IsSuccess() {
		t.Fatalf("Encode failed")
	}

	r2 := NewRecord(ConstBits8(4, 0x0A), NewField(uint8(0)))
	cursor = 0
	if res := r2.Decode(buf, &cursor); !res.IsSuccess() {
		t.Fatalf("Decode failed")
	}
	if ConstFieldValue[uint8](r2, 0) != 0x0A {
		t.Fatalf("ConstBitField value changed by decode: got %#x, want 0x0a", ConstFieldValue[uint8](r2, 0))
	}
	if FieldValue[uint8](r2, 1) != 0x11 {
		t.Fatalf("field 1 = %#x, want 0x11", FieldValue[uint8](r2, 1))
	}
}

// TestRecordNumFields checks the field count is reported as built.
func TestRecordNumFields(t *testing.T) {
	r := NewRecord(Bit(true), NewField(uint8(0)), Bits8(3, 0))
	if r.NumFields() != 3 {
		t.Fatalf("NumFields() = %d, want 3", r.NumFields())
	}
}
