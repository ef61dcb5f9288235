package registers

import (
	"errors"
	"testing"
)

var sampleBytes = []uint8{0x00, 0xFF, 0xA5, 0x5A, 0x3C, 0xC3}

func TestCodecRoundTripIsIdentity(t *testing.T) {
	// re-encoding a field's own decoded value must not change the byte
	for _, r := range All() {
		for i := range r.Fields {
			f := &r.Fields[i]
			for _, b := range sampleBytes {
				enc, err := f.Encode(b, f.Decode(b))
				if err != nil {
					t.Fatalf("%s.%s: Encode failed: %v", r.Name, f.Name, err)
				}
				if enc != b {
					t.Errorf("%s.%s: round trip changed 0x%02X to 0x%02X", r.Name, f.Name, b, enc)
				}
			}
		}
	}
}

func TestEncodePreservesSiblingBits(t *testing.T) {
	for _, r := range All() {
		for i := range r.Fields {
			f := &r.Fields[i]
			span := uint8(f.Mask() << uint32(f.Low))
			for _, b := range sampleBytes {
				for _, v := range []uint32{0, f.Mask(), f.Mask() >> 1} {
					enc, err := f.Encode(b, v)
					if err != nil {
						t.Fatalf("%s.%s: Encode failed: %v", r.Name, f.Name, err)
					}
					if f.Decode(enc) != v {
						t.Errorf("%s.%s: wrote %d, decoded %d", r.Name, f.Name, v, f.Decode(enc))
					}
					if enc&^span != b&^span {
						t.Errorf("%s.%s: Encode(0x%02X, %d) disturbed bits outside the span: 0x%02X",
							r.Name, f.Name, b, v, enc)
					}
				}
			}
		}
	}
}

func TestEncodeOutOfRange(t *testing.T) {
	f, err := FieldByName("MDMCFG4", "CHANBW_M[1:0]")
	if err != nil {
		t.Fatalf("FieldByName failed: %v", err)
	}
	if _, err := f.Encode(0x00, 4); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("error = %v, want ErrValueOutOfRange", err)
	}
}

func TestEncodeBits(t *testing.T) {
	f, err := FieldByName("MDMCFG2", "MOD_FORMAT[2:0]")
	if err != nil {
		t.Fatalf("FieldByName failed: %v", err)
	}
	// MOD_FORMAT occupies bits 6:4
	enc, err := f.EncodeBits(0x02, "011")
	if err != nil {
		t.Fatalf("EncodeBits failed: %v", err)
	}
	if enc != 0x32 {
		t.Errorf("EncodeBits = 0x%02X, want 0x32", enc)
	}

	numeric, err := f.Encode(0x02, 3)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if enc != numeric {
		t.Errorf("bit-string and numeric encodings differ: 0x%02X vs 0x%02X", enc, numeric)
	}
}

func TestEncodeBitsMalformed(t *testing.T) {
	mod, err := FieldByName("MDMCFG2", "MOD_FORMAT[2:0]")
	if err != nil {
		t.Fatalf("FieldByName failed: %v", err)
	}
	manchester, err := FieldByName("MDMCFG2", "MANCHESTER_EN")
	if err != nil {
		t.Fatalf("FieldByName failed: %v", err)
	}

	cases := []struct {
		f    *Bitfield
		bits string
	}{
		{manchester, "10"}, // too long for a 1-bit field
		{mod, "01"},        // too short
		{mod, "0110"},      // too long
		{mod, "01x"},       // bad character
		{mod, ""},          // empty
	}
	for _, c := range cases {
		if _, err := c.f.EncodeBits(0x00, c.bits); !errors.Is(err, ErrMalformedBinaryString) {
			t.Errorf("EncodeBits(%s, %q) error = %v, want ErrMalformedBinaryString",
				c.f.Name, c.bits, err)
		}
	}
}

func TestDecodeAll(t *testing.T) {
	r, err := ByName("MDMCFG4")
	if err != nil {
		t.Fatalf("ByName failed: %v", err)
	}
	fields := r.DecodeAll(0x8C)
	if fields["CHANBW_E[1:0]"] != 2 || fields["CHANBW_M[1:0]"] != 0 || fields["DRATE_E[3:0]"] != 0xC {
		t.Errorf("DecodeAll(0x8C) = %v", fields)
	}

	// reserved bits are omitted, not reported as zero
	pktctrl0, err := ByName("PKTCTRL0")
	if err != nil {
		t.Fatalf("ByName failed: %v", err)
	}
	decoded := r.DecodeAll(0xFF)
	if len(decoded) != len(r.Fields) {
		t.Errorf("DecodeAll reported %d fields, register defines %d", len(decoded), len(r.Fields))
	}
	if _, ok := pktctrl0.DecodeAll(0xFF)["RESERVED"]; ok {
		t.Error("reserved bits must not appear in DecodeAll output")
	}
}
