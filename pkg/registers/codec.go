package registers

import "fmt"

// Decode extracts the field's value from a register byte.
func (f *Bitfield) Decode(b uint8) uint32 {
	return (uint32(b) >> uint32(f.Low)) & f.Mask()
}

// Encode merges v into the field's bit span of current, leaving all other
// bits, including reserved ones, unchanged. Registers multiplex independent
// chip behaviors per byte, so a field write must never disturb its siblings.
func (f *Bitfield) Encode(current uint8, v uint32) (uint8, error) {
	if v > f.Mask() {
		return 0, fmt.Errorf("field %s: value 0x%X exceeds %d-bit width: %w",
			f.Name, v, f.Width(), ErrValueOutOfRange)
	}
	cleared := current &^ uint8(f.Mask() << uint32(f.Low))
	return cleared | uint8(v<<uint32(f.Low)), nil
}

// EncodeBits is Encode with the value given as a bit string, most significant
// bit first ("011" for a 3-bit field). The string length must equal the
// field's width.
func (f *Bitfield) EncodeBits(current uint8, bits string) (uint8, error) {
	if len(bits) != int(f.Width()) {
		return 0, fmt.Errorf("field %s: bit string %q has length %d, want %d: %w",
			f.Name, bits, len(bits), f.Width(), ErrMalformedBinaryString)
	}
	var v uint32
	for _, c := range bits {
		switch c {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			return 0, fmt.Errorf("field %s: bit string %q contains %q: %w",
				f.Name, bits, c, ErrMalformedBinaryString)
		}
	}
	return f.Encode(current, v)
}

// DecodeAll decodes every defined field of the register from a byte.
// Reserved bits are omitted, not zero-filled.
func (r *Register) DecodeAll(b uint8) map[string]uint32 {
	out := make(map[string]uint32, len(r.Fields))
	for i := range r.Fields {
		f := &r.Fields[i]
		out[f.Name] = f.Decode(b)
	}
	return out
}
