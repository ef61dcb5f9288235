package registers

import "errors"

// Register model errors
var (
	// ErrUnknownRegister indicates no register matches the given name or address
	ErrUnknownRegister = errors.New("unknown register")

	// ErrUnknownBitfield indicates the register exists but has no such field
	ErrUnknownBitfield = errors.New("unknown bitfield")

	// ErrValueOutOfRange indicates a value does not fit the field's bit width
	// or a unit conversion left the representable range
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrMalformedBinaryString indicates a bit-string value has the wrong
	// length for the field or contains characters other than '0' and '1'
	ErrMalformedBinaryString = errors.New("malformed binary string")
)
