// Package cc1101 drives a TI CC1101 sub-1GHz transceiver over a byte-exchange
// channel. It layers command strobes and register access on the channel,
// converts between physical units and register encodings, and exposes the
// common radio settings as typed accessors.
package cc1101

import (
	"fmt"
	"sync"
	"time"

	"github.com/herlein/goticc/pkg/hal"
	"github.com/herlein/goticc/pkg/registers"
)

// DefaultOscFreqHz is the crystal frequency of every CC1101 module this
// package has met. All unit conversions derive from it.
const DefaultOscFreqHz = 26000000.0

// stateTimeout bounds how long Idle and packet I/O wait for a MARCSTATE
// transition before giving up.
const stateTimeout = 100 * time.Millisecond

// Device is a CC1101 behind a hal.Channel. All methods are safe for
// concurrent use; each register transaction holds an internal lock so a
// read-modify-write cannot interleave with another access. Compound
// operations (packet send/receive, multi-register setters) are sequences of
// such transactions and should not be raced against each other.
type Device struct {
	ch      hal.Channel
	oscFreq float64 // crystal frequency in Hz
	mu      sync.Mutex
}

// Option configures a Device.
type Option func(*Device)

// WithOscillatorFreq overrides the crystal frequency in Hz.
func WithOscillatorFreq(hz float64) Option {
	return func(d *Device) { d.oscFreq = hz }
}

// New wraps an open channel. It performs no I/O; call SanityCheck to verify
// the chip is actually there.
func New(ch hal.Channel, opts ...Option) *Device {
	d := &Device{ch: ch, oscFreq: DefaultOscFreqHz}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Close closes the underlying channel.
func (d *Device) Close() error {
	return d.ch.Close()
}

// OscFreq returns the crystal frequency in Hz that unit conversions assume.
func (d *Device) OscFreq() float64 {
	return d.oscFreq
}

// readAddr reads one register byte. Caller must hold d.mu.
func (d *Device) readAddr(addr uint8) (uint8, error) {
	rx, err := d.ch.Transfer([]byte{registers.ReadSingle | addr, 0x00})
	if err != nil {
		return 0, fmt.Errorf("failed to read register 0x%02X: %w", addr, err)
	}
	return rx[1], nil
}

// writeAddr writes one register byte. Caller must hold d.mu.
func (d *Device) writeAddr(addr uint8, value uint8) error {
	if _, err := d.ch.Transfer([]byte{registers.WriteSingle | addr, value}); err != nil {
		return fmt.Errorf("failed to write register 0x%02X: %w", addr, err)
	}
	return nil
}

// strobe issues a command strobe. Caller must hold d.mu.
func (d *Device) strobe(cmd uint8) error {
	if _, err := d.ch.Transfer([]byte{cmd, 0x00}); err != nil {
		return fmt.Errorf("failed to strobe 0x%02X: %w", cmd, err)
	}
	return nil
}

// ReadByteAt reads one register byte by address. Status register addresses
// already carry the burst bits and pass through unchanged.
func (d *Device) ReadByteAt(addr uint8) (uint8, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readAddr(addr)
}

// ReadByte reads one register byte by symbolic name.
func (d *Device) ReadByte(name string) (uint8, error) {
	r, err := registers.ByName(name)
	if err != nil {
		return 0, err
	}
	return d.ReadByteAt(r.Address)
}

// WriteByteAt writes one register byte by address.
func (d *Device) WriteByteAt(addr uint8, value uint8) error {
	if addr > registers.TXFIFO {
		return fmt.Errorf("register 0x%02X is read-only", addr)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeAddr(addr, value)
}

// WriteByte writes one register byte by symbolic name.
func (d *Device) WriteByte(name string, value uint8) error {
	r, err := registers.ByName(name)
	if err != nil {
		return err
	}
	return d.WriteByteAt(r.Address, value)
}

// ReadBurst reads n consecutive bytes starting at addr using burst access.
func (d *Device) ReadBurst(addr uint8, n int) ([]byte, error) {
	tx := make([]byte, n+1)
	tx[0] = registers.ReadBurst | addr
	d.mu.Lock()
	defer d.mu.Unlock()
	rx, err := d.ch.Transfer(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to burst read 0x%02X: %w", addr, err)
	}
	return rx[1:], nil
}

// WriteBurst writes data to consecutive registers starting at addr using
// burst access.
func (d *Device) WriteBurst(addr uint8, data []byte) error {
	tx := make([]byte, 0, len(data)+1)
	tx = append(tx, registers.WriteBurst|addr)
	tx = append(tx, data...)
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, err := d.ch.Transfer(tx); err != nil {
		return fmt.Errorf("failed to burst write 0x%02X: %w", addr, err)
	}
	return nil
}

// Strobe issues a raw command strobe byte.
func (d *Device) Strobe(cmd uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.strobe(cmd)
}

// MarcState returns the radio control state machine state.
func (d *Device) MarcState() (registers.RadioState, error) {
	r, err := registers.ByName("MARCSTATE")
	if err != nil {
		return 0, err
	}
	b, err := d.ReadByteAt(r.Address)
	if err != nil {
		return 0, err
	}
	return registers.RadioState(b & 0x1F), nil
}

// WaitForState polls MARCSTATE until the radio reaches the given state or
// the timeout elapses.
func (d *Device) WaitForState(want registers.RadioState, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		s, err := d.MarcState()
		if err != nil {
			return err
		}
		if s == want {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("radio stuck in state %s waiting for %s", s, want)
		}
		time.Sleep(100 * time.Microsecond)
	}
}

// Reset issues SRES and waits for the chip to settle.
func (d *Device) Reset() error {
	if err := d.Strobe(registers.SRES); err != nil {
		return err
	}
	time.Sleep(time.Millisecond)
	return nil
}

// Idle takes the radio to IDLE and flushes the TX FIFO so a half-written
// frame cannot leak into the next transmission.
func (d *Device) Idle() error {
	if err := d.Strobe(registers.SIDLE); err != nil {
		return err
	}
	if err := d.WaitForState(registers.StateIDLE, stateTimeout); err != nil {
		return err
	}
	return d.Strobe(registers.SFTX)
}

// PowerDown idles the radio and enters SLEEP.
func (d *Device) PowerDown() error {
	if err := d.Idle(); err != nil {
		return err
	}
	return d.Strobe(registers.SPWD)
}

// EnableRX puts the radio into receive mode.
func (d *Device) EnableRX() error {
	return d.Strobe(registers.SRX)
}

// EnableTX puts the radio into transmit mode.
func (d *Device) EnableTX() error {
	return d.Strobe(registers.STX)
}

// Calibrate runs a manual frequency synthesizer calibration.
func (d *Device) Calibrate() error {
	return d.Strobe(registers.SCAL)
}

// WOROn starts Wake-on-Radio polling.
func (d *Device) WOROn() error {
	return d.Strobe(registers.SWOR)
}

// XtalOff turns off the crystal oscillator.
func (d *Device) XtalOff() error {
	return d.Strobe(registers.SXOFF)
}

// FlushRXFIFO discards any bytes pending in the RX FIFO.
func (d *Device) FlushRXFIFO() error {
	return d.Strobe(registers.SFRX)
}

// FlushTXFIFO discards any bytes pending in the TX FIFO.
func (d *Device) FlushTXFIFO() error {
	return d.Strobe(registers.SFTX)
}

// FieldValue is a value destined for a bitfield: either a number or a bit
// string ("011"). Use Val or Bits to construct one.
type FieldValue struct {
	value  uint32
	bits   string
	isBits bool
}

// Val makes a numeric FieldValue.
func Val(v uint32) FieldValue { return FieldValue{value: v} }

// Bits makes a bit-string FieldValue, most significant bit first.
func Bits(s string) FieldValue { return FieldValue{bits: s, isBits: true} }

func (v FieldValue) encode(f *registers.Bitfield, current uint8) (uint8, error) {
	if v.isBits {
		return f.EncodeBits(current, v.bits)
	}
	return f.Encode(current, v.value)
}

// RegisterValue reads a register by name and decodes every defined bitfield.
func (d *Device) RegisterValue(name string) (map[string]uint32, error) {
	r, err := registers.ByName(name)
	if err != nil {
		return nil, err
	}
	b, err := d.ReadByteAt(r.Address)
	if err != nil {
		return nil, err
	}
	return r.DecodeAll(b), nil
}

// RegisterValueAt is RegisterValue by address.
func (d *Device) RegisterValueAt(addr uint8) (map[string]uint32, error) {
	r, err := registers.ByAddress(addr)
	if err != nil {
		return nil, err
	}
	b, err := d.ReadByteAt(r.Address)
	if err != nil {
		return nil, err
	}
	return r.DecodeAll(b), nil
}

// RegisterWrite updates one bitfield of a register, preserving all sibling
// bits. The read-modify-write runs under the device lock as one transaction.
func (d *Device) RegisterWrite(register, field string, v FieldValue) error {
	r, err := registers.ByName(register)
	if err != nil {
		return err
	}
	f, err := r.Field(field)
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	current, err := d.readAddr(r.Address)
	if err != nil {
		return err
	}
	next, err := v.encode(f, current)
	if err != nil {
		return fmt.Errorf("register %s: %w", register, err)
	}
	if next == current {
		return nil
	}
	return d.writeAddr(r.Address, next)
}

// FieldValueOf reads a single named bitfield of a register.
func (d *Device) FieldValueOf(register, field string) (uint32, error) {
	r, err := registers.ByName(register)
	if err != nil {
		return 0, err
	}
	f, err := r.Field(field)
	if err != nil {
		return 0, err
	}
	b, err := d.ReadByteAt(r.Address)
	if err != nil {
		return 0, err
	}
	return f.Decode(b), nil
}
