package cc1101

import (
	"fmt"
	"strconv"

	"github.com/herlein/goticc/pkg/registers"
)

// Expected identification register values for a live CC1101.
const (
	expectedPartNum = 0x00
	expectedVersion = 0x14
)

// SanityCheck reads the chip's identification registers and verifies they
// match a CC1101. A wiring fault or absent chip typically reads all-zero or
// all-ones and fails here.
func (d *Device) SanityCheck() error {
	part, err := d.ReadByte("PARTNUM")
	if err != nil {
		return err
	}
	version, err := d.ReadByte("VERSION")
	if err != nil {
		return err
	}
	if part != expectedPartNum || version != expectedVersion {
		return fmt.Errorf("PARTNUM=0x%02X VERSION=0x%02X, want 0x%02X/0x%02X: %w",
			part, version, expectedPartNum, expectedVersion, ErrDeviceNotResponding)
	}
	return nil
}

// BaseFrequency returns the effective carrier frequency in MHz, including
// the offset from the current channel number and channel spacing.
func (d *Device) BaseFrequency() (float64, error) {
	var freq [3]uint8
	for i, name := range []string{"FREQ2", "FREQ1", "FREQ0"} {
		b, err := d.ReadByte(name)
		if err != nil {
			return 0, err
		}
		freq[i] = b
	}
	channel, err := d.ReadByte("CHANNR")
	if err != nil {
		return 0, err
	}
	if channel == 0 {
		return regsToFreq(freq, d.oscFreq), nil
	}
	spacing, err := d.ChannelSpacing()
	if err != nil {
		return 0, err
	}
	return regsToFreq(freq, d.oscFreq) + float64(channel)*spacing/1e6, nil
}

// SetBaseFrequency programs the carrier frequency in MHz. The radio is
// idled first; FREQ registers must not change in RX or TX.
func (d *Device) SetBaseFrequency(mhz float64) error {
	regs, err := freqToRegs(mhz, d.oscFreq)
	if err != nil {
		return err
	}
	if err := d.Idle(); err != nil {
		return err
	}
	for i, name := range []string{"FREQ0", "FREQ1", "FREQ2"} {
		if err := d.WriteByte(name, regs[2-i]); err != nil {
			return err
		}
	}
	return nil
}

// Modulation returns the symbolic modulation name. The ASK and OOK settings
// share a register code; reads report "ASK".
func (d *Device) Modulation() (string, error) {
	code, err := d.FieldValueOf("MDMCFG2", "MOD_FORMAT[2:0]")
	if err != nil {
		return "", err
	}
	f, err := registers.FieldByName("MDMCFG2", "MOD_FORMAT[2:0]")
	if err != nil {
		return "", err
	}
	name, ok := f.NameOf(code)
	if !ok {
		return "", fmt.Errorf("MOD_FORMAT code %d has no modulation name: %w",
			code, ErrUnknownModulation)
	}
	return name, nil
}

// SetModulation selects the modulation by name: 2-FSK, GFSK, ASK, OOK,
// 4-FSK or MSK.
func (d *Device) SetModulation(name string) error {
	f, err := registers.FieldByName("MDMCFG2", "MOD_FORMAT[2:0]")
	if err != nil {
		return err
	}
	code, ok := f.CodeOf(name)
	if !ok {
		return fmt.Errorf("modulation %q: %w", name, ErrUnknownModulation)
	}
	return d.RegisterWrite("MDMCFG2", "MOD_FORMAT[2:0]", Val(code))
}

// PacketLength returns the packet length mode: PKT_LEN_FIXED,
// PKT_LEN_VARIABLE or PKT_LEN_INFINITE.
func (d *Device) PacketLength() (string, error) {
	code, err := d.FieldValueOf("PKTCTRL0", "LENGTH_CONFIG[1:0]")
	if err != nil {
		return "", err
	}
	f, err := registers.FieldByName("PKTCTRL0", "LENGTH_CONFIG[1:0]")
	if err != nil {
		return "", err
	}
	name, ok := f.NameOf(code)
	if !ok {
		return "", fmt.Errorf("LENGTH_CONFIG code %d has no mode name: %w",
			code, ErrUnknownPacketMode)
	}
	return name, nil
}

// SetPacketLength selects the packet length mode by name.
func (d *Device) SetPacketLength(mode string) error {
	f, err := registers.FieldByName("PKTCTRL0", "LENGTH_CONFIG[1:0]")
	if err != nil {
		return err
	}
	code, ok := f.CodeOf(mode)
	if !ok {
		return fmt.Errorf("packet length mode %q: %w", mode, ErrUnknownPacketMode)
	}
	return d.RegisterWrite("PKTCTRL0", "LENGTH_CONFIG[1:0]", Val(code))
}

// RXBandwidth returns the channel filter bandwidth in Hz.
func (d *Device) RXBandwidth() (int, error) {
	fields, err := d.RegisterValue("MDMCFG4")
	if err != nil {
		return 0, err
	}
	e := uint8(fields["CHANBW_E[1:0]"])
	m := uint8(fields["CHANBW_M[1:0]"])
	return int(regsToBandwidth(e, m, d.oscFreq)), nil
}

// SetRXBandwidth programs the narrowest channel filter bandwidth that is at
// least hz.
func (d *Device) SetRXBandwidth(hz int) error {
	e, m, err := bandwidthToRegs(hz, d.oscFreq)
	if err != nil {
		return err
	}
	if err := d.RegisterWrite("MDMCFG4", "CHANBW_M[1:0]", Val(uint32(m))); err != nil {
		return err
	}
	return d.RegisterWrite("MDMCFG4", "CHANBW_E[1:0]", Val(uint32(e)))
}

// DataRate returns the symbol rate in baud.
func (d *Device) DataRate() (float64, error) {
	e, err := d.FieldValueOf("MDMCFG4", "DRATE_E[3:0]")
	if err != nil {
		return 0, err
	}
	m, err := d.FieldValueOf("MDMCFG3", "DRATE_M[7:0]")
	if err != nil {
		return 0, err
	}
	return regsToDataRate(uint8(e), uint8(m), d.oscFreq), nil
}

// SetDataRate programs the symbol rate in baud.
func (d *Device) SetDataRate(baud float64) error {
	e, m, err := dataRateToRegs(baud, d.oscFreq)
	if err != nil {
		return err
	}
	if err := d.RegisterWrite("MDMCFG4", "DRATE_E[3:0]", Val(uint32(e))); err != nil {
		return err
	}
	return d.RegisterWrite("MDMCFG3", "DRATE_M[7:0]", Val(uint32(m)))
}

// Deviation returns the FSK frequency deviation in Hz.
func (d *Device) Deviation() (float64, error) {
	fields, err := d.RegisterValue("DEVIATN")
	if err != nil {
		return 0, err
	}
	e := uint8(fields["DEVIATION_E[2:0]"])
	m := uint8(fields["DEVIATION_M[2:0]"])
	return regsToDeviation(e, m, d.oscFreq), nil
}

// SetDeviation programs the FSK frequency deviation in Hz.
func (d *Device) SetDeviation(hz float64) error {
	e, m, err := deviationToRegs(hz, d.oscFreq)
	if err != nil {
		return err
	}
	if err := d.RegisterWrite("DEVIATN", "DEVIATION_E[2:0]", Val(uint32(e))); err != nil {
		return err
	}
	return d.RegisterWrite("DEVIATN", "DEVIATION_M[2:0]", Val(uint32(m)))
}

// SyncWord returns the 16-bit sync word as 4 upper-case hex digits.
func (d *Device) SyncWord() (string, error) {
	hi, err := d.ReadByte("SYNC1")
	if err != nil {
		return "", err
	}
	lo, err := d.ReadByte("SYNC0")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02X%02X", hi, lo), nil
}

// SetSyncWord programs the 16-bit sync word from 4 hex digits, e.g. "D391".
func (d *Device) SetSyncWord(word string) error {
	if len(word) != 4 {
		return fmt.Errorf("sync word %q: %w", word, ErrMalformedSyncWord)
	}
	v, err := strconv.ParseUint(word, 16, 16)
	if err != nil {
		return fmt.Errorf("sync word %q: %w", word, ErrMalformedSyncWord)
	}
	if err := d.WriteByte("SYNC1", uint8(v>>8)); err != nil {
		return err
	}
	return d.WriteByte("SYNC0", uint8(v))
}

// Manchester returns 1 when Manchester encoding is enabled.
func (d *Device) Manchester() (uint8, error) {
	v, err := d.FieldValueOf("MDMCFG2", "MANCHESTER_EN")
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}

// SetManchester enables (1) or disables (0) Manchester encoding.
func (d *Device) SetManchester(v uint8) error {
	return d.RegisterWrite("MDMCFG2", "MANCHESTER_EN", Val(uint32(v)))
}

// Whitening returns 1 when data whitening is enabled.
func (d *Device) Whitening() (uint8, error) {
	v, err := d.FieldValueOf("PKTCTRL0", "WHITE_DATA")
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}

// SetWhitening enables (1) or disables (0) data whitening.
func (d *Device) SetWhitening(v uint8) error {
	return d.RegisterWrite("PKTCTRL0", "WHITE_DATA", Val(uint32(v)))
}

// ChannelNumber returns the current channel number.
func (d *Device) ChannelNumber() (uint8, error) {
	return d.ReadByte("CHANNR")
}

// SetChannelNumber selects the channel. The effective carrier is the FREQ
// register frequency plus channel times channel spacing.
func (d *Device) SetChannelNumber(n uint8) error {
	return d.WriteByte("CHANNR", n)
}

// ChannelSpacing returns the channel spacing in Hz.
func (d *Device) ChannelSpacing() (float64, error) {
	m, err := d.FieldValueOf("MDMCFG0", "CHANSPC_M[7:0]")
	if err != nil {
		return 0, err
	}
	e, err := d.FieldValueOf("MDMCFG1", "CHANSPC_E[1:0]")
	if err != nil {
		return 0, err
	}
	return channelSpacing(uint8(e), uint8(m), d.oscFreq), nil
}

// RSSI returns the current received signal strength in dBm.
func (d *Device) RSSI() (int, error) {
	raw, err := d.ReadByte("RSSI")
	if err != nil {
		return 0, err
	}
	return rssiToDBm(raw), nil
}
