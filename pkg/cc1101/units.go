package cc1101

import (
	"fmt"
	"math"

	"github.com/herlein/goticc/pkg/registers"
)

// Unit conversions between physical quantities and CC1101 register encodings.
// All formulas are from the TI CC1101 data sheet (SWRS061) and scale with the
// crystal frequency.

// freqToRegs converts a carrier frequency in MHz to the FREQ2/FREQ1/FREQ0
// register bytes, rounding to the nearest representable step.
func freqToRegs(mhz float64, oscHz float64) ([3]uint8, error) {
	reg := math.Round(mhz * 65536 / (oscHz / 1e6))
	if reg < 0 || reg > 0xFFFFFF {
		return [3]uint8{}, fmt.Errorf("frequency %.6f MHz does not fit the 24-bit FREQ registers: %w",
			mhz, registers.ErrValueOutOfRange)
	}
	v := uint32(reg)
	return [3]uint8{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// regsToFreq converts FREQ2/FREQ1/FREQ0 bytes back to MHz.
func regsToFreq(b [3]uint8, oscHz float64) float64 {
	v := uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
	return float64(v) * (oscHz / 1e6) / 65536
}

// bandwidthToRegs picks the CHANBW_E/CHANBW_M pair giving the narrowest
// channel filter bandwidth that is still at least hz. The hardware offers 16
// discrete widths; requests above the widest are rejected.
func bandwidthToRegs(hz int, oscHz float64) (e, m uint8, err error) {
	best := math.Inf(1)
	found := false
	for ei := uint8(0); ei < 4; ei++ {
		for mi := uint8(0); mi < 4; mi++ {
			bw := regsToBandwidth(ei, mi, oscHz)
			if bw < float64(hz) {
				continue
			}
			if bw < best {
				best = bw
				e, m = ei, mi
				found = true
			}
		}
	}
	if !found {
		return 0, 0, fmt.Errorf("bandwidth %d Hz exceeds the widest channel filter setting: %w",
			hz, registers.ErrValueOutOfRange)
	}
	return e, m, nil
}

// regsToBandwidth converts a CHANBW_E/CHANBW_M pair to Hz.
func regsToBandwidth(e, m uint8, oscHz float64) float64 {
	return oscHz / (8 * float64(4+m) * float64(uint32(1)<<e))
}

// dataRateToRegs converts a symbol rate in baud to the DRATE_E exponent and
// DRATE_M mantissa, rounding the mantissa to nearest with carry into the
// exponent when it overflows.
func dataRateToRegs(baud float64, oscHz float64) (e, m uint8, err error) {
	if baud <= 0 {
		return 0, 0, fmt.Errorf("data rate %.1f baud is not positive: %w",
			baud, registers.ErrValueOutOfRange)
	}
	ef := math.Floor(math.Log2(baud * (1 << 20) / oscHz))
	if ef < 0 || ef > 15 {
		return 0, 0, fmt.Errorf("data rate %.1f baud is outside the DRATE exponent range: %w",
			baud, registers.ErrValueOutOfRange)
	}
	exp := uint8(ef)
	mf := math.Round(baud*(1<<28)/(oscHz*math.Pow(2, ef))) - 256
	if mf == 256 {
		mf = 0
		exp++
		if exp > 15 {
			return 0, 0, fmt.Errorf("data rate %.1f baud is outside the DRATE exponent range: %w",
				baud, registers.ErrValueOutOfRange)
		}
	}
	if mf < 0 || mf > 255 {
		return 0, 0, fmt.Errorf("data rate %.1f baud has no DRATE mantissa: %w",
			baud, registers.ErrValueOutOfRange)
	}
	return exp, uint8(mf), nil
}

// regsToDataRate converts a DRATE_E/DRATE_M pair to baud.
func regsToDataRate(e, m uint8, oscHz float64) float64 {
	return float64(256+uint32(m)) * math.Pow(2, float64(e)) / (1 << 28) * oscHz
}

// deviationToRegs converts an FSK frequency deviation in Hz to the
// DEVIATION_E/DEVIATION_M pair, picking the closest representable value.
func deviationToRegs(hz float64, oscHz float64) (e, m uint8, err error) {
	for exp := uint8(0); exp < 8; exp++ {
		mf := math.Round(hz*(1<<17)/(math.Pow(2, float64(exp))*oscHz)) - 8
		if mf >= 0 && mf < 8 {
			return exp, uint8(mf), nil
		}
	}
	return 0, 0, fmt.Errorf("deviation %.1f Hz is outside the DEVIATN range: %w",
		hz, registers.ErrValueOutOfRange)
}

// regsToDeviation converts a DEVIATION_E/DEVIATION_M pair to Hz.
func regsToDeviation(e, m uint8, oscHz float64) float64 {
	return float64(8+uint32(m)) * math.Pow(2, float64(e)) * oscHz / (1 << 17)
}

// channelSpacing converts a CHANSPC_E/CHANSPC_M pair to Hz.
func channelSpacing(e, m uint8, oscHz float64) float64 {
	return oscHz / (1 << 18) * float64(256+uint32(m)) * math.Pow(2, float64(e))
}

// rssiToDBm converts the raw RSSI status byte to dBm. The byte is a signed
// offset in half-dB steps around the chip's -74 dBm reference.
func rssiToDBm(raw uint8) int {
	v := int(raw)
	if v >= 128 {
		v -= 256
	}
	return v/2 - 74
}
