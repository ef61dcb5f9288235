package cc1101

import (
	"errors"
	"math"
	"testing"

	"github.com/herlein/goticc/pkg/registers"
)

const testOsc = DefaultOscFreqHz

func TestFreqRoundTrip(t *testing.T) {
	// one register step is f_xosc/2^16, about 397 Hz at 26 MHz
	step := testOsc / 1e6 / 65536
	for _, mhz := range []float64{315, 433, 433.92, 868, 868.3, 915} {
		regs, err := freqToRegs(mhz, testOsc)
		if err != nil {
			t.Fatalf("freqToRegs(%v) failed: %v", mhz, err)
		}
		got := regsToFreq(regs, testOsc)
		if math.Abs(got-mhz) > step/2 {
			t.Errorf("freq %v MHz round-tripped to %v", mhz, got)
		}
	}
}

func TestFreqOverflow(t *testing.T) {
	if _, err := freqToRegs(30000, testOsc); !errors.Is(err, registers.ErrValueOutOfRange) {
		t.Errorf("error = %v, want ErrValueOutOfRange", err)
	}
	if _, err := freqToRegs(-1, testOsc); !errors.Is(err, registers.ErrValueOutOfRange) {
		t.Errorf("error = %v, want ErrValueOutOfRange", err)
	}
}

func TestBandwidthToRegs(t *testing.T) {
	cases := []struct {
		hz   int
		e, m uint8
	}{
		{58000, 3, 3},
		{100000, 3, 0},
		{232000, 1, 3},
		{325000, 1, 1},
		{540000, 0, 2},
		{812000, 0, 0},
	}
	for _, c := range cases {
		e, m, err := bandwidthToRegs(c.hz, testOsc)
		if err != nil {
			t.Fatalf("bandwidthToRegs(%d) failed: %v", c.hz, err)
		}
		if e != c.e || m != c.m {
			t.Errorf("bandwidth %d Hz: got E=%d M=%d, want E=%d M=%d", c.hz, e, m, c.e, c.m)
		}
		// the pick must actually cover the request
		if bw := regsToBandwidth(e, m, testOsc); bw < float64(c.hz) {
			t.Errorf("bandwidth %d Hz: setting gives only %.0f Hz", c.hz, bw)
		}
	}
}

func TestBandwidthTooWide(t *testing.T) {
	// widest filter at 26 MHz is 812.5 kHz
	if _, _, err := bandwidthToRegs(900000, testOsc); !errors.Is(err, registers.ErrValueOutOfRange) {
		t.Errorf("error = %v, want ErrValueOutOfRange", err)
	}
}

func TestDataRateToRegs(t *testing.T) {
	e, m, err := dataRateToRegs(2400, testOsc)
	if err != nil {
		t.Fatalf("dataRateToRegs(2400) failed: %v", err)
	}
	if e != 6 || m != 131 {
		t.Errorf("2400 baud: got E=%d M=%d, want E=6 M=131", e, m)
	}
}

func TestDataRateRoundTrip(t *testing.T) {
	for _, baud := range []float64{1200, 2400, 9600, 38400, 115200, 250000} {
		e, m, err := dataRateToRegs(baud, testOsc)
		if err != nil {
			t.Fatalf("dataRateToRegs(%v) failed: %v", baud, err)
		}
		got := regsToDataRate(e, m, testOsc)
		if math.Abs(got-baud)/baud > 0.01 {
			t.Errorf("data rate %v baud round-tripped to %v", baud, got)
		}
	}
}

func TestDataRateOutOfRange(t *testing.T) {
	for _, baud := range []float64{0, -100, 10} {
		if _, _, err := dataRateToRegs(baud, testOsc); !errors.Is(err, registers.ErrValueOutOfRange) {
			t.Errorf("dataRateToRegs(%v) error = %v, want ErrValueOutOfRange", baud, err)
		}
	}
}

func TestDeviationRoundTrip(t *testing.T) {
	e, m, err := deviationToRegs(47607, testOsc)
	if err != nil {
		t.Fatalf("deviationToRegs failed: %v", err)
	}
	if e != 4 || m != 7 {
		t.Errorf("47.6 kHz deviation: got E=%d M=%d, want E=4 M=7", e, m)
	}
	got := regsToDeviation(e, m, testOsc)
	if math.Abs(got-47607) > 100 {
		t.Errorf("deviation round-tripped to %v", got)
	}
}

func TestRSSIToDBm(t *testing.T) {
	cases := []struct {
		raw  uint8
		want int
	}{
		{0, -74},
		{50, -49},
		{128, -138},
		{255, -74}, // (255-256)/2 truncates to 0
	}
	for _, c := range cases {
		if got := rssiToDBm(c.raw); got != c.want {
			t.Errorf("rssiToDBm(%d) = %d, want %d", c.raw, got, c.want)
		}
	}
}
