package profiles

import (
	"math"
	"testing"

	"github.com/herlein/goticc/pkg/cc1101"
	"github.com/herlein/goticc/pkg/registers"
)

type regFile struct {
	regs map[uint8]uint8
	marc uint8
}

func newRegFile() *regFile {
	f := &regFile{regs: make(map[uint8]uint8), marc: uint8(registers.StateIDLE)}
	for _, r := range registers.All() {
		if r.Address <= 0x2E {
			f.regs[r.Address] = r.Reset
		}
	}
	return f
}

func (f *regFile) Transfer(tx []byte) ([]byte, error) {
	rx := make([]byte, len(tx))
	h := tx[0]
	switch {
	case h >= registers.SRES && h <= registers.SNOP:
		if h == registers.SIDLE {
			f.marc = uint8(registers.StateIDLE)
		}
	case h == 0xF5:
		rx[1] = f.marc
	case h&0x80 != 0:
		rx[1] = f.regs[h&0x3F]
	default:
		f.regs[h] = tx[1]
	}
	return rx, nil
}

func (f *regFile) Close() error { return nil }

func TestApplyOOK433(t *testing.T) {
	d := cc1101.New(newRegFile())

	if err := OOK433.Apply(d); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	mhz, err := d.BaseFrequency()
	if err != nil {
		t.Fatalf("BaseFrequency failed: %v", err)
	}
	if math.Abs(mhz-433.92) > 0.0002 {
		t.Errorf("frequency = %v MHz, want 433.92", mhz)
	}
	// OOK shares its register code with ASK
	if mod, _ := d.Modulation(); mod != "ASK" {
		t.Errorf("modulation = %q, want ASK", mod)
	}
	baud, err := d.DataRate()
	if err != nil {
		t.Fatalf("DataRate failed: %v", err)
	}
	if math.Abs(baud-2400)/2400 > 0.01 {
		t.Errorf("data rate = %v baud, want about 2400", baud)
	}
	if bw, _ := d.RXBandwidth(); bw != 101562 {
		t.Errorf("bandwidth = %d Hz, want 101562", bw)
	}
	if mode, _ := d.PacketLength(); mode != "PKT_LEN_VARIABLE" {
		t.Errorf("length mode = %q, want PKT_LEN_VARIABLE", mode)
	}
	if v, _ := d.Manchester(); v != 1 {
		t.Errorf("manchester = %d, want 1", v)
	}
	if b, _ := d.ReadByte("AGCCTRL2"); b != 0x06 {
		t.Errorf("AGCCTRL2 = 0x%02X, want 0x06", b)
	}
}

func TestApplyGFSK868(t *testing.T) {
	d := cc1101.New(newRegFile())

	if err := GFSK868.Apply(d); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if mod, _ := d.Modulation(); mod != "GFSK" {
		t.Errorf("modulation = %q, want GFSK", mod)
	}
	if word, _ := d.SyncWord(); word != "D391" {
		t.Errorf("sync word = %q, want D391", word)
	}
	if v, _ := d.Whitening(); v != 1 {
		t.Errorf("whitening = %d, want 1", v)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		p, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%s) failed: %v", name, err)
		}
		if p.Name != name {
			t.Errorf("ByName(%s) returned profile %q", name, p.Name)
		}
	}
	if _, err := ByName("nope"); err == nil {
		t.Error("expected error for an unknown profile")
	}
	if len(Names()) != 3 {
		t.Errorf("built-in profile count = %d, want 3", len(Names()))
	}
}
