package registers

import (
	"errors"
	"testing"
)

func TestTableInvariants(t *testing.T) {
	names := make(map[string]bool)
	addrs := make(map[uint8]bool)
	for _, r := range All() {
		if names[r.Name] {
			t.Errorf("duplicate register name %s", r.Name)
		}
		names[r.Name] = true
		if addrs[r.Address] {
			t.Errorf("duplicate register address 0x%02X", r.Address)
		}
		addrs[r.Address] = true

		var covered uint16
		for _, f := range r.Fields {
			if f.Low > f.High || f.High > 7 {
				t.Errorf("%s.%s: bad span [%d:%d]", r.Name, f.Name, f.High, f.Low)
			}
			span := uint16(f.Mask()) << f.Low
			if covered&span != 0 {
				t.Errorf("%s.%s overlaps a sibling field", r.Name, f.Name)
			}
			covered |= span
		}
	}
}

func TestConfigRegisterSpace(t *testing.T) {
	// every config address 0x00..0x2E must be defined exactly once
	for addr := uint8(0x00); addr <= 0x2E; addr++ {
		if _, err := ByAddress(addr); err != nil {
			t.Errorf("config address 0x%02X not in the table: %v", addr, err)
		}
	}
	// status registers live at their burst addresses
	for _, name := range []string{"PARTNUM", "VERSION", "MARCSTATE", "RSSI", "RXBYTES", "TXBYTES"} {
		r, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%s) failed: %v", name, err)
		}
		if r.Address < 0xF0 {
			t.Errorf("%s at 0x%02X, want a burst status address", name, r.Address)
		}
	}
}

func TestLookupsShareDefinitions(t *testing.T) {
	byNameReg, err := ByName("MDMCFG4")
	if err != nil {
		t.Fatalf("ByName failed: %v", err)
	}
	byAddrReg, err := ByAddress(0x10)
	if err != nil {
		t.Fatalf("ByAddress failed: %v", err)
	}
	if byNameReg != byAddrReg {
		t.Error("ByName and ByAddress must return the same definition")
	}
}

func TestUnknownLookups(t *testing.T) {
	if _, err := ByName("NONEXISTENT"); !errors.Is(err, ErrUnknownRegister) {
		t.Errorf("ByName error = %v, want ErrUnknownRegister", err)
	}
	if _, err := ByAddress(0x7A); !errors.Is(err, ErrUnknownRegister) {
		t.Errorf("ByAddress error = %v, want ErrUnknownRegister", err)
	}
	if _, err := FieldByName("MDMCFG4", "NONEXISTENT"); !errors.Is(err, ErrUnknownBitfield) {
		t.Errorf("FieldByName error = %v, want ErrUnknownBitfield", err)
	}
	if _, err := FieldByName("NONEXISTENT", "X"); !errors.Is(err, ErrUnknownRegister) {
		t.Errorf("FieldByName error = %v, want ErrUnknownRegister", err)
	}
}

func TestFieldGeometry(t *testing.T) {
	f, err := FieldByName("MDMCFG4", "CHANBW_M[1:0]")
	if err != nil {
		t.Fatalf("FieldByName failed: %v", err)
	}
	if f.Width() != 2 || f.Mask() != 0x03 || f.High != 5 || f.Low != 4 {
		t.Errorf("CHANBW_M geometry: high=%d low=%d width=%d mask=0x%X",
			f.High, f.Low, f.Width(), f.Mask())
	}
}

func TestEnumValues(t *testing.T) {
	f, err := FieldByName("MDMCFG2", "MOD_FORMAT[2:0]")
	if err != nil {
		t.Fatalf("FieldByName failed: %v", err)
	}
	ask, ok := f.CodeOf("ASK")
	if !ok || ask != 3 {
		t.Errorf("CodeOf(ASK) = %d, %v", ask, ok)
	}
	ook, ok := f.CodeOf("OOK")
	if !ok || ook != 3 {
		t.Errorf("CodeOf(OOK) = %d, %v", ook, ok)
	}
	// shared code resolves to the first declared name
	if name, _ := f.NameOf(3); name != "ASK" {
		t.Errorf("NameOf(3) = %q, want ASK", name)
	}
	if _, ok := f.CodeOf("QAM"); ok {
		t.Error("CodeOf(QAM) must not resolve")
	}
	if _, ok := f.NameOf(6); ok {
		t.Error("NameOf(6) must not resolve")
	}
}

func TestResetValues(t *testing.T) {
	cases := map[string]uint8{
		"IOCFG2":   0x29,
		"SYNC1":    0xD3,
		"SYNC0":    0x91,
		"PKTLEN":   0xFF,
		"PKTCTRL1": 0x04,
		"PKTCTRL0": 0x45,
		"MDMCFG4":  0x8C,
		"MDMCFG2":  0x02,
		"TEST0":    0x0B,
	}
	for name, want := range cases {
		r, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%s) failed: %v", name, err)
		}
		if r.Reset != want {
			t.Errorf("%s reset = 0x%02X, want 0x%02X", name, r.Reset, want)
		}
	}
}
