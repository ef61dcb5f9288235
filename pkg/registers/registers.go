// Package registers models the CC1101 configuration register space: a fixed,
// hand-curated table of registers, each split into named bitfields, plus the
// codec that extracts and merges field values against a register byte.
//
// The table is built once at package load and never mutated, so it is safe to
// share across goroutines without locking. Field spans follow the TI CC1101
// data sheet (SWRS061).
package registers

import "fmt"

// EnumValue names one state of an enumerated bitfield. Distinct names may
// share a code (ASK and OOK are both 0b011); NameOf returns the first match
// in declaration order.
type EnumValue struct {
	Name string
	Code uint32
}

// Bitfield is a named, contiguous sub-range of bits within a register byte.
// High and Low are inclusive bit positions, 0 <= Low <= High <= 7.
type Bitfield struct {
	Name   string
	High   uint8
	Low    uint8
	Values []EnumValue // nil for purely numeric fields
}

// Register is one addressable 8-bit configuration or status byte on the chip.
// Reset is the data-sheet power-on default and is documentation only; it is
// never written by this package. Fields are disjoint and may leave reserved
// bits uncovered.
type Register struct {
	Address uint8
	Name    string
	Reset   uint8
	Fields  []Bitfield
}

// Width returns the field's size in bits.
func (f *Bitfield) Width() uint8 {
	return f.High - f.Low + 1
}

// Mask returns the field's value mask, right-aligned.
func (f *Bitfield) Mask() uint32 {
	return (1 << uint32(f.Width())) - 1
}

// CodeOf resolves a symbolic value name to its code.
func (f *Bitfield) CodeOf(name string) (uint32, bool) {
	for _, v := range f.Values {
		if v.Name == name {
			return v.Code, true
		}
	}
	return 0, false
}

// NameOf resolves a code to its symbolic name, first match wins.
func (f *Bitfield) NameOf(code uint32) (string, bool) {
	for _, v := range f.Values {
		if v.Code == code {
			return v.Name, true
		}
	}
	return "", false
}

// Field returns the named bitfield of this register.
func (r *Register) Field(name string) (*Bitfield, error) {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			return &r.Fields[i], nil
		}
	}
	return nil, fmt.Errorf("register %s: field %q: %w", r.Name, name, ErrUnknownBitfield)
}

var (
	byName = make(map[string]*Register)
	byAddr = make(map[uint8]*Register)
)

func init() {
	for i := range regTable {
		r := &regTable[i]
		if _, dup := byName[r.Name]; dup {
			panic("registers: duplicate register name " + r.Name)
		}
		if _, dup := byAddr[r.Address]; dup {
			panic(fmt.Sprintf("registers: duplicate register address 0x%02X", r.Address))
		}
		var covered uint16
		seen := make(map[string]bool)
		for _, f := range r.Fields {
			if f.Low > f.High || f.High > 7 {
				panic(fmt.Sprintf("registers: %s.%s: bad span [%d:%d]", r.Name, f.Name, f.High, f.Low))
			}
			if seen[f.Name] {
				panic("registers: duplicate field " + r.Name + "." + f.Name)
			}
			seen[f.Name] = true
			span := uint16(f.Mask()) << f.Low
			if covered&span != 0 {
				panic("registers: overlapping field " + r.Name + "." + f.Name)
			}
			covered |= span
		}
		byName[r.Name] = r
		byAddr[r.Address] = r
	}
}

// ByName looks up a register definition by its exact symbolic name.
func ByName(name string) (*Register, error) {
	r, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("register %q: %w", name, ErrUnknownRegister)
	}
	return r, nil
}

// ByAddress looks up a register definition by its address byte.
func ByAddress(addr uint8) (*Register, error) {
	r, ok := byAddr[addr]
	if !ok {
		return nil, fmt.Errorf("register 0x%02X: %w", addr, ErrUnknownRegister)
	}
	return r, nil
}

// FieldByName resolves a (register name, field name) pair to its bitfield
// definition.
func FieldByName(register, field string) (*Bitfield, error) {
	r, err := ByName(register)
	if err != nil {
		return nil, err
	}
	return r.Field(field)
}

// All returns the register table in declaration (address) order. The slice is
// shared; callers must not modify it.
func All() []Register {
	return regTable
}

// regTable is the CC1101 register map. Configuration registers live at
// 0x00-0x2E; status registers carry the burst-access header pre-set
// (0x30|0xC0 = 0xF0 ...) so a single transfer framing serves both kinds.
var regTable = []Register{
	{Address: 0x00, Name: "IOCFG2", Reset: 0x29, Fields: []Bitfield{
		{Name: "GDO2_INV", High: 6, Low: 6},
		{Name: "GDO2_CFG[5:0]", High: 5, Low: 0},
	}},
	{Address: 0x01, Name: "IOCFG1", Reset: 0x2E, Fields: []Bitfield{
		{Name: "GDO_DS", High: 7, Low: 7},
		{Name: "GDO1_INV", High: 6, Low: 6},
		{Name: "GDO1_CFG[5:0]", High: 5, Low: 0},
	}},
	{Address: 0x02, Name: "IOCFG0", Reset: 0x3F, Fields: []Bitfield{
		{Name: "TEMP_SENSOR_ENABLE", High: 7, Low: 7},
		{Name: "GDO0_INV", High: 6, Low: 6},
		{Name: "GDO0_CFG[5:0]", High: 5, Low: 0},
	}},
	{Address: 0x03, Name: "FIFOTHR", Reset: 0x07, Fields: []Bitfield{
		{Name: "ADC_RETENTION", High: 6, Low: 6},
		{Name: "CLOSE_IN_RX[1:0]", High: 5, Low: 4},
		{Name: "FIFO_THR[3:0]", High: 3, Low: 0},
	}},
	{Address: 0x04, Name: "SYNC1", Reset: 0xD3, Fields: []Bitfield{
		{Name: "SYNC[15:8]", High: 7, Low: 0},
	}},
	{Address: 0x05, Name: "SYNC0", Reset: 0x91, Fields: []Bitfield{
		{Name: "SYNC[7:0]", High: 7, Low: 0},
	}},
	{Address: 0x06, Name: "PKTLEN", Reset: 0xFF, Fields: []Bitfield{
		{Name: "PACKET_LENGTH", High: 7, Low: 0},
	}},
	{Address: 0x07, Name: "PKTCTRL1", Reset: 0x04, Fields: []Bitfield{
		{Name: "PQT[2:0]", High: 7, Low: 5},
		{Name: "CRC_AUTOFLUSH", High: 3, Low: 3},
		{Name: "APPEND_STATUS", High: 2, Low: 2},
		{Name: "ADR_CHK[1:0]", High: 1, Low: 0},
	}},
	{Address: 0x08, Name: "PKTCTRL0", Reset: 0x45, Fields: []Bitfield{
		{Name: "WHITE_DATA", High: 6, Low: 6},
		{Name: "PKT_FORMAT[1:0]", High: 5, Low: 4},
		{Name: "CRC_EN", High: 2, Low: 2},
		{Name: "LENGTH_CONFIG[1:0]", High: 1, Low: 0, Values: []EnumValue{
			{Name: "PKT_LEN_FIXED", Code: 0},
			{Name: "PKT_LEN_VARIABLE", Code: 1},
			{Name: "PKT_LEN_INFINITE", Code: 2},
		}},
	}},
	{Address: 0x09, Name: "ADDR", Reset: 0x00, Fields: []Bitfield{
		{Name: "DEVICE_ADDR[7:0]", High: 7, Low: 0},
	}},
	{Address: 0x0A, Name: "CHANNR", Reset: 0x00, Fields: []Bitfield{
		{Name: "CHAN[7:0]", High: 7, Low: 0},
	}},
	{Address: 0x0B, Name: "FSCTRL1", Reset: 0x0F, Fields: []Bitfield{
		{Name: "FREQ_IF[4:0]", High: 4, Low: 0},
	}},
	{Address: 0x0C, Name: "FSCTRL0", Reset: 0x00, Fields: []Bitfield{
		{Name: "FREQOFF[7:0]", High: 7, Low: 0},
	}},
	{Address: 0x0D, Name: "FREQ2", Reset: 0x1E, Fields: []Bitfield{
		{Name: "FREQ[23:22]", High: 7, Low: 6},
		{Name: "FREQ[21:16]", High: 5, Low: 0},
	}},
	{Address: 0x0E, Name: "FREQ1", Reset: 0xC4, Fields: []Bitfield{
		{Name: "FREQ[15:8]", High: 7, Low: 0},
	}},
	{Address: 0x0F, Name: "FREQ0", Reset: 0xEC, Fields: []Bitfield{
		{Name: "FREQ[7:0]", High: 7, Low: 0},
	}},
	{Address: 0x10, Name: "MDMCFG4", Reset: 0x8C, Fields: []Bitfield{
		{Name: "CHANBW_E[1:0]", High: 7, Low: 6},
		{Name: "CHANBW_M[1:0]", High: 5, Low: 4},
		{Name: "DRATE_E[3:0]", High: 3, Low: 0},
	}},
	{Address: 0x11, Name: "MDMCFG3", Reset: 0x22, Fields: []Bitfield{
		{Name: "DRATE_M[7:0]", High: 7, Low: 0},
	}},
	{Address: 0x12, Name: "MDMCFG2", Reset: 0x02, Fields: []Bitfield{
		{Name: "DEM_DCFILT_OFF", High: 7, Low: 7},
		{Name: "MOD_FORMAT[2:0]", High: 6, Low: 4, Values: []EnumValue{
			{Name: "2-FSK", Code: 0},
			{Name: "GFSK", Code: 1},
			{Name: "ASK", Code: 3},
			{Name: "OOK", Code: 3},
			{Name: "4-FSK", Code: 4},
			{Name: "MSK", Code: 7},
		}},
		{Name: "MANCHESTER_EN", High: 3, Low: 3},
		{Name: "SYNC_MODE[2:0]", High: 2, Low: 0},
	}},
	{Address: 0x13, Name: "MDMCFG1", Reset: 0x22, Fields: []Bitfield{
		{Name: "FEC_EN", High: 7, Low: 7},
		{Name: "NUM_PREAMBLE[2:0]", High: 6, Low: 4},
		{Name: "CHANSPC_E[1:0]", High: 1, Low: 0},
	}},
	{Address: 0x14, Name: "MDMCFG0", Reset: 0xF8, Fields: []Bitfield{
		{Name: "CHANSPC_M[7:0]", High: 7, Low: 0},
	}},
	{Address: 0x15, Name: "DEVIATN", Reset: 0x47, Fields: []Bitfield{
		{Name: "DEVIATION_E[2:0]", High: 6, Low: 4},
		{Name: "DEVIATION_M[2:0]", High: 2, Low: 0},
	}},
	{Address: 0x16, Name: "MCSM2", Reset: 0x07, Fields: []Bitfield{
		{Name: "RX_TIME_RSSI", High: 4, Low: 4},
		{Name: "RX_TIME_QUAL", High: 3, Low: 3},
		{Name: "RX_TIME[2:0]", High: 2, Low: 0},
	}},
	{Address: 0x17, Name: "MCSM1", Reset: 0x30, Fields: []Bitfield{
		{Name: "CCA_MODE[1:0]", High: 5, Low: 4},
		{Name: "RXOFF_MODE[1:0]", High: 3, Low: 2},
		{Name: "TXOFF_MODE[1:0]", High: 1, Low: 0},
	}},
	{Address: 0x18, Name: "MCSM0", Reset: 0x04, Fields: []Bitfield{
		{Name: "FS_AUTOCAL[1:0]", High: 5, Low: 4},
		{Name: "PO_TIMEOUT", High: 3, Low: 2},
		{Name: "PIN_CTRL_EN", High: 1, Low: 1},
		{Name: "XOSC_FORCE_ON", High: 0, Low: 0},
	}},
	{Address: 0x19, Name: "FOCCFG", Reset: 0x36, Fields: []Bitfield{
		{Name: "FOC_BS_CS_GATE", High: 5, Low: 5},
		{Name: "FOC_PRE_K[1:0]", High: 4, Low: 3},
		{Name: "FOC_POST_K", High: 2, Low: 2},
		{Name: "FOC_LIMIT[1:0]", High: 1, Low: 0},
	}},
	{Address: 0x1A, Name: "BSCFG", Reset: 0x6C, Fields: []Bitfield{
		{Name: "BS_PRE_K[1:0]", High: 7, Low: 6},
		{Name: "BS_PRE_KP[1:0]", High: 5, Low: 4},
		{Name: "BS_POST_KI", High: 3, Low: 3},
		{Name: "BS_POST_KP", High: 2, Low: 2},
		{Name: "BS_LIMIT[1:0]", High: 1, Low: 0},
	}},
	{Address: 0x1B, Name: "AGCCTRL2", Reset: 0x03, Fields: []Bitfield{
		{Name: "MAX_DVGA_GAIN[1:0]", High: 7, Low: 6},
		{Name: "MAX_LNA_GAIN[2:0]", High: 5, Low: 3},
		{Name: "MAGN_TARGET[2:0]", High: 2, Low: 0},
	}},
	{Address: 0x1C, Name: "AGCCTRL1", Reset: 0x40, Fields: []Bitfield{
		{Name: "AGC_LNA_PRIORITY", High: 6, Low: 6},
		{Name: "CARRIER_SENSE_REL_THR[1:0]", High: 5, Low: 4},
		{Name: "CARRIER_SENSE_ABS_THR[3:0]", High: 3, Low: 0},
	}},
	{Address: 0x1D, Name: "AGCCTRL0", Reset: 0x91, Fields: []Bitfield{
		{Name: "HYST_LEVEL[1:0]", High: 7, Low: 6},
		{Name: "WAIT_TIME[1:0]", High: 5, Low: 4},
		{Name: "AGC_FREEZE[1:0]", High: 3, Low: 2},
		{Name: "FILTER_LENGTH[1:0]", High: 1, Low: 0},
	}},
	{Address: 0x1E, Name: "WOREVT1", Reset: 0x87, Fields: []Bitfield{
		{Name: "EVENT0[15:8]", High: 7, Low: 0},
	}},
	{Address: 0x1F, Name: "WOREVT0", Reset: 0x6B, Fields: []Bitfield{
		{Name: "EVENT0[7:0]", High: 7, Low: 0},
	}},
	{Address: 0x20, Name: "WORCTRL", Reset: 0xF8, Fields: []Bitfield{
		{Name: "RC_PD", High: 7, Low: 7},
		{Name: "EVENT1[2:0]", High: 6, Low: 4},
		{Name: "RC_CAL", High: 3, Low: 3},
		{Name: "WOR_RES", High: 1, Low: 0},
	}},
	{Address: 0x21, Name: "FREND1", Reset: 0x56, Fields: []Bitfield{
		{Name: "LNA_CURRENT[1:0]", High: 7, Low: 6},
		{Name: "LNA2MIX_CURRENT[1:0]", High: 5, Low: 4},
		{Name: "LODIV_BUF_CURRENT_RX[1:0]", High: 3, Low: 2},
		{Name: "MIX_CURRENT[1:0]", High: 1, Low: 0},
	}},
	{Address: 0x22, Name: "FREND0", Reset: 0x10, Fields: []Bitfield{
		{Name: "LODIV_BUF_CURRENT_TX[1:0]", High: 5, Low: 4},
		{Name: "PA_POWER[2:0]", High: 2, Low: 0},
	}},
	{Address: 0x23, Name: "FSCAL3", Reset: 0xA9, Fields: []Bitfield{
		{Name: "FSCAL3[7:6]", High: 7, Low: 6},
		{Name: "CHP_CURR_CAL_EN[1:0]", High: 5, Low: 4},
		{Name: "FSCAL3[3:0]", High: 3, Low: 0},
	}},
	{Address: 0x24, Name: "FSCAL2", Reset: 0x0A, Fields: []Bitfield{
		{Name: "VCO_CORE_H_EN", High: 5, Low: 5},
		{Name: "FSCAL2[4:0]", High: 4, Low: 0},
	}},
	{Address: 0x25, Name: "FSCAL1", Reset: 0x20, Fields: []Bitfield{
		{Name: "FSCAL1[5:0]", High: 5, Low: 0},
	}},
	{Address: 0x26, Name: "FSCAL0", Reset: 0x0D, Fields: []Bitfield{
		{Name: "FSCAL0[6:0]", High: 6, Low: 0},
	}},
	{Address: 0x27, Name: "RCCTRL1", Reset: 0x41, Fields: []Bitfield{
		{Name: "RCCTRL1[6:0]", High: 6, Low: 0},
	}},
	{Address: 0x28, Name: "RCCTRL0", Reset: 0x00, Fields: []Bitfield{
		{Name: "RCCTRL0[6:0]", High: 6, Low: 0},
	}},
	{Address: 0x29, Name: "FSTEST", Reset: 0x59, Fields: []Bitfield{
		{Name: "FSTEST[7:0]", High: 7, Low: 0},
	}},
	{Address: 0x2A, Name: "PTEST", Reset: 0x7F, Fields: []Bitfield{
		{Name: "PTEST[7:0]", High: 7, Low: 0},
	}},
	{Address: 0x2B, Name: "AGCTEST", Reset: 0x3F, Fields: []Bitfield{
		{Name: "AGCTEST[7:0]", High: 7, Low: 0},
	}},
	{Address: 0x2C, Name: "TEST2", Reset: 0x88, Fields: []Bitfield{
		{Name: "TEST2[7:0]", High: 7, Low: 0},
	}},
	{Address: 0x2D, Name: "TEST1", Reset: 0x31, Fields: []Bitfield{
		{Name: "TEST1[7:0]", High: 7, Low: 0},
	}},
	{Address: 0x2E, Name: "TEST0", Reset: 0x0B, Fields: []Bitfield{
		{Name: "TEST0[7:2]", High: 7, Low: 2},
		{Name: "VCO_SEL_CAL_EN", High: 1, Low: 1},
		{Name: "TEST0[0]", High: 0, Low: 0},
	}},

	// Status registers, read-only. The address byte carries the burst header
	// bits the chip requires for status access.
	{Address: 0xF0, Name: "PARTNUM", Fields: []Bitfield{
		{Name: "PARTNUM[7:0]", High: 7, Low: 0},
	}},
	{Address: 0xF1, Name: "VERSION", Fields: []Bitfield{
		{Name: "VERSION[7:0]", High: 7, Low: 0},
	}},
	{Address: 0xF2, Name: "FREQEST", Fields: []Bitfield{
		{Name: "FREQOFF_EST", High: 7, Low: 0},
	}},
	{Address: 0xF3, Name: "LQI", Fields: []Bitfield{
		{Name: "CRC_OK", High: 7, Low: 7},
		{Name: "LQI_EST[6:0]", High: 6, Low: 0},
	}},
	{Address: 0xF4, Name: "RSSI", Fields: []Bitfield{
		{Name: "RSSI", High: 7, Low: 0},
	}},
	{Address: 0xF5, Name: "MARCSTATE", Fields: []Bitfield{
		{Name: "MARC_STATE[4:0]", High: 4, Low: 0},
	}},
	{Address: 0xF6, Name: "WORTIME1", Fields: []Bitfield{
		{Name: "TIME[15:8]", High: 7, Low: 0},
	}},
	{Address: 0xF7, Name: "WORTIME0", Fields: []Bitfield{
		{Name: "TIME[7:0]", High: 7, Low: 0},
	}},
	{Address: 0xF8, Name: "PKTSTATUS", Fields: []Bitfield{
		{Name: "CRC_OK", High: 7, Low: 7},
		{Name: "CS", High: 6, Low: 6},
		{Name: "PQT_REACHED", High: 5, Low: 5},
		{Name: "CCA", High: 4, Low: 4},
		{Name: "SFD", High: 3, Low: 3},
		{Name: "GDO2", High: 2, Low: 2},
		{Name: "GDO0", High: 0, Low: 0},
	}},
	{Address: 0xF9, Name: "VCO_VC_DAC", Fields: []Bitfield{
		{Name: "VCO_VC_DAC[7:0]", High: 7, Low: 0},
	}},
	{Address: 0xFA, Name: "TXBYTES", Fields: []Bitfield{
		{Name: "TXFIFO_UNDERFLOW", High: 7, Low: 7},
		{Name: "NUM_TXBYTES", High: 6, Low: 0},
	}},
	{Address: 0xFB, Name: "RXBYTES", Fields: []Bitfield{
		{Name: "RXFIFO_OVERFLOW", High: 7, Low: 7},
		{Name: "NUM_RXBYTES", High: 6, Low: 0},
	}},
	{Address: 0xFC, Name: "RCCTRL1_STATUS", Fields: []Bitfield{
		{Name: "RCCTRL1_STATUS[6:0]", High: 6, Low: 0},
	}},
	{Address: 0xFD, Name: "RCCTRL0_STATUS", Fields: []Bitfield{
		{Name: "RCCTRL0_STATUS[6:0]", High: 6, Low: 0},
	}},
}
