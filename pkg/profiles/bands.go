package profiles

// Built-in profiles. The Raw blocks carry AGC and front-end tuning from TI's
// design notes for the respective modulation.
var builtin = []*Profile{OOK433, GFSK868, FSK915}

// OOK433 is a 433.92 MHz on-off-keyed setup at 2400 baud, the common remote
// control band.
var OOK433 = &Profile{
	Name:         "ook433",
	Description:  "433.92 MHz OOK, 2400 baud, variable length packets",
	FrequencyMHz: 433.92,
	Modulation:   "OOK",
	DataRateBaud: 2400,
	BandwidthHz:  100000,
	LengthMode:   "PKT_LEN_VARIABLE",
	Manchester:   1,
	Whitening:    0,
	Raw: map[string]uint8{
		"FIFOTHR":  0x47,
		"FREND1":   0x56,
		"AGCCTRL2": 0x06,
		"AGCCTRL1": 0x00,
		"AGCCTRL0": 0x91,
		"TEST2":    0x81,
		"TEST1":    0x35,
	},
}

// GFSK868 is an 868.3 MHz GFSK setup at 38400 baud for the European SRD band.
var GFSK868 = &Profile{
	Name:         "gfsk868",
	Description:  "868.3 MHz GFSK, 38400 baud, variable length packets",
	FrequencyMHz: 868.3,
	Modulation:   "GFSK",
	DataRateBaud: 38400,
	BandwidthHz:  100000,
	LengthMode:   "PKT_LEN_VARIABLE",
	SyncWord:     "D391",
	Manchester:   0,
	Whitening:    1,
	Raw: map[string]uint8{
		"FIFOTHR":  0x47,
		"AGCCTRL2": 0x43,
		"AGCCTRL1": 0x40,
		"AGCCTRL0": 0x91,
	},
}

// FSK915 is a 915 MHz 2-FSK setup at 9600 baud for the US ISM band.
var FSK915 = &Profile{
	Name:         "fsk915",
	Description:  "915 MHz 2-FSK, 9600 baud, variable length packets",
	FrequencyMHz: 915,
	Modulation:   "2-FSK",
	DataRateBaud: 9600,
	BandwidthHz:  100000,
	LengthMode:   "PKT_LEN_VARIABLE",
	SyncWord:     "D391",
	Manchester:   0,
	Whitening:    1,
	Raw: map[string]uint8{
		"FIFOTHR":  0x47,
		"AGCCTRL2": 0x43,
		"AGCCTRL1": 0x40,
		"AGCCTRL0": 0x91,
	},
}
