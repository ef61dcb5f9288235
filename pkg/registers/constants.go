package registers

// SPI header bits, OR'd into the address byte of a transfer.
const (
	WriteSingle = 0x00
	WriteBurst  = 0x40
	ReadSingle  = 0x80
	ReadBurst   = 0xC0
)

// Command strobes. Each is a single command byte causing an immediate chip
// state transition with no payload.
const (
	SRES    = 0x30 // Reset chip
	SFSTXON = 0x31 // Enable and calibrate frequency synthesizer
	SXOFF   = 0x32 // Turn off crystal oscillator
	SCAL    = 0x33 // Calibrate frequency synthesizer and turn it off
	SRX     = 0x34 // Enable RX
	STX     = 0x35 // In IDLE state: enable TX, calibrating first if configured
	SIDLE   = 0x36 // Exit RX/TX, turn off frequency synthesizer and WOR
	SWOR    = 0x38 // Start automatic RX polling (Wake-on-Radio)
	SPWD    = 0x39 // Enter power-down mode when CSn goes high
	SFRX    = 0x3A // Flush the RX FIFO
	SFTX    = 0x3B // Flush the TX FIFO
	SWORRST = 0x3C // Reset real-time clock to Event1 value
	SNOP    = 0x3D // No operation; returns the chip status byte
)

// Multi-byte access addresses.
const (
	PATABLE = 0x3E
	TXFIFO  = 0x3F
	RXFIFO  = 0x3F
)

// RadioState is the main radio control state machine state (MARCSTATE[4:0]).
type RadioState uint8

const (
	StateSLEEP       RadioState = 0x00
	StateIDLE        RadioState = 0x01
	StateXOFF        RadioState = 0x02
	StateVCOON_MC    RadioState = 0x03
	StateREGON_MC    RadioState = 0x04
	StateMAN_CAL     RadioState = 0x05
	StateVCOON       RadioState = 0x06
	StateREGON       RadioState = 0x07
	StateSTARTCAL    RadioState = 0x08
	StateBWBOOST     RadioState = 0x09
	StateFS_LOCK     RadioState = 0x0A
	StateIFADCON     RadioState = 0x0B
	StateENDCAL      RadioState = 0x0C
	StateRX          RadioState = 0x0D
	StateRX_END      RadioState = 0x0E
	StateRX_RST      RadioState = 0x0F
	StateTXRX_SWITCH RadioState = 0x10
	StateRXFIFO_OVF  RadioState = 0x11
	StateFSTXON      RadioState = 0x12
	StateTX          RadioState = 0x13
	StateTX_END      RadioState = 0x14
	StateRXTX_SWITCH RadioState = 0x15
	StateTXFIFO_UNF  RadioState = 0x16
)

// String returns a human-readable name for the radio state
func (s RadioState) String() string {
	names := map[RadioState]string{
		StateSLEEP:       "SLEEP",
		StateIDLE:        "IDLE",
		StateXOFF:        "XOFF",
		StateVCOON_MC:    "VCOON_MC",
		StateREGON_MC:    "REGON_MC",
		StateMAN_CAL:     "MANCAL",
		StateVCOON:       "VCOON",
		StateREGON:       "REGON",
		StateSTARTCAL:    "STARTCAL",
		StateBWBOOST:     "BWBOOST",
		StateFS_LOCK:     "FS_LOCK",
		StateIFADCON:     "IFADCON",
		StateENDCAL:      "ENDCAL",
		StateRX:          "RX",
		StateRX_END:      "RX_END",
		StateRX_RST:      "RX_RST",
		StateTXRX_SWITCH: "TXRX_SWITCH",
		StateRXFIFO_OVF:  "RXFIFO_OVERFLOW",
		StateFSTXON:      "FSTXON",
		StateTX:          "TX",
		StateTX_END:      "TX_END",
		StateRXTX_SWITCH: "RXTX_SWITCH",
		StateTXFIFO_UNF:  "TXFIFO_UNDERFLOW",
	}
	if name, ok := names[s]; ok {
		return name
	}
	return "UNKNOWN"
}
