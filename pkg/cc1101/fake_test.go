package cc1101

import (
	"github.com/herlein/goticc/pkg/registers"
)

// fakeChip simulates enough of a CC1101 behind the channel interface to test
// register transactions, strobes and packet framing: a register file seeded
// with data-sheet reset values, both FIFOs and a MARCSTATE that follows
// strobes.
type fakeChip struct {
	regs    map[uint8]uint8
	strobes []uint8
	rxFIFO  []byte
	txFIFO  []byte
	sent    [][]byte // frames captured on STX

	marc    uint8
	rssi    uint8
	partNum uint8
	version uint8
}

func newFakeChip() *fakeChip {
	c := &fakeChip{
		regs:    make(map[uint8]uint8),
		marc:    uint8(registers.StateIDLE),
		partNum: 0x00,
		version: 0x14,
	}
	for _, r := range registers.All() {
		if r.Address <= 0x2E {
			c.regs[r.Address] = r.Reset
		}
	}
	return c
}

func (c *fakeChip) popRX() uint8 {
	if len(c.rxFIFO) == 0 {
		return 0
	}
	b := c.rxFIFO[0]
	c.rxFIFO = c.rxFIFO[1:]
	return b
}

func (c *fakeChip) statusValue(addr uint8) uint8 {
	switch addr {
	case 0xF0:
		return c.partNum
	case 0xF1:
		return c.version
	case 0xF4:
		return c.rssi
	case 0xF5:
		return c.marc
	case 0xFA:
		return uint8(len(c.txFIFO))
	case 0xFB:
		return uint8(len(c.rxFIFO))
	}
	return 0
}

func (c *fakeChip) Transfer(tx []byte) ([]byte, error) {
	rx := make([]byte, len(tx))
	h := tx[0]
	switch {
	case h >= registers.SRES && h <= registers.SNOP:
		c.strobes = append(c.strobes, h)
		switch h {
		case registers.SRX:
			c.marc = uint8(registers.StateRX)
		case registers.STX:
			c.marc = uint8(registers.StateTX)
			c.sent = append(c.sent, append([]byte(nil), c.txFIFO...))
			c.txFIFO = nil
		case registers.SIDLE:
			c.marc = uint8(registers.StateIDLE)
		case registers.SFRX:
			c.rxFIFO = nil
		case registers.SFTX:
			c.txFIFO = nil
		}
	case h&0xC0 == 0xC0:
		base := h & 0x3F
		switch {
		case base == 0x3F:
			for i := 1; i < len(tx); i++ {
				rx[i] = c.popRX()
			}
		case base >= 0x30:
			rx[1] = c.statusValue(h)
		default:
			for i := 1; i < len(tx); i++ {
				rx[i] = c.regs[base+uint8(i-1)]
			}
		}
	case h&0x80 != 0:
		addr := h & 0x3F
		if addr == 0x3F {
			rx[1] = c.popRX()
		} else {
			rx[1] = c.regs[addr]
		}
	case h&0x40 != 0:
		addr := h & 0x3F
		if addr == 0x3F {
			c.txFIFO = append(c.txFIFO, tx[1:]...)
		} else {
			for i := 1; i < len(tx); i++ {
				c.regs[addr+uint8(i-1)] = tx[i]
			}
		}
	default:
		c.regs[h] = tx[1]
	}
	return rx, nil
}

func (c *fakeChip) Close() error { return nil }

func (c *fakeChip) strobed(cmd uint8) bool {
	for _, s := range c.strobes {
		if s == cmd {
			return true
		}
	}
	return false
}

func newTestDevice() (*Device, *fakeChip) {
	chip := newFakeChip()
	return New(chip), chip
}
