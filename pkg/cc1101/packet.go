package cc1101

import (
	"fmt"
	"time"

	"github.com/herlein/goticc/pkg/registers"
)

// txDrainTimeout bounds how long Send waits for the TX FIFO to empty. At the
// slowest supported data rate a full FIFO still drains well inside this.
const txDrainTimeout = time.Second

// Recv enables receive mode and returns one pending packet, or (nil, nil)
// when the RX FIFO is empty. The packet framing follows the configured
// length mode; in variable mode the leading length byte is consumed and not
// returned. The radio is left idle afterwards.
func (d *Device) Recv() ([]byte, error) {
	if err := d.EnableRX(); err != nil {
		return nil, err
	}
	rxBytes, err := d.ReadByte("RXBYTES")
	if err != nil {
		return nil, err
	}
	if rxBytes&0x80 != 0 {
		// overflow, nothing in the FIFO is trustworthy
		if err := d.FlushRXFIFO(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if rxBytes&0x7F == 0 {
		return nil, nil
	}

	mode, err := d.PacketLength()
	if err != nil {
		return nil, err
	}
	var n int
	switch mode {
	case "PKT_LEN_FIXED":
		pktLen, err := d.ReadByte("PKTLEN")
		if err != nil {
			return nil, err
		}
		n = int(pktLen)
	case "PKT_LEN_VARIABLE":
		maxLen, err := d.ReadByte("PKTLEN")
		if err != nil {
			return nil, err
		}
		lenByte, err := d.ReadByteAt(registers.RXFIFO)
		if err != nil {
			return nil, err
		}
		if lenByte > maxLen {
			d.FlushRXFIFO()
			d.Idle()
			return nil, fmt.Errorf("length byte %d exceeds PKTLEN %d, discarding FIFO", lenByte, maxLen)
		}
		n = int(lenByte)
	default:
		return nil, ErrInfiniteLengthMode
	}

	data, err := d.ReadBurst(registers.RXFIFO, n)
	if err != nil {
		return nil, err
	}
	if err := d.FlushRXFIFO(); err != nil {
		return nil, err
	}
	if err := d.Idle(); err != nil {
		return nil, err
	}
	return data, nil
}

// Send frames payload for the configured length mode, writes it to the TX
// FIFO and transmits, blocking until the FIFO drains.
func (d *Device) Send(payload []byte) error {
	if len(payload) == 0 {
		return ErrEmptyPayload
	}
	mode, err := d.PacketLength()
	if err != nil {
		return err
	}
	pktLen, err := d.ReadByte("PKTLEN")
	if err != nil {
		return err
	}
	appendStatus, err := d.FieldValueOf("PKTCTRL1", "APPEND_STATUS")
	if err != nil {
		return err
	}
	var addr uint8
	if appendStatus == 1 {
		addr, err = d.ReadByte("ADDR")
		if err != nil {
			return err
		}
	}

	var frame []byte
	switch mode {
	case "PKT_LEN_FIXED":
		if len(payload) > int(pktLen) {
			return fmt.Errorf("payload is %d bytes, PKTLEN is %d: %w",
				len(payload), pktLen, ErrPayloadTooBig)
		}
		if appendStatus == 1 {
			frame = append(frame, addr)
		}
		frame = append(frame, payload...)
		for len(frame) < int(pktLen) {
			frame = append(frame, 0x00)
		}
	case "PKT_LEN_VARIABLE":
		if len(payload) > int(pktLen) || len(payload) > 255 {
			return fmt.Errorf("payload is %d bytes, PKTLEN is %d: %w",
				len(payload), pktLen, ErrPayloadTooBig)
		}
		if appendStatus == 1 {
			frame = append(frame, uint8(len(payload)+1), addr)
		} else {
			frame = append(frame, uint8(len(payload)))
		}
		frame = append(frame, payload...)
	default:
		return ErrInfiniteLengthMode
	}

	// start from a clean FIFO
	if err := d.Idle(); err != nil {
		return err
	}
	if err := d.WriteBurst(registers.TXFIFO, frame); err != nil {
		return err
	}
	if err := d.EnableTX(); err != nil {
		return err
	}

	deadline := time.Now().Add(txDrainTimeout)
	for {
		txBytes, err := d.ReadByte("TXBYTES")
		if err != nil {
			return err
		}
		if txBytes&0x80 != 0 {
			d.FlushTXFIFO()
			return fmt.Errorf("TX FIFO underflowed during transmit")
		}
		if txBytes&0x7F == 0 {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("TX FIFO did not drain, %d bytes left", txBytes&0x7F)
		}
		time.Sleep(time.Millisecond)
	}
}
