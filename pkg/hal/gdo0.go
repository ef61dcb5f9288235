package hal

import (
	"fmt"
	"time"

	"github.com/warthog618/gpiod"
)

// GDO0Line watches the chip's GDO0 pin. With the usual IOCFG0 setting (0x06)
// the pin rises when a sync word is received and falls at end of packet, so a
// rising edge means a packet is arriving and polling RXBYTES can be avoided.
type GDO0Line struct {
	chip   *gpiod.Chip
	line   *gpiod.Line
	events chan struct{}
}

// OpenGDO0 requests the GDO0 GPIO line with rising-edge event detection.
// chipName is the gpiochip device name, e.g. "gpiochip0".
func OpenGDO0(chipName string, pin int) (*GDO0Line, error) {
	g := &GDO0Line{events: make(chan struct{}, 4)}

	c, err := gpiod.NewChip(chipName, gpiod.WithConsumer("goticc"))
	if err != nil {
		return nil, fmt.Errorf("failed to open GPIO chip %s: %w", chipName, err)
	}
	g.chip = c

	g.line, err = c.RequestLine(pin, gpiod.WithEventHandler(g.onEdge), gpiod.WithRisingEdge)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to request GDO0 line %d: %w", pin, err)
	}
	return g, nil
}

func (g *GDO0Line) onEdge(evt gpiod.LineEvent) {
	select {
	case g.events <- struct{}{}:
	default:
		// consumer is behind, edge already pending
	}
}

// WaitPacket blocks until GDO0 rises or the timeout elapses. It returns true
// when an edge arrived.
func (g *GDO0Line) WaitPacket(timeout time.Duration) bool {
	select {
	case <-g.events:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Close releases the GPIO line and chip.
func (g *GDO0Line) Close() error {
	if err := g.line.Close(); err != nil {
		return fmt.Errorf("failed to close GDO0 line: %w", err)
	}
	return g.chip.Close()
}
