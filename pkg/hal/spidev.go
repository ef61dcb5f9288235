package hal

import (
	"fmt"

	"golang.org/x/exp/io/spi"
)

// DefaultSpeedHz is the default SPI clock. The chip tolerates much more, but
// slow and reliable wins on long jumper wires.
const DefaultSpeedHz = 50000

// SPIDev is a Channel backed by a Linux spidev device (mode 0).
type SPIDev struct {
	dev *spi.Device
}

// SPIOption configures an SPIDev.
type SPIOption func(*spiConfig)

type spiConfig struct {
	speedHz int64
}

// WithSpeed sets the SPI clock rate in Hz.
func WithSpeed(hz int64) SPIOption {
	return func(c *spiConfig) { c.speedHz = hz }
}

// OpenSPI opens a spidev device such as "/dev/spidev0.0".
func OpenSPI(path string, opts ...SPIOption) (*SPIDev, error) {
	cfg := spiConfig{speedHz: DefaultSpeedHz}
	for _, o := range opts {
		o(&cfg)
	}
	dev, err := spi.Open(&spi.Devfs{Dev: path, Mode: spi.Mode0, MaxSpeed: cfg.speedHz})
	if err != nil {
		return nil, fmt.Errorf("failed to open SPI device %s: %w", path, err)
	}
	return &SPIDev{dev: dev}, nil
}

// Transfer clocks tx out and returns the bytes read back.
func (s *SPIDev) Transfer(tx []byte) ([]byte, error) {
	rx := make([]byte, len(tx))
	if err := s.dev.Tx(tx, rx); err != nil {
		return nil, fmt.Errorf("SPI transfer failed: %w", err)
	}
	return rx, nil
}

// Close releases the spidev handle.
func (s *SPIDev) Close() error {
	return s.dev.Close()
}
