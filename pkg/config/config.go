// Package config snapshots the chip's configuration register file to JSON
// and restores it, so a working radio setup can be saved and reproduced.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/herlein/goticc/pkg/cc1101"
	"github.com/herlein/goticc/pkg/registers"
)

// lastConfigAddr is the highest configuration register address; everything
// above it is strobes, FIFOs or read-only status.
const lastConfigAddr = 0x2E

// DeviceConfig is a JSON-serializable snapshot of the configuration
// registers, keyed by register name.
type DeviceConfig struct {
	Timestamp string           `json:"timestamp"`
	OscFreqHz float64          `json:"osc_freq_hz"`
	Registers map[string]uint8 `json:"registers"`
}

// Dump reads every configuration register into a snapshot. The radio is
// idled first so the values are stable.
func Dump(d *cc1101.Device) (*DeviceConfig, error) {
	if err := d.Idle(); err != nil {
		return nil, err
	}
	cfg := &DeviceConfig{
		Timestamp: time.Now().Format(time.RFC3339),
		OscFreqHz: d.OscFreq(),
		Registers: make(map[string]uint8),
	}
	for _, r := range registers.All() {
		if r.Address > lastConfigAddr {
			continue
		}
		b, err := d.ReadByteAt(r.Address)
		if err != nil {
			return nil, fmt.Errorf("failed to dump %s: %w", r.Name, err)
		}
		cfg.Registers[r.Name] = b
	}
	return cfg, nil
}

// Apply writes a snapshot back to the chip. Unknown register names fail the
// whole apply before anything else goes wrong on the air.
func Apply(d *cc1101.Device, cfg *DeviceConfig) error {
	for name := range cfg.Registers {
		if _, err := registers.ByName(name); err != nil {
			return err
		}
	}
	if err := d.Idle(); err != nil {
		return err
	}
	for _, r := range registers.All() {
		v, ok := cfg.Registers[r.Name]
		if !ok {
			continue
		}
		if err := d.WriteByteAt(r.Address, v); err != nil {
			return fmt.Errorf("failed to apply %s: %w", r.Name, err)
		}
	}
	return nil
}

// SaveToFile writes the snapshot as indented JSON, creating parent
// directories as needed.
func (c *DeviceConfig) SaveToFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LoadFromFile reads a snapshot written by SaveToFile.
func LoadFromFile(path string) (*DeviceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg DeviceConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}
