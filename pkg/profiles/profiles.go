// Package profiles provides canned radio setups: a named bundle of carrier,
// modulation and packet settings plus the raw register tweaks that make the
// combination actually receive well.
package profiles

import (
	"fmt"

	"github.com/herlein/goticc/pkg/cc1101"
)

// Profile describes one complete radio setup. Raw holds register values
// applied verbatim after the typed settings, for analog tuning the unit
// accessors do not cover.
type Profile struct {
	Name         string
	Description  string
	FrequencyMHz float64
	Modulation   string
	DataRateBaud float64
	BandwidthHz  int
	LengthMode   string
	SyncWord     string // empty keeps the chip default
	Manchester   uint8
	Whitening    uint8
	Raw          map[string]uint8
}

// Apply programs the profile onto the device, idling it first.
func (p *Profile) Apply(d *cc1101.Device) error {
	if err := d.SetBaseFrequency(p.FrequencyMHz); err != nil {
		return fmt.Errorf("profile %s: %w", p.Name, err)
	}
	if err := d.SetModulation(p.Modulation); err != nil {
		return fmt.Errorf("profile %s: %w", p.Name, err)
	}
	if err := d.SetDataRate(p.DataRateBaud); err != nil {
		return fmt.Errorf("profile %s: %w", p.Name, err)
	}
	if err := d.SetRXBandwidth(p.BandwidthHz); err != nil {
		return fmt.Errorf("profile %s: %w", p.Name, err)
	}
	if err := d.SetPacketLength(p.LengthMode); err != nil {
		return fmt.Errorf("profile %s: %w", p.Name, err)
	}
	if p.SyncWord != "" {
		if err := d.SetSyncWord(p.SyncWord); err != nil {
			return fmt.Errorf("profile %s: %w", p.Name, err)
		}
	}
	if err := d.SetManchester(p.Manchester); err != nil {
		return fmt.Errorf("profile %s: %w", p.Name, err)
	}
	if err := d.SetWhitening(p.Whitening); err != nil {
		return fmt.Errorf("profile %s: %w", p.Name, err)
	}
	for name, v := range p.Raw {
		if err := d.WriteByte(name, v); err != nil {
			return fmt.Errorf("profile %s: %w", p.Name, err)
		}
	}
	return nil
}

// ByName returns a built-in profile.
func ByName(name string) (*Profile, error) {
	for _, p := range builtin {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no built-in profile named %q", name)
}

// Names lists the built-in profiles.
func Names() []string {
	out := make([]string, len(builtin))
	for i, p := range builtin {
		out[i] = p.Name
	}
	return out
}
