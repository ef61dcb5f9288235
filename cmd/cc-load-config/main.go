// cc-load-config restores a configuration snapshot written by
// cc-dump-config onto the radio.
package main

import (
	"flag"
	"log"

	"github.com/herlein/goticc/pkg/cc1101"
	"github.com/herlein/goticc/pkg/config"
	"github.com/herlein/goticc/pkg/hal"
)

func main() {
	dev := flag.String("dev", "/dev/spidev0.0", "spidev device path")
	speed := flag.Int64("speed", hal.DefaultSpeedHz, "SPI clock in Hz")
	file := flag.String("f", "", "configuration snapshot to load (required)")
	flag.Parse()

	if *file == "" {
		log.Fatal("-f is required")
	}

	cfg, err := config.LoadFromFile(*file)
	if err != nil {
		log.Fatalf("failed to load %s: %v", *file, err)
	}

	ch, err := hal.OpenSPI(*dev, hal.WithSpeed(*speed))
	if err != nil {
		log.Fatalf("failed to open %s: %v", *dev, err)
	}
	defer ch.Close()

	radio := cc1101.New(ch)
	if err := radio.SanityCheck(); err != nil {
		log.Fatalf("no CC1101 found on %s: %v", *dev, err)
	}
	if err := config.Apply(radio, cfg); err != nil {
		log.Fatalf("failed to apply configuration: %v", err)
	}
	log.Printf("applied %d registers from %s", len(cfg.Registers), *file)
}
