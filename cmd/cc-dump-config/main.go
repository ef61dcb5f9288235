// cc-dump-config reads the radio's configuration registers and prints them
// as JSON, or saves them to a file for cc-load-config.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/herlein/goticc/pkg/cc1101"
	"github.com/herlein/goticc/pkg/config"
	"github.com/herlein/goticc/pkg/hal"
)

func main() {
	dev := flag.String("dev", "/dev/spidev0.0", "spidev device path")
	speed := flag.Int64("speed", hal.DefaultSpeedHz, "SPI clock in Hz")
	out := flag.String("o", "", "write the snapshot to this file instead of stdout")
	flag.Parse()

	ch, err := hal.OpenSPI(*dev, hal.WithSpeed(*speed))
	if err != nil {
		log.Fatalf("failed to open %s: %v", *dev, err)
	}
	defer ch.Close()

	radio := cc1101.New(ch)
	if err := radio.SanityCheck(); err != nil {
		log.Fatalf("no CC1101 found on %s: %v", *dev, err)
	}

	cfg, err := config.Dump(radio)
	if err != nil {
		log.Fatalf("failed to dump configuration: %v", err)
	}

	if *out != "" {
		if err := cfg.SaveToFile(*out); err != nil {
			log.Fatalf("failed to save configuration: %v", err)
		}
		log.Printf("wrote %d registers to %s", len(cfg.Registers), *out)
		return
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal configuration: %v", err)
	}
	fmt.Println(string(data))
}
