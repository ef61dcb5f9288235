// cc-rx configures the radio from a built-in profile and prints every packet
// it hears, with signal strength. With -gdo0 it waits on the GDO0 interrupt
// line instead of polling the RX FIFO.
package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/herlein/goticc/pkg/cc1101"
	"github.com/herlein/goticc/pkg/hal"
	"github.com/herlein/goticc/pkg/profiles"
)

func main() {
	dev := flag.String("dev", "/dev/spidev0.0", "spidev device path")
	speed := flag.Int64("speed", hal.DefaultSpeedHz, "SPI clock in Hz")
	profile := flag.String("profile", "ook433", "built-in profile: "+strings.Join(profiles.Names(), ", "))
	gpiochip := flag.String("gpiochip", "gpiochip0", "GPIO chip for the GDO0 line")
	gdo0 := flag.Int("gdo0", -1, "GDO0 GPIO pin, -1 to poll instead")
	flag.Parse()

	p, err := profiles.ByName(*profile)
	if err != nil {
		log.Fatal(err)
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
	if err := radio.Reset(); err != nil {
		log.Fatalf("failed to reset radio: %v", err)
	}
	if err := p.Apply(radio); err != nil {
		log.Fatalf("failed to apply profile: %v", err)
	}
	log.Printf("listening with profile %s (%s)", p.Name, p.Description)

	var line *hal.GDO0Line
	if *gdo0 >= 0 {
		line, err = hal.OpenGDO0(*gpiochip, *gdo0)
		if err != nil {
			log.Fatalf("failed to open GDO0: %v", err)
		}
		defer line.Close()
		// route the sync/end-of-packet signal to GDO0
		if err := radio.WriteByte("IOCFG0", 0x06); err != nil {
			log.Fatalf("failed to configure GDO0 output: %v", err)
		}
	}

	for {
		if line != nil {
			if err := radio.EnableRX(); err != nil {
				log.Fatalf("failed to enter RX: %v", err)
			}
			if !line.WaitPacket(time.Second) {
				continue
			}
		}
		data, err := radio.Recv()
		if err != nil {
			log.Printf("receive error: %v", err)
			continue
		}
		if data == nil {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		rssi, err := radio.RSSI()
		if err != nil {
			log.Fatalf("failed to read RSSI: %v", err)
		}
		log.Printf("%d bytes at %d dBm: %q", len(data), rssi, data)
	}
}
