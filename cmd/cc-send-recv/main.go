// cc-send-recv is a loopback smoke test between two radios: it transmits a
// message and then listens for a reply. With no -msg it sends a random
// payload so repeated runs are distinguishable on the air.
package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/mazen160/go-random"

	"github.com/herlein/goticc/pkg/cc1101"
	"github.com/herlein/goticc/pkg/hal"
	"github.com/herlein/goticc/pkg/profiles"
)

func main() {
	dev := flag.String("dev", "/dev/spidev0.0", "spidev device path")
	speed := flag.Int64("speed", hal.DefaultSpeedHz, "SPI clock in Hz")
	profile := flag.String("profile", "ook433", "built-in profile: "+strings.Join(profiles.Names(), ", "))
	msg := flag.String("msg", "", "payload to send, random when empty")
	wait := flag.Duration("wait", 5*time.Second, "how long to listen for a reply")
	flag.Parse()

	payload := *msg
	if payload == "" {
		var err error
		payload, err = random.String(16)
		if err != nil {
			log.Fatalf("failed to generate payload: %v", err)
		}
	}

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

	log.Printf("sending %d bytes: %q", len(payload), payload)
	if err := radio.Send([]byte(payload)); err != nil {
		log.Fatalf("transmit failed: %v", err)
	}

	deadline := time.Now().Add(*wait)
	for time.Now().Before(deadline) {
		data, err := radio.Recv()
		if err != nil {
			log.Printf("receive error: %v", err)
			continue
		}
		if data == nil {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		rssi, _ := radio.RSSI()
		log.Printf("reply, %d bytes at %d dBm: %q", len(data), rssi, data)
		return
	}
	log.Print("no reply")
}
