// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp23x17_test

import (
	"fmt"
	"log"
	"time"

	"github.com/RandomInsano/mcp23x17"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Example counts in binary on the LEDs of port B while watching pin 7 of
// port A for changes, the classic expander demo for hosts whose own GPIO
// pins can't source enough current.
func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Open default I²C bus.
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer bus.Close()

	exp, err := mcp23x17.New(bus)
	if err != nil {
		log.Fatalln(err)
	}

	// Interrupt on any change of port A pin 7, pulled up.
	exp.SelectPort(mcp23x17.PortA)
	if err := exp.SetInterrupt(0x80); err != nil {
		log.Fatalln(err)
	}
	if err := exp.SetInterruptControl(0x00); err != nil {
		log.Fatalln(err)
	}
	if err := exp.SetDirection(0xff); err != nil {
		log.Fatalln(err)
	}
	if err := exp.SetPullups(0xff); err != nil {
		log.Fatalln(err)
	}

	// Port B drives the LEDs.
	exp.SelectPort(mcp23x17.PortB)
	if err := exp.SetDirection(0x00); err != nil {
		log.Fatalln(err)
	}

	for count := uint8(0); ; count++ {
		exp.SelectPort(mcp23x17.PortB)
		if err := exp.SetData(count); err != nil {
			log.Fatalln(err)
		}
		time.Sleep(time.Second)

		exp.SelectPort(mcp23x17.PortA)
		flags, err := exp.InterruptFlags()
		if err != nil {
			log.Fatalln(err)
		}
		captured, err := exp.InterruptCapture()
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("interrupt pins: %#02x, data at interrupt: %#02x\n", flags, captured)
	}
}

// Example_pins reads every line of the expander through the gpio.PinIO
// layer.
func Example_pins() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer bus.Close()

	exp, err := mcp23x17.New(bus)
	if err != nil {
		log.Fatalln(err)
	}

	for _, port := range exp.Pins {
		for _, pin := range port {
			if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
				log.Fatalln(err)
			}
			fmt.Printf("%s\t%s\n", pin.Name(), pin.Read())
		}
	}
}
