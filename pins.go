// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp23x17

import (
	"errors"
	"strconv"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"
)

// Pin extends gpio.PinIO with features supported by the expander.
type Pin interface {
	gpio.PinIO
	// SetPolarityInverted if set to true, reads of the pin report the
	// inverted logic level.
	SetPolarityInverted(p bool) error
	// IsPolarityInverted returns true if reads of the pin report the
	// inverted logic level.
	IsPolarityInverted() (bool, error)
}

// portpin addresses its own port directly and never changes the owning
// driver's port selection.
type portpin struct {
	dev    *Dev
	port   Port
	pinbit uint8
}

func (p *portpin) String() string {
	return p.Name()
}

func (p *portpin) Halt() error {
	// To halt all drive, revert to high-impedance input.
	return p.In(gpio.PullNoChange, gpio.NoEdge)
}

func (p *portpin) Name() string {
	return p.dev.String() + "_" + p.port.String() + "_" + strconv.Itoa(int(p.pinbit))
}

func (p *portpin) Number() int {
	return int(p.port)*8 + int(p.pinbit)
}

func (p *portpin) Function() string {
	return string(p.Func())
}

func (p *portpin) In(pull gpio.Pull, edge gpio.Edge) error {
	switch pull {
	case gpio.PullDown:
		return errors.New("mcp23x17: PullDown is not supported")
	case gpio.PullUp:
		if err := p.dev.setRegisterBit(p.port, regGPPU, p.pinbit, true); err != nil {
			return err
		}
	case gpio.Float:
		if err := p.dev.setRegisterBit(p.port, regGPPU, p.pinbit, false); err != nil {
			return err
		}
	case gpio.PullNoChange:
	}

	// The chip signals changes on its INT pins, not over the bus. Routing
	// them needs a host GPIO and belongs to the caller.
	if edge != gpio.NoEdge {
		return errors.New("mcp23x17: edge detection not supported")
	}

	return p.dev.setRegisterBit(p.port, regIODir, p.pinbit, true)
}

// Read returns the sensed level of the pin. The underlying port read clears
// the chip's interrupt latch for the port.
func (p *portpin) Read() gpio.Level {
	v, _ := p.dev.registerBit(p.port, regGPIO, p.pinbit)
	if v {
		return gpio.High
	}
	return gpio.Low
}

func (p *portpin) WaitForEdge(timeout time.Duration) bool {
	return false
}

func (p *portpin) Pull() gpio.Pull {
	v, err := p.dev.registerBit(p.port, regGPPU, p.pinbit)
	if err != nil {
		return gpio.PullNoChange
	}
	if v {
		return gpio.PullUp
	}
	return gpio.Float
}

func (p *portpin) DefaultPull() gpio.Pull {
	return gpio.Float
}

func (p *portpin) Out(l gpio.Level) error {
	if err := p.dev.setRegisterBit(p.port, regIODir, p.pinbit, false); err != nil {
		return err
	}
	// Modify through the output latch rather than GPIO so the
	// read-modify-write does not clear a pending interrupt capture.
	return p.dev.setRegisterBit(p.port, regOLat, p.pinbit, l == gpio.High)
}

func (p *portpin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return errors.New("mcp23x17: PWM is not supported")
}

func (p *portpin) Func() pin.Func {
	v, _ := p.dev.registerBit(p.port, regIODir, p.pinbit)
	if v {
		return gpio.IN
	}
	return gpio.OUT
}

func (p *portpin) SupportedFuncs() []pin.Func {
	return supportedFuncs[:]
}

func (p *portpin) SetFunc(f pin.Func) error {
	var v bool
	switch f {
	case gpio.IN:
		v = true
	case gpio.OUT:
		v = false
	default:
		return errors.New("mcp23x17: function not supported: " + string(f))
	}
	return p.dev.setRegisterBit(p.port, regIODir, p.pinbit, v)
}

func (p *portpin) SetPolarityInverted(pol bool) error {
	return p.dev.setRegisterBit(p.port, regIPol, p.pinbit, pol)
}

func (p *portpin) IsPolarityInverted() (bool, error) {
	return p.dev.registerBit(p.port, regIPol, p.pinbit)
}

var supportedFuncs = [...]pin.Func{gpio.IN, gpio.OUT}

var _ gpio.PinIO = &portpin{}
