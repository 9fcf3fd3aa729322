// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp23x17

import (
	"fmt"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
)

// Address is the fixed I²C address of the expander.
const Address uint16 = 0x20

// Register offsets, valid for port A. The same register on port B lives at
// offset | 0x10.
const (
	// I/O direction. 1 = input. Defaults to 0xff.
	regIODir uint8 = 0x00
	// Input polarity inversion. 1 = invert logic.
	regIPol uint8 = 0x01
	// Interrupt on change. 1 = enabled.
	regGPIntEn uint8 = 0x02
	// Comparison value for interrupts.
	regDefVal uint8 = 0x03
	// Interrupt on change configuration.
	regIntCon uint8 = 0x04
	// Chip configuration.
	regIOCon uint8 = 0x05
	// Internal 100KOhm pull-up resistors. 1 = enabled.
	regGPPU uint8 = 0x06
	// Interrupt flag. Read-only.
	regIntF uint8 = 0x07
	// Interrupt captured value. Read-only.
	regIntCap uint8 = 0x08
	// General purpose I/O value. 1 = high.
	regGPIO uint8 = 0x09
	// Output latch. 1 = high.
	regOLat uint8 = 0x0a

	// Added to a register offset to address the port B copy.
	portBOffset uint8 = 0x10
)

// Port selects which of the chip's two 8-bit register banks an operation
// addresses.
type Port int

const (
	PortA Port = iota
	PortB
)

func (p Port) String() string {
	if p == PortB {
		return "B"
	}
	return "A"
}

// Dev is an MCP23x17 expander on an I²C bus.
//
// The zero value is not usable; call New. Dev is not safe for concurrent use:
// the active port selection is read by every operation, so sharing a Dev
// between goroutines requires external locking.
type Dev struct {
	// Pins exposes the expander's GPIO lines as periph pins, indexed as
	// [port][pin].
	Pins [][]Pin

	d      *i2c.Dev
	active Port
}

// New returns a driver for an MCP23x17 on the supplied bus.
//
// No transaction is performed; the chip is not probed. The active port starts
// as PortA.
func New(bus i2c.Bus) (*Dev, error) {
	d := &Dev{
		d:      &i2c.Dev{Bus: bus, Addr: Address},
		active: PortA,
	}
	d.Pins = make([][]Pin, 2)
	for _, port := range []Port{PortA, PortB} {
		d.Pins[port] = make([]Pin, 8)
		for bit := uint8(0); bit < 8; bit++ {
			p := &portpin{dev: d, port: port, pinbit: bit}
			d.Pins[port][bit] = p
			// Ignore registration failure.
			_ = gpioreg.Register(p)
		}
	}
	return d, nil
}

// SelectPort sets the port addressed by all subsequent register operations.
// It only mutates driver state and never touches the bus.
func (d *Dev) SelectPort(p Port) {
	d.active = p
}

// registerFor maps a port A register offset to the physical address on the
// given port. Offsets never exceed 0x0a, so the or never carries.
func registerFor(p Port, reg uint8) uint8 {
	if p == PortB {
		return reg | portBOffset
	}
	return reg
}

// writeRegister performs a single write transaction of [address, value].
// Transport errors are returned as-is.
func (d *Dev) writeRegister(p Port, reg, value uint8) error {
	return d.d.Tx([]byte{registerFor(p, reg), value}, nil)
}

// readRegister performs a single write-then-read transaction of [address]
// followed by a one byte read. Transport errors are returned as-is.
func (d *Dev) readRegister(p Port, reg uint8) (uint8, error) {
	var buf [1]byte
	if err := d.d.Tx([]byte{registerFor(p, reg)}, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// setRegisterBit reads a register on the given port, updates one bit and
// writes it back.
func (d *Dev) setRegisterBit(p Port, reg, bit uint8, value bool) error {
	v, err := d.readRegister(p, reg)
	if err != nil {
		return err
	}
	if value {
		v |= 1 << bit
	} else {
		v &^= 1 << bit
	}
	return d.writeRegister(p, reg, v)
}

// registerBit reads one bit of a register on the given port.
func (d *Dev) registerBit(p Port, reg, bit uint8) (bool, error) {
	v, err := d.readRegister(p, reg)
	return v&(1<<bit) != 0, err
}

// SetDirection configures the data direction of the active port. A set bit
// makes the pin an input. The chip resets with all pins as inputs.
func (d *Dev) SetDirection(mask uint8) error {
	return d.writeRegister(d.active, regIODir, mask)
}

// Direction returns the data direction mask of the active port.
func (d *Dev) Direction() (uint8, error) {
	return d.readRegister(d.active, regIODir)
}

// SetPolarity configures input polarity inversion on the active port. A set
// bit inverts the logic level reported for that pin.
func (d *Dev) SetPolarity(mask uint8) error {
	return d.writeRegister(d.active, regIPol, mask)
}

// Polarity returns the input polarity mask of the active port.
func (d *Dev) Polarity() (uint8, error) {
	return d.readRegister(d.active, regIPol)
}

// SetInterrupt enables interrupt-on-change for the set bits of the active
// port. The pins must also be configured as inputs.
func (d *Dev) SetInterrupt(mask uint8) error {
	return d.writeRegister(d.active, regGPIntEn, mask)
}

// Interrupt returns the interrupt-on-change enable mask of the active port.
func (d *Dev) Interrupt() (uint8, error) {
	return d.readRegister(d.active, regGPIntEn)
}

// SetDefaultValue sets the reference value interrupts compare against when
// the corresponding InterruptControl bit is set. An opposite level on the pin
// raises the interrupt.
func (d *Dev) SetDefaultValue(mask uint8) error {
	return d.writeRegister(d.active, regDefVal, mask)
}

// DefaultValue returns the interrupt comparison value of the active port.
func (d *Dev) DefaultValue() (uint8, error) {
	return d.readRegister(d.active, regDefVal)
}

// SetInterruptControl selects how interrupts trigger on the active port. A
// set bit compares the pin against the DefaultValue reference; a cleared bit
// raises the interrupt on any change.
func (d *Dev) SetInterruptControl(mask uint8) error {
	return d.writeRegister(d.active, regIntCon, mask)
}

// InterruptControl returns the interrupt control mask of the active port.
func (d *Dev) InterruptControl() (uint8, error) {
	return d.readRegister(d.active, regIntCon)
}

// SetConfig writes the chip-wide configuration register. The chip mirrors
// the register between both ports.
//
// The BankMode flag is always cleared before writing: the register addressing
// used by this driver requires the split 8-bit layout, and an applied
// BankMode bit would remap every register address out from under it.
func (d *Dev) SetConfig(flags Config) error {
	return d.writeRegister(d.active, regIOCon, uint8(flags&^BankMode))
}

// Config returns the chip-wide configuration register.
func (d *Dev) Config() (Config, error) {
	v, err := d.readRegister(d.active, regIOCon)
	return Config(v), err
}

// SetPullups enables the internal 100KOhm pull-up resistors for the set bits
// of the active port.
func (d *Dev) SetPullups(mask uint8) error {
	return d.writeRegister(d.active, regGPPU, mask)
}

// Pullups returns the pull-up enable mask of the active port.
func (d *Dev) Pullups() (uint8, error) {
	return d.readRegister(d.active, regGPPU)
}

// InterruptFlags returns which pins of the active port caused the pending
// interrupt. A set bit identifies the source pin.
func (d *Dev) InterruptFlags() (uint8, error) {
	return d.readRegister(d.active, regIntF)
}

// InterruptCapture returns the port value latched at the moment the interrupt
// occurred. Reading it deasserts the chip's interrupt output; the captured
// value itself persists until the next interrupt.
func (d *Dev) InterruptCapture() (uint8, error) {
	return d.readRegister(d.active, regIntCap)
}

// SetData drives the output pins of the active port. Bits for pins configured
// as inputs are stored in the output latch but not driven.
func (d *Dev) SetData(value uint8) error {
	return d.writeRegister(d.active, regGPIO, value)
}

// Data returns the sensed level of the active port's pins, after polarity
// inversion. As a side effect of the chip hardware, this read also clears the
// interrupt flag and capture latch for the port.
func (d *Dev) Data() (uint8, error) {
	return d.readRegister(d.active, regGPIO)
}

// OutputLatch returns the value last written to the active port's outputs.
func (d *Dev) OutputLatch() (uint8, error) {
	return d.readRegister(d.active, regOLat)
}

// Halt implements conn.Resource. The chip has no shutdown sequence; its
// registers retain their values until power off.
func (d *Dev) Halt() error {
	return nil
}

// Close removes the pin registrations for the device.
func (d *Dev) Close() error {
	for _, port := range d.Pins {
		for _, pin := range port {
			if err := gpioreg.Unregister(pin.Name()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("MCP23X17_%x", d.d.Addr)
}
