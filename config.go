// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp23x17

import "strings"

// Config is the chip-wide configuration register as a set of flags. Bit 0 of
// the register is unimplemented on the chip and carries no flag.
type Config uint8

const (
	// IntPol sets the polarity of the interrupt output pin to active-high.
	// Ignored when OpenDrain is set.
	IntPol Config = 1 << (iota + 1)
	// OpenDrain configures the interrupt output pin as open-drain.
	OpenDrain
	// HAEn enables the hardware address pins. Only meaningful on the SPI
	// variant; the I²C variant always decodes its address pins.
	HAEn
	// DisSlw disables slew rate control on the SDA output.
	DisSlw
	// SeqOp disables automatic address pointer increment during sequential
	// transfers.
	SeqOp
	// Mirror internally connects the two interrupt output pins, so a change
	// on either port asserts both.
	Mirror
	// BankMode would switch the chip to its interleaved register layout.
	// The driver refuses to write it; see Dev.SetConfig.
	BankMode
)

var configNames = []struct {
	flag Config
	name string
}{
	{BankMode, "BankMode"},
	{Mirror, "Mirror"},
	{SeqOp, "SeqOp"},
	{DisSlw, "DisSlw"},
	{HAEn, "HAEn"},
	{OpenDrain, "OpenDrain"},
	{IntPol, "IntPol"},
}

func (c Config) String() string {
	if c == 0 {
		return "0"
	}
	var set []string
	for _, f := range configNames {
		if c&f.flag != 0 {
			set = append(set, f.name)
		}
	}
	return strings.Join(set, "|")
}
