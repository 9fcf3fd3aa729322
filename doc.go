// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mcp23x17 provides a driver for the Microchip MCP23x17 family of
// 16-bit GPIO expanders.
//
// The chip splits its sixteen lines into two 8-bit ports. The driver keeps
// a host-side port selection and addresses every register through it, so a
// caller selects a port once and then issues plain 8-bit reads and writes.
// The chip's alternate interleaved 16-bit register layout is not supported;
// the BANK configuration bit is forcibly kept clear.
//
// The expander's pins are also exposed as gpio.PinIO so they compose with
// the rest of the periph ecosystem.
//
// # Datasheet
//
// https://ww1.microchip.com/downloads/en/DeviceDoc/20001952C.pdf
package mcp23x17
