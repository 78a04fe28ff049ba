/*
 * micro2 - Peripheral device contract
 *
 * Copyright 2026, micro2 contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package device defines the capability record every peripheral
// implements and the status record the I/O hub reports about it.
package device

// Device is the capability record a peripheral presents to the I/O hub.
// There is no class hierarchy: every device, however different its
// internals, is this one shape (spec §9 "Dynamic dispatch across
// devices").
type Device interface {
	// Name identifies the device for status/snapshot reporting.
	Name() string

	// Flag reports whether the device can satisfy the next INP/OUT
	// without blocking. SFG d skips iff Flag() is true at the moment
	// of the skip.
	Flag() bool

	// Input returns the next word for an INP instruction. Implementations
	// update their own Flag() state as part of this call.
	Input() uint8

	// Output accepts the word from an OUT instruction.
	Output(word uint8)

	// Reset restores the device to its power-on state.
	Reset()

	// Enabled reports whether the device currently participates in I/O.
	// The I/O hub checks it before forwarding: for a disabled device INP
	// reads 0, OUT discards the word, and SFG reports false, as if nothing
	// were attached (spec §7 "Device absent"). The device's own
	// Input/Output/Flag methods do not check it.
	Enabled() bool

	// SetEnabled flips the device's enabled state.
	SetEnabled(bool)
}

// Status is the per-device record the hub and facade snapshot surface
// report (spec §4.F snapshot's io_devices and §4.B Hub.status()).
type Status struct {
	ID      int
	Name    string
	Flag    bool
	Enabled bool
}
