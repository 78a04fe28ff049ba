package devices

/*
 * micro2 - Data switches device
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

// SwitchesSlot is the device number the reference roster wires the
// switches device at (config.DefaultMachine, spec §4.G).
const SwitchesSlot = 3

// Switches exposes the front-panel data switches as device 3: INP 3
// reads the switch setting, and the device is always ready.
//
// Note this is a second read path to the same data_switches register
// the CPU's ORS instruction reads directly (spec §4.C); both exist in
// the reference machine, one as a register operand and one as a device.
type Switches struct {
	value   uint8
	enabled bool
}

// NewSwitches returns an enabled switches device reading 0.
func NewSwitches() *Switches {
	return &Switches{enabled: true}
}

func (s *Switches) Name() string { return "Data Switches" }

// Flag is always true: switches are always readable.
func (s *Switches) Flag() bool { return true }

// Input returns the current switch setting.
func (s *Switches) Input() uint8 { return s.value }

// Output is not meaningful for switches; it discards.
func (s *Switches) Output(uint8) {}

// Reset zeroes the switch setting.
func (s *Switches) Reset() { s.value = 0 }

func (s *Switches) Enabled() bool     { return s.enabled }
func (s *Switches) SetEnabled(e bool) { s.enabled = e }

// Set sets the current switch value, as an operator flipping switches
// on the front panel would.
func (s *Switches) Set(word uint8) { s.value = word }

// Value returns the current switch setting.
func (s *Switches) Value() uint8 { return s.value }
