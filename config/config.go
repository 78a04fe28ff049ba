/*
 * micro2 - Machine configuration
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

// Package config loads the small YAML document that describes how a
// machine instance is constructed: active bank count, optional clock
// pacing, and the device roster. This plays the role the teacher's
// config/configparser plays for device wiring, using a YAML grammar
// since the machine here has a handful of scalar options rather than
// a many-dialect configuration language.
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DeviceConfig describes one entry of the device roster.
type DeviceConfig struct {
	Number int    `yaml:"number"`
	Kind   string `yaml:"kind"` // "console_in", "console_out", "switches", "leds", "paper_tape"
	Image  string `yaml:"image,omitempty"` // paper tape preload file, kind == "paper_tape" only
}

// Machine is the top-level machine-description document.
type Machine struct {
	ActiveBanks int            `yaml:"active_banks"`
	StepDelay   time.Duration  `yaml:"step_delay,omitempty"`
	Devices     []DeviceConfig `yaml:"devices"`
}

// DefaultMachine returns the reference device roster of spec §6: a
// single active bank and the five reference devices at their default
// device numbers.
func DefaultMachine() Machine {
	return Machine{
		ActiveBanks: 1,
		Devices: []DeviceConfig{
			{Number: 1, Kind: "console_in"},
			{Number: 2, Kind: "console_out"},
			{Number: 3, Kind: "switches"},
			{Number: 4, Kind: "leds"},
			{Number: 5, Kind: "paper_tape"},
		},
	}
}

// Load parses a machine description from r.
func Load(r io.Reader) (Machine, error) {
	var m Machine
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&m); err != nil {
		return Machine{}, fmt.Errorf("config: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Machine{}, err
	}
	return m, nil
}

// LoadFile opens path and parses it as a machine description.
func LoadFile(path string) (Machine, error) {
	f, err := os.Open(path)
	if err != nil {
		return Machine{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks the document for values the facade cannot act on.
func (m Machine) Validate() error {
	if m.ActiveBanks < 1 || m.ActiveBanks > 8 {
		return fmt.Errorf("config: active_banks %d out of range 1..8", m.ActiveBanks)
	}
	seen := make(map[int]bool)
	for _, d := range m.Devices {
		if d.Number < 0 || d.Number > 7 {
			return fmt.Errorf("config: device number %d out of range 0..7", d.Number)
		}
		if d.Number == 0 {
			return fmt.Errorf("config: device number 0 is reserved for bank switching")
		}
		if seen[d.Number] {
			return fmt.Errorf("config: device number %d assigned more than once", d.Number)
		}
		seen[d.Number] = true
		switch d.Kind {
		case "console_in", "console_out", "switches", "leds", "paper_tape":
		default:
			return fmt.Errorf("config: unknown device kind %q", d.Kind)
		}
	}
	return nil
}
