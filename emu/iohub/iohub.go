/*
 * micro2 - I/O hub
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

// Package iohub routes device operations 0-7 to device instances and
// aggregates their flags. Slot 0 is reserved by the CPU for bank
// switching and is never forwarded here (spec §4.B).
package iohub

import (
	"log/slog"

	dev "github.com/arwhite/micro2/emu/device"
)

// NumSlots is the number of device channels the hub exposes, 0..7.
const NumSlots = 8

// ReservedSlot is the device number the CPU reserves for itself
// (OUT 0 bank switch); AddDevice refuses to install anything there.
const ReservedSlot = 0

// Hub routes INP/OUT/SFG operations to device instances by number.
type Hub struct {
	slots [NumSlots]dev.Device
}

// New returns an empty Hub; all eight slots start unpopulated.
func New() *Hub {
	return &Hub{}
}

// AddDevice installs dev at slot d, replacing whatever was there. Slot 0
// is reserved; it and out-of-range slots are refused, and the refusal is
// logged as a warning.
func (h *Hub) AddDevice(d int, device dev.Device) {
	if d == ReservedSlot || d < 0 || d >= NumSlots {
		slog.Warn("iohub: refusing to install device at reserved/invalid slot", "device", d)
		return
	}
	h.slots[d] = device
}

// Device returns the device installed at slot d, or nil.
func (h *Hub) Device(d int) dev.Device {
	if d < 0 || d >= NumSlots {
		return nil
	}
	return h.slots[d]
}

// Input performs INP d. Slot 0, an empty slot, or a disabled device all
// return 0 (spec §7 "Device absent").
func (h *Hub) Input(d int) uint8 {
	device := h.Device(d)
	if device == nil || d == ReservedSlot || !device.Enabled() {
		return 0
	}
	return device.Input()
}

// Output performs OUT d for d != 0; the CPU handles d == 0 itself and
// never calls this for it. An empty slot or disabled device discards
// the word.
func (h *Hub) Output(d int, word uint8) {
	device := h.Device(d)
	if device == nil || d == ReservedSlot || !device.Enabled() {
		return
	}
	device.Output(word)
}

// Flag performs the SFG d readiness test. Slot 0, an empty slot, or a
// disabled device all report false.
func (h *Hub) Flag(d int) bool {
	device := h.Device(d)
	if device == nil || d == ReservedSlot || !device.Enabled() {
		return false
	}
	return device.Flag()
}

// ResetAll resets every installed device.
func (h *Hub) ResetAll() {
	for _, device := range h.slots {
		if device != nil {
			device.Reset()
		}
	}
}

// Status returns a per-device record for every installed slot, ordered
// by device number, for the facade's snapshot surface.
func (h *Hub) Status() []dev.Status {
	out := make([]dev.Status, 0, NumSlots)
	for i, device := range h.slots {
		if device == nil {
			continue
		}
		out = append(out, dev.Status{
			ID:      i,
			Name:    device.Name(),
			Flag:    device.Flag(),
			Enabled: device.Enabled(),
		})
	}
	return out
}
