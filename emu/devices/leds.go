package devices

/*
 * micro2 - LED display device
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

import "fmt"

// LEDDisplay latches the last word written to it (device 4).
type LEDDisplay struct {
	value   uint8
	enabled bool
}

// NewLEDDisplay returns an enabled LED display latched at 0.
func NewLEDDisplay() *LEDDisplay {
	return &LEDDisplay{enabled: true}
}

func (l *LEDDisplay) Name() string { return "LED Display" }

// Flag is always true: the display always accepts the next word.
func (l *LEDDisplay) Flag() bool { return true }

// Input is not meaningful for an output-only device; it returns 0.
func (l *LEDDisplay) Input() uint8 { return 0 }

// Output latches word as the displayed value.
func (l *LEDDisplay) Output(word uint8) { l.value = word }

// Reset blanks the display.
func (l *LEDDisplay) Reset() { l.value = 0 }

func (l *LEDDisplay) Enabled() bool     { return l.enabled }
func (l *LEDDisplay) SetEnabled(e bool) { l.enabled = e }

// Value returns the currently latched word.
func (l *LEDDisplay) Value() uint8 { return l.value }

// Binary renders the latched value as an 8-bit binary string, e.g. for
// a textual front-panel rendering of the lamp row.
func (l *LEDDisplay) Binary() string {
	return fmt.Sprintf("%08b", l.value)
}
