/*
 * micro2 - Console input/output devices
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

// Package devices implements the reference peripheral set: console
// in/out, data switches, an LED display, and paper tape.
package devices

import "fmt"

// ConsoleInput is a FIFO of queued input words, ready (Flag() true)
// whenever it is nonempty.
type ConsoleInput struct {
	queue   []uint8
	enabled bool
}

// NewConsoleInput returns an enabled, empty console input device.
func NewConsoleInput() *ConsoleInput {
	return &ConsoleInput{enabled: true}
}

func (c *ConsoleInput) Name() string { return "Console Input" }

// Flag reports whether a queued word is waiting.
func (c *ConsoleInput) Flag() bool { return len(c.queue) > 0 }

// Input dequeues and returns the next word, or 0 if empty.
func (c *ConsoleInput) Input() uint8 {
	if len(c.queue) == 0 {
		return 0
	}
	w := c.queue[0]
	c.queue = c.queue[1:]
	return w
}

// Output is not meaningful for an input device; it discards.
func (c *ConsoleInput) Output(uint8) {}

// Reset empties the queue.
func (c *ConsoleInput) Reset() { c.queue = nil }

func (c *ConsoleInput) Enabled() bool     { return c.enabled }
func (c *ConsoleInput) SetEnabled(e bool) { c.enabled = e }

// Queue appends a word to the input FIFO, to be read by a later INP.
func (c *ConsoleInput) Queue(word uint8) {
	c.queue = append(c.queue, word)
}

// QueueText queues each byte of s in order, a convenience for feeding a
// program ASCII text one character per INP.
func (c *ConsoleInput) QueueText(s string) {
	for i := range len(s) {
		c.queue = append(c.queue, s[i])
	}
}

// ConsoleOutput is an append-only buffer; it is always ready (flag
// permanently true, spec §4.G).
type ConsoleOutput struct {
	buffer  []uint8
	enabled bool
}

// NewConsoleOutput returns an enabled, empty console output device.
func NewConsoleOutput() *ConsoleOutput {
	return &ConsoleOutput{enabled: true}
}

func (c *ConsoleOutput) Name() string { return "Console Output" }

// Flag is always true: the console can always accept the next word.
func (c *ConsoleOutput) Flag() bool { return true }

// Input is not meaningful for an output device; it returns 0.
func (c *ConsoleOutput) Input() uint8 { return 0 }

// Output appends word to the buffer.
func (c *ConsoleOutput) Output(word uint8) {
	c.buffer = append(c.buffer, word)
}

// Reset clears the buffer.
func (c *ConsoleOutput) Reset() { c.buffer = nil }

func (c *ConsoleOutput) Enabled() bool     { return c.enabled }
func (c *ConsoleOutput) SetEnabled(e bool) { c.enabled = e }

// Bytes returns the raw words written so far.
func (c *ConsoleOutput) Bytes() []uint8 {
	return c.buffer
}

// Text renders the buffer as a string, decoding the printable range
// 32..126 to characters and everything else as "[nnn]" (spec §4.G,
// preserving micro2_io.py's ConsoleOutputDevice.get_output_text).
func (c *ConsoleOutput) Text() string {
	var out []byte
	for _, b := range c.buffer {
		if b >= 32 && b <= 126 {
			out = append(out, b)
		} else {
			out = append(out, []byte(fmt.Sprintf("[%d]", b))...)
		}
	}
	return string(out)
}
