package devices

/*
 * micro2 - Paper tape reader/punch device
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

// PaperTape models a reader/punch unit: reading walks a preloaded
// sequence, punching appends to a separate output sequence. The two
// sides are independent, as on the physical unit.
type PaperTape struct {
	tape    []uint8 // Preloaded read sequence.
	pos     int     // Next unread index into tape.
	punched []uint8 // Accumulated punched output.
	enabled bool
}

// NewPaperTape returns an enabled, empty paper tape unit.
func NewPaperTape() *PaperTape {
	return &PaperTape{enabled: true}
}

func (p *PaperTape) Name() string { return "Paper Tape" }

// Flag reports whether unread tape remains.
func (p *PaperTape) Flag() bool { return p.pos < len(p.tape) }

// Input reads the next word from the preloaded tape, or 0 past the end.
func (p *PaperTape) Input() uint8 {
	if p.pos >= len(p.tape) {
		return 0
	}
	w := p.tape[p.pos]
	p.pos++
	return w
}

// Output punches word onto the output tape.
func (p *PaperTape) Output(word uint8) {
	p.punched = append(p.punched, word)
}

// Reset rewinds the reader and clears anything punched. The loaded
// read tape's contents are retained — Reset models a power-cycle of the
// unit, not removal of the physical tape.
func (p *PaperTape) Reset() {
	p.pos = 0
	p.punched = nil
}

func (p *PaperTape) Enabled() bool     { return p.enabled }
func (p *PaperTape) SetEnabled(e bool) { p.enabled = e }

// Load replaces the read tape's contents and rewinds to the start.
func (p *PaperTape) Load(data []uint8) {
	p.tape = append([]uint8(nil), data...)
	p.pos = 0
}

// Punched returns the words punched out so far.
func (p *PaperTape) Punched() []uint8 {
	return p.punched
}
