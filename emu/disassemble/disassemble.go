/*
 * micro2 Disassembler
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

// Package disassembler turns a single word, or a whole memory image, back
// into mnemonic text, per spec §4.E. Decoding is pure and never consults
// anything beyond the word(s) given to it.
package disassembler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arwhite/micro2/emu/memory"
	op "github.com/arwhite/micro2/emu/opcodes"
)

// Word disassembles a single instruction word, inverting the encoding of
// spec §4.C. Unmatched patterns produce "DATA 0xXX  ; Unknown instruction".
func Word(w uint8) string {
	top := w & op.NonMemMask
	if top != op.NonMemMask {
		mop := int(w>>6) & 0b11
		name, ok := op.MemRefMnemonics[mop]
		if !ok {
			return unknown(w)
		}
		a5 := int(w) & op.AddrMask
		if w&op.IndirectBit != 0 {
			return fmt.Sprintf("%s *%d", name, a5)
		}
		return fmt.Sprintf("%s %d", name, a5)
	}

	if name, ok := op.Mnemonics[int(w)]; ok {
		return name
	}

	family := int(w) & op.IOFamilyMask
	if name, ok := op.IOFamilyMnemonics[family]; ok {
		device := int(w) & op.DeviceMask
		return fmt.Sprintf("%s %d", name, device)
	}

	return unknown(w)
}

func unknown(w uint8) string {
	return fmt.Sprintf("DATA 0x%02X  ; Unknown instruction", w)
}

// isKnown reports whether w matches any defined pattern, for the
// advisory "(Data)" annotation in Listing.
func isKnown(w uint8) bool {
	if w&op.NonMemMask != op.NonMemMask {
		_, ok := op.MemRefMnemonics[int(w>>6)&0b11]
		return ok
	}
	if _, ok := op.Mnemonics[int(w)]; ok {
		return true
	}
	_, ok := op.IOFamilyMnemonics[int(w)&op.IOFamilyMask]
	return ok
}

// Analysis is the disassembler's program-level report, per spec §4.E.
type Analysis struct {
	NoProgram   bool
	End         int
	JumpTargets map[int]bool
	Lines       []Line
	PagesInUse  []int
}

// Line is one annotated row of a program listing.
type Line struct {
	Addr       int
	Word       uint8
	Mnemonic   string
	JumpTarget bool
	LikelyData bool
}

// AnalyzeBank reads the 256 words of mem's current bank and produces a
// full listing with jump-target inference and a page-in-use summary,
// per spec §4.E steps 1-4.
func AnalyzeBank(mem *memory.Memory) Analysis {
	words := make([]uint8, memory.BankSize)
	for a := 0; a < memory.BankSize; a++ {
		words[a] = mem.Read(a)
	}
	return analyze(words)
}

// AnalyzeWords runs the same analysis directly over a dense 256-word
// slice, for callers (and tests) that already have the words in hand.
func AnalyzeWords(words []uint8) Analysis {
	return analyze(words)
}

func analyze(words []uint8) Analysis {
	end := -1
	for a := len(words) - 1; a >= 0; a-- {
		if words[a] != 0 {
			end = a
			break
		}
	}
	if end < 0 {
		return Analysis{NoProgram: true}
	}

	targets := make(map[int]bool)
	for addr := 0; addr <= end; addr++ {
		w := words[addr]
		if w&op.NonMemMask == op.NonMemMask {
			continue
		}
		if int(w>>6)&0b11 != op.OpJMP {
			continue
		}
		a5 := int(w) & op.AddrMask
		if w&op.IndirectBit != 0 {
			targets[a5] = true
		} else {
			targets[(addr&int(memory.PageMask))|a5] = true
		}
	}

	lines := make([]Line, 0, end+1)
	pageSeen := make(map[int]bool)
	for addr := 0; addr <= end; addr++ {
		w := words[addr]
		lines = append(lines, Line{
			Addr:       addr,
			Word:       w,
			Mnemonic:   Word(w),
			JumpTarget: targets[addr],
			LikelyData: !isKnown(w),
		})
		if w != 0 {
			pageSeen[memory.Page(addr)] = true
		}
	}

	pages := make([]int, 0, len(pageSeen))
	for p := range pageSeen {
		pages = append(pages, p)
	}
	sort.Ints(pages)

	return Analysis{End: end, JumpTargets: targets, Lines: lines, PagesInUse: pages}
}

// Listing renders a the analysis as the textual report spec §4.E step 3-4
// describes: one annotated line per address, then a page-in-use summary.
func (a Analysis) Listing() string {
	if a.NoProgram {
		return "no program"
	}
	var b strings.Builder
	for _, l := range a.Lines {
		fmt.Fprintf(&b, "%02X: %08b  %-20s", l.Addr, l.Word, l.Mnemonic)
		var annotations []string
		if l.JumpTarget {
			annotations = append(annotations, "jump target")
		}
		if l.LikelyData {
			annotations = append(annotations, "(Data)")
		}
		if len(annotations) > 0 {
			b.WriteString(" ; " + strings.Join(annotations, ", "))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "pages in use:")
	for _, p := range a.PagesInUse {
		fmt.Fprintf(&b, " %d", p)
	}
	b.WriteString("\n")
	return b.String()
}
