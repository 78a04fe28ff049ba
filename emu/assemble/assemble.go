/*
 * micro2 Assembler
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

// Package assembler translates textual micro2 source into a sparse
// address→word image, per spec §4.D. Errors are collected, not thrown.
package assembler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/arwhite/micro2/emu/memory"
	op "github.com/arwhite/micro2/emu/opcodes"
)

// Image is the assembler's sparse product: address to word, gaps allowed.
type Image map[int]uint8

// Error is one line-numbered assembly diagnostic.
type Error struct {
	Line    int
	Message string
}

func (e Error) String() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Result is the outcome of Assemble: a sparse image and any errors. The
// facade refuses to load the image if Errors is non-empty (spec §7.1).
type Result struct {
	Image  Image
	Errors []Error
}

// memRefMnemonics mirrors opcodes.MemRefMnemonics but keyed by name for
// the assembler's forward lookup (disassembler keeps the reverse map).
var memRefMnemonics = map[string]int{
	"JMP": op.OpJMP,
	"STR": op.OpSTR,
	"ADD": op.OpADD,
}

var ioFamilyMnemonics = map[string]int{
	"SFG": op.FamilySFG,
	"INP": op.FamilyINP,
	"OUT": op.FamilyOUT,
}

// regMnemonics is the inverse of opcodes.Mnemonics, built once at init so
// the assembler and CPU never drift on the encoding.
var regMnemonics = func() map[string]int {
	m := make(map[string]int, len(op.Mnemonics))
	for code, name := range op.Mnemonics {
		m[name] = code
	}
	return m
}()

// sourceLine is a line stripped of comments and its original line number,
// produced once and shared by both assembly passes.
type sourceLine struct {
	num  int
	text string
}

// Assemble runs the two-pass translation described in spec §4.D over
// source, returning the resulting sparse image and any diagnostics.
func Assemble(source string) Result {
	lines := splitLines(source)
	labels := pass1(lines)
	image, errs := pass2(lines, labels)
	return Result{Image: image, Errors: errs}
}

func splitLines(source string) []sourceLine {
	raw := strings.Split(source, "\n")
	out := make([]sourceLine, 0, len(raw))
	for i, text := range raw {
		out = append(out, sourceLine{num: i + 1, text: stripComment(text)})
	}
	return out
}

// stripComment removes a trailing `;` or `#` comment and surrounding
// whitespace.
func stripComment(line string) string {
	if i := strings.IndexAny(line, ";#"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// pass1 walks lines maintaining a cursor, recording each label's address
// and honoring ORG. It never reports errors — unresolvable operands and
// bad literals are pass 2's concern, once every label is known.
func pass1(lines []sourceLine) map[string]int {
	labels := make(map[string]int)
	address := 0
	for _, l := range lines {
		text := l.text
		if text == "" {
			continue
		}

		if label, rest, ok := splitLabel(text); ok {
			labels[label] = address
			text = rest
			if text == "" {
				continue
			}
		}

		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if strings.EqualFold(fields[0], "ORG") {
			if n, ok := parseLiteral(restOf(text, fields[0])); ok && n >= 0 && n < memory.BankSize {
				address = n
			}
			continue
		}
		address = (address + 1) & 0xFF
	}
	return labels
}

// pass2 re-walks the same lines, resolving labels via the pass-1 table
// and emitting one word per instruction line into the sparse image.
func pass2(lines []sourceLine, labels map[string]int) (Image, []Error) {
	image := make(Image)
	var errs []Error
	address := 0

	report := func(lineNum int, addr int, format string, args ...any) {
		errs = append(errs, Error{Line: lineNum, Message: fmt.Sprintf(format, args...)})
		image[addr&0xFF] = 0
	}

	for _, l := range lines {
		text := l.text
		if text == "" {
			continue
		}

		if _, rest, ok := splitLabel(text); ok {
			text = rest
			if text == "" {
				continue
			}
		}

		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		mnemonic := strings.ToUpper(fields[0])
		if mnemonic == "ORG" {
			n, ok := parseLiteral(restOf(text, fields[0]))
			switch {
			case !ok:
				errs = append(errs, Error{Line: l.num, Message: "invalid ORG target"})
			case n < 0 || n >= memory.BankSize:
				errs = append(errs, Error{Line: l.num, Message: fmt.Sprintf("ORG target %d beyond memory (0..%d)", n, memory.BankSize-1)})
			default:
				address = n
			}
			continue
		}

		word, encErr := encode(mnemonic, restOf(text, fields[0]), labels)
		if encErr != "" {
			report(l.num, address, "%s", encErr)
		} else {
			image[address] = word
		}
		address = (address + 1) & 0xFF
	}

	return image, errs
}

// encode produces the single word for one non-ORG instruction line.
func encode(mnemonic string, operand string, labels map[string]int) (uint8, string) {
	operand = strings.TrimSpace(operand)

	if mnemonic == "DATA" {
		n, ok := resolveOperand(operand, labels)
		if !ok {
			return 0, fmt.Sprintf("undefined label or bad literal %q", operand)
		}
		if n < 0 || n > 255 {
			return 0, fmt.Sprintf("DATA value %d out of range 0..255", n)
		}
		return uint8(n), ""
	}

	if mop, ok := memRefMnemonics[mnemonic]; ok {
		indirect := false
		switch {
		case strings.HasPrefix(operand, "*"):
			indirect = true
			operand = operand[1:]
		case strings.HasPrefix(operand, "(") && strings.HasSuffix(operand, ")"):
			indirect = true
			operand = operand[1 : len(operand)-1]
		}
		n, ok := resolveOperand(operand, labels)
		if !ok {
			return 0, fmt.Sprintf("undefined label or bad literal %q", operand)
		}
		if n < 0 || n > 31 {
			return 0, fmt.Sprintf("address %d out of range 0..31", n)
		}
		w := (mop << 6) & 0xC0
		if indirect {
			w |= op.IndirectBit
		}
		w |= n & op.AddrMask
		return uint8(w), ""
	}

	if family, ok := ioFamilyMnemonics[mnemonic]; ok {
		n, ok := resolveOperand(operand, labels)
		if !ok {
			return 0, fmt.Sprintf("undefined label or bad literal %q", operand)
		}
		if n < 0 || n > 7 {
			return 0, fmt.Sprintf("device number %d out of range 0..7", n)
		}
		return uint8(family | n), ""
	}

	if code, ok := regMnemonics[mnemonic]; ok {
		if operand != "" {
			return 0, fmt.Sprintf("%s takes no operand", mnemonic)
		}
		return uint8(code), ""
	}

	return 0, fmt.Sprintf("undefined mnemonic %q", mnemonic)
}

// resolveOperand resolves operand as a numeric literal, or else as an
// uppercased label reference into labels.
func resolveOperand(operand string, labels map[string]int) (int, bool) {
	if operand == "" {
		return 0, false
	}
	if n, ok := parseLiteral(operand); ok {
		return n, true
	}
	if addr, ok := labels[strings.ToUpper(operand)]; ok {
		return addr, true
	}
	return 0, false
}

// parseLiteral accepts decimal, 0x/0X hex, and 0b/0B binary literals.
func parseLiteral(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	var n int64
	var err error
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		n, err = strconv.ParseInt(s[2:], 16, 32)
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		n, err = strconv.ParseInt(s[2:], 2, 32)
	default:
		n, err = strconv.ParseInt(s, 10, 32)
	}
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// splitLabel recognizes a leading "NAME:" and returns the upper-cased
// label, the remainder of the line, and whether a label was present.
func splitLabel(text string) (string, string, bool) {
	i := strings.IndexByte(text, ':')
	if i < 0 {
		return "", text, false
	}
	name := strings.TrimSpace(text[:i])
	if name == "" || !isLabelName(name) {
		return "", text, false
	}
	return strings.ToUpper(name), strings.TrimSpace(text[i+1:]), true
}

func isLabelName(s string) bool {
	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '_':
		case unicode.IsDigit(r) && i > 0:
		default:
			return false
		}
	}
	return true
}

// restOf returns text with its leading mnemonic/directive token removed.
func restOf(text, first string) string {
	return strings.TrimSpace(strings.TrimPrefix(text, first))
}
