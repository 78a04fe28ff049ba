/*
 * micro2 - Memory dump text format
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

// Package dump reads and writes the on-disk memory-dump text format of
// spec §6: one cell per line, "<addr-binary>: <data-binary> [<decimal>]",
// with "#"-prefixed comment lines. Export/Import round-trip exactly.
package dump

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Export writes one line per word of bank (256 entries, address order)
// to w, in the on-disk memory-dump format.
func Export(w io.Writer, bank [256]uint8) error {
	bw := bufio.NewWriter(w)
	for addr, word := range bank {
		if _, err := fmt.Fprintf(bw, "%08b: %08b [%d]\n", addr, word, word); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Import reads the on-disk memory-dump format from r and returns the
// 256-word bank it describes. Lines beginning "#" are ignored. Cells
// not mentioned in the input are left at 0, matching a sparse export of
// a zero-filled region.
func Import(r io.Reader) ([256]uint8, error) {
	var bank [256]uint8
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		addr, word, err := parseLine(line)
		if err != nil {
			return bank, fmt.Errorf("dump: line %d: %w", lineNum, err)
		}
		bank[addr] = word
	}
	if err := scanner.Err(); err != nil {
		return bank, err
	}
	return bank, nil
}

// parseLine parses "<addr-binary>: <data-binary> [<decimal>]"; the
// trailing decimal annotation is informational and not required to
// match the binary field — it is ignored on import.
func parseLine(line string) (addr int, word uint8, err error) {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return 0, 0, fmt.Errorf("missing ':' in %q", line)
	}
	addrField := strings.TrimSpace(line[:colon])
	rest := strings.TrimSpace(line[colon+1:])
	if bracket := strings.IndexByte(rest, '['); bracket >= 0 {
		rest = strings.TrimSpace(rest[:bracket])
	}

	a, err := strconv.ParseUint(addrField, 2, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("bad address %q: %w", addrField, err)
	}
	d, err := strconv.ParseUint(rest, 2, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("bad data %q: %w", rest, err)
	}
	return int(a), uint8(d), nil
}
