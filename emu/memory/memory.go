/*
 * micro2 - Banked memory
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

// Package memory implements the machine's banked word store: 8 banks of
// 256 words, one bank selected at a time.
package memory

const (
	// NumBanks is the number of memory banks the hardware supports.
	NumBanks = 8
	// BankSize is the number of words in a single bank.
	BankSize = 256
	// PageSize is the number of words in a page (low 5 bits of an address).
	PageSize = 32
	// PageMask isolates the page (top 3 bits) of an address.
	PageMask = 0xE0
	// WordMask isolates the word-within-page (low 5 bits) of an address.
	WordMask = 0x1F
)

// Memory holds the machine's banked word store.
type Memory struct {
	banks   [NumBanks][BankSize]uint8
	active  int // Number of currently-active banks, 1..NumBanks.
	current int // Currently-selected bank, 0..active-1.
}

// New returns a Memory with nActive banks selectable (clamped to
// [1, NumBanks]) and bank 0 current.
func New(nActive int) *Memory {
	m := &Memory{}
	m.SetActiveBanks(nActive)
	return m
}

// SetActiveBanks sets how many banks are selectable. A bank index at or
// beyond this count is silently ignored by SelectBank (spec §7.5).
func (m *Memory) SetActiveBanks(n int) {
	if n < 1 {
		n = 1
	}
	if n > NumBanks {
		n = NumBanks
	}
	m.active = n
	if m.current >= n {
		m.current = 0
	}
}

// ActiveBanks returns the number of currently-active banks.
func (m *Memory) ActiveBanks() int {
	return m.active
}

// SelectBank makes bank i current. A no-op if i is not an active bank.
func (m *Memory) SelectBank(i int) {
	if i < 0 || i >= m.active {
		return
	}
	m.current = i
}

// CurrentBank returns the index of the currently-selected bank.
func (m *Memory) CurrentBank() int {
	return m.current
}

// Read returns the word at addr in the current bank. addr is masked to
// 8 bits.
func (m *Memory) Read(addr int) uint8 {
	return m.banks[m.current][addr&0xFF]
}

// ReadBank returns the word at addr in the given bank, ignoring bank
// selection. Used by inspection/snapshot/disassembly tooling that needs
// to look at banks other than the current one.
func (m *Memory) ReadBank(bank, addr int) uint8 {
	if bank < 0 || bank >= NumBanks {
		return 0
	}
	return m.banks[bank][addr&0xFF]
}

// Write stores word at addr in the current bank. Both are masked to 8
// bits.
func (m *Memory) Write(addr int, word uint8) {
	m.banks[m.current][addr&0xFF] = word
}

// ClearCurrentBank zeroes every cell of the current bank.
func (m *Memory) ClearCurrentBank() {
	m.banks[m.current] = [BankSize]uint8{}
}

// ClearAll zeroes every bank and deselects back to bank 0.
func (m *Memory) ClearAll() {
	for i := range m.banks {
		m.banks[i] = [BankSize]uint8{}
	}
	m.current = 0
}

// LoadImage writes every (address, word) pair of image into the current
// bank. Cells not mentioned in image are left untouched — callers that
// want a clean slate must ClearCurrentBank first (spec §4.A).
func (m *Memory) LoadImage(image map[int]uint8) {
	for addr, word := range image {
		m.Write(addr, word)
	}
}

// Page returns the page number (top 3 bits) of addr.
func Page(addr int) int {
	return (addr & PageMask) >> 5
}

// WordInPage returns the word-within-page (low 5 bits) of addr.
func WordInPage(addr int) int {
	return addr & WordMask
}
