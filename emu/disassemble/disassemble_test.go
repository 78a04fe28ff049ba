package disassembler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	assembler "github.com/arwhite/micro2/emu/assemble"
	"github.com/arwhite/micro2/emu/memory"
	op "github.com/arwhite/micro2/emu/opcodes"
)

func TestWordRegisterOps(t *testing.T) {
	for code, name := range op.Mnemonics {
		assert.Equal(t, name, Word(uint8(code)))
	}
}

func TestWordDirectMemRef(t *testing.T) {
	assert.Equal(t, "ADD 15", Word(0b10_0_01111))
}

func TestWordIndirectMemRef(t *testing.T) {
	assert.Equal(t, "ADD *15", Word(0b10_1_01111))
}

func TestWordIO(t *testing.T) {
	assert.Equal(t, "INP 1", Word(uint8(op.FamilyINP|1)))
	assert.Equal(t, "OUT 0", Word(uint8(op.FamilyOUT|0)))
	assert.Equal(t, "SFG 7", Word(uint8(op.FamilySFG|7)))
}

func TestWordUnknownIsDataAnnotation(t *testing.T) {
	got := Word(0xC7) // register family, low 3 bits 7: undefined
	assert.Contains(t, got, "DATA 0xC7")
	assert.Contains(t, got, "Unknown instruction")
}

func TestAssembleDisassembleRoundTripOnMemRefAtAddressZero(t *testing.T) {
	for n := 0; n <= 31; n++ {
		src := fmt.Sprintf("ADD %d", n)
		r := assembler.Assemble(src)
		assert.Empty(t, r.Errors, src)
		assert.Equal(t, src, Word(r.Image[0]))
	}
}

func TestAnalyzeNoProgram(t *testing.T) {
	words := make([]uint8, memory.BankSize)
	a := AnalyzeWords(words)
	assert.True(t, a.NoProgram)
}

func TestAnalyzeEndIsHighestNonzero(t *testing.T) {
	words := make([]uint8, memory.BankSize)
	words[0] = uint8(op.OpHLT)
	words[5] = uint8(op.OpNOP)
	a := AnalyzeWords(words)
	assert.Equal(t, 5, a.End)
}

func TestAnalyzeJumpTargetDirect(t *testing.T) {
	words := make([]uint8, memory.BankSize)
	// JMP 3 at address 0: direct target = (0 & 0xE0) | 3 = 3.
	words[0] = uint8((op.OpJMP << 6) & 0xC0) | 3
	words[3] = uint8(op.OpHLT)
	a := AnalyzeWords(words)
	assert.True(t, a.JumpTargets[3])
	assert.True(t, a.Lines[3].JumpTarget)
}

func TestAnalyzeJumpTargetIndirect(t *testing.T) {
	words := make([]uint8, memory.BankSize)
	w := uint8((op.OpJMP<<6)&0xC0) | op.IndirectBit | 4
	words[0] = w
	words[4] = 9 // the pointer cell, not the target itself
	a := AnalyzeWords(words)
	assert.True(t, a.JumpTargets[4], "indirect jump targets the pointer cell, per spec")
}

func TestAnalyzePagesInUse(t *testing.T) {
	words := make([]uint8, memory.BankSize)
	words[0] = uint8(op.OpHLT)    // page 0
	words[40] = uint8(op.OpNOP)   // page 1 (addr 40 = 0x28)
	a := AnalyzeWords(words)
	assert.Equal(t, []int{0, 1}, a.PagesInUse)
}

func TestAnalyzeLikelyDataAnnotation(t *testing.T) {
	words := make([]uint8, memory.BankSize)
	words[0] = 0xC7 // undefined register-family pattern
	a := AnalyzeWords(words)
	assert.True(t, a.Lines[0].LikelyData)
}

func TestListingIncludesPageSummary(t *testing.T) {
	words := make([]uint8, memory.BankSize)
	words[0] = uint8(op.OpHLT)
	a := AnalyzeWords(words)
	assert.Contains(t, a.Listing(), "pages in use: 0")
}
