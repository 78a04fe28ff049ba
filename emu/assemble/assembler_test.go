package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	op "github.com/arwhite/micro2/emu/opcodes"
)

func TestAssembleRegisterOps(t *testing.T) {
	for name, code := range op.Mnemonics {
		r := Assemble(name)
		assert.Empty(t, r.Errors, name)
		assert.Equal(t, uint8(code), r.Image[0], name)
	}
}

func TestAssembleDirectMemRef(t *testing.T) {
	r := Assemble("ADD 15")
	assert.Empty(t, r.Errors)
	assert.Equal(t, uint8(0b10_0_01111), r.Image[0])
}

func TestAssembleIndirectMemRefStarSyntax(t *testing.T) {
	r := Assemble("ADD *15")
	assert.Empty(t, r.Errors)
	assert.Equal(t, uint8(0b10_1_01111), r.Image[0])
}

func TestAssembleIndirectMemRefParenSyntax(t *testing.T) {
	r := Assemble("ADD (15)")
	assert.Empty(t, r.Errors)
	assert.Equal(t, uint8(0b10_1_01111), r.Image[0])
}

func TestAssembleIOInstruction(t *testing.T) {
	r := Assemble("INP 1")
	assert.Empty(t, r.Errors)
	assert.Equal(t, uint8(op.FamilyINP|1), r.Image[0])
}

func TestAssembleDataDirective(t *testing.T) {
	r := Assemble("DATA 200")
	assert.Empty(t, r.Errors)
	assert.Equal(t, uint8(200), r.Image[0])
}

func TestAssembleHexAndBinaryLiterals(t *testing.T) {
	r := Assemble("DATA 0x2A\nDATA 0b101010")
	assert.Empty(t, r.Errors)
	assert.Equal(t, uint8(42), r.Image[0])
	assert.Equal(t, uint8(42), r.Image[1])
}

func TestAssembleOrgDirective(t *testing.T) {
	r := Assemble("ORG 16\nDATA 35\nDATA 120")
	assert.Empty(t, r.Errors)
	assert.Equal(t, uint8(35), r.Image[16])
	assert.Equal(t, uint8(120), r.Image[17])
	_, atZero := r.Image[0]
	assert.False(t, atZero, "ORG must not emit a word at the skipped address")
}

func TestAssembleOrgBeyondMemoryIsError(t *testing.T) {
	r := Assemble("ORG 300\nDATA 1")
	assert.Len(t, r.Errors, 1)
	assert.Equal(t, 1, r.Errors[0].Line)
	_, atWrapped := r.Image[300&0xFF]
	assert.False(t, atWrapped, "a rejected ORG must not silently wrap the cursor to 300 mod 256")
	assert.Equal(t, uint8(1), r.Image[0], "cursor stays put after a rejected ORG")
}

func TestAssembleLabelReference(t *testing.T) {
	src := `
CLR
ADD VALUE
STR RESULT
HLT
ORG 16
VALUE: DATA 35
RESULT: DATA 0
`
	r := Assemble(src)
	assert.Empty(t, r.Errors)
	assert.Equal(t, uint8(op.OpCLR), r.Image[0])
	assert.Equal(t, uint8(0b10_0_10000), r.Image[1]) // ADD 16
	assert.Equal(t, uint8(0b01_0_10001), r.Image[2]) // STR 17
	assert.Equal(t, uint8(op.OpHLT), r.Image[3])
}

func TestAssembleUndefinedLabelIsLineNumberedError(t *testing.T) {
	r := Assemble("ADD MISSING")
	assert.Len(t, r.Errors, 1)
	assert.Equal(t, 1, r.Errors[0].Line)
	assert.Equal(t, uint8(0), r.Image[0])
}

func TestAssembleUndefinedMnemonic(t *testing.T) {
	r := Assemble("FROB")
	assert.Len(t, r.Errors, 1)
}

func TestAssembleOutOfRangeAddress(t *testing.T) {
	r := Assemble("ADD 99")
	assert.Len(t, r.Errors, 1)
}

func TestAssembleOutOfRangeDataValue(t *testing.T) {
	r := Assemble("DATA 999")
	assert.Len(t, r.Errors, 1)
}

func TestAssembleOutOfRangeDeviceNumber(t *testing.T) {
	r := Assemble("OUT 9")
	assert.Len(t, r.Errors, 1)
}

func TestAssembleCommentsAndBlankLinesIgnored(t *testing.T) {
	src := "# a full-line comment\nCLR ; trailing comment\n\nHLT\n"
	r := Assemble(src)
	assert.Empty(t, r.Errors)
	assert.Equal(t, uint8(op.OpCLR), r.Image[0])
	assert.Equal(t, uint8(op.OpHLT), r.Image[1])
}

func TestAssembleRegisterOpRejectsOperand(t *testing.T) {
	r := Assemble("CLR 5")
	assert.Len(t, r.Errors, 1)
}

func TestAssembleLabelsAreCaseInsensitive(t *testing.T) {
	src := "loop: CLR\nJMP loop\n"
	r := Assemble(src)
	assert.Empty(t, r.Errors)
	assert.Equal(t, uint8(op.OpJMP), r.Image[1]&0xC0)
	assert.Equal(t, uint8(0), r.Image[1]&op.AddrMask)
}

func TestAssembleDisassembleFixedPointOnRegisterOps(t *testing.T) {
	for name := range op.Mnemonics {
		r := Assemble(name)
		assert.Equal(t, name, op.Mnemonics[int(r.Image[0])])
	}
}
