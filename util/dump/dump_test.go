package dump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportImportRoundTrip(t *testing.T) {
	var bank [256]uint8
	bank[0] = 0xFF
	bank[16] = 0x2A
	bank[255] = 1

	var buf bytes.Buffer
	assert.NoError(t, Export(&buf, bank))

	got, err := Import(&buf)
	assert.NoError(t, err)
	assert.Equal(t, bank, got)
}

func TestExportFormat(t *testing.T) {
	var bank [256]uint8
	bank[0] = 5
	var buf bytes.Buffer
	assert.NoError(t, Export(&buf, bank))
	first := strings.SplitN(buf.String(), "\n", 2)[0]
	assert.Equal(t, "00000000: 00000101 [5]", first)
}

func TestImportIgnoresComments(t *testing.T) {
	in := "# a comment\n00000000: 00000001 [1]\n\n00000001: 00000010 [2]\n"
	got, err := Import(strings.NewReader(in))
	assert.NoError(t, err)
	assert.Equal(t, uint8(1), got[0])
	assert.Equal(t, uint8(2), got[1])
}

func TestImportRejectsMalformedLine(t *testing.T) {
	_, err := Import(strings.NewReader("not a dump line\n"))
	assert.Error(t, err)
}

func TestImportLeavesUnmentionedCellsZero(t *testing.T) {
	got, err := Import(strings.NewReader("00000101: 00000001 [1]\n"))
	assert.NoError(t, err)
	assert.Equal(t, uint8(1), got[5])
	assert.Equal(t, uint8(0), got[0])
}
