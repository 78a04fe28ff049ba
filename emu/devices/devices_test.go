package devices

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arwhite/micro2/emu/iohub"
)

func TestConsoleInputFlagTracksQueue(t *testing.T) {
	c := NewConsoleInput()
	assert.False(t, c.Flag())
	c.Queue(0x55)
	assert.True(t, c.Flag())
	assert.Equal(t, uint8(0x55), c.Input())
	assert.False(t, c.Flag(), "flag must clear once the queue drains")
}

func TestConsoleInputDisabledReadsZero(t *testing.T) {
	c := NewConsoleInput()
	c.Queue(0x42)
	c.SetEnabled(false)
	assert.False(t, c.Enabled())

	hub := iohub.New()
	hub.AddDevice(1, c)
	assert.Equal(t, uint8(0), hub.Input(1), "a disabled device reads 0 through the hub")
	assert.False(t, hub.Flag(1), "a disabled device reports flag false through the hub")
}

func TestConsoleOutputTextDecodesPrintableRange(t *testing.T) {
	c := NewConsoleOutput()
	c.Output('H')
	c.Output('i')
	c.Output(1) // non-printable
	assert.Equal(t, "Hi[1]", c.Text())
	assert.True(t, c.Flag(), "console output is permanently ready")
}

func TestSwitchesAlwaysReady(t *testing.T) {
	s := NewSwitches()
	s.Set(0x7F)
	assert.True(t, s.Flag())
	assert.Equal(t, uint8(0x7F), s.Input())
}

func TestLEDDisplayLatchesLastWrite(t *testing.T) {
	l := NewLEDDisplay()
	l.Output(0x80)
	assert.Equal(t, uint8(0x80), l.Value())
	assert.Equal(t, "10000000", l.Binary())
}

func TestPaperTapeReadAndPunchAreIndependent(t *testing.T) {
	p := NewPaperTape()
	p.Load([]uint8{1, 2, 3})
	assert.True(t, p.Flag())
	assert.Equal(t, uint8(1), p.Input())
	assert.Equal(t, uint8(2), p.Input())
	p.Output(0xAA)
	assert.True(t, p.Flag(), "one unread word remains")
	assert.Equal(t, uint8(3), p.Input())
	assert.False(t, p.Flag())
	assert.Equal(t, []uint8{0xAA}, p.Punched())
}

func TestPaperTapeResetRewindsButKeepsLoadedTape(t *testing.T) {
	p := NewPaperTape()
	p.Load([]uint8{9, 8})
	p.Input()
	p.Output(1)
	p.Reset()
	assert.True(t, p.Flag())
	assert.Equal(t, uint8(9), p.Input())
	assert.Empty(t, p.Punched())
}
