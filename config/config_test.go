package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadValidDocument(t *testing.T) {
	doc := `
active_banks: 2
devices:
  - number: 1
    kind: console_in
  - number: 5
    kind: paper_tape
    image: boot.tape
`
	m, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, m.ActiveBanks)
	assert.Len(t, m.Devices, 2)
	assert.Equal(t, "boot.tape", m.Devices[1].Image)
}

func TestDefaultMachine(t *testing.T) {
	m := DefaultMachine()
	assert.NoError(t, m.Validate())
	assert.Equal(t, 1, m.ActiveBanks)
	assert.Len(t, m.Devices, 5)
}

func TestValidateRejectsBankCountOutOfRange(t *testing.T) {
	m := Machine{ActiveBanks: 9}
	assert.Error(t, m.Validate())
}

func TestValidateRejectsReservedDeviceNumber(t *testing.T) {
	m := Machine{ActiveBanks: 1, Devices: []DeviceConfig{{Number: 0, Kind: "switches"}}}
	assert.Error(t, m.Validate())
}

func TestValidateRejectsDuplicateDeviceNumber(t *testing.T) {
	m := Machine{ActiveBanks: 1, Devices: []DeviceConfig{
		{Number: 1, Kind: "console_in"},
		{Number: 1, Kind: "console_out"},
	}}
	assert.Error(t, m.Validate())
}

func TestValidateRejectsUnknownDeviceKind(t *testing.T) {
	m := Machine{ActiveBanks: 1, Devices: []DeviceConfig{{Number: 1, Kind: "teleprinter"}}}
	assert.Error(t, m.Validate())
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(strings.NewReader("active_banks: [this is not a scalar"))
	assert.Error(t, err)
}
