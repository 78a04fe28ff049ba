package facade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arwhite/micro2/config"
	"github.com/arwhite/micro2/emu/devices"
)

func TestScenarioAddition(t *testing.T) {
	e := New(1)
	ok, errs := e.LoadAssembly(`
CLR
ADD 16
ADD 17
STR 18
HLT
ORG 16
DATA 35
DATA 120
DATA 0
`)
	require.True(t, ok, errs)

	r := e.Run(0)
	assert.Equal(t, OutcomeHalted, r.Outcome)
	snap := e.Snapshot()
	assert.Equal(t, uint8(155), snap.CPU.AC)
	assert.True(t, snap.CPU.Halted)
	assert.False(t, snap.CPU.Overflow)
	assert.Equal(t, uint8(155), snap.Memory.Bank[18])
}

func TestScenarioIndirectAddressing(t *testing.T) {
	e := New(1)
	ok, errs := e.LoadAssembly(`
CLR
ADD *16
STR 17
HLT
ORG 16
DATA 20
ORG 20
DATA 77
`)
	require.True(t, ok, errs)
	e.Run(0)
	assert.Equal(t, uint8(77), e.Snapshot().Memory.Bank[17])
}

func TestScenarioSkipLoop(t *testing.T) {
	e := New(1)
	// Count CUR up by 1 each pass through LOOP, testing CUR-3 via two's
	// complement addition of -3 (253): SNA skips the JMP DONE whenever
	// that sum is nonzero, landing on JMP LOOP, so the loop only falls
	// through to DONE once CUR reaches 3.
	ok, errs := e.LoadAssembly(`
CLR
STR CUR
LOOP: CLR
ADD CUR
ADD ONE
STR CUR
ADD NEG3
SNA
JMP DONE
JMP LOOP
DONE: CLR
ADD CUR
HLT
ONE: DATA 1
NEG3: DATA 253
CUR: DATA 0
`)
	require.True(t, ok, errs)
	e.Run(1000)
	snap := e.Snapshot()
	assert.True(t, snap.CPU.Halted)
	assert.Equal(t, uint8(3), snap.CPU.AC, "loop must terminate with AC == 3 after exactly 3 iterations")
	assert.Equal(t, uint8(3), snap.Memory.Bank[15])
}

func TestScenarioIOComplementProtocol(t *testing.T) {
	e := New(1)
	in := devices.NewConsoleInput()
	in.Queue(0x55)
	e.AddDevice(1, in)

	ok, errs := e.LoadAssembly(`
CLR
INP 1
STR 10
HLT
`)
	require.True(t, ok, errs)
	e.Run(0)
	assert.Equal(t, uint8(0xAA), e.Snapshot().Memory.Bank[10])
}

func TestScenarioBankSwitch(t *testing.T) {
	e := New(2)
	ok, errs := e.LoadAssembly(`
CLR
ORS
OUT 0
HLT
`)
	require.True(t, ok, errs)
	e.SetDataSwitches(1)
	e.Run(0)
	assert.Equal(t, uint8(1), e.Snapshot().CPU.MSR)
	assert.Equal(t, 1, e.Snapshot().Memory.CurrentBank)
}

func TestSetDataSwitchesReachesSwitchesDevice(t *testing.T) {
	m := config.DefaultMachine()
	e, err := NewFromConfig(m)
	require.NoError(t, err)

	ok, errs := e.LoadAssembly("CLR\nINP 3\nSTR 10\nHLT")
	require.True(t, ok, errs)

	e.SetDataSwitches(0x0F)
	e.Run(0)
	assert.Equal(t, uint8(0xF0), e.Snapshot().Memory.Bank[10], "INP 3 must read the switches device via the complemented-OR protocol")
}

func TestScenarioOverflowLifecycle(t *testing.T) {
	run := func(seed uint8) Snapshot {
		e := New(1)
		ok, errs := e.LoadAssembly(`
ADD 5
SNO
HLT
HLT
ORG 5
DATA 0
`)
		require.True(t, ok, errs)
		e.mem.Write(5, seed)
		e.cpu.AC = 100
		e.Run(0)
		return e.Snapshot()
	}

	overflowSnap := run(200) // 100+200=300 -> overflow, SNO does not skip
	assert.Equal(t, uint8(3), overflowSnap.CPU.PC, "halts right after executing the first HLT")

	noOverflowSnap := run(50) // 100+50=150 -> no overflow, SNO skips
	assert.Equal(t, uint8(4), noOverflowSnap.CPU.PC, "halts right after executing the second HLT")
}

func TestLoadAssemblyRejectsOnAnyError(t *testing.T) {
	e := New(1)
	before := e.Snapshot().Memory.Bank
	ok, errs := e.LoadAssembly("FROB\nCLR")
	assert.False(t, ok)
	assert.NotEmpty(t, errs)
	assert.Equal(t, before, e.Snapshot().Memory.Bank, "a failed load must not touch memory")
}

func TestRunStopsAtBreakpoint(t *testing.T) {
	e := New(1)
	ok, errs := e.LoadAssembly("CLR\nORS\nORS\nHLT")
	require.True(t, ok, errs)
	e.SetBreakpoint(2)
	r := e.Run(0)
	assert.Equal(t, OutcomeBreakpoint, r.Outcome)
	assert.Equal(t, uint8(2), e.Snapshot().CPU.PC)
}

func TestRunStopsAtMaxSteps(t *testing.T) {
	e := New(1)
	ok, errs := e.LoadAssembly("LOOP: JMP LOOP")
	require.True(t, ok, errs)
	r := e.Run(10)
	assert.Equal(t, OutcomeMaxSteps, r.Outcome)
	assert.Equal(t, 10, r.Steps)
}

func TestResetClearsBreakpointsAndCPUButKeepsMemory(t *testing.T) {
	e := New(1)
	ok, errs := e.LoadAssembly("CLR\nHLT")
	require.True(t, ok, errs)
	e.SetBreakpoint(1)
	e.Run(0)
	e.Reset()
	assert.Empty(t, e.Breakpoints())
	assert.False(t, e.Snapshot().CPU.Halted)
	assert.Equal(t, uint8(0), e.Snapshot().CPU.PC)
	assert.NotEqual(t, uint8(0), e.Snapshot().Memory.Bank[1], "Reset must not erase the loaded program")
}

func TestSetDeviceEnabledDisablesInput(t *testing.T) {
	e := New(1)
	in := devices.NewConsoleInput()
	in.Queue(0xFF)
	e.AddDevice(1, in)
	e.SetDeviceEnabled(1, false)

	ok, errs := e.LoadAssembly("CLR\nINP 1\nSTR 10\nHLT")
	require.True(t, ok, errs)
	e.Run(0)
	assert.Equal(t, uint8(0xFF), e.Snapshot().Memory.Bank[10], "disabled device reads 0, complemented to 0xFF")
}

func TestDisassembleMemoryMatchesWordDecoder(t *testing.T) {
	e := New(1)
	ok, errs := e.LoadAssembly("CLR\nHLT")
	require.True(t, ok, errs)
	lines := e.DisassembleMemory()
	assert.Equal(t, "CLR", lines[0])
	assert.Equal(t, "HLT", lines[1])
}

func TestAnalyzeProgramReportsNoProgramOnEmptyMemory(t *testing.T) {
	e := New(1)
	a := e.AnalyzeProgram()
	assert.True(t, a.NoProgram)
}

func TestDebugDumpIncludesRegisterState(t *testing.T) {
	e := New(1)
	e.SetDataSwitches(0x42)
	out := e.DebugDump()
	assert.Contains(t, out, "DataSwitches")
}
