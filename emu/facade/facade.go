/*
 * micro2 Emulator Facade
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

// Package facade wires Memory, the I/O Hub, the CPU, the assembler, and
// the disassembler into the single surface external collaborators (a
// GUI, a CLI, a test) drive (spec §4.F). It owns all mutable state; the
// components it wires hold no package-level state of their own (spec §9
// "Global state").
//
// The facade is not internally synchronized (spec §5): callers must
// serialize their own calls into it.
package facade

import (
	"fmt"
	"os"
	"sort"

	"github.com/davecgh/go-spew/spew"

	assembler "github.com/arwhite/micro2/emu/assemble"
	"github.com/arwhite/micro2/emu/cpu"
	dev "github.com/arwhite/micro2/emu/device"
	disassembler "github.com/arwhite/micro2/emu/disassemble"
	"github.com/arwhite/micro2/emu/devices"
	"github.com/arwhite/micro2/emu/iohub"
	"github.com/arwhite/micro2/emu/memory"
	cfg "github.com/arwhite/micro2/config"
)

// DefaultMaxSteps is run's instruction budget when the caller does not
// specify one, per spec §4.F.
const DefaultMaxSteps = 10_000

// Outcome classifies how a run() call ended, per spec §4.F.
type Outcome int

const (
	OutcomeHalted Outcome = iota
	OutcomeBreakpoint
	OutcomeMaxSteps
	OutcomeNotRunning
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHalted:
		return "halted"
	case OutcomeBreakpoint:
		return "breakpoint"
	case OutcomeMaxSteps:
		return "max-steps-exceeded"
	default:
		return "not-running"
	}
}

// RunResult is the result of a run() call.
type RunResult struct {
	Outcome Outcome
	Steps   int
	Message string
}

// CPUSnapshot mirrors the CPU's observable register/flag state.
type CPUSnapshot struct {
	AC, PC, IR, MAR, MDR, MSR uint8
	Overflow, Halted, Running bool
	DataSwitches              uint8
	RunStop                   bool
}

// MemorySnapshot mirrors the facade's memory state, per spec §6 snapshot.
type MemorySnapshot struct {
	CurrentBank int
	NumActive   int
	Bank        [memory.BankSize]uint8
}

// Snapshot is the facade's full inspectable state, per spec §6.
type Snapshot struct {
	CPU         CPUSnapshot
	Memory      MemorySnapshot
	Devices     []dev.Status
	Breakpoints []int
	DebugMode   bool
}

// Emulator aggregates Memory, the I/O Hub, and the CPU, and exposes the
// stepping/running/inspection surface of spec §4.F.
type Emulator struct {
	mem *memory.Memory
	hub *iohub.Hub
	cpu *cpu.CPU

	breakpoints map[int]bool
	debugMode   bool
}

// New constructs an emulator with nActiveBanks active banks and an empty
// I/O hub; devices are wired in afterward via AddDevice. NewFromConfig
// builds an emulator with its devices already wired.
func New(nActiveBanks int) *Emulator {
	mem := memory.New(nActiveBanks)
	hub := iohub.New()
	return &Emulator{
		mem:         mem,
		hub:         hub,
		cpu:         cpu.New(mem, hub),
		breakpoints: make(map[int]bool),
	}
}

// NewFromConfig constructs an emulator from a parsed machine description,
// wiring the reference device set (spec §4.G) at the device numbers the
// document specifies.
func NewFromConfig(m cfg.Machine) (*Emulator, error) {
	e := New(m.ActiveBanks)
	for _, d := range m.Devices {
		device, err := buildDevice(d)
		if err != nil {
			return nil, err
		}
		e.hub.AddDevice(d.Number, device)
	}
	return e, nil
}

func buildDevice(d cfg.DeviceConfig) (dev.Device, error) {
	switch d.Kind {
	case "console_in":
		return devices.NewConsoleInput(), nil
	case "console_out":
		return devices.NewConsoleOutput(), nil
	case "switches":
		return devices.NewSwitches(), nil
	case "leds":
		return devices.NewLEDDisplay(), nil
	case "paper_tape":
		tape := devices.NewPaperTape()
		if d.Image != "" {
			data, err := os.ReadFile(d.Image)
			if err != nil {
				return nil, fmt.Errorf("facade: loading paper tape image %q: %w", d.Image, err)
			}
			tape.Load(data)
		}
		return tape, nil
	default:
		return nil, fmt.Errorf("facade: unknown device kind %q", d.Kind)
	}
}

// AddDevice installs device at slot d, as NewFromConfig does internally;
// exposed for callers that build their own roster in code.
func (e *Emulator) AddDevice(d int, device dev.Device) {
	e.hub.AddDevice(d, device)
}

// Device returns the device installed at slot d, or nil.
func (e *Emulator) Device(d int) dev.Device {
	return e.hub.Device(d)
}

// SetDeviceEnabled enables or disables the device installed at slot d.
// A nil slot is a no-op.
func (e *Emulator) SetDeviceEnabled(d int, enabled bool) {
	if device := e.hub.Device(d); device != nil {
		device.SetEnabled(enabled)
	}
}

// Reset restores the CPU to its power-on state, resets every device,
// and clears breakpoints. Memory contents are untouched — a power-on
// reset does not erase loaded programs (mirroring front-panel RESET,
// distinct from LOAD which replaces memory).
func (e *Emulator) Reset() {
	e.cpu.Reset()
	e.hub.ResetAll()
	e.breakpoints = make(map[int]bool)
}

// LoadAssembly assembles source and, if it produced no errors, loads the
// resulting image into the current bank after clearing it (spec §7.1:
// load fails atomically, no partial image on any error).
func (e *Emulator) LoadAssembly(source string) (bool, []assembler.Error) {
	result := assembler.Assemble(source)
	if len(result.Errors) > 0 {
		return false, result.Errors
	}
	e.mem.ClearCurrentBank()
	e.mem.LoadImage(result.Image)
	return true, nil
}

// LoadAssemblyFile reads path and assembles/loads its contents, as
// LoadAssembly does for an in-memory source string.
func (e *Emulator) LoadAssemblyFile(path string) (bool, []assembler.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, []assembler.Error{{Line: 0, Message: err.Error()}}
	}
	return e.LoadAssembly(string(data))
}

// LoadImage writes image directly into the current bank without
// clearing it first, preserving spec §4.A's sparse, gap-preserving
// load_image semantics.
func (e *Emulator) LoadImage(image assembler.Image) {
	e.mem.LoadImage(map[int]uint8(image))
}

// Step executes exactly one fetch/decode/execute cycle.
func (e *Emulator) Step() {
	e.cpu.Step()
}

// SetBreakpoint arms a stop-before-execute breakpoint at addr.
func (e *Emulator) SetBreakpoint(addr int) {
	e.breakpoints[addr&0xFF] = true
}

// ClearBreakpoint disarms the breakpoint at addr, if any.
func (e *Emulator) ClearBreakpoint(addr int) {
	delete(e.breakpoints, addr&0xFF)
}

// Breakpoints returns the sorted list of currently armed breakpoints.
func (e *Emulator) Breakpoints() []int {
	out := make([]int, 0, len(e.breakpoints))
	for addr := range e.breakpoints {
		out = append(out, addr)
	}
	sort.Ints(out)
	return out
}

// Run executes up to maxSteps instructions, stopping early at halt or a
// breakpoint, per spec §4.F's run loop. A maxSteps of 0 uses
// DefaultMaxSteps.
func (e *Emulator) Run(maxSteps int) RunResult {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	e.cpu.Running = true
	steps := 0
	for e.cpu.Running && !e.cpu.Halted && steps < maxSteps {
		if e.breakpoints[int(e.cpu.PC)] {
			e.cpu.Running = false
			return RunResult{Outcome: OutcomeBreakpoint, Steps: steps,
				Message: fmt.Sprintf("breakpoint at %d", e.cpu.PC)}
		}
		e.cpu.Step()
		steps++
	}
	if e.cpu.Halted {
		e.cpu.Running = false
		return RunResult{Outcome: OutcomeHalted, Steps: steps}
	}
	if steps >= maxSteps {
		e.cpu.Running = false
		return RunResult{Outcome: OutcomeMaxSteps, Steps: steps,
			Message: fmt.Sprintf("max-steps-exceeded after %d steps", steps)}
	}
	return RunResult{Outcome: OutcomeNotRunning, Steps: steps}
}

// SetDataSwitches sets the front-panel data switches register, and
// mirrors the value into the device-3 switches peripheral if one is
// wired, matching the reference implementation's set_data_switches,
// which updates both the CPU's register and the I/O system's switch
// device so INP 3 observes the same setting the ORS instruction does.
func (e *Emulator) SetDataSwitches(w uint8) {
	e.cpu.DataSwitches = w
	if switches, ok := e.hub.Device(devices.SwitchesSlot).(*devices.Switches); ok {
		switches.Set(w)
	}
}

// SetRunStop sets the front-panel run/stop switch position.
func (e *Emulator) SetRunStop(run bool) {
	if run {
		e.cpu.RunStopSw = cpu.Run
	} else {
		e.cpu.RunStopSw = cpu.Stop
	}
}

// PressLoadAddress, PressLoadData, PressDisplay, and PressStartStep
// forward to the CPU's front-panel operations (spec §4.C, §6).

func (e *Emulator) PressLoadAddress() { e.cpu.PressLoadAddress() }
func (e *Emulator) PressLoadData()    { e.cpu.PressLoadData() }
func (e *Emulator) PressDisplay()     { e.cpu.PressDisplay() }

// PressStartStep performs one front-panel START/STEP press. If this
// transitions the CPU into continuous running, PressStartStep drives it
// through Run with DefaultMaxSteps before returning (the facade's run
// loop, not the CPU's internal flag, is what executes instructions
// continuously).
func (e *Emulator) PressStartStep() {
	e.cpu.PressStartStep()
	if e.cpu.Running {
		e.Run(DefaultMaxSteps)
	}
}

// SetDebugMode toggles the debug_mode flag reported in Snapshot.
func (e *Emulator) SetDebugMode(on bool) {
	e.debugMode = on
}

// Snapshot returns the facade's full inspectable state, per spec §6.
func (e *Emulator) Snapshot() Snapshot {
	var bank MemorySnapshot
	bank.CurrentBank = e.mem.CurrentBank()
	bank.NumActive = e.mem.ActiveBanks()
	for a := 0; a < memory.BankSize; a++ {
		bank.Bank[a] = e.mem.Read(a)
	}

	return Snapshot{
		CPU: CPUSnapshot{
			AC: e.cpu.AC, PC: e.cpu.PC, IR: e.cpu.IR,
			MAR: e.cpu.MAR, MDR: e.cpu.MDR, MSR: e.cpu.MSR,
			Overflow: e.cpu.Overflow, Halted: e.cpu.Halted, Running: e.cpu.Running,
			DataSwitches: e.cpu.DataSwitches, RunStop: e.cpu.RunStopSw == cpu.Run,
		},
		Memory:      bank,
		Devices:     e.hub.Status(),
		Breakpoints: e.Breakpoints(),
		DebugMode:   e.debugMode,
	}
}

// DisassembleMemory disassembles the current bank word-by-word without
// program-level analysis, one mnemonic per address.
func (e *Emulator) DisassembleMemory() []string {
	out := make([]string, memory.BankSize)
	for a := 0; a < memory.BankSize; a++ {
		out[a] = disassembler.Word(e.mem.Read(a))
	}
	return out
}

// AnalyzeProgram runs the disassembler's program-level analysis (jump
// targets, page-in-use summary) over the current bank, per spec §4.E.
func (e *Emulator) AnalyzeProgram() disassembler.Analysis {
	return disassembler.AnalyzeBank(e.mem)
}

// DebugDump renders the emulator's full internal state with go-spew, for
// troubleshooting and debug-mode front-panel views beyond the structured
// Snapshot.
func (e *Emulator) DebugDump() string {
	return spew.Sdump(e.Snapshot())
}
