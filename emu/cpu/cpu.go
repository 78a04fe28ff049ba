/*
 * micro2 CPU core.
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

// Package cpu implements the fetch/decode/execute cycle: registers,
// flags, memory-reference addressing, and the front-panel switch/button
// surface.
package cpu

import (
	"github.com/arwhite/micro2/emu/iohub"
	"github.com/arwhite/micro2/emu/memory"
	op "github.com/arwhite/micro2/emu/opcodes"
)

// RunStop is the front-panel run/stop switch position.
type RunStop bool

const (
	Stop RunStop = false
	Run  RunStop = true
)

// CPU holds the machine's registers, flags, and front-panel state, and
// drives the memory and I/O hub it is wired to.
type CPU struct {
	AC  uint8 // Accumulator.
	PC  uint8 // Program counter.
	IR  uint8 // Instruction register (last fetched opcode).
	MAR uint8 // Memory address register (observable, not user-writable).
	MDR uint8 // Memory data register (observable, not user-writable).
	MSR uint8 // Memory-select register, low 4 bits meaningful.

	Overflow bool
	Halted   bool
	Running  bool

	DataSwitches uint8
	RunStopSw    RunStop

	mem *memory.Memory
	hub *iohub.Hub
}

// New returns a reset CPU wired to mem and hub.
func New(mem *memory.Memory, hub *iohub.Hub) *CPU {
	c := &CPU{mem: mem, hub: hub}
	c.Reset()
	return c
}

// Reset restores zero register/flag state, deselects back to bank 0,
// and puts the front panel in STOP.
func (c *CPU) Reset() {
	c.AC, c.PC, c.IR, c.MAR, c.MDR, c.MSR = 0, 0, 0, 0, 0, 0
	c.Overflow, c.Halted, c.Running = false, false, false
	c.DataSwitches = 0
	c.RunStopSw = Stop
	c.mem.SelectBank(0)
}

// decoded is the tagged variant every fetched word decodes into (spec §9
// "Inheritance-free opcode handling"). Exactly one of the embedded kinds
// is meaningful, selected by kind.
type decoded struct {
	kind     instKind
	memOp    int  // OpJMP/OpSTR/OpADD, when kind == kindMemRef.
	indirect bool // Indirect-addressing bit, when kind == kindMemRef.
	a5       int  // 5-bit intra-page field, when kind == kindMemRef.
	regOp    int  // Exact opcode byte, when kind == kindReg or kindSkip.
	ioFamily int  // op.FamilySFG/FamilyINP/FamilyOUT, when kind == kindIO.
	device   int  // Device number 0..7, when kind == kindIO.
}

type instKind int

const (
	kindMemRef instKind = iota
	kindReg
	kindSkip
	kindIO
	kindNop
)

// decode classifies ir per spec §4.C. Any 8-bit value that matches none
// of the defined patterns decodes as kindNop — the machine ignores
// unrecognized instructions rather than faulting.
func decode(ir uint8) decoded {
	w := int(ir)

	if w&op.NonMemMask != op.NonMemMask {
		// Top two bits are 00/01/10: memory reference.
		return decoded{
			kind:     kindMemRef,
			memOp:    (w >> 6) & 0b11,
			indirect: w&op.IndirectBit != 0,
			a5:       w & op.AddrMask,
		}
	}

	if _, ok := op.Mnemonics[w]; ok {
		if w>>3 == op.OpCLR>>3 {
			return decoded{kind: kindReg, regOp: w}
		}
		return decoded{kind: kindSkip, regOp: w}
	}

	family := w & op.IOFamilyMask
	if _, ok := op.IOFamilyMnemonics[family]; ok {
		return decoded{kind: kindIO, ioFamily: family, device: w & op.DeviceMask}
	}

	return decoded{kind: kindNop}
}

// Step performs exactly one fetch/decode/execute cycle, per spec §4.C.
// It is a no-op if the CPU is halted.
func (c *CPU) Step() {
	if c.Halted {
		return
	}

	c.MAR = c.PC
	c.IR = c.mem.Read(int(c.MAR))
	instructionPage := c.PC & memory.PageMask
	c.PC = (c.PC + 1) & 0xFF

	d := decode(c.IR)
	switch d.kind {
	case kindMemRef:
		c.execMemRef(d, instructionPage)
	case kindReg:
		c.execReg(d.regOp)
	case kindSkip:
		c.execSkip(d.regOp)
	case kindIO:
		c.execIO(d)
	case kindNop:
		// Unknown pattern: deliberate no-op (spec §7.4).
	}
}

// execMemRef implements the effective-address rule of spec §4.C. The
// direct case ORs the instruction's own page with the 5-bit field;
// the indirect case reads a full 8-bit pointer from the 5-bit-addressable
// cell and uses it verbatim as the target.
func (c *CPU) execMemRef(d decoded, instructionPage uint8) {
	var effective uint8
	if d.indirect {
		pointer := c.mem.Read(d.a5)
		c.MDR = pointer
		effective = pointer
	} else {
		effective = instructionPage | uint8(d.a5)
	}
	c.MAR = effective

	switch d.memOp {
	case op.OpJMP:
		c.PC = effective
	case op.OpSTR:
		c.mem.Write(int(effective), c.AC)
	case op.OpADD:
		operand := c.mem.Read(int(effective))
		sum := int(c.AC) + int(operand)
		c.Overflow = sum > 255
		c.AC = uint8(sum & 0xFF)
	}
}

func (c *CPU) execReg(opcode int) {
	switch opcode {
	case op.OpCLR:
		c.AC = 0
		c.Overflow = false
	case op.OpCMP:
		c.AC = ^c.AC
	case op.OpRTL:
		c.AC = (c.AC << 1) | (c.AC >> 7)
	case op.OpRTR:
		c.AC = (c.AC >> 1) | (c.AC << 7)
	case op.OpORS:
		c.AC |= c.DataSwitches
	case op.OpNOP:
		// No effect.
	case op.OpHLT:
		c.Halted = true
		c.Running = false
	}
}

func (c *CPU) execSkip(opcode int) {
	switch opcode {
	case op.OpSNO:
		if !c.Overflow {
			c.PC = (c.PC + 1) & 0xFF
		}
		c.Overflow = false // Consumed by the test regardless of outcome.
	case op.OpSNA:
		if c.AC != 0 {
			c.PC = (c.PC + 1) & 0xFF
		}
	case op.OpSZS:
		if c.AC&0x80 == 0 {
			c.PC = (c.PC + 1) & 0xFF
		}
	}
}

func (c *CPU) execIO(d decoded) {
	switch d.ioFamily {
	case op.FamilySFG:
		if d.device != op.DeviceReserved && c.hub.Flag(d.device) {
			c.PC = (c.PC + 1) & 0xFF
		}
	case op.FamilyINP:
		if d.device == op.DeviceReserved {
			return // INP 0 is undefined, treated as a no-op (spec §3).
		}
		v := c.hub.Input(d.device)
		c.AC |= ^v
	case op.FamilyOUT:
		if d.device == op.DeviceReserved {
			c.MSR = c.AC & 0x0F
			c.mem.SelectBank(int(c.MSR))
			return
		}
		c.hub.Output(d.device, c.AC)
	}
}

// Front-panel operations, valid only when not running (spec §4.C).

// PressLoadAddress loads PC from the data switches. A no-op while the
// run/stop switch is in RUN.
func (c *CPU) PressLoadAddress() {
	if c.RunStopSw == Run {
		return
	}
	c.PC = c.DataSwitches
}

// PressLoadData writes the data switches into memory at PC, latches
// them into IR, and advances PC. A no-op while the run/stop switch is
// in RUN.
func (c *CPU) PressLoadData() {
	if c.RunStopSw == Run {
		return
	}
	c.mem.Write(int(c.PC), c.DataSwitches)
	c.IR = c.DataSwitches
	c.PC = (c.PC + 1) & 0xFF
}

// PressDisplay latches the word at PC into IR and advances PC, without
// executing it. A no-op while the run/stop switch is in RUN.
func (c *CPU) PressDisplay() {
	if c.RunStopSw == Run {
		return
	}
	c.IR = c.mem.Read(int(c.PC))
	c.PC = (c.PC + 1) & 0xFF
}

// PressStartStep executes one instruction if the run/stop switch is in
// STOP, or begins continuous execution (sets Running) if in RUN. The
// facade's run loop is what actually drives continuous execution; this
// only flips the flag/steps once, per spec §4.C.
func (c *CPU) PressStartStep() {
	if c.RunStopSw == Run {
		c.Running = true
		return
	}
	c.Step()
}
