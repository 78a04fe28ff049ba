/*
 * micro2 - CPU opcode encoding
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

// Package opcodes holds the machine's instruction encoding: the shared
// vocabulary the assembler, disassembler, and CPU all decode against.
package opcodes

// Memory-reference opcodes occupy the top 2 bits of the instruction word.
const (
	OpJMP = 0b00 // Jump.
	OpSTR = 0b01 // Store AC.
	OpADD = 0b10 // Add to AC.
)

// IndirectBit is the addressing-mode bit of a memory-reference instruction.
const IndirectBit = 0b00100000

// AddrMask isolates the 5-bit intra-page word number of a memory-reference
// instruction.
const AddrMask = 0x1F

// NonMemMask selects the non-memory-reference instruction family (top 2
// bits both set).
const NonMemMask = 0b11000000

// Register/control instructions: 11 000 xxx.
const (
	OpCLR = 0b11000000
	OpCMP = 0b11000001
	OpRTL = 0b11000010
	OpRTR = 0b11000011
	OpORS = 0b11000100
	OpNOP = 0b11000101
	OpHLT = 0b11000110
)

// Skip instructions: 11 001 xxx.
const (
	OpSNO = 0b11001000
	OpSNA = 0b11001001
	OpSZS = 0b11001010
)

// I/O instructions: top 5 bits select the family, low 3 bits select the
// device number 0..7. The family constants carry their bits already in
// byte position (low 3 bits zero) so they combine directly with a device
// number via OR and compare directly against IOFamilyMask's extraction.
const (
	FamilySFG = 0b11010000 // 11 010 ddd
	FamilyINP = 0b11100000 // 11 100 ddd
	FamilyOUT = 0b11110000 // 11 110 ddd
)

// DeviceMask isolates the device number from an I/O instruction.
const DeviceMask = 0x07

// IOFamilyMask isolates the top 5 bits used to distinguish SFG/INP/OUT.
const IOFamilyMask = 0b11111000

// Mnemonic names, keyed by the exact instruction byte for register/control
// and skip opcodes (used by both the assembler's name table and the
// disassembler's reverse lookup).
var Mnemonics = map[int]string{
	OpCLR: "CLR",
	OpCMP: "CMP",
	OpRTL: "RTL",
	OpRTR: "RTR",
	OpORS: "ORS",
	OpNOP: "NOP",
	OpHLT: "HLT",
	OpSNO: "SNO",
	OpSNA: "SNA",
	OpSZS: "SZS",
}

// MemRefMnemonics maps the 2-bit memory-reference opcode to its mnemonic.
var MemRefMnemonics = map[int]string{
	OpJMP: "JMP",
	OpSTR: "STR",
	OpADD: "ADD",
}

// IOFamilyMnemonics maps the 5-bit I/O family prefix to its mnemonic.
var IOFamilyMnemonics = map[int]string{
	FamilySFG: "SFG",
	FamilyINP: "INP",
	FamilyOUT: "OUT",
}

// DeviceReserved is the device number the CPU itself reserves for bank
// switching (OUT 0) and treats INP/SFG against as a no-op (spec §3).
const DeviceReserved = 0

// NumDevices is the number of device slots the I/O hub exposes.
const NumDevices = 8
