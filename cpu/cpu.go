// Package cpu implements the MOS Technology 6502 microprocessor: registers,
// status flags, addressing modes, the instruction set (optionally including
// the documented illegal opcodes), and the fetch-decode-execute loop.

package cpu

import (
	"fmt"
	"strings"

	"mos6502/mask"
	"mos6502/mem"
)

// Interrupt vector locations in high memory. Only the BRK vector is consulted
// by the emulator; the others are part of the memory map contract and are
// exposed through Vectors for tooling.
const (
	VecCOP uint16 = 0xFFF4
	VecABT uint16 = 0xFFF8
	VecNMI uint16 = 0xFFFA
	VecRST uint16 = 0xFFFC
	VecBRK uint16 = 0xFFFE
)

const stackPage uint16 = 0x0100

// The Cpu has no memory of its own beyond its handful of registers; every
// load and store goes through the Bus.
type Cpu struct {
	Bus *mem.Bus

	A  byte // accumulator
	X  byte
	Y  byte
	SP byte   // stack pointer, low byte within page $01
	PC uint16 // program counter

	Status Status

	// CurrentPC is the address the most recent instruction was fetched
	// from; Current holds its opcode and operand bytes. Both exist for
	// diagnostics (error reports, tracing, the debugger).
	CurrentPC uint16
	Current   []byte

	// Operand state left by the addressing unit for the running handler:
	// the fetched value, the effective address, and whether one exists
	// (immediate and register modes have none).
	M       byte
	Addr    uint16
	hasAddr bool

	table map[byte]Opcode
}

// New wires a Cpu to its bus. Execution will begin at origin; includeIllegal
// adds the documented illegal opcodes to the dispatch table.
func New(bus *mem.Bus, origin uint16, includeIllegal bool) *Cpu {
	c := &Cpu{
		Bus:    bus,
		SP:     0xFF,
		PC:     origin,
		Status: newStatus(),
		table:  make(map[byte]Opcode, len(opcodes)+len(illegalOpcodes)),
	}
	for b, op := range opcodes {
		c.table[b] = op
	}
	if includeIllegal {
		for b, op := range illegalOpcodes {
			c.table[b] = op
		}
	}
	return c
}

// Vectors returns the interrupt vector table.
func (c *Cpu) Vectors() map[string]uint16 {
	return map[string]uint16{
		"BRK": VecBRK,
		"RST": VecRST,
		"NMI": VecNMI,
		"ABT": VecABT,
		"COP": VecCOP,
	}
}

// An OpcodeError reports a fetched byte with no handler. It is fatal: the
// run loop stops and makes no attempt to skip or retry.
type OpcodeError struct {
	PC     uint16
	Opcode byte
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode $%02X at $%04X", e.Opcode, e.PC)
}

// Read reads one byte from the given addr.
func (c *Cpu) Read(addr uint16) byte {
	return c.Bus.Read(addr)
}

// Write passes data to the Bus, which actually performs the write.
func (c *Cpu) Write(addr uint16, data byte) {
	c.Bus.Write(addr, data)
}

// fetch reads the byte at the program counter, advances the counter, and
// records the byte in the current-instruction buffer.
func (c *Cpu) fetch() byte {
	v := c.Read(c.PC)
	c.PC++
	c.Current = append(c.Current, v)
	return v
}

// readVector reads the 16-bit little-endian address stored at addr.
func (c *Cpu) readVector(addr uint16) uint16 {
	return mask.Word(c.Read(addr+1), c.Read(addr))
}

// Step fetches, decodes, and executes a single instruction. Its effects on
// registers, flags, and the bus are complete when it returns; there is no
// in-flight state between steps.
func (c *Cpu) Step() error {
	c.CurrentPC = c.PC
	c.Current = c.Current[:0]
	b := c.fetch()
	op, ok := c.table[b]
	if !ok {
		return &OpcodeError{PC: c.CurrentPC, Opcode: b}
	}
	c.decode(op.Mode)
	op.Exec(c)
	return nil
}

// Run steps the Cpu until an error occurs or, if a halt opcode is given, the
// byte about to be fetched matches it.
func (c *Cpu) Run(haltOn ...byte) error {
	for {
		if err := c.Step(); err != nil {
			return err
		}
		for _, h := range haltOn {
			if c.Read(c.PC) == h {
				return nil
			}
		}
	}
}

// TraceLine formats the most recent instruction the way the original
// machine-language monitors did: address, raw bytes, registers, flags.
func (c *Cpu) TraceLine() string {
	raw := make([]string, len(c.Current))
	for i, b := range c.Current {
		raw[i] = fmt.Sprintf("%02X", b)
	}
	return fmt.Sprintf("%04X | %-8s | %02X %02X %02X | %s",
		c.CurrentPC, strings.Join(raw, " "), c.A, c.X, c.Y, c.Status)
}
