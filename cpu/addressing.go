package cpu

import "mos6502/mask"

// An AddressingMode tells the Cpu where the operand for an instruction
// lives. Resolving a mode consumes the instruction's operand bytes
// (advancing the program counter) and leaves the effective address and the
// value read from it in c.Addr and c.M.
type AddressingMode int

const (
	Implied     AddressingMode = iota // no operand
	Accumulator                       // operate on A
	Immediate                         // operand byte is the value
	ZeroPage                          // $00-$FF
	ZeroPageX
	ZeroPageY
	IndirectX // ($nn,X)
	IndirectY // ($nn),Y
	Relative  // branches
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect // JMP ($nnnn) only
)

// decode resolves the addressing mode, consuming operand bytes. For every
// mode with an effective address except Relative, the value at that address
// is read into c.M; Relative computes the branch target without touching it.
func (c *Cpu) decode(a AddressingMode) {
	c.hasAddr = false

	switch a {

	case Implied:
		return

	case Accumulator:
		c.M = c.A
		return

	case Immediate:
		c.M = c.fetch()
		return

	case ZeroPage:
		c.Addr = uint16(c.fetch())

	case ZeroPageX:
		c.Addr = uint16(c.fetch() + c.X)

	case ZeroPageY:
		c.Addr = uint16(c.fetch() + c.Y)

	case IndirectX:
		// the pointer itself lives in the zero page and wraps there
		p := c.fetch() + c.X
		c.Addr = mask.Word(c.Read(uint16(p+1)), c.Read(uint16(p)))

	case IndirectY:
		p := uint16(c.fetch())
		c.Addr = mask.Word(c.Read(p+1), c.Read(p)) + uint16(c.Y)

	case Relative:
		off := int8(c.fetch())
		c.Addr = c.PC + uint16(off)
		c.hasAddr = true
		return

	case Absolute:
		lo := c.fetch()
		hi := c.fetch()
		c.Addr = mask.Word(hi, lo)

	case AbsoluteX:
		lo := c.fetch()
		hi := c.fetch()
		c.Addr = mask.Word(hi, lo) + uint16(c.X)

	case AbsoluteY:
		lo := c.fetch()
		hi := c.fetch()
		c.Addr = mask.Word(hi, lo) + uint16(c.Y)

	case Indirect:
		lo := c.fetch()
		hi := c.fetch()
		ptr := mask.Word(hi, lo)
		// The pointer's second byte is fetched without carrying into the
		// high byte: JMP ($xxFF) reads its target's high byte from $xx00.
		c.Addr = mask.Word(c.Read(mask.IncLow(ptr)), c.Read(ptr))
	}

	c.hasAddr = true
	c.M = c.Read(c.Addr)
}
