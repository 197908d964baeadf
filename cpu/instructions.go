package cpu

// The official instruction set, one method per mnemonic. The addressing unit
// has already run by the time a handler is called: the operand value is in
// c.M and, for modes that have one, the effective address in c.Addr.
//
// https://www.nesdev.org/obelisk-6502-guide/reference.html

// storeResult writes a read-modify-write result back to where the operand
// came from: memory when the mode produced an address, the accumulator
// otherwise.
func (c *Cpu) storeResult(v byte) {
	if c.hasAddr {
		c.Write(c.Addr, v)
	} else {
		c.A = v
	}
}

// branchIf moves the program counter to the decoded branch target when the
// condition holds; otherwise it is already past the operand.
func (c *Cpu) branchIf(cond bool) {
	if cond {
		c.PC = c.Addr
	}
}

// ADC - Add with Carry
func (c *Cpu) ADC() {
	c.addToAccumulator(c.M)
}

// AND - Logical AND
func (c *Cpu) AND() {
	c.A &= c.M
	c.Status.setNZ(c.A)
}

// ASL - Arithmetic Shift Left
func (c *Cpu) ASL() {
	c.storeResult(c.shiftLeft(c.M))
}

// BCC - Branch if Carry Clear
func (c *Cpu) BCC() {
	c.branchIf(!c.Status.Carry())
}

// BCS - Branch if Carry Set
func (c *Cpu) BCS() {
	c.branchIf(c.Status.Carry())
}

// BEQ - Branch if Equal
func (c *Cpu) BEQ() {
	c.branchIf(c.Status.Zero())
}

// BIT - Bit Test
func (c *Cpu) BIT() {
	c.Status.SetNegative(c.M&(1<<7) != 0)
	c.Status.SetOverflow(c.M&(1<<6) != 0)
	c.Status.SetZero(c.A&c.M == 0)
}

// BMI - Branch if Minus
func (c *Cpu) BMI() {
	c.branchIf(c.Status.Negative())
}

// BNE - Branch if Not Equal
func (c *Cpu) BNE() {
	c.branchIf(!c.Status.Zero())
}

// BPL - Branch if Positive
func (c *Cpu) BPL() {
	c.branchIf(!c.Status.Negative())
}

// BRK - Force Interrupt
//
// Pushes PC+1 through the address convention, so the stacked address (and
// the one RTI resumes at) is the BRK's padding byte; pushes the status with
// the break and unused bits forced high, masks interrupts, and jumps through
// the BRK vector.
func (c *Cpu) BRK() {
	c.Status.SetBreak(true)
	c.pushAddress(c.PC + 1)
	c.pushByte(byte(c.Status) | FlagBreak | FlagUnused)
	c.Status.SetInterrupt(true)
	c.PC = c.readVector(VecBRK)
}

// BVC - Branch if Overflow Clear
func (c *Cpu) BVC() {
	c.branchIf(!c.Status.Overflow())
}

// BVS - Branch if Overflow Set
func (c *Cpu) BVS() {
	c.branchIf(c.Status.Overflow())
}

// CLC - Clear Carry Flag
func (c *Cpu) CLC() {
	c.Status.SetCarry(false)
}

// CLD - Clear Decimal Mode
func (c *Cpu) CLD() {
	c.Status.SetDecimal(false)
}

// CLI - Clear Interrupt Disable
func (c *Cpu) CLI() {
	c.Status.SetInterrupt(false)
}

// CLV - Clear Overflow Flag
func (c *Cpu) CLV() {
	c.Status.SetOverflow(false)
}

// CMP - Compare
func (c *Cpu) CMP() {
	c.compare(c.A, c.M)
}

// CPX - Compare X Register
func (c *Cpu) CPX() {
	c.compare(c.X, c.M)
}

// CPY - Compare Y Register
func (c *Cpu) CPY() {
	c.compare(c.Y, c.M)
}

// DEC - Decrement Memory
func (c *Cpu) DEC() {
	v := c.M - 1
	c.Write(c.Addr, v)
	c.Status.setNZ(v)
}

// DEX - Decrement X Register
func (c *Cpu) DEX() {
	c.X--
	c.Status.setNZ(c.X)
}

// DEY - Decrement Y Register
func (c *Cpu) DEY() {
	c.Y--
	c.Status.setNZ(c.Y)
}

// EOR - Exclusive OR
func (c *Cpu) EOR() {
	c.A ^= c.M
	c.Status.setNZ(c.A)
}

// INC - Increment Memory
func (c *Cpu) INC() {
	v := c.M + 1
	c.Write(c.Addr, v)
	c.Status.setNZ(v)
}

// INX - Increment X Register
func (c *Cpu) INX() {
	c.X++
	c.Status.setNZ(c.X)
}

// INY - Increment Y Register
func (c *Cpu) INY() {
	c.Y++
	c.Status.setNZ(c.Y)
}

// JMP - Jump
func (c *Cpu) JMP() {
	c.PC = c.Addr
}

// JSR - Jump to Subroutine
//
// The pushed return address is one less than the next instruction; RTS adds
// it back.
func (c *Cpu) JSR() {
	c.pushAddress(c.PC)
	c.PC = c.Addr
}

// LDA - Load Accumulator
func (c *Cpu) LDA() {
	c.A = c.M
	c.Status.setNZ(c.A)
}

// LDX - Load X Register
func (c *Cpu) LDX() {
	c.X = c.M
	c.Status.setNZ(c.X)
}

// LDY - Load Y Register
func (c *Cpu) LDY() {
	c.Y = c.M
	c.Status.setNZ(c.Y)
}

// LSR - Logical Shift Right
func (c *Cpu) LSR() {
	c.storeResult(c.shiftRight(c.M))
}

// NOP - No Operation
//
// Operand bytes, if the opcode has any, were consumed by the addressing
// unit; there is nothing left to do.
func (c *Cpu) NOP() {}

// ORA - Logical Inclusive OR
func (c *Cpu) ORA() {
	c.A |= c.M
	c.Status.setNZ(c.A)
}

// PHA - Push Accumulator
func (c *Cpu) PHA() {
	c.pushByte(c.A)
}

// PHP - Push Processor Status
//
// The pushed byte always has the break and unused bits set, whatever their
// live values.
func (c *Cpu) PHP() {
	c.pushByte(byte(c.Status) | FlagBreak | FlagUnused)
}

// PLA - Pull Accumulator
func (c *Cpu) PLA() {
	c.A = c.popByte()
	c.Status.setNZ(c.A)
}

// PLP - Pull Processor Status
//
// Bits 4 and 5 of the pulled byte are ignored; the live break and unused
// bits survive.
func (c *Cpu) PLP() {
	pulled := c.popByte() &^ (FlagBreak | FlagUnused)
	live := byte(c.Status) & (FlagBreak | FlagUnused)
	c.Status = Status(pulled | live)
}

// ROL - Rotate Left
func (c *Cpu) ROL() {
	c.storeResult(c.rotateLeft(c.M))
}

// ROR - Rotate Right
func (c *Cpu) ROR() {
	c.storeResult(c.rotateRight(c.M))
}

// RTI - Return from Interrupt
//
// Pulls the status (break and unused bits preserved, as with PLP), then the
// program counter, which is used as popped.
func (c *Cpu) RTI() {
	c.PLP()
	c.PC = c.popAddress()
}

// RTS - Return from Subroutine
func (c *Cpu) RTS() {
	c.PC = c.popAddress() + 1
}

// SBC - Subtract with Carry
func (c *Cpu) SBC() {
	c.subtractFromAccumulator(c.M)
}

// SEC - Set Carry Flag
func (c *Cpu) SEC() {
	c.Status.SetCarry(true)
}

// SED - Set Decimal Flag
func (c *Cpu) SED() {
	c.Status.SetDecimal(true)
}

// SEI - Set Interrupt Disable
func (c *Cpu) SEI() {
	c.Status.SetInterrupt(true)
}

// STA - Store Accumulator
func (c *Cpu) STA() {
	c.Write(c.Addr, c.A)
}

// STX - Store X Register
func (c *Cpu) STX() {
	c.Write(c.Addr, c.X)
}

// STY - Store Y Register
func (c *Cpu) STY() {
	c.Write(c.Addr, c.Y)
}

// TAX - Transfer Accumulator to X
func (c *Cpu) TAX() {
	c.X = c.A
	c.Status.setNZ(c.X)
}

// TAY - Transfer Accumulator to Y
func (c *Cpu) TAY() {
	c.Y = c.A
	c.Status.setNZ(c.Y)
}

// TSX - Transfer Stack Pointer to X
func (c *Cpu) TSX() {
	c.X = c.SP
	c.Status.setNZ(c.X)
}

// TXA - Transfer X to Accumulator
func (c *Cpu) TXA() {
	c.A = c.X
	c.Status.setNZ(c.A)
}

// TXS - Transfer X to Stack Pointer
//
// The only transfer that sets no flags.
func (c *Cpu) TXS() {
	c.SP = c.X
}

// TYA - Transfer Y to Accumulator
func (c *Cpu) TYA() {
	c.A = c.Y
	c.Status.setNZ(c.A)
}
