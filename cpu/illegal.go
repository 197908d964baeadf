package cpu

// The documented illegal opcodes, enabled at construction. Each is the
// composite of two official operations on the same operand; only the subset
// with deterministic behavior on NMOS silicon is implemented.
//
// https://www.nesdev.org/wiki/CPU_unofficial_opcodes

// SLO - Shift Left then OR (ASL + ORA)
func (c *Cpu) SLO() {
	r := c.shiftLeft(c.M)
	c.Write(c.Addr, r)
	c.A |= r
	c.Status.setNZ(c.A)
}

// RLA - Rotate Left then AND (ROL + AND)
func (c *Cpu) RLA() {
	r := c.rotateLeft(c.M)
	c.Write(c.Addr, r)
	c.A &= r
	c.Status.setNZ(c.A)
}

// SRE - Shift Right then EOR (LSR + EOR)
func (c *Cpu) SRE() {
	r := c.shiftRight(c.M)
	c.Write(c.Addr, r)
	c.A ^= r
	c.Status.setNZ(c.A)
}

// RRA - Rotate Right then Add (ROR + ADC)
//
// The add consumes the carry the rotate just produced.
func (c *Cpu) RRA() {
	r := c.rotateRight(c.M)
	c.Write(c.Addr, r)
	c.addToAccumulator(r)
}

// SAX - Store A AND X (STA + STX)
//
// No flags are affected.
func (c *Cpu) SAX() {
	c.Write(c.Addr, c.A&c.X)
}

// LAX - Load A and X (LDA + LDX)
func (c *Cpu) LAX() {
	c.A = c.M
	c.X = c.M
	c.Status.setNZ(c.M)
}

// DCP - Decrement then Compare (DEC + CMP)
func (c *Cpu) DCP() {
	v := c.M - 1
	c.Write(c.Addr, v)
	c.compare(c.A, v)
}

// ISB - Increment then Subtract (INC + SBC)
func (c *Cpu) ISB() {
	v := c.M + 1
	c.Write(c.Addr, v)
	c.subtractFromAccumulator(v)
}

// ANC - AND then copy N to Carry (AND + ASL/ROL's carry)
func (c *Cpu) ANC() {
	c.A &= c.M
	c.Status.setNZ(c.A)
	c.Status.SetCarry(c.Status.Negative())
}

// ASR - AND then Shift Right (AND + LSR on A)
func (c *Cpu) ASR() {
	c.A &= c.M
	c.A = c.shiftRight(c.A)
}

// ARR - AND then Rotate Right (AND + ROR on A)
//
// The carry and overflow come from bits 6 and 5 of the rotated result, an
// artifact of the adder sitting in the data path.
func (c *Cpu) ARR() {
	r := (c.A & c.M) >> 1
	if c.Status.Carry() {
		r |= 1 << 7
	}
	c.A = r
	c.Status.setNZ(r)
	c.Status.SetCarry(r&(1<<6) != 0)
	c.Status.SetOverflow((r>>6)&1 != (r>>5)&1)
}

// SBX - A AND X minus immediate into X (CMP + DEX)
//
// The subtraction ignores the decimal flag and borrows like a compare.
func (c *Cpu) SBX() {
	t := c.A & c.X
	c.Status.SetCarry(t >= c.M)
	c.X = t - c.M
	c.Status.setNZ(c.X)
}

// LAS - Memory AND SP into A, X, and SP (LDA/TSX mashup)
func (c *Cpu) LAS() {
	r := c.M & c.SP
	c.A = r
	c.X = r
	c.SP = r
	c.Status.setNZ(r)
}
