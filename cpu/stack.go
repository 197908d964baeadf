package cpu

import "mos6502/mask"

// The stack lives in page $01 and grows downward. SP holds the low byte of
// the next free slot and wraps modulo 256; the 6502 has no overflow
// detection, and neither does this.

// pushByte writes v at $0100+SP, then decrements SP.
func (c *Cpu) pushByte(v byte) {
	c.Write(stackPage+uint16(c.SP), v)
	c.SP--
}

// popByte increments SP, then reads $0100+SP.
func (c *Cpu) popByte() byte {
	c.SP++
	return c.Read(stackPage + uint16(c.SP))
}

// pushAddress pushes addr-1, high byte first, matching the JSR convention.
// RTS compensates by adding 1 to what it pops; RTI uses the popped address
// as-is.
func (c *Cpu) pushAddress(addr uint16) {
	addr--
	c.pushByte(mask.Hi(addr))
	c.pushByte(mask.Lo(addr))
}

// popAddress pops the low byte, then the high byte.
func (c *Cpu) popAddress() uint16 {
	lo := c.popByte()
	hi := c.popByte()
	return mask.Word(hi, lo)
}
