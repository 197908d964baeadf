// Package mask provides the word and bit operations the 6502 performs
// constantly: assembling and splitting little-endian 16-bit addresses, and
// inspecting individual bits of a byte.

package mask

// Word concatenates a high and a low byte into a 16-bit address. The 6502 is
// little endian, so the low byte always arrives first on the bus; callers
// pass the bytes in (hi, lo) order regardless.
func Word(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// Hi extracts the high (page) byte of an address.
func Hi(w uint16) byte {
	return byte(w >> 8)
}

// Lo extracts the low byte of an address.
func Lo(w uint16) byte {
	return byte(w)
}

// Bit reports whether bit n (0-indexed from the least significant end) of b
// is set.
func Bit(b byte, n int) bool {
	return (b>>n)&1 == 1
}

// Negative reports whether bit 7 of b is set, i.e. whether b is negative
// when interpreted as a signed byte.
func Negative(b byte) bool {
	return b&(1<<7) != 0
}

// IncLow increments the low byte of w without carrying into the high byte.
// $10FF becomes $1000, not $1100. The 6502's indirect JMP fetches the second
// byte of its pointer this way.
func IncLow(w uint16) uint16 {
	return (w & 0xFF00) | uint16(byte(w)+1)
}

// Page returns the page number of an address (its high byte, widened for use
// as a table index).
func Page(addr uint16) int {
	return int(addr >> 8)
}

// PageBase returns the first address of the given page.
func PageBase(page int) uint16 {
	return uint16(page) << 8
}
