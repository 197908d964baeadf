package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadsSetFlags(t *testing.T) {
	c, _ := testCpu(t, "A9 00 A2 80 A0 7F", false)

	require.NoError(t, c.Step())
	assert.True(t, c.Status.Zero())
	assert.False(t, c.Status.Negative())

	require.NoError(t, c.Step())
	assert.Equal(t, byte(0x80), c.X)
	assert.False(t, c.Status.Zero())
	assert.True(t, c.Status.Negative())

	require.NoError(t, c.Step())
	assert.Equal(t, byte(0x7F), c.Y)
	assert.False(t, c.Status.Negative())
}

func TestStores(t *testing.T) {
	c, ram := testCpu(t, "A9 11 A2 22 A0 33 85 40 86 41 84 42", false)
	require.NoError(t, c.Run(0x00))

	assert.Equal(t, byte(0x11), ram.Read(0x0040))
	assert.Equal(t, byte(0x22), ram.Read(0x0041))
	assert.Equal(t, byte(0x33), ram.Read(0x0042))
}

func TestTransfers(t *testing.T) {
	c, _ := testCpu(t, "A9 80 AA A8 8A 98", false)
	require.NoError(t, c.Run(0x00))

	assert.Equal(t, byte(0x80), c.X)
	assert.Equal(t, byte(0x80), c.Y)
	assert.Equal(t, byte(0x80), c.A)
	assert.True(t, c.Status.Negative())
}

func TestTSXAndTXS(t *testing.T) {
	c, _ := testCpu(t, "A2 20 9A BA", false)
	require.NoError(t, c.Step()) // LDX #$20
	require.NoError(t, c.Step()) // TXS
	assert.Equal(t, byte(0x20), c.SP)

	// TXS must not touch the flags
	assert.False(t, c.Status.Zero())

	c.X = 0
	require.NoError(t, c.Step()) // TSX
	assert.Equal(t, byte(0x20), c.X)
	assert.False(t, c.Status.Zero())
}

func TestIncDecMemory(t *testing.T) {
	c, ram := testCpu(t, "E6 40 E6 40 C6 41", false)
	ram.Write(0x0041, 0x01)
	require.NoError(t, c.Run(0x00))

	assert.Equal(t, byte(0x02), ram.Read(0x0040))
	assert.Equal(t, byte(0x00), ram.Read(0x0041))
	assert.True(t, c.Status.Zero())
}

func TestIncDecRegistersWrap(t *testing.T) {
	c, _ := testCpu(t, "CA C8", false)

	require.NoError(t, c.Step()) // DEX from 0
	assert.Equal(t, byte(0xFF), c.X)
	assert.True(t, c.Status.Negative())

	c.Y = 0xFF
	require.NoError(t, c.Step()) // INY
	assert.Equal(t, byte(0x00), c.Y)
	assert.True(t, c.Status.Zero())
}

func TestLogicOps(t *testing.T) {
	// AND clears to zero, ORA fills, EOR flips
	c, _ := testCpu(t, "A9 55 29 AA 09 FF 49 55", false)

	require.NoError(t, c.Step()) // LDA #$55
	require.NoError(t, c.Step()) // AND #$AA
	assert.Equal(t, byte(0x00), c.A)
	assert.True(t, c.Status.Zero())

	require.NoError(t, c.Step()) // ORA #$FF
	assert.Equal(t, byte(0xFF), c.A)
	assert.True(t, c.Status.Negative())

	require.NoError(t, c.Step()) // EOR #$55
	assert.Equal(t, byte(0xAA), c.A)
	assert.True(t, c.Status.Negative())
}

func TestBIT(t *testing.T) {
	c, ram := testCpu(t, "A9 0F 24 40", false)
	ram.Write(0x0040, 0xC0)

	require.NoError(t, c.Run(0x00))
	assert.True(t, c.Status.Negative(), "N copies bit 7")
	assert.True(t, c.Status.Overflow(), "V copies bit 6")
	assert.True(t, c.Status.Zero(), "A AND M is zero")
	assert.Equal(t, byte(0x0F), c.A, "A itself is untouched")
}

func TestShiftOnAccumulatorAndMemory(t *testing.T) {
	c, ram := testCpu(t, "A9 81 0A 06 40", false)
	ram.Write(0x0040, 0x81)

	require.NoError(t, c.Run(0x00))
	assert.Equal(t, byte(0x02), c.A)
	assert.Equal(t, byte(0x02), ram.Read(0x0040))
	assert.True(t, c.Status.Carry())
}

func TestPushPopRoundTrip(t *testing.T) {
	// PHA/PLA is identity on A
	c, ram := testCpu(t, "A9 42 48 A9 00 68", false)
	require.NoError(t, c.Run(0x00))

	assert.Equal(t, byte(0x42), c.A)
	assert.Equal(t, byte(0xFF), c.SP)
	assert.Equal(t, byte(0x42), ram.Read(0x01FF))
}

func TestPHPForcesBreakBits(t *testing.T) {
	c, ram := testCpu(t, "38 08", false) // SEC, PHP
	require.NoError(t, c.Run(0x00))

	// the pushed byte always carries bits 4 and 5
	assert.Equal(t, byte(FlagCarry|FlagBreak|FlagUnused), ram.Read(0x01FF))
	assert.False(t, c.Status.Break(), "the live break flag stays clear")
}

func TestPLPPreservesBreakBits(t *testing.T) {
	// push C|Z|V|N through raw memory, pull it back
	c, ram := testCpu(t, "28", false)
	ram.Write(0x01FF, FlagCarry|FlagZero|FlagOverflow|FlagNegative|FlagBreak)
	c.SP = 0xFE

	require.NoError(t, c.Step())
	assert.True(t, c.Status.Carry())
	assert.True(t, c.Status.Zero())
	assert.True(t, c.Status.Overflow())
	assert.True(t, c.Status.Negative())
	// bits 4 and 5 of the pulled byte are ignored: break stays clear,
	// unused stays set
	assert.False(t, c.Status.Break())
	assert.Equal(t, byte(FlagUnused), byte(c.Status)&FlagUnused)
}

func TestPHPPLPRoundTrip(t *testing.T) {
	c, _ := testCpu(t, "38 F8 08 18 D8 28", false) // SEC SED PHP CLC CLD PLP
	require.NoError(t, c.Run(0x00))

	assert.True(t, c.Status.Carry())
	assert.True(t, c.Status.Decimal())
}

func TestJSRandRTS(t *testing.T) {
	// JSR $1010, subroutine loads A and returns; execution resumes at
	// the byte after the 3-byte JSR
	c, ram := testCpu(t, "20 10 10 A2 05 EA", false)
	ram.LoadHex("A9 07 60", 0x1010)

	require.NoError(t, c.Step()) // JSR
	assert.Equal(t, uint16(0x1010), c.PC)
	// the pushed return address is the JSR's last byte
	assert.Equal(t, byte(0x10), ram.Read(0x01FF))
	assert.Equal(t, byte(0x02), ram.Read(0x01FE))

	require.NoError(t, c.Step()) // LDA #$07
	require.NoError(t, c.Step()) // RTS
	assert.Equal(t, uint16(0x1003), c.PC)
	assert.Equal(t, byte(0xFF), c.SP)

	require.NoError(t, c.Step()) // LDX #$05
	assert.Equal(t, byte(0x05), c.X)
	assert.Equal(t, byte(0x07), c.A)
}

func TestBRKAndRTI(t *testing.T) {
	c, ram := testCpu(t, "38 00", false) // SEC, BRK
	ram.LoadHex("A2 09 40", 0x1200)      // handler: LDX #$09, RTI
	ram.Write(0xFFFE, 0x00)
	ram.Write(0xFFFF, 0x12)

	require.NoError(t, c.Step()) // SEC
	require.NoError(t, c.Step()) // BRK
	assert.Equal(t, uint16(0x1200), c.PC)
	assert.True(t, c.Status.Interrupt())
	assert.True(t, c.Status.Break())

	// pushed status has bits 4 and 5 forced on, plus the carry; the
	// interrupt mask is raised only after the push
	assert.Equal(t, FlagCarry|FlagBreak|FlagUnused, ram.Read(0x01FD))

	require.NoError(t, c.Step()) // LDX
	require.NoError(t, c.Step()) // RTI

	// BRK pushed PC+1 through the address convention; RTI resumes there
	assert.Equal(t, uint16(0x1002), c.PC)
	assert.Equal(t, byte(0x09), c.X)
	assert.Equal(t, byte(0xFF), c.SP)
	assert.True(t, c.Status.Carry())
}

func TestBranchConditions(t *testing.T) {
	for _, tc := range []struct {
		name   string
		opcode string
		flag   byte
		on     bool // branch taken when the flag is in this state
	}{
		{"BCC", "90", FlagCarry, false},
		{"BCS", "B0", FlagCarry, true},
		{"BNE", "D0", FlagZero, false},
		{"BEQ", "F0", FlagZero, true},
		{"BPL", "10", FlagNegative, false},
		{"BMI", "30", FlagNegative, true},
		{"BVC", "50", FlagOverflow, false},
		{"BVS", "70", FlagOverflow, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			taken, _ := testCpu(t, tc.opcode+" 10", false)
			taken.Status.set(tc.flag, tc.on)
			require.NoError(t, taken.Step())
			assert.Equal(t, uint16(0x1012), taken.PC, "branch should be taken")

			skipped, _ := testCpu(t, tc.opcode+" 10", false)
			skipped.Status.set(tc.flag, !tc.on)
			require.NoError(t, skipped.Step())
			assert.Equal(t, uint16(0x1002), skipped.PC, "branch should fall through")
		})
	}
}

func TestCompareInstructions(t *testing.T) {
	c, _ := testCpu(t, "A9 10 C9 10 A2 20 E0 10 A0 05 C0 06", false)

	require.NoError(t, c.Step())
	require.NoError(t, c.Step()) // CMP #$10
	assert.True(t, c.Status.Zero())
	assert.True(t, c.Status.Carry())

	require.NoError(t, c.Step())
	require.NoError(t, c.Step()) // CPX #$10
	assert.False(t, c.Status.Zero())
	assert.True(t, c.Status.Carry())

	require.NoError(t, c.Step())
	require.NoError(t, c.Step()) // CPY #$06
	assert.False(t, c.Status.Carry())
	assert.True(t, c.Status.Negative())
}

func TestFlagInstructions(t *testing.T) {
	c, _ := testCpu(t, "38 F8 78 18 D8 58 B8", false)

	require.NoError(t, c.Step())
	require.NoError(t, c.Step())
	require.NoError(t, c.Step())
	assert.True(t, c.Status.Carry())
	assert.True(t, c.Status.Decimal())
	assert.True(t, c.Status.Interrupt())

	require.NoError(t, c.Step())
	require.NoError(t, c.Step())
	require.NoError(t, c.Step())
	assert.False(t, c.Status.Carry())
	assert.False(t, c.Status.Decimal())
	assert.False(t, c.Status.Interrupt())

	c.Status.SetOverflow(true)
	require.NoError(t, c.Step()) // CLV
	assert.False(t, c.Status.Overflow())
}

func TestStackPointerWraps(t *testing.T) {
	c, _ := testCpu(t, "48 48 48", false)
	c.SP = 0x01
	require.NoError(t, c.Run(0x00))

	// three pushes from $01 end at $FE: $01 -> $00 -> $FF -> $FE
	assert.Equal(t, byte(0xFE), c.SP)
}

func TestPushPopByteRoundTrip(t *testing.T) {
	c, _ := testCpu(t, "EA", false)
	for _, v := range []byte{0x00, 0x7F, 0x80, 0xFF} {
		c.pushByte(v)
		assert.Equal(t, v, c.popByte())
	}
}
