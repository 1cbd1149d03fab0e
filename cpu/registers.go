// Package cpu implements the register file, ALU, opcode decoder, and
// tick-driven sequencer at the center of the core.
package cpu

// Reg selects one of the five architectural registers, or a write
// target for the ALU's write-back stage. RegNone means "no register
// write-back this cycle" — the target is memory instead.
type Reg uint8

const (
	RegA Reg = iota
	RegX
	RegY
	RegS
	RegP
	RegNone
)

// Flag is a bitmask into P. Positions match the 6502 convention:
// C=bit0, Z=bit1, I=bit2, D=bit3, B=bit4, unused=bit5, V=bit6, N=bit7.
type Flag uint8

const (
	FlagC       Flag = 1 << 0
	FlagZ       Flag = 1 << 1
	FlagI       Flag = 1 << 2
	FlagD       Flag = 1 << 3
	FlagB       Flag = 1 << 4
	flagUnused  Flag = 1 << 5
	FlagV       Flag = 1 << 6
	FlagN       Flag = 1 << 7
)

// RegisterFile holds the five architectural bytes A, X, Y, S, P.
type RegisterFile struct {
	A, X, Y, S, P byte
}

// New returns a RegisterFile in its post-reset state: A=X=Y=0, S=0xFF,
// P=0x20 (bit 5 set, everything else clear).
func New() *RegisterFile {
	rf := &RegisterFile{}
	rf.Reset()
	return rf
}

// Reset restores the post-reset register state (§3, §5).
func (rf *RegisterFile) Reset() {
	rf.A, rf.X, rf.Y = 0, 0, 0
	rf.S = 0xFF
	rf.P = byte(flagUnused)
}

// Read returns the byte held by the selected register. Reading P
// always observes bit 5 set, per the invariant in §4.2.
func (rf *RegisterFile) Read(sel Reg) byte {
	switch sel {
	case RegA:
		return rf.A
	case RegX:
		return rf.X
	case RegY:
		return rf.Y
	case RegS:
		return rf.S
	case RegP:
		return rf.P | byte(flagUnused)
	default:
		panic("cpu: read of invalid register selector")
	}
}

// Write stores data in the selected register. When setNZ is true, P's
// Z and N bits are additionally set from zIn and nIn rather than
// recomputed from data — the ALU, not the register file, owns that
// computation (§4.2).
func (rf *RegisterFile) Write(sel Reg, data byte, setNZ, zIn, nIn bool) {
	switch sel {
	case RegA:
		rf.A = data
	case RegX:
		rf.X = data
	case RegY:
		rf.Y = data
	case RegS:
		rf.S = data
	case RegP:
		rf.P = (data | byte(flagUnused))
	default:
		panic("cpu: write of invalid register selector")
	}
	if setNZ {
		rf.setFlag(FlagZ, zIn)
		rf.setFlag(FlagN, nIn)
	}
}

// SetFlag forces the named flag on.
func (rf *RegisterFile) SetFlag(f Flag) {
	rf.setFlag(f, true)
}

// ClearFlag forces the named flag off.
func (rf *RegisterFile) ClearFlag(f Flag) {
	rf.setFlag(f, false)
}

// ApplyFlag sets or clears f according to value. Used by the ALU
// write-back path, which computes flag values rather than knowing in
// advance whether a flag should end up set or clear.
func (rf *RegisterFile) ApplyFlag(f Flag, value bool) {
	rf.setFlag(f, value)
}

func (rf *RegisterFile) setFlag(f Flag, on bool) {
	if on {
		rf.P |= byte(f)
	} else {
		rf.P &^= byte(f)
	}
	rf.P |= byte(flagUnused)
}

func (rf *RegisterFile) Flag(f Flag) bool {
	return rf.P&byte(f) != 0
}

func (rf *RegisterFile) C() bool { return rf.Flag(FlagC) }
func (rf *RegisterFile) Z() bool { return rf.Flag(FlagZ) }
func (rf *RegisterFile) I() bool { return rf.Flag(FlagI) }
func (rf *RegisterFile) D() bool { return rf.Flag(FlagD) }
func (rf *RegisterFile) V() bool { return rf.Flag(FlagV) }
func (rf *RegisterFile) N() bool { return rf.Flag(FlagN) }
