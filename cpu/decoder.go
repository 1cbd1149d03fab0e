package cpu

// instrKind classifies an opcode's data-flow shape. The decoder groups
// the full documented ISA into these few orthogonal families instead
// of one hand-written case per opcode (§4.3, §9's "collapse the
// decoder to a lookup table" note); Sequencer dispatches on Kind, not
// on the opcode byte, once decode has run.
type instrKind uint8

const (
	kindNOP instrKind = iota
	kindLoad
	kindStore
	kindTransfer
	kindALUBinary
	kindALUUnaryMem
	kindALUUnaryAcc
	kindALUUnaryReg
	kindCompare
	kindBranch
	kindFlagSet
	kindFlagClear
	kindJump
	kindJumpIndirect
	kindBit
	kindPush
	kindPull
	kindStub
	kindHalt
)

// Controls is the bundle of signals the decoder produces for one
// opcode (§3's OpcodeDescriptor, §4.3). It is immutable and derived
// purely from the opcode byte.
type Controls struct {
	Mode     AddressingMode
	Kind     instrKind
	Op       ALUOp
	SrcReg   Reg
	DstReg   Reg
	SetFlags bool
	Flag     Flag // for FlagSet/FlagClear/Branch
	BranchOn bool // Branch: take the branch when Flag is set (true) or clear (false)
}

// ALUEnabled reports whether this opcode routes through the ALU and
// therefore spends a WAIT_ALU cycle before write-back (§4.5).
func (c Controls) ALUEnabled() bool {
	switch c.Kind {
	case kindLoad, kindTransfer, kindALUBinary, kindALUUnaryMem,
		kindALUUnaryAcc, kindALUUnaryReg, kindCompare:
		return true
	default:
		return false
	}
}

var decodeTable [256]Controls

func init() {
	for i := range decodeTable {
		decodeTable[i] = Controls{Mode: ModeImplied, Kind: kindNOP}
	}

	loads(0xA9, 0xA5, 0xB5, 0xAD, 0xBD, 0xB9, 0xA1, 0xB1, RegA)
	loads(0xA2, 0xA6, 0, 0xAE, 0, 0xBE, 0, 0, RegX) // LDX has no zpx/izx/izy; zpy via separate call below
	decodeTable[0xB6] = Controls{Mode: ModeZeroPageY, Kind: kindLoad, Op: OpMOV, DstReg: RegX, SetFlags: true}
	loads(0xA0, 0xA4, 0xB4, 0xAC, 0xBC, 0, 0, 0, RegY)

	stores(0x85, 0x95, 0x8D, 0x9D, 0x99, 0x81, 0x91, RegA)
	decodeTable[0x86] = Controls{Mode: ModeZeroPage, Kind: kindStore, SrcReg: RegX}
	decodeTable[0x96] = Controls{Mode: ModeZeroPageY, Kind: kindStore, SrcReg: RegX}
	decodeTable[0x8E] = Controls{Mode: ModeAbsolute, Kind: kindStore, SrcReg: RegX}
	decodeTable[0x84] = Controls{Mode: ModeZeroPage, Kind: kindStore, SrcReg: RegY}
	decodeTable[0x94] = Controls{Mode: ModeZeroPageX, Kind: kindStore, SrcReg: RegY}
	decodeTable[0x8C] = Controls{Mode: ModeAbsolute, Kind: kindStore, SrcReg: RegY}

	transfer(0xAA, RegA, RegX, true)
	transfer(0xA8, RegA, RegY, true)
	transfer(0x8A, RegX, RegA, true)
	transfer(0x98, RegY, RegA, true)
	transfer(0xBA, RegS, RegX, true)
	transfer(0x9A, RegX, RegS, false)

	aluBinary(OpADC, 0x69, 0x65, 0x75, 0x6D, 0x7D, 0x79, 0x61, 0x71)
	aluBinary(OpSBC, 0xE9, 0xE5, 0xF5, 0xED, 0xFD, 0xF9, 0xE1, 0xF1)
	aluBinary(OpAND, 0x29, 0x25, 0x35, 0x2D, 0x3D, 0x39, 0x21, 0x31)
	aluBinary(OpORA, 0x09, 0x05, 0x15, 0x0D, 0x1D, 0x19, 0x01, 0x11)
	aluBinary(OpEOR, 0x49, 0x45, 0x55, 0x4D, 0x5D, 0x59, 0x41, 0x51)

	compare(OpCMP, RegA, 0xC9, 0xC5, 0xD5, 0xCD, 0xDD, 0xD9, 0xC1, 0xD1)
	decodeTable[0xE0] = cmpEntry(OpCPX, RegX, ModeImmediate)
	decodeTable[0xE4] = cmpEntry(OpCPX, RegX, ModeZeroPage)
	decodeTable[0xEC] = cmpEntry(OpCPX, RegX, ModeAbsolute)
	decodeTable[0xC0] = cmpEntry(OpCPY, RegY, ModeImmediate)
	decodeTable[0xC4] = cmpEntry(OpCPY, RegY, ModeZeroPage)
	decodeTable[0xCC] = cmpEntry(OpCPY, RegY, ModeAbsolute)

	unaryMem(OpINC, 0xE6, 0xF6, 0xEE, 0xFE)
	unaryMem(OpDEC, 0xC6, 0xD6, 0xCE, 0xDE)
	unaryMem(OpASL, 0x06, 0x16, 0x0E, 0x1E)
	unaryMem(OpLSR, 0x46, 0x56, 0x4E, 0x5E)
	unaryMem(OpROL, 0x26, 0x36, 0x2E, 0x3E)
	unaryMem(OpROR, 0x66, 0x76, 0x6E, 0x7E)

	decodeTable[0x0A] = unaryAccEntry(OpASL)
	decodeTable[0x4A] = unaryAccEntry(OpLSR)
	decodeTable[0x2A] = unaryAccEntry(OpROL)
	decodeTable[0x6A] = unaryAccEntry(OpROR)

	unaryReg(OpINC, 0xE8, RegX)
	unaryReg(OpINC, 0xC8, RegY)
	unaryReg(OpDEC, 0xCA, RegX)
	unaryReg(OpDEC, 0x88, RegY)

	decodeTable[0x24] = Controls{Mode: ModeZeroPage, Kind: kindBit, Op: OpAND, SrcReg: RegA, SetFlags: true}
	decodeTable[0x2C] = Controls{Mode: ModeAbsolute, Kind: kindBit, Op: OpAND, SrcReg: RegA, SetFlags: true}

	decodeTable[0x4C] = Controls{Mode: ModeAbsolute, Kind: kindJump}
	decodeTable[0x6C] = Controls{Mode: ModeAbsolute, Kind: kindJumpIndirect}

	decodeTable[0x20] = Controls{Mode: ModeAbsolute, Kind: kindStub}
	decodeTable[0x60] = Controls{Mode: ModeImplied, Kind: kindStub}
	decodeTable[0x40] = Controls{Mode: ModeImplied, Kind: kindStub}

	decodeTable[0x00] = Controls{Mode: ModeImplied, Kind: kindHalt}
	decodeTable[0xEA] = Controls{Mode: ModeImplied, Kind: kindNOP}

	decodeTable[0x48] = Controls{Mode: ModeImplied, Kind: kindPush, SrcReg: RegA}
	decodeTable[0x08] = Controls{Mode: ModeImplied, Kind: kindPush, SrcReg: RegP}
	decodeTable[0x68] = Controls{Mode: ModeImplied, Kind: kindPull, DstReg: RegA, SetFlags: true}
	decodeTable[0x28] = Controls{Mode: ModeImplied, Kind: kindPull, DstReg: RegP}

	flagOp(0x18, kindFlagClear, FlagC)
	flagOp(0x38, kindFlagSet, FlagC)
	flagOp(0x58, kindFlagClear, FlagI)
	flagOp(0x78, kindFlagSet, FlagI)
	flagOp(0xB8, kindFlagClear, FlagV)
	flagOp(0xD8, kindFlagClear, FlagD)
	flagOp(0xF8, kindFlagSet, FlagD)

	branch(0x10, FlagN, false) // BPL
	branch(0x30, FlagN, true)  // BMI
	branch(0x50, FlagV, false) // BVC
	branch(0x70, FlagV, true)  // BVS
	branch(0x90, FlagC, false) // BCC
	branch(0xB0, FlagC, true)  // BCS
	branch(0xD0, FlagZ, false) // BNE
	branch(0xF0, FlagZ, true)  // BEQ
}

func loads(imm, zp, zpx, abs, absx, absy, izx, izy byte, dst Reg) {
	set := func(op byte, mode AddressingMode) {
		if op == 0 && mode != ModeImmediate {
			return
		}
		decodeTable[op] = Controls{Mode: mode, Kind: kindLoad, Op: OpMOV, DstReg: dst, SetFlags: true}
	}
	set(imm, ModeImmediate)
	set(zp, ModeZeroPage)
	set(zpx, ModeZeroPageX)
	set(abs, ModeAbsolute)
	set(absx, ModeAbsoluteX)
	set(absy, ModeAbsoluteY)
	set(izx, ModeIndirectX)
	set(izy, ModeIndirectY)
}

func stores(zp, zpx, abs, absx, absy, izx, izy byte, src Reg) {
	decodeTable[zp] = Controls{Mode: ModeZeroPage, Kind: kindStore, SrcReg: src}
	decodeTable[zpx] = Controls{Mode: ModeZeroPageX, Kind: kindStore, SrcReg: src}
	decodeTable[abs] = Controls{Mode: ModeAbsolute, Kind: kindStore, SrcReg: src}
	decodeTable[absx] = Controls{Mode: ModeAbsoluteX, Kind: kindStore, SrcReg: src}
	decodeTable[absy] = Controls{Mode: ModeAbsoluteY, Kind: kindStore, SrcReg: src}
	decodeTable[izx] = Controls{Mode: ModeIndirectX, Kind: kindStore, SrcReg: src}
	decodeTable[izy] = Controls{Mode: ModeIndirectY, Kind: kindStore, SrcReg: src}
}

func transfer(op byte, src, dst Reg, setFlags bool) {
	decodeTable[op] = Controls{Mode: ModeImplied, Kind: kindTransfer, Op: OpMOV, SrcReg: src, DstReg: dst, SetFlags: setFlags}
}

func aluBinary(op ALUOp, imm, zp, zpx, abs, absx, absy, izx, izy byte) {
	set := func(opcode byte, mode AddressingMode) {
		decodeTable[opcode] = Controls{Mode: mode, Kind: kindALUBinary, Op: op, DstReg: RegA, SetFlags: true}
	}
	set(imm, ModeImmediate)
	set(zp, ModeZeroPage)
	set(zpx, ModeZeroPageX)
	set(abs, ModeAbsolute)
	set(absx, ModeAbsoluteX)
	set(absy, ModeAbsoluteY)
	set(izx, ModeIndirectX)
	set(izy, ModeIndirectY)
}

func compare(op ALUOp, reg Reg, imm, zp, zpx, abs, absx, absy, izx, izy byte) {
	set := func(opcode byte, mode AddressingMode) {
		decodeTable[opcode] = Controls{Mode: mode, Kind: kindCompare, Op: op, SrcReg: reg, SetFlags: true}
	}
	set(imm, ModeImmediate)
	set(zp, ModeZeroPage)
	set(zpx, ModeZeroPageX)
	set(abs, ModeAbsolute)
	set(absx, ModeAbsoluteX)
	set(absy, ModeAbsoluteY)
	set(izx, ModeIndirectX)
	set(izy, ModeIndirectY)
}

func cmpEntry(op ALUOp, reg Reg, mode AddressingMode) Controls {
	return Controls{Mode: mode, Kind: kindCompare, Op: op, SrcReg: reg, SetFlags: true}
}

func unaryMem(op ALUOp, zp, zpx, abs, absx byte) {
	decodeTable[zp] = Controls{Mode: ModeZeroPage, Kind: kindALUUnaryMem, Op: op, SetFlags: true}
	decodeTable[zpx] = Controls{Mode: ModeZeroPageX, Kind: kindALUUnaryMem, Op: op, SetFlags: true}
	decodeTable[abs] = Controls{Mode: ModeAbsolute, Kind: kindALUUnaryMem, Op: op, SetFlags: true}
	decodeTable[absx] = Controls{Mode: ModeAbsoluteX, Kind: kindALUUnaryMem, Op: op, SetFlags: true}
}

func unaryAccEntry(op ALUOp) Controls {
	return Controls{Mode: ModeImplied, Kind: kindALUUnaryAcc, Op: op, SrcReg: RegA, DstReg: RegA, SetFlags: true}
}

func unaryReg(op ALUOp, opcode byte, reg Reg) {
	decodeTable[opcode] = Controls{Mode: ModeImplied, Kind: kindALUUnaryReg, Op: op, SrcReg: reg, DstReg: reg, SetFlags: true}
}

func flagOp(opcode byte, kind instrKind, flag Flag) {
	decodeTable[opcode] = Controls{Mode: ModeImplied, Kind: kind, Flag: flag}
}

func branch(opcode byte, flag Flag, branchOn bool) {
	decodeTable[opcode] = Controls{Mode: ModeRelative, Kind: kindBranch, Flag: flag, BranchOn: branchOn}
}

// Decode returns the control bundle for opcode. Every opcode in the
// documented base ISA is covered by init(); anything else decodes to
// the same record as NOP (§4.3, §7 — undocumented opcode is never
// fatal).
func Decode(opcode byte) Controls {
	return decodeTable[opcode]
}
