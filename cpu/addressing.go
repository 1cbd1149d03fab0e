package cpu

// AddressingMode names how the Sequencer computes an instruction's
// effective address and operand (§4.4). ModeRelative backs the eight
// conditional branches; it sits outside the ten addressing modes the
// spec enumerates because branches compute a PC-relative target
// rather than an EA fed to a load/store.
type AddressingMode uint8

const (
	ModeImplied AddressingMode = iota
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirectX
	ModeIndirectY
	ModeRelative
)

// Length is the number of instruction bytes (including the opcode)
// this addressing mode consumes.
func (m AddressingMode) Length() int {
	switch m {
	case ModeImplied:
		return 1
	case ModeImmediate, ModeZeroPage, ModeZeroPageX, ModeZeroPageY,
		ModeIndirectX, ModeIndirectY, ModeRelative:
		return 2
	case ModeAbsolute, ModeAbsoluteX, ModeAbsoluteY:
		return 3
	default:
		panic("cpu: invalid addressing mode")
	}
}
