package cpu

import "mos6502/emu/log"

// Bus is the memory surface the Sequencer drives. mem.Memory satisfies
// it; the interface exists so cpu does not import mem directly,
// keeping the dependency graph leaves-first per the system overview.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, d byte)
}

// Sequencer is the per-tick fetch/decode/execute state machine (§4.5).
// It is the only component that mutates RegisterFile and Bus; ALU and
// ControlDecoder are pure functions it calls along the way.
type Sequencer struct {
	Regs *RegisterFile
	Bus  Bus

	state SequencerState
	pc    uint16
	ir    byte
	ctrl  Controls

	operand   byte
	ea        uint16
	addrLow   byte
	ptrLow    byte
	assertAt  uint16
	instrLen  int
	aluResult Result

	// shadowA tracks A in lockstep with every write to it, and is fed
	// to the ALU as the "a" input for accumulator-based operations in
	// place of Regs.A (§4.5's shadow accumulator).
	shadowA byte

	Halted     bool
	HaltReason string
}

// NewSequencer returns a Sequencer wired to regs and bus, reset to its
// post-reset state (§5: PC=0x0000, IR=0x00, state=FETCH).
func NewSequencer(regs *RegisterFile, bus Bus) *Sequencer {
	s := &Sequencer{Regs: regs, Bus: bus}
	s.Reset()
	return s
}

// Reset returns the Sequencer to FETCH with PC=0x0000 (§5, §9 — this
// core fixes PC rather than reading the $FFFC reset vector).
func (s *Sequencer) Reset() {
	s.state = StateFetch
	s.pc = 0x0000
	s.ir = 0x00
	s.Halted = false
	s.HaltReason = ""
	s.shadowA = s.Regs.A
}

// PC reports the current program counter, for drivers and tests.
func (s *Sequencer) PC() uint16 { return s.pc }

// State reports the current sequencer state, for drivers and tests.
func (s *Sequencer) State() SequencerState { return s.state }

// Tick advances the state machine by one clock edge (§4.5). It is a
// no-op once Halted is true; the driver is expected to stop calling
// Tick at that point, but a stray call cannot corrupt state.
func (s *Sequencer) Tick() {
	if s.Halted {
		return
	}

	switch s.state {
	case StateFetch:
		s.assertAt = s.pc
		s.state = StateWaitInstruction

	case StateWaitInstruction:
		s.state = StateDecode

	case StateDecode:
		s.ir = s.Bus.Read(s.assertAt)
		s.ctrl = Decode(s.ir)
		s.instrLen = s.ctrl.Mode.Length()
		log.ModCPU.HexField("pc", uint64(s.pc), 2).HexField("ir", uint64(s.ir), 1).Debugf("decode")
		switch s.ctrl.Mode {
		case ModeImplied:
			s.state = StateExecute
		case ModeImmediate, ModeRelative:
			s.assertAt = s.pc + 1
			s.state = StateWaitOperand
		default:
			s.assertAt = s.pc + 1
			s.state = StateFetchAddrLow
		}

	case StateWaitOperand:
		s.operand = s.Bus.Read(s.assertAt)
		s.state = StateExecute

	case StateFetchAddrLow:
		s.state = StateProcessAddrLow

	case StateProcessAddrLow:
		s.addrLow = s.Bus.Read(s.assertAt)
		switch s.ctrl.Mode {
		case ModeAbsolute, ModeAbsoluteX, ModeAbsoluteY:
			s.assertAt = s.pc + 2
			s.state = StateFetchAddrHigh
		case ModeZeroPage:
			s.ea = uint16(s.addrLow)
			s.assertAt = s.ea
			s.state = StateWaitOperand
		case ModeZeroPageX:
			s.ea = uint16(s.addrLow + s.Regs.X)
			s.assertAt = s.ea
			s.state = StateWaitOperand
		case ModeZeroPageY:
			s.ea = uint16(s.addrLow + s.Regs.Y)
			s.assertAt = s.ea
			s.state = StateWaitOperand
		case ModeIndirectX:
			s.ea = uint16(s.addrLow + s.Regs.X)
			s.assertAt = s.ea
			s.state = StateFetchAddrHigh
		case ModeIndirectY:
			s.ea = uint16(s.addrLow)
			s.assertAt = s.ea
			s.state = StateFetchAddrHigh
		default:
			panic("cpu: unreachable addressing mode in PROCESS_ADDR_LOW")
		}

	case StateFetchAddrHigh:
		s.state = StateProcessAddrHigh

	case StateProcessAddrHigh:
		switch s.ctrl.Mode {
		case ModeAbsolute, ModeAbsoluteX, ModeAbsoluteY:
			high := s.Bus.Read(s.assertAt)
			base := uint16(s.addrLow) | uint16(high)<<8
			switch s.ctrl.Mode {
			case ModeAbsoluteX:
				base += uint16(s.Regs.X)
			case ModeAbsoluteY:
				base += uint16(s.Regs.Y)
			}
			s.ea = base
			s.assertAt = s.ea
			s.state = StateWaitOperand
		case ModeIndirectX:
			s.ptrLow = s.Bus.Read(s.assertAt)
			s.assertAt = (s.ea + 1) & 0x00FF
			s.state = StateFetchIndirectHigh
		case ModeIndirectY:
			s.ptrLow = s.Bus.Read(s.assertAt)
			s.assertAt = (s.ea + 1) & 0x00FF
			s.state = StateFetchIndirectHigh
		default:
			panic("cpu: unreachable addressing mode in PROCESS_ADDR_HIGH")
		}

	case StateFetchIndirectHigh:
		s.state = StateProcessIndirectHigh

	case StateProcessIndirectHigh:
		ptrHigh := s.Bus.Read(s.assertAt)
		pointer := uint16(s.ptrLow) | uint16(ptrHigh)<<8
		if s.ctrl.Mode == ModeIndirectY {
			pointer += uint16(s.Regs.Y)
		}
		s.ea = pointer
		s.assertAt = s.ea
		s.state = StateWaitOperand

	case StateExecute:
		s.execute()

	case StateWaitALU:
		s.finishALU()

	default:
		panic("cpu: invalid sequencer state")
	}
}

// execute implements the EXECUTE cycle of §4.5: using the operand
// already latched in WAIT_OPERAND, either enter WAIT_ALU or finish a
// non-ALU opcode directly, then advance the program counter per
// pc_inc/pc_load.
func (s *Sequencer) execute() {
	c := s.ctrl

	if c.ALUEnabled() {
		a, b, carryIn := s.aluInputs(c)
		s.aluResult = Compute(a, b, carryIn, c.Op)
		s.state = StateWaitALU
		return
	}

	switch c.Kind {
	case kindNOP:
		// no effect
	case kindStore:
		s.Bus.Write(s.ea, s.Regs.Read(c.SrcReg))
	case kindBit:
		a := s.Regs.Read(RegA)
		s.Regs.ApplyFlag(FlagZ, a&s.operand == 0)
		s.Regs.ApplyFlag(FlagN, s.operand&0x80 != 0)
		s.Regs.ApplyFlag(FlagV, s.operand&0x40 != 0)
	case kindBranch:
		s.advancePC()
		if s.Regs.Flag(c.Flag) == c.BranchOn {
			offset := int8(s.operand)
			s.pc = uint16(int32(s.pc) + int32(offset))
		}
		s.state = StateFetch
		return
	case kindFlagSet:
		s.Regs.SetFlag(c.Flag)
	case kindFlagClear:
		s.Regs.ClearFlag(c.Flag)
	case kindJump:
		s.pc = s.ea
		s.state = StateFetch
		return
	case kindJumpIndirect:
		ptr := s.ea
		lo := s.Bus.Read(ptr)
		hiAddr := (ptr & 0xFF00) | ((ptr + 1) & 0x00FF)
		hi := s.Bus.Read(hiAddr)
		s.pc = uint16(lo) | uint16(hi)<<8
		s.state = StateFetch
		return
	case kindStub:
		log.ModCPU.HexField("pc", uint64(s.pc), 2).Debugf("stubbed control-flow opcode %#02x", s.ir)
	case kindPush:
		s.Bus.Write(0x0100+uint16(s.Regs.S), s.Regs.Read(c.SrcReg))
		s.Regs.S--
	case kindPull:
		s.Regs.S++
		data := s.Bus.Read(0x0100 + uint16(s.Regs.S))
		s.Regs.Write(c.DstReg, data, c.SetFlags, data == 0, data&0x80 != 0)
		if c.DstReg == RegA {
			s.shadowA = data
		}
	case kindHalt:
		s.Halted = true
		s.HaltReason = "BRK"
		return
	default:
		panic("cpu: unreachable instruction kind in EXECUTE")
	}

	s.advancePC()
	s.state = StateFetch
}

// finishALU implements the WAIT_ALU cycle of §4.5: write the deferred
// result back to its destination (a register, or memory for
// read-modify-write opcodes), update flags, advance PC.
func (s *Sequencer) finishALU() {
	c := s.ctrl
	r := s.aluResult

	switch c.Kind {
	case kindALUUnaryMem:
		s.Bus.Write(s.ea, r.Value)
		if c.SetFlags {
			s.Regs.ApplyFlag(FlagZ, r.Zero)
			s.Regs.ApplyFlag(FlagN, r.Negative)
			if c.Op.UpdatesCarry() {
				s.Regs.ApplyFlag(FlagC, r.Carry)
			}
		}
	case kindCompare:
		if c.SetFlags {
			s.Regs.ApplyFlag(FlagZ, r.Zero)
			s.Regs.ApplyFlag(FlagN, r.Negative)
			if c.Op.UpdatesCarry() {
				s.Regs.ApplyFlag(FlagC, r.Carry)
			}
		}
	default: // kindLoad, kindTransfer, kindALUBinary, kindALUUnaryAcc, kindALUUnaryReg
		s.Regs.Write(c.DstReg, r.Value, c.SetFlags, r.Zero, r.Negative)
		if c.SetFlags {
			if c.Op.UpdatesCarry() {
				s.Regs.ApplyFlag(FlagC, r.Carry)
			}
			if c.Op.UpdatesOverflow() {
				s.Regs.ApplyFlag(FlagV, r.Overflow)
			}
		}
		if c.DstReg == RegA {
			s.shadowA = r.Value
		}
	}

	s.advancePC()
	s.state = StateFetch
}

func (s *Sequencer) aluInputs(c Controls) (a, b byte, carryIn bool) {
	switch c.Kind {
	case kindLoad:
		return s.operand, 0, false
	case kindTransfer:
		if c.SrcReg == RegA {
			return s.shadowA, 0, false
		}
		return s.Regs.Read(c.SrcReg), 0, false
	case kindALUBinary:
		return s.shadowA, s.operand, s.Regs.C()
	case kindALUUnaryMem:
		return s.operand, 0, s.Regs.C()
	case kindALUUnaryAcc:
		return s.shadowA, 0, s.Regs.C()
	case kindALUUnaryReg:
		return s.Regs.Read(c.SrcReg), 0, s.Regs.C()
	case kindCompare:
		var reg byte
		if c.SrcReg == RegA {
			reg = s.shadowA
		} else {
			reg = s.Regs.Read(c.SrcReg)
		}
		return reg, s.operand, true
	default:
		panic("cpu: unreachable instruction kind for ALU input selection")
	}
}

func (s *Sequencer) advancePC() {
	s.pc += uint16(s.instrLen)
}
