package main

import (
	"fmt"
	"io"

	"github.com/go-faster/jx"

	"mos6502/cpu"
)

// dumpPlain writes the final-state register dump required by §7's
// "clean termination, final register dump emitted to the sink".
func dumpPlain(w io.Writer, regs *cpu.RegisterFile, seq *cpu.Sequencer, ticks int) {
	fmt.Fprintf(w, "PC=%04X A=%02X X=%02X Y=%02X S=%02X P=%02X ticks=%d halted=%v",
		seq.PC(), regs.A, regs.X, regs.Y, regs.S, regs.Read(cpu.RegP), ticks, seq.Halted)
	if seq.Halted {
		fmt.Fprintf(w, " reason=%s", seq.HaltReason)
	}
	fmt.Fprintln(w)
}

// dumpJSON is the --dump-json component (SPEC_FULL.md §11): the same
// final-state dump as dumpPlain, plus the full capture of sink
// records, encoded with jx.Writer rather than encoding/json.
func dumpJSON(w io.Writer, regs *cpu.RegisterFile, seq *cpu.Sequencer, sk *sink, ticks int) {
	var e jx.Writer

	e.ObjStart()

	e.FieldStart("registers")
	e.ObjStart()
	e.FieldStart("a")
	e.UInt32(uint32(regs.A))
	e.FieldStart("x")
	e.UInt32(uint32(regs.X))
	e.FieldStart("y")
	e.UInt32(uint32(regs.Y))
	e.FieldStart("s")
	e.UInt32(uint32(regs.S))
	e.FieldStart("p")
	e.UInt32(uint32(regs.Read(cpu.RegP)))
	e.ObjEnd()

	e.FieldStart("flags")
	e.ObjStart()
	e.FieldStart("c")
	e.Bool(regs.C())
	e.FieldStart("z")
	e.Bool(regs.Z())
	e.FieldStart("i")
	e.Bool(regs.I())
	e.FieldStart("d")
	e.Bool(regs.D())
	e.FieldStart("v")
	e.Bool(regs.V())
	e.FieldStart("n")
	e.Bool(regs.N())
	e.ObjEnd()

	e.FieldStart("pc")
	e.UInt32(uint32(seq.PC()))

	e.FieldStart("ticks")
	e.Int(ticks)

	e.FieldStart("halted")
	e.Bool(seq.Halted)

	e.FieldStart("halt_reason")
	e.Str(seq.HaltReason)

	e.FieldStart("sink_records")
	e.ArrStart()
	for _, r := range sk.records {
		e.Str(r)
	}
	e.ArrEnd()

	e.ObjEnd()

	w.Write(e.Buf)
	fmt.Fprintln(w)
}
