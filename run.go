package main

import (
	"fmt"
	"os"

	"mos6502/config"
	"mos6502/cpu"
	"mos6502/loader"
	"mos6502/mem"
)

// sink is the external textual sink the core's I/O ports write to
// (§6). It both echoes each record to out immediately and retains
// them for --dump-json.
type sink struct {
	out     *os.File
	records []string
}

func (s *sink) Write(record string) {
	s.records = append(s.records, record)
	fmt.Fprintln(s.out, record)
}

// runCommand drives the core: load the program, tick until halt or
// cycle-budget exhaustion, then dump the final state (§6, §7).
func runCommand(run Run) {
	cfg, _ := config.Load(run.Config)

	path := resolveProgramPath(run, cfg)

	budget := cfg.CycleBudget
	if run.Cycles > 0 {
		budget = run.Cycles
	}

	sk := &sink{out: os.Stdout}
	bus := mem.New(sk)

	if path != "" {
		if err := loader.LoadFile(path, bus); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v (continuing with zero-initialized memory)\n", err)
		}
	}

	regs := cpu.New()
	seq := cpu.NewSequencer(regs, bus)

	ticks := 0
	for ticks < budget && !seq.Halted {
		seq.Tick()
		ticks++
	}

	if run.DumpJSON {
		dumpJSON(os.Stdout, regs, seq, sk, ticks)
	} else {
		dumpPlain(os.Stdout, regs, seq, ticks)
	}
}
