package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"mos6502/config"
	"mos6502/emu/log"
)

type mode byte

const (
	runMode mode = iota
	versionMode
)

type CLI struct {
	Run     Run     `cmd:"" help:"Run a program file." default:"true"`
	Version Version `cmd:"" help:"Show build version."`

	Log logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`

	mode mode
}

type Run struct {
	ProgramPath string `arg:"" name:"/path/to/program" help:"${programpath_help}" optional:"true"`

	Config   string `name:"config" help:"Path to an optional TOML configuration file." default:"6502.toml"`
	Cycles   int    `name:"cycles" help:"Override the cycle budget." default:"0"`
	DumpJSON bool   `name:"dump-json" help:"Emit the final machine state as JSON instead of a plain register dump."`
}

type Version struct{}

var vars = kong.Vars{
	"programpath_help": "Path to the program file to load (§6 format). Falls back to the configured default when omitted.",
	"log_help":         "Enable logging for specified modules.",
}

func parseArgs(args []string) CLI {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("mos6502"),
		kong.Description("Cycle-driven MOS 6502 core emulator."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch ctx.Command() {
	case "version":
		cli.mode = versionMode
	default:
		cli.mode = runMode
	}
	return cli
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if strings.HasPrefix(ctx.Command(), "run") {
		loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s
  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
		var strs []string
		for _, m := range log.ModuleNames() {
			strs = append(strs, "    - "+m)
		}
		fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	}
	return nil
}

// logModMask implements kong.MapperValue, reusing the teacher's
// comma-separated "mod0,mod1,..." / "all" / "no" flag idiom verbatim.
type logModMask log.ModuleMask

func (lm logModMask) Decode(ctx *kong.DecodeContext) error {
	nolog := false
	allLogs := false

	tok := ctx.Scan.Pop()
	for _, v := range strings.Split(tok.Value.(string), ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			lm |= logModMask(mod.Mask())
		}
	}

	if nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if lm != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		log.Disable()
		return nil
	}

	if allLogs {
		lm = logModMask(log.ModuleMaskAll)
	}

	log.EnableDebugModules(log.ModuleMask(lm))
	return nil
}

func resolveProgramPath(run Run, cfg config.Config) string {
	if run.ProgramPath != "" {
		return run.ProgramPath
	}
	return cfg.ProgramPath
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "fatal error:\n\t%s: %s\n", fmt.Sprintf(format, args...), err)
	os.Exit(1)
}
