// Command mos6502 drives the cycle-ticked MOS 6502 core against a
// program file, emitting I/O port writes and a final register dump.
package main

import (
	"fmt"
	"os"
)

const buildVersion = "mos6502 0.1.0"

func main() {
	cli := parseArgs(os.Args[1:])

	switch cli.mode {
	case versionMode:
		fmt.Println(buildVersion)
	default:
		runCommand(cli.Run)
	}
}
