// Package loader parses the program file format (§6) and populates a
// target address space with it before the first tick.
package loader

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-faster/errors"

	"mos6502/emu/log"
)

// Target receives the parsed byte stream. mem.Memory satisfies it.
type Target interface {
	LoadAt(addr uint16, data []byte)
}

const maxSize = 0x10000

// LoadFile opens path and loads it into target. An unreadable file is
// reported and returned as an error; the caller is expected to treat
// it as non-fatal and proceed with target left zero-initialized (§7).
func LoadFile(path string, target Target) error {
	f, err := os.Open(path)
	if err != nil {
		log.ModLoader.WithField("path", path).Warnf("cannot read program file: %v", err)
		return errors.Wrap(err, "open program file")
	}
	defer f.Close()
	return Load(f, target)
}

// Load parses r per §6 and writes the resulting bytes to target
// starting at address 0x0000. Malformed tokens are reported and
// skipped; parsing continues with the rest of the file (§7).
func Load(r io.Reader, target Target) error {
	var data []byte

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		for _, tok := range strings.Fields(line) {
			b, err := parseByte(tok)
			if err != nil {
				log.ModLoader.WithField("line", lineNo).Warnf("skipping malformed token %q: %v", tok, err)
				continue
			}
			if len(data) < maxSize {
				data = append(data, b)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read program file")
	}

	target.LoadAt(0, data)
	return nil
}

func parseByte(tok string) (byte, error) {
	s := strings.TrimPrefix(strings.TrimPrefix(tok, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, errors.Wrapf(err, "token %q is not a hex byte", tok)
	}
	return byte(v), nil
}
