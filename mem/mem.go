// Package mem implements the core's 64 KiB address space, including the
// four memory-mapped I/O ports that format and forward writes to a sink
// instead of retaining a byte.
package mem

import (
	"mos6502/emu/log"
)

// Sink receives one formatted record per write to an I/O port.
type Sink interface {
	Write(record string)
}

// Port addresses that are interpreted rather than stored (§6).
const (
	PortDecimal   = 0xFF00
	PortHex       = 0xFF01
	PortCharacter = 0xFF02
	PortBinary    = 0xFF03
)

// Memory is the flat 64 KiB byte array the Sequencer reads and writes.
// Writes to the four I/O ports are observed only as a record pushed to
// Sink; the backing array is never updated at those addresses, so a read
// from a port address returns whatever was last written there directly
// (zero, unless something other than a port write touched it).
type Memory struct {
	bytes [65536]byte
	sink  Sink
}

// New creates a zero-filled Memory. A nil sink silently drops port writes.
func New(sink Sink) *Memory {
	return &Memory{sink: sink}
}

// SetSink replaces the I/O sink after construction.
func (m *Memory) SetSink(sink Sink) {
	m.sink = sink
}

// Read returns the byte at addr. No read side effects exist in this core.
func (m *Memory) Read(addr uint16) byte {
	return m.bytes[addr]
}

// Write stores d at addr, unless addr is one of the four I/O ports, in
// which case d is formatted and pushed to the sink instead.
func (m *Memory) Write(addr uint16, d byte) {
	if record, ok := formatPort(addr, d); ok {
		log.ModSink.WithField("addr", addr).Debugf("port write: %s", record)
		if m.sink != nil {
			m.sink.Write(record)
		}
		return
	}
	m.bytes[addr] = d
}

// LoadAt copies data into the backing array starting at addr, used by the
// loader to pre-populate memory before the first tick. Bytes that would
// land beyond 0xFFFF are dropped.
func (m *Memory) LoadAt(addr uint16, data []byte) {
	for _, b := range data {
		m.bytes[addr] = b
		if addr == 0xFFFF {
			return
		}
		addr++
	}
}

func formatPort(addr uint16, d byte) (string, bool) {
	switch addr {
	case PortDecimal:
		return formatDecimal(d), true
	case PortHex:
		return formatHex(d), true
	case PortCharacter:
		return string([]byte{d}), true
	case PortBinary:
		return formatBinary(d), true
	default:
		return "", false
	}
}

func formatDecimal(d byte) string {
	if d == 0 {
		return "0"
	}
	var buf [3]byte
	i := len(buf)
	for d > 0 {
		i--
		buf[i] = '0' + d%10
		d /= 10
	}
	return string(buf[i:])
}

const hexDigits = "0123456789abcdef"

func formatHex(d byte) string {
	return string([]byte{'0', 'x', hexDigits[d>>4], hexDigits[d&0xF]})
}

func formatBinary(d byte) string {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		if d&(0x80>>uint(i)) != 0 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf[:])
}
