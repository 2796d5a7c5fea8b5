package protocol

import (
	"errors"
	"strconv"
	"strings"
)

// CommandPrefix starts every command line.
const CommandPrefix = "CMD:"

var (
	// ErrInvalidFormat indicates the line doesn't match the command grammar.
	ErrInvalidFormat = errors.New("invalid format")
)

// IsCommand reports whether the line carries the command prefix.
func IsCommand(line string) bool {
	return strings.HasPrefix(line, CommandPrefix)
}

// ParseCommand parses one trimmed CMD line into a Packet.
// The grammar is CMD:<type>:<engine>:<value> with exactly three
// colon-delimited non-negative integer fields after the prefix.
// Parsing never mutates any state; a malformed line yields
// ErrInvalidFormat and no packet.
func ParseCommand(line string) (Packet, error) {
	if !IsCommand(line) {
		return Packet{}, ErrInvalidFormat
	}
	fields := strings.Split(line[len(CommandPrefix):], ":")
	if len(fields) != 3 {
		return Packet{}, ErrInvalidFormat
	}
	typ, err := parseField(fields[0], 8)
	if err != nil {
		return Packet{}, err
	}
	engine, err := parseField(fields[1], 16)
	if err != nil {
		return Packet{}, err
	}
	value, err := parseField(fields[2], 16)
	if err != nil {
		return Packet{}, err
	}
	return Packet{
		Type:   Type(typ),
		Engine: int(engine),
		Value:  uint16(value),
	}, nil
}

// parseField parses a non-negative decimal integer. ParseUint rejects
// signs, decimals and empty fields, which is exactly the grammar.
func parseField(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, ErrInvalidFormat
	}
	return v, nil
}
