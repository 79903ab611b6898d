package cpu

import "github.com/pkg/errors"

// ErrUnknownOpcode is returned by Step (and therefore Run) when the byte
// at PC has no entry in the opcode table. Execution halts; the caller
// should treat this as a fatal condition.
var ErrUnknownOpcode = errors.New("unknown opcode")
