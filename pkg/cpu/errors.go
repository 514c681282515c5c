package cpu

import (
	"errors"
	"fmt"
)

// ErrIllegalOpcode is returned by Step when the fetched byte is not in
// the opcode table.
var ErrIllegalOpcode = errors.New("illegal opcode")

// ErrUnimplementedInstruction is returned by Step when a decoded
// mnemonic has no execution handler. It should be unreachable for any
// mnemonic present in the opcode table; its presence here guards
// against the table and the dispatcher drifting apart.
var ErrUnimplementedInstruction = errors.New("unimplemented instruction")

func illegalOpcode(opcode uint8) error {
	return fmt.Errorf("%w: $%02X", ErrIllegalOpcode, opcode)
}

func unimplementedInstruction(mnemonic string) error {
	return fmt.Errorf("%w: %s", ErrUnimplementedInstruction, mnemonic)
}
