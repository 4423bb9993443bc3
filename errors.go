package brainfuck

import (
	"fmt"
)

var ErrMaxInstructionsReached error = fmt.Errorf("Instruction execution count limit reached")

// ConfigError reports an invalid InterpreterConfig at construction time.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("Invalid interpreter config. %s", e.Reason)
}

// UnmatchedBracketError reports a loop OP with no partner. Position indexes
// the filtered instruction sequence on the Tape, not the raw source text.
// Open is true when an OP_WHILE was never closed, false when an OP_WHILE_END
// had no OP_WHILE open.
type UnmatchedBracketError struct {
	Position int
	Open     bool
}

func (e *UnmatchedBracketError) Error() string {
	if e.Open {
		return fmt.Sprintf("Unmatched OP_WHILE at instruction index [%d]. No matching OP_WHILE_END before end of tape", e.Position)
	}
	return fmt.Sprintf("Unmatched OP_WHILE_END at instruction index [%d]. No OP_WHILE is open", e.Position)
}

// TapeOverflowError reports an OP_POINTER_INC that tried to move the data
// pointer to Index, one past the last cell.
type TapeOverflowError struct {
	Index     int
	CellCount int
}

func (e *TapeOverflowError) Error() string {
	return fmt.Sprintf("Failed to move data pointer right to [%d]. Out of bounds (Cell count: [%d])", e.Index, e.CellCount)
}

// TapeUnderflowError reports an OP_POINTER_DEC that tried to move the data
// pointer to Index, below cell zero.
type TapeUnderflowError struct {
	Index     int
	CellCount int
}

func (e *TapeUnderflowError) Error() string {
	return fmt.Sprintf("Failed to move data pointer left to [%d]. Out of bounds (Cell count: [%d])", e.Index, e.CellCount)
}
