package brainfuck

import (
	"fmt"
)

// The OPs for Brainfuck. The canonical language is eight single-character
// instructions; everything else in a source text is a comment. The symbol
// bound to each OP is configurable (see InterpreterConfig), so the OPs
// themselves carry no symbol. Loop OPs keep their while-flavored names:
// OP_WHILE skips past its matching OP_WHILE_END when the current cell is
// zero, and OP_WHILE_END falls back to re-test the loop when it isn't.

type Instruction byte

const (
	OP_POINTER_INC Instruction = iota
	OP_POINTER_DEC
	OP_BYTE_INC
	OP_BYTE_DEC
	OP_OUTPUT
	OP_INPUT
	OP_WHILE
	OP_WHILE_END
)

var OP_SET [8]Instruction = [...]Instruction{
	OP_POINTER_INC,
	OP_POINTER_DEC,
	OP_BYTE_INC,
	OP_BYTE_DEC,
	OP_OUTPUT,
	OP_INPUT,
	OP_WHILE,
	OP_WHILE_END,
}

var opNames = map[Instruction]string{
	OP_POINTER_INC: "pointer_inc",
	OP_POINTER_DEC: "pointer_dec",
	OP_BYTE_INC:    "byte_inc",
	OP_BYTE_DEC:    "byte_dec",
	OP_OUTPUT:      "output",
	OP_INPUT:       "input",
	OP_WHILE:       "while",
	OP_WHILE_END:   "while_end",
}

func (i Instruction) String() string {
	if name, ok := opNames[i]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", byte(i))
}

// ParseInstruction maps an OP name (as written in a TOML custom_instructions
// table) back to its Instruction. Unknown names are a config fault.
func ParseInstruction(name string) (Instruction, error) {
	for op, known := range opNames {
		if name == known {
			return op, nil
		}
	}
	return 0, &ConfigError{Reason: fmt.Sprintf("Unknown instruction name [%s]", name)}
}

// A SymbolTable binds single source characters to OPs. Any character not
// present in the table is a comment and gets dropped when a Tape is built.
type SymbolTable map[rune]Instruction

// DefaultSymbols is the canonical Brainfuck binding. A custom table from
// config REPLACES this one entirely; there is no merging, so a custom table
// that omits an OP simply has no symbol for it.
func DefaultSymbols() SymbolTable {
	return SymbolTable{
		'>': OP_POINTER_INC,
		'<': OP_POINTER_DEC,
		'+': OP_BYTE_INC,
		'-': OP_BYTE_DEC,
		'.': OP_OUTPUT,
		',': OP_INPUT,
		'[': OP_WHILE,
		']': OP_WHILE_END,
	}
}
