package brainfuck

import (
	"fmt"
)

// InterpreterConfig is consumed once by NewInterpreter. The zero value is a
// usable default config: DEFAULT_TAPE_SIZE cells, no execution limit, the
// canonical symbol table.
//
// CustomInstructions maps a single-character symbol to an OP name
// ("pointer_inc", "pointer_dec", "byte_inc", "byte_dec", "output", "input",
// "while", "while_end"). When present it replaces the default table outright;
// any OP the table leaves out simply has no symbol, and its canonical
// character becomes a comment like any other unbound character. In TOML:
//
//	[interpreter]
//	tape_size = 30000
//	max_instructions = 0
//	[interpreter.custom_instructions]
//	"X" = "pointer_inc"
//	"Y" = "pointer_dec"
type InterpreterConfig struct {
	TapeSize           int               `toml:"tape_size"`
	MaxInstructions    uint              `toml:"max_instructions"`
	CustomInstructions map[string]string `toml:"custom_instructions"`
}

// ToolConfig is the aggregate config the cmd tools decode from TOML.
type ToolConfig struct {
	Interpreter *InterpreterConfig `toml:"interpreter"`
	Persistence *PersistenceConfig `toml:"persistence"`
}

func (c *InterpreterConfig) cellCount() (int, error) {
	if c.TapeSize == 0 {
		return DEFAULT_TAPE_SIZE, nil
	}
	if c.TapeSize < 0 {
		return 0, &ConfigError{Reason: fmt.Sprintf("tape_size [%d] must be a positive integer", c.TapeSize)}
	}
	return c.TapeSize, nil
}

func (c *InterpreterConfig) symbols() (SymbolTable, error) {
	if len(c.CustomInstructions) == 0 {
		return DefaultSymbols(), nil
	}

	table := make(SymbolTable, len(c.CustomInstructions))
	for symbol, name := range c.CustomInstructions {
		chars := []rune(symbol)
		if len(chars) != 1 {
			return nil, &ConfigError{Reason: fmt.Sprintf("Instruction symbol [%s] must be a single character", symbol)}
		}
		op, err := ParseInstruction(name)
		if err != nil {
			return nil, err
		}
		table[chars[0]] = op
	}
	return table, nil
}
