package brainfuck

import (
	"io"

	cp "github.com/jinzhu/copier"
)

// Interpreter is the execution engine: a Memory it owns for its whole life
// and a SymbolTable fixed at construction. Each Run call compiles a fresh
// Tape, but Memory and its data pointer deliberately carry over from one Run
// to the next, so a caller can feed a session program by program and have
// later programs see the state earlier ones left behind. Reset() is the way
// back to a blank machine.
//
// A fault aborts the current Run and leaves Memory exactly as the last
// successful instruction left it. The Interpreter stays usable; the caller
// decides whether the partial state is worth keeping.
type Interpreter struct {
	Config           *InterpreterConfig
	Symbols          SymbolTable
	Memory           *Memory
	InstructionCount uint
}

func NewInterpreter(config *InterpreterConfig) (*Interpreter, error) {
	if config == nil {
		config = &InterpreterConfig{}
	}

	cellCount, err := config.cellCount()
	if err != nil {
		return nil, err
	}

	symbols, err := config.symbols()
	if err != nil {
		return nil, err
	}

	return &Interpreter{
		Config:  config,
		Symbols: symbols,
		Memory:  NewMemory(cellCount),
	}, nil
}

// Run compiles source against the interpreter's symbol table and executes it,
// reading OP_INPUT bytes from input and writing OP_OUTPUT bytes to output.
// End of input is not a fault: the standard Brainfuck EOF convention applies
// and the current cell is set to zero. Any other stream error is returned to
// the caller unwrapped.
func (in *Interpreter) Run(source string, input io.Reader, output io.Writer) error {
	tape, err := NewTape(source, in.Symbols)
	if err != nil {
		return err
	}
	return in.execute(tape, input, output)
}

func (in *Interpreter) execute(tape *Tape, input io.Reader, output io.Writer) error {
	cursor := 0
	buf := make([]byte, 1)

	for cursor < len(tape.Instructions) {
		if in.Config.MaxInstructions > 0 && in.InstructionCount >= in.Config.MaxInstructions {
			return ErrMaxInstructionsReached
		}
		in.InstructionCount = in.InstructionCount + 1

		switch tape.Instructions[cursor] {
		case OP_POINTER_INC:
			if err := in.Memory.MovePointerRight(); err != nil {
				return err
			}
		case OP_POINTER_DEC:
			if err := in.Memory.MovePointerLeft(); err != nil {
				return err
			}
		case OP_BYTE_INC:
			in.Memory.Increment()
		case OP_BYTE_DEC:
			in.Memory.Decrement()
		case OP_OUTPUT:
			buf[0] = in.Memory.Current()
			if _, err := output.Write(buf); err != nil {
				return err
			}
		case OP_INPUT:
			if _, err := io.ReadFull(input, buf); err != nil {
				if err != io.EOF && err != io.ErrUnexpectedEOF {
					return err
				}
				in.Memory.Set(0)
			} else {
				in.Memory.Set(buf[0])
			}
		case OP_WHILE:
			if in.Memory.Current() == 0 {
				cursor = tape.Brackets[cursor] + 1
				continue
			}
		case OP_WHILE_END:
			if in.Memory.Current() != 0 {
				cursor = tape.Brackets[cursor] + 1
				continue
			}
		}
		cursor = cursor + 1
	}

	return nil
}

// Reset zeroes the memory cells, the data pointer, and the instruction
// counter without reallocating. The symbol table is untouched.
func (in *Interpreter) Reset() {
	in.Memory.Reset()
	in.InstructionCount = 0
}

// Clone deep-copies the interpreter, memory and symbol table included, so a
// session can be forked and the two machines run on independently.
func (in *Interpreter) Clone() *Interpreter {
	clone := &Interpreter{}
	cp.CopyWithOption(clone, in, cp.Option{DeepCopy: true})
	return clone
}
