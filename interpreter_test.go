package brainfuck

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

const HELLO_WORLD = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

func MakeInterpreter(t *testing.T, config *InterpreterConfig) *Interpreter {
	t.Helper()
	interp, err := NewInterpreter(config)
	if err != nil {
		t.Fatalf("Unexpected failure calling NewInterpreter. %v", err)
	}
	return interp
}

func TestNewInterpreterDefaults(t *testing.T) {
	interp := MakeInterpreter(t, nil)

	if len(interp.Memory.Cells) != DEFAULT_TAPE_SIZE {
		t.Errorf("Default cell count [%d] is not expected [%d]", len(interp.Memory.Cells), DEFAULT_TAPE_SIZE)
	}

	if interp.Memory.DataPointer != 0 {
		t.Errorf("Expected DataPointer to be [0], but was [%d]", interp.Memory.DataPointer)
	}

	if len(interp.Symbols) != 8 {
		t.Errorf("Default symbol table length [%d] is not expected [8]", len(interp.Symbols))
	}
}

func TestNewInterpreterBadTapeSize(t *testing.T) {
	_, err := NewInterpreter(&InterpreterConfig{TapeSize: -1})
	if err == nil {
		t.Fatalf("Unexpected success calling NewInterpreter with tape_size [-1]")
	}

	var conf *ConfigError
	if !errors.As(err, &conf) {
		t.Errorf("Error is not a ConfigError: %v", err)
	}

	if err.Error() != "Invalid interpreter config. tape_size [-1] must be a positive integer" {
		t.Errorf("Error string doesn't match: %v", err)
	}
}

func TestRunOutput(t *testing.T) {
	interp := MakeInterpreter(t, nil)

	var output bytes.Buffer
	if err := interp.Run("++.", strings.NewReader(""), &output); err != nil {
		t.Fatalf("Unexpected failure calling Run. %v", err)
	}

	if !bytes.Equal(output.Bytes(), []byte{2}) {
		t.Errorf("Output [%v] is not expected [[2]]", output.Bytes())
	}
}

func TestRunLoopToZero(t *testing.T) {
	interp := MakeInterpreter(t, nil)

	var output bytes.Buffer
	if err := interp.Run("+[-]", strings.NewReader(""), &output); err != nil {
		t.Fatalf("Unexpected failure calling Run. %v", err)
	}

	if interp.Memory.Current() != 0 {
		t.Errorf("Memory cell at DataPointer (%d) is not [0] after loop-decrement", interp.Memory.Current())
	}

	if output.Len() != 0 {
		t.Errorf("Output [%v] is not empty", output.Bytes())
	}
}

func TestRunInputPassthrough(t *testing.T) {
	interp := MakeInterpreter(t, nil)

	var output bytes.Buffer
	if err := interp.Run(",.", bytes.NewReader([]byte{65}), &output); err != nil {
		t.Fatalf("Unexpected failure calling Run. %v", err)
	}

	if !bytes.Equal(output.Bytes(), []byte{65}) {
		t.Errorf("Output [%v] is not expected [[65]]", output.Bytes())
	}
}

func TestRunInputEOFZeroFills(t *testing.T) {
	interp := MakeInterpreter(t, nil)

	var output bytes.Buffer
	if err := interp.Run("+++,.", strings.NewReader(""), &output); err != nil {
		t.Fatalf("Unexpected failure calling Run. %v", err)
	}

	// Cell held 3 before OP_INPUT; EOF overwrites it with zero.
	if !bytes.Equal(output.Bytes(), []byte{0}) {
		t.Errorf("Output [%v] is not expected [[0]]", output.Bytes())
	}
}

func TestRunHelloWorld(t *testing.T) {
	interp := MakeInterpreter(t, nil)

	var output bytes.Buffer
	if err := interp.Run(HELLO_WORLD, strings.NewReader(""), &output); err != nil {
		t.Fatalf("Unexpected failure calling Run. %v", err)
	}

	if output.String() != "Hello World!\n" {
		t.Errorf("Output [%q] is not expected [%q]", output.String(), "Hello World!\n")
	}
}

func TestRunTapeOverflowAtBoundary(t *testing.T) {
	interp := MakeInterpreter(t, &InterpreterConfig{TapeSize: 3})

	var output bytes.Buffer
	// Two moves land on the last cell without fault.
	if err := interp.Run(">>", strings.NewReader(""), &output); err != nil {
		t.Fatalf("Unexpected failure calling Run. %v", err)
	}

	if interp.Memory.DataPointer != 2 {
		t.Errorf("Expected DataPointer to be [2], but was [%d]", interp.Memory.DataPointer)
	}

	// The third move crosses the boundary.
	interp.Reset()
	err := interp.Run(">>>", strings.NewReader(""), &output)
	if err == nil {
		t.Fatalf("Unexpected success running [>>>] on a 3 cell tape")
	}

	var overflow *TapeOverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("Error is not a TapeOverflowError: %v", err)
	}

	if overflow.Index != 3 {
		t.Errorf("Overflow attempted index [%d] is not expected [3]", overflow.Index)
	}

	// Last-valid state survives the fault.
	if interp.Memory.DataPointer != 2 {
		t.Errorf("Expected DataPointer to be [2] after fault, but was [%d]", interp.Memory.DataPointer)
	}
}

func TestRunTapeUnderflow(t *testing.T) {
	interp := MakeInterpreter(t, &InterpreterConfig{TapeSize: 3})

	var output bytes.Buffer
	err := interp.Run("+<", strings.NewReader(""), &output)
	if err == nil {
		t.Fatalf("Unexpected success moving data pointer left from cell [0]")
	}

	var underflow *TapeUnderflowError
	if !errors.As(err, &underflow) {
		t.Fatalf("Error is not a TapeUnderflowError: %v", err)
	}

	if underflow.Index != -1 {
		t.Errorf("Underflow attempted index [%d] is not expected [-1]", underflow.Index)
	}

	// The OP_BYTE_INC before the fault still happened.
	if interp.Memory.Cells[0] != 1 {
		t.Errorf("Memory cell at index [0] (%d) is not [1] after fault", interp.Memory.Cells[0])
	}
}

func TestRunUnmatchedBracketBeforeExecution(t *testing.T) {
	interp := MakeInterpreter(t, &InterpreterConfig{TapeSize: 3})

	var output bytes.Buffer
	err := interp.Run("+++]", strings.NewReader(""), &output)
	if err == nil {
		t.Fatalf("Unexpected success running program with unopened OP_WHILE_END")
	}

	var unmatched *UnmatchedBracketError
	if !errors.As(err, &unmatched) {
		t.Fatalf("Error is not an UnmatchedBracketError: %v", err)
	}

	if unmatched.Position != 3 {
		t.Errorf("Unmatched bracket position [%d] is not expected [3]", unmatched.Position)
	}

	// Compile faults happen before any instruction runs.
	if interp.Memory.Cells[0] != 0 {
		t.Errorf("Memory cell at index [0] (%d) mutated by a program that never compiled", interp.Memory.Cells[0])
	}

	if interp.InstructionCount != 0 {
		t.Errorf("InstructionCount [%d] is not [0] for a program that never compiled", interp.InstructionCount)
	}
}

func TestRunCustomInstructions(t *testing.T) {
	// '>' is remapped to pointer_dec and 'X' takes over pointer_inc, so
	// movement must route by the override, not the canonical table.
	interp := MakeInterpreter(t, &InterpreterConfig{
		TapeSize: 10,
		CustomInstructions: map[string]string{
			"X": "pointer_inc",
			">": "pointer_dec",
			"+": "byte_inc",
			".": "output",
		},
	})

	var output bytes.Buffer
	if err := interp.Run("XX+>.", strings.NewReader(""), &output); err != nil {
		t.Fatalf("Unexpected failure calling Run. %v", err)
	}

	if interp.Memory.DataPointer != 1 {
		t.Errorf("Expected DataPointer to be [1], but was [%d]", interp.Memory.DataPointer)
	}

	if interp.Memory.Cells[2] != 1 {
		t.Errorf("Memory cell at index [2] (%d) is not [1]", interp.Memory.Cells[2])
	}

	// Replace-not-merge: '<' and '[' aren't in the custom table, so they
	// are comments and the program stays loop-free.
	if err := interp.Run("<<<[", strings.NewReader(""), &output); err != nil {
		t.Errorf("Unexpected failure running comment-only program under custom table. %v", err)
	}

	if interp.Memory.DataPointer != 1 {
		t.Errorf("DataPointer [%d] moved by characters outside the custom table", interp.Memory.DataPointer)
	}
}

func TestRunStatePersistsAcrossRuns(t *testing.T) {
	interp := MakeInterpreter(t, &InterpreterConfig{TapeSize: 10})

	var output bytes.Buffer
	if err := interp.Run("+++>++", strings.NewReader(""), &output); err != nil {
		t.Fatalf("Unexpected failure calling Run. %v", err)
	}

	// Second run starts from the first run's end state: pointer on cell 1,
	// cells [3 2 0 ...].
	if err := interp.Run("+.<.", strings.NewReader(""), &output); err != nil {
		t.Fatalf("Unexpected failure calling Run. %v", err)
	}

	if !bytes.Equal(output.Bytes(), []byte{3, 3}) {
		t.Errorf("Output [%v] is not expected [[3 3]]", output.Bytes())
	}
}

func TestRunReusableAfterFault(t *testing.T) {
	interp := MakeInterpreter(t, &InterpreterConfig{TapeSize: 3})

	var output bytes.Buffer
	if err := interp.Run("+<", strings.NewReader(""), &output); err == nil {
		t.Fatalf("Unexpected success moving data pointer left from cell [0]")
	}

	if err := interp.Run("+.", strings.NewReader(""), &output); err != nil {
		t.Fatalf("Unexpected failure calling Run after a fault. %v", err)
	}

	if !bytes.Equal(output.Bytes(), []byte{2}) {
		t.Errorf("Output [%v] is not expected [[2]]", output.Bytes())
	}
}

func TestRunMaxInstructions(t *testing.T) {
	interp := MakeInterpreter(t, &InterpreterConfig{TapeSize: 10, MaxInstructions: 100})

	var output bytes.Buffer
	err := interp.Run("+[]", strings.NewReader(""), &output)
	if err != ErrMaxInstructionsReached {
		t.Errorf("Expected ErrMaxInstructionsReached from an endless loop, got: %v", err)
	}

	if interp.InstructionCount != 100 {
		t.Errorf("InstructionCount [%d] is not expected [100]", interp.InstructionCount)
	}
}

type failingWriter struct {
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

type failingReader struct {
	err error
}

func (r *failingReader) Read(p []byte) (int, error) {
	return 0, r.err
}

func TestRunStreamErrorsPropagateUnwrapped(t *testing.T) {
	interp := MakeInterpreter(t, &InterpreterConfig{TapeSize: 3})

	sinkErr := fmt.Errorf("sink is broken")
	if err := interp.Run("+.", strings.NewReader(""), &failingWriter{err: sinkErr}); err != sinkErr {
		t.Errorf("Output stream error was not propagated unchanged: %v", err)
	}

	sourceErr := fmt.Errorf("source is broken")
	var output bytes.Buffer
	if err := interp.Run(",", &failingReader{err: sourceErr}, &output); err != sourceErr {
		t.Errorf("Input stream error was not propagated unchanged: %v", err)
	}
}

func TestInterpreterReset(t *testing.T) {
	interp := MakeInterpreter(t, &InterpreterConfig{TapeSize: 10})

	var output bytes.Buffer
	if err := interp.Run("+++>++", strings.NewReader(""), &output); err != nil {
		t.Fatalf("Unexpected failure calling Run. %v", err)
	}

	interp.Reset()

	if interp.Memory.DataPointer != 0 {
		t.Errorf("Expected DataPointer to be [0] after reset, but was [%d]", interp.Memory.DataPointer)
	}

	if interp.InstructionCount != 0 {
		t.Errorf("InstructionCount [%d] is not [0] after reset", interp.InstructionCount)
	}

	for i, cell := range interp.Memory.Cells {
		if cell != 0 {
			t.Errorf("Memory cell at index [%d] (%d) is not zero after reset", i, cell)
		}
	}
}

func TestInterpreterClone(t *testing.T) {
	interp := MakeInterpreter(t, &InterpreterConfig{TapeSize: 10})

	var output bytes.Buffer
	if err := interp.Run("+++>++", strings.NewReader(""), &output); err != nil {
		t.Fatalf("Unexpected failure calling Run. %v", err)
	}

	clone := interp.Clone()

	if clone.Memory.DataPointer != interp.Memory.DataPointer {
		t.Errorf("Clone DataPointer [%d] is not [%d]", clone.Memory.DataPointer, interp.Memory.DataPointer)
	}

	if !bytes.Equal(clone.Memory.Cells, interp.Memory.Cells) {
		t.Errorf("Clone cells [%v] are not [%v]", clone.Memory.Cells, interp.Memory.Cells)
	}

	// The two machines are forks, not views of shared state.
	if err := interp.Run("+", strings.NewReader(""), &output); err != nil {
		t.Fatalf("Unexpected failure calling Run. %v", err)
	}

	if clone.Memory.Cells[1] != 2 {
		t.Errorf("Clone cell at index [1] (%d) changed when the original ran", clone.Memory.Cells[1])
	}
}

func BenchmarkRunHelloWorld(b *testing.B) {
	interp, err := NewInterpreter(&InterpreterConfig{TapeSize: 100})
	if err != nil {
		b.Fatalf("Unexpected failure calling NewInterpreter. %v", err)
	}

	input := strings.NewReader("")
	for i := 0; i < b.N; i++ {
		interp.Reset()
		var output bytes.Buffer
		if err := interp.Run(HELLO_WORLD, input, &output); err != nil {
			b.Fatalf("Unexpected failure calling Run. %v", err)
		}
	}
}
