package brainfuck

import (
	"bytes"

	"github.com/xrash/smetrics"
)

// An Evaluation is a snapshot of how one program behaved against one
// input/expected-output pair. MachineRun is 1 when the run finished without a
// machine error. Matched is 1 only on byte-exact output; Similarity grades
// near misses on [0, 1] so a harness can rank almost-right programs instead
// of just failing them.

type Evaluation struct {
	ID                   uint
	ProgramID            uint
	MachineRun           byte
	Matched              byte
	Similarity           float64
	InstructionsExecuted uint
	MachineError         *string
	Input                []byte `gorm:"type:blob"`
	Expected             []byte `gorm:"type:blob"`
	Output               []byte `gorm:"type:blob"`
}

type EvaluatorConfig struct {
	InterpreterConfig *InterpreterConfig `toml:"interpreter"`
}

type Evaluator struct {
	Interpreter *Interpreter
	Config      *EvaluatorConfig
}

func NewEvaluator(ec *EvaluatorConfig) (*Evaluator, error) {
	if ec == nil {
		ec = &EvaluatorConfig{}
	}

	interp, err := NewInterpreter(ec.InterpreterConfig)
	if err != nil {
		return nil, err
	}

	return &Evaluator{
		Interpreter: interp,
		Config:      ec,
	}, nil
}

// Evaluate resets the machine and runs prog.Source with input on the input
// stream, then scores the captured output against expected. The reset means
// evaluations are independent of each other even though they share one
// Interpreter.
func (e *Evaluator) Evaluate(prog *Program, input []byte, expected []byte) *Evaluation {
	eval := &Evaluation{
		ProgramID: prog.ID,
		Input:     input,
		Expected:  expected,
	}

	e.Interpreter.Reset()

	var output bytes.Buffer
	if err := e.Interpreter.Run(prog.Source, bytes.NewReader(input), &output); err != nil {
		var msg string = err.Error()
		eval.MachineError = &msg
	} else {
		eval.MachineRun = 1
	}

	eval.Output = output.Bytes()
	eval.InstructionsExecuted = e.Interpreter.InstructionCount

	if bytes.Equal(eval.Output, expected) {
		eval.Matched = 1
	}
	eval.Similarity = smetrics.JaroWinkler(string(eval.Output), string(expected), 0.7, 4)

	return eval
}
