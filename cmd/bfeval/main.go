package main

import (
	"flag"
	"log"
	"os"

	bf "nickandperla.net/brainfuck"

	"github.com/BurntSushi/toml"
)

/*
	Read config file (TOML)

	From unmarshaled config:
		Connect/Initialize DB
		Load program by name
		Evaluate it against an input/expected pair
		Persist the Evaluation

	return evaluation summary

*/

var toolConfigPath *string = flag.String("config", "./config.toml", "The config file for brainfuck tools to use. Defaults to './config.toml'")
var programName *string = flag.String("name", "", "Name of the stored program to evaluate")
var inputPath *string = flag.String("input", "", "Path to a file of input bytes. Optional")
var expectedPath *string = flag.String("expected", "", "Path to a file holding the expected output bytes")

func main() {
	flag.Parse()

	if len(*programName) == 0 || len(*expectedPath) == 0 {
		log.Fatalf("Both -name and -expected must be given")
	}

	conffile, err := os.Open(*toolConfigPath)

	if err != nil {
		log.Fatalf("Unable to load brainfuck config: %v", err)
	}

	confDecoder := toml.NewDecoder(conffile)
	var toolConfig bf.ToolConfig
	if _, err = confDecoder.Decode(&toolConfig); err != nil {
		log.Fatalf("Failed to unmarshal tool config: %v", err)
	}
	conffile.Close()

	var input []byte
	if len(*inputPath) > 0 {
		if input, err = os.ReadFile(*inputPath); err != nil {
			log.Fatalf("Unable to read input file: %v", err)
		}
	}

	expected, err := os.ReadFile(*expectedPath)
	if err != nil {
		log.Fatalf("Unable to read expected output file: %v", err)
	}

	persist, err := bf.NewPersistence(toolConfig.Persistence)
	if err != nil {
		log.Fatalf("Failed to create or initialize Persistence: %v", err)
	}
	defer persist.Shutdown()

	prog, err := persist.LoadProgram(*programName)
	if err != nil {
		log.Fatalf("Unable to load program from library: %v", err)
	}

	evaluator, err := bf.NewEvaluator(&bf.EvaluatorConfig{InterpreterConfig: toolConfig.Interpreter})
	if err != nil {
		log.Fatalf("Failed to build evaluator: %v", err)
	}

	eval := evaluator.Evaluate(prog, input, expected)

	if _, err := persist.CreateEvaluation(eval); err != nil {
		log.Fatalf("Failed to persist evaluation: %v", err)
	}

	if eval.MachineError != nil {
		log.Printf("Program [%s] faulted after [%d] instructions: %s", *programName, eval.InstructionsExecuted, *eval.MachineError)
	}
	log.Printf("Program [%s]: matched [%d], similarity [%.4f], instructions executed [%d]",
		*programName, eval.Matched, eval.Similarity, eval.InstructionsExecuted)
}
