package main

import (
	"bytes"
	"flag"
	"io"
	"log"
	"os"

	bf "nickandperla.net/brainfuck"

	"github.com/BurntSushi/toml"
	"github.com/pkg/profile"
)

/*
	Read config file (TOML)

	From unmarshaled config:
		Build interpreter
		Load program source (file or library by name)
		Run against stdin/stdout
		Optionally persist a Run record

*/

var toolConfigPath *string = flag.String("config", "./config.toml", "The config file for brainfuck tools to use. Defaults to './config.toml'")
var programPath *string = flag.String("program", "", "Path to a program file to run")
var programName *string = flag.String("name", "", "Name of a stored program to run from the library")
var record *bool = flag.Bool("record", false, "Persist a Run record to the library. Requires [persistence] config")
var profiling *bool = flag.Bool("profile", false, "Enable CPU profiling for this run")

func main() {
	flag.Parse()

	if *profiling {
		defer profile.Start().Stop()
	}

	if len(*programPath) == 0 && len(*programName) == 0 {
		log.Fatalf("One of -program or -name must be given")
	}

	var toolConfig bf.ToolConfig
	if conffile, err := os.Open(*toolConfigPath); err != nil {
		log.Printf("No usable config at %s, using defaults: %v", *toolConfigPath, err)
	} else {
		confDecoder := toml.NewDecoder(conffile)
		if _, err = confDecoder.Decode(&toolConfig); err != nil {
			log.Fatalf("Failed to unmarshal tool config: %v", err)
		}
		conffile.Close()
	}

	interp, err := bf.NewInterpreter(toolConfig.Interpreter)
	if err != nil {
		log.Fatalf("Failed to build interpreter: %v", err)
	}

	var persist *bf.Persistence
	if len(*programName) > 0 || *record {
		if toolConfig.Persistence == nil {
			log.Fatalf("-name and -record need a [persistence] table in %s", *toolConfigPath)
		}
		if persist, err = bf.NewPersistence(toolConfig.Persistence); err != nil {
			log.Fatalf("Failed to create or initialize Persistence: %v", err)
		}
		defer persist.Shutdown()
	}

	var prog *bf.Program
	if len(*programName) > 0 {
		if prog, err = persist.LoadProgram(*programName); err != nil {
			log.Fatalf("Unable to load program from library: %v", err)
		}
	} else {
		source, err := os.ReadFile(*programPath)
		if err != nil {
			log.Fatalf("Unable to read program file: %v", err)
		}
		prog = &bf.Program{Source: string(source)}
	}

	var captured bytes.Buffer
	var output io.Writer = os.Stdout
	if *record {
		output = io.MultiWriter(os.Stdout, &captured)
	}

	runErr := interp.Run(prog.Source, os.Stdin, output)

	if *record {
		if bf.DEBUG {
			log.Printf("Persisting run record for program id [%d]", prog.ID)
		}
		run := &bf.Run{
			ProgramID:            prog.ID,
			Output:               captured.Bytes(),
			InstructionsExecuted: interp.InstructionCount,
		}
		if runErr != nil {
			var msg string = runErr.Error()
			run.MachineError = &msg
		}
		if _, err := persist.CreateRun(run); err != nil {
			log.Fatalf("Failed to persist run: %v", err)
		}
	}

	if runErr != nil {
		log.Fatalf("Machine fault after [%d] instructions: %v", interp.InstructionCount, runErr)
	}
}
