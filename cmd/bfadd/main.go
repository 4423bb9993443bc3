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
		Compile-check the program source
		Persist new program under the given name

	return program id

*/

var toolConfigPath *string = flag.String("config", "./config.toml", "The config file for brainfuck tools to use. Defaults to './config.toml'")
var programPath *string = flag.String("program", "", "Path to the program file to store")
var programName *string = flag.String("name", "", "Library name for the program")

func main() {
	flag.Parse()

	if len(*programPath) == 0 || len(*programName) == 0 {
		log.Fatalf("Both -program and -name must be given")
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

	interp, err := bf.NewInterpreter(toolConfig.Interpreter)
	if err != nil {
		log.Fatalf("Failed to build interpreter: %v", err)
	}

	source, err := os.ReadFile(*programPath)
	if err != nil {
		log.Fatalf("Unable to read program file: %v", err)
	}

	// Refuse to store programs that can't even bracket-match.
	if _, err := bf.NewTape(string(source), interp.Symbols); err != nil {
		log.Fatalf("Program failed compile check: %v", err)
	}

	persist, err := bf.NewPersistence(toolConfig.Persistence)
	if err != nil {
		log.Fatalf("Failed to create or initialize Persistence: %v", err)
	}
	defer persist.Shutdown()

	id, err := persist.CreateProgram(&bf.Program{Name: *programName, Source: string(source)})
	if err != nil {
		log.Fatalf("Failed to persist program: %v", err)
	}

	log.Printf("Stored program [%s] with id [%d]", *programName, id)
}
