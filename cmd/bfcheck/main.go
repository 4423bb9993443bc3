package main

import (
	"flag"
	"log"
	"os"

	bf "nickandperla.net/brainfuck"

	"github.com/BurntSushi/toml"
)

/*
	Read config file (TOML), if present

	Compile the program against the configured symbol table. Report the
	instruction count on success, or the unmatched bracket on failure.

*/

var toolConfigPath *string = flag.String("config", "./config.toml", "The config file for brainfuck tools to use. Defaults to './config.toml'")
var programPath *string = flag.String("program", "", "Path to the program file to check")

func main() {
	flag.Parse()

	if len(*programPath) == 0 {
		log.Fatalf("-program must be given")
	}

	var toolConfig bf.ToolConfig
	if conffile, err := os.Open(*toolConfigPath); err == nil {
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

	source, err := os.ReadFile(*programPath)
	if err != nil {
		log.Fatalf("Unable to read program file: %v", err)
	}

	tape, err := bf.NewTape(string(source), interp.Symbols)
	if err != nil {
		log.Fatalf("%s: %v", *programPath, err)
	}

	log.Printf("%s: OK ([%d] instructions, [%d] loops)", *programPath, len(tape.Instructions), len(tape.Brackets)/2)
}
