package brainfuck

// A Program is a named source text in the library. Source is stored as
// written, comments and all; it gets filtered against whatever symbol table
// the interpreter running it was built with.
type Program struct {
	ID     uint
	Name   string `gorm:"uniqueIndex"`
	Source string
	Runs   []*Run
}

// A Run is one recorded execution of a Program: the bytes it produced, how
// many instructions it took, and the machine error that stopped it, if any.
type Run struct {
	ID                   uint
	ProgramID            uint
	Output               []byte `gorm:"type:blob"`
	InstructionsExecuted uint
	MachineError         *string
}
