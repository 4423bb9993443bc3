package brainfuck

// A Tape is a compiled program: the source text filtered through a
// SymbolTable down to bare OPs, plus the bracket map pairing every OP_WHILE
// with its OP_WHILE_END. The map is built once per NewTape call with a stack
// of open-bracket indices, so an unbalanced program fails here, before a
// single instruction runs. All indices are positions in Instructions, not in
// the raw source text.

type Tape struct {
	Instructions []Instruction
	Brackets     map[int]int
}

func NewTape(source string, symbols SymbolTable) (*Tape, error) {
	instructions := make([]Instruction, 0, len(source))
	for _, char := range source {
		if op, ok := symbols[char]; ok {
			instructions = append(instructions, op)
		}
	}

	brackets, err := matchBrackets(instructions)
	if err != nil {
		return nil, err
	}

	return &Tape{
		Instructions: instructions,
		Brackets:     brackets,
	}, nil
}

func matchBrackets(instructions []Instruction) (map[int]int, error) {
	brackets := make(map[int]int)
	stack := make([]int, 0, WHILE_STACK_CAP)

	for i, op := range instructions {
		switch op {
		case OP_WHILE:
			stack = append(stack, i)
		case OP_WHILE_END:
			if len(stack) == 0 {
				return nil, &UnmatchedBracketError{Position: i}
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			brackets[open] = i
			brackets[i] = open
		}
	}

	if len(stack) > 0 {
		return nil, &UnmatchedBracketError{Position: stack[len(stack)-1], Open: true}
	}

	return brackets, nil
}
