package brainfuck

const (
	DEBUG = false

	// DEFAULT_TAPE_SIZE is the cell count used when config leaves
	// tape_size unset.
	DEFAULT_TAPE_SIZE = 30000

	WHILE_STACK_CAP = 10
)
