package brainfuck

// Memory is the interpreter's byte tape plus the data pointer into it. Cells
// wrap at the byte boundary (255+1 == 0, 0-1 == 255); the pointer does not
// wrap and moving it outside [0, len(Cells)) is a fault.

type Memory struct {
	Cells       []uint8
	DataPointer int
}

func NewMemory(cellCount int) *Memory {
	return &Memory{
		Cells:       make([]uint8, cellCount),
		DataPointer: 0,
	}
}

func (m *Memory) Reset() {
	for i := 0; i < len(m.Cells); i++ {
		m.Cells[i] = 0
	}
	m.DataPointer = 0
}

func (m *Memory) Current() uint8 {
	return m.Cells[m.DataPointer]
}

func (m *Memory) Set(val uint8) {
	m.Cells[m.DataPointer] = val
}

func (m *Memory) Increment() {
	m.Cells[m.DataPointer] = m.Cells[m.DataPointer] + 1
}

func (m *Memory) Decrement() {
	m.Cells[m.DataPointer] = m.Cells[m.DataPointer] - 1
}

func (m *Memory) MovePointerRight() error {
	if m.DataPointer == len(m.Cells)-1 {
		return &TapeOverflowError{Index: m.DataPointer + 1, CellCount: len(m.Cells)}
	}
	m.DataPointer = m.DataPointer + 1
	return nil
}

func (m *Memory) MovePointerLeft() error {
	if m.DataPointer == 0 {
		return &TapeUnderflowError{Index: m.DataPointer - 1, CellCount: len(m.Cells)}
	}
	m.DataPointer = m.DataPointer - 1
	return nil
}
