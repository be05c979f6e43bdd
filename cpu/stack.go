package cpu

const (
	REG_SP    = 7    // Stack pointer register.
	STACK_TOP = 0xf4 // Initial stack pointer; the stack grows down from here.
)

// Push decrements the stack pointer, then stores value at its new
// address.
func (cpu *Cpu) Push(value uint8) {
	cpu.Register[REG_SP]--
	cpu.Memory.Write(int(cpu.Register[REG_SP]), value)
}

// Pop loads the value at the stack pointer, then increments it.
// Popping an empty stack is the program's problem: the pointer simply
// walks past STACK_TOP.
func (cpu *Cpu) Pop() (value uint8) {
	value = cpu.Peek()
	cpu.Register[REG_SP]++
	return
}

// Peek returns the value at the top of the stack.
func (cpu *Cpu) Peek() uint8 {
	return cpu.Memory.Read(int(cpu.Register[REG_SP]))
}

// StackDepth returns the number of bytes pushed below STACK_TOP.
func (cpu *Cpu) StackDepth() int {
	return int(uint8(STACK_TOP - cpu.Register[REG_SP]))
}
