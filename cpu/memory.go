package cpu

const (
	MEMORY_SIZE = 256 // Bytes of addressable memory.
	MEMORY_MASK = MEMORY_SIZE - 1
)

// Memory is the flat, unprotected byte space of the machine. Every
// address wraps modulo MEMORY_SIZE.
type Memory [MEMORY_SIZE]uint8

// Read returns the byte at addr.
func (mem *Memory) Read(addr int) uint8 {
	return mem[addr&MEMORY_MASK]
}

// Write stores value at addr.
func (mem *Memory) Write(addr int, value uint8) {
	mem[addr&MEMORY_MASK] = value
}

// Slice returns count bytes starting at addr, wrapping at the end of
// memory.
func (mem *Memory) Slice(addr int, count int) (data []uint8) {
	data = make([]uint8, count)
	for n := range data {
		data[n] = mem.Read(addr + n)
	}
	return
}
