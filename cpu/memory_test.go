package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Write(0x10, 0xab)
	assert.Equal(uint8(0xab), mem.Read(0x10))
	assert.Equal(uint8(0), mem.Read(0x11))
}

func TestMemory_Wrap(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	mem.Write(MEMORY_SIZE+3, 0x42)
	assert.Equal(uint8(0x42), mem.Read(3))

	mem.Write(-1, 0x99)
	assert.Equal(uint8(0x99), mem.Read(MEMORY_SIZE-1))
	assert.Equal(uint8(0x99), mem[0xff])
}

func TestMemory_Slice(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Write(0xfe, 1)
	mem.Write(0xff, 2)
	mem.Write(0x00, 3)

	assert.Equal([]uint8{1, 2, 3}, mem.Slice(0xfe, 3))
	assert.Equal([]uint8{}, mem.Slice(0, 0))
}
