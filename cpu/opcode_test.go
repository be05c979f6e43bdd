package cpu

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_Decode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code     Code
		operands int
		alu      bool
		setsIp   bool
		id       int
	}){
		{OP_NOP, 0, false, false, 0},
		{OP_HLT, 0, false, false, 1},
		{OP_RET, 0, false, true, 1},
		{OP_PRN, 1, false, false, 7},
		{OP_CALL, 1, false, true, 0},
		{OP_JNE, 1, false, true, 6},
		{OP_INC, 1, true, false, 5},
		{OP_NOT, 1, true, false, 9},
		{OP_LDI, 2, false, false, 2},
		{OP_ADD, 2, true, false, 0},
		{OP_CMP, 2, true, false, 7},
		{OP_SHR, 2, true, false, 13},
	}

	for _, entry := range table {
		name := entry.code.String()
		assert.Equal(entry.operands, entry.code.Operands(), name)
		assert.Equal(entry.operands+1, entry.code.Size(), name)
		assert.Equal(entry.alu, entry.code.IsAlu(), name)
		assert.Equal(entry.setsIp, entry.code.SetsIp(), name)
		assert.Equal(entry.id, entry.code.Id(), name)
		assert.True(entry.code.Known(), name)
	}
}

func TestCode_Table(t *testing.T) {
	assert := assert.New(t)

	// Every non-ALU instruction has a handler, and no ALU one does.
	for code := range codeName {
		_, ok := dispatch[code]
		assert.Equal(!code.IsAlu(), ok, code.String())
	}
	assert.Equal(len(dispatch), len(codeName)-14)
}

func TestCode_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("LDI", OP_LDI.String())
	assert.Equal("MUL", OP_MUL.String())
	assert.Equal("0x02", Code(0x02).String())
	assert.False(Code(0x02).Known())
}

func TestLookupCode(t *testing.T) {
	assert := assert.New(t)

	code, ok := LookupCode("ldi")
	assert.True(ok)
	assert.Equal(OP_LDI, code)

	code, ok = LookupCode("Hlt")
	assert.True(ok)
	assert.Equal(OP_HLT, code)

	_, ok = LookupCode("INT")
	assert.False(ok)
}

func TestCode_Immediate(t *testing.T) {
	assert := assert.New(t)

	assert.False(OP_LDI.Immediate(0))
	assert.True(OP_LDI.Immediate(1))
	assert.False(OP_ADD.Immediate(1))
	assert.False(OP_LD.Immediate(1))
}

func TestOpcodeDefines(t *testing.T) {
	assert := assert.New(t)

	defines := maps.Collect(OpcodeDefines())
	assert.Equal(len(codeName), len(defines))
	assert.Equal("0x82", defines["OP_LDI"])
	assert.Equal("0x0", defines["OP_NOP"])
	assert.Equal("0xa7", defines["OP_CMP"])
}
