package cpu

import (
	"fmt"
	"iter"
	"maps"
	"strings"
)

// Code is a single opcode byte. Its layout is AABCDDDD:
//
//	AA   - number of operand bytes that follow (0-2)
//	B    - set for ALU operations
//	C    - set when the instruction writes the instruction pointer
//	DDDD - instruction identifier
type Code uint8

const (
	CODE_OPERANDS_SHIFT = 6
	CODE_OPERANDS_MASK  = Code(0b11 << CODE_OPERANDS_SHIFT)
	CODE_ALU            = Code(1 << 5)
	CODE_SETS_IP        = Code(1 << 4)
	CODE_ID_MASK        = Code(0b1111)
)

// Non-ALU instructions.
const (
	OP_NOP  = Code(0b00000000)
	OP_HLT  = Code(0b00000001)
	OP_RET  = Code(0b00010001)
	OP_PUSH = Code(0b01000101)
	OP_POP  = Code(0b01000110)
	OP_PRN  = Code(0b01000111)
	OP_PRA  = Code(0b01001000)
	OP_CALL = Code(0b01010000)
	OP_JMP  = Code(0b01010100)
	OP_JEQ  = Code(0b01010101)
	OP_JNE  = Code(0b01010110)
	OP_JGT  = Code(0b01010111)
	OP_JLT  = Code(0b01011000)
	OP_JLE  = Code(0b01011001)
	OP_JGE  = Code(0b01011010)
	OP_LDI  = Code(0b10000010)
	OP_LD   = Code(0b10000011)
	OP_ST   = Code(0b10000100)
)

// ALU instructions.
const (
	OP_INC = Code(0b01100101)
	OP_DEC = Code(0b01100110)
	OP_NOT = Code(0b01101001)
	OP_ADD = Code(0b10100000)
	OP_SUB = Code(0b10100001)
	OP_MUL = Code(0b10100010)
	OP_DIV = Code(0b10100011)
	OP_MOD = Code(0b10100100)
	OP_CMP = Code(0b10100111)
	OP_AND = Code(0b10101000)
	OP_OR  = Code(0b10101010)
	OP_XOR = Code(0b10101011)
	OP_SHL = Code(0b10101100)
	OP_SHR = Code(0b10101101)
)

// codeName maps every known opcode to its mnemonic.
var codeName = map[Code]string{
	OP_NOP:  "NOP",
	OP_HLT:  "HLT",
	OP_RET:  "RET",
	OP_PUSH: "PUSH",
	OP_POP:  "POP",
	OP_PRN:  "PRN",
	OP_PRA:  "PRA",
	OP_CALL: "CALL",
	OP_JMP:  "JMP",
	OP_JEQ:  "JEQ",
	OP_JNE:  "JNE",
	OP_JGT:  "JGT",
	OP_JLT:  "JLT",
	OP_JLE:  "JLE",
	OP_JGE:  "JGE",
	OP_LDI:  "LDI",
	OP_LD:   "LD",
	OP_ST:   "ST",
	OP_INC:  "INC",
	OP_DEC:  "DEC",
	OP_NOT:  "NOT",
	OP_ADD:  "ADD",
	OP_SUB:  "SUB",
	OP_MUL:  "MUL",
	OP_DIV:  "DIV",
	OP_MOD:  "MOD",
	OP_CMP:  "CMP",
	OP_AND:  "AND",
	OP_OR:   "OR",
	OP_XOR:  "XOR",
	OP_SHL:  "SHL",
	OP_SHR:  "SHR",
}

// nameCode is the reverse of codeName, used by the assembler.
var nameCode = func() map[string]Code {
	m := make(map[string]Code, len(codeName))
	for code, name := range codeName {
		m[name] = code
	}
	return m
}()

// LookupCode returns the opcode for a mnemonic, ignoring case.
func LookupCode(name string) (code Code, ok bool) {
	code, ok = nameCode[strings.ToUpper(name)]
	return
}

// Operands returns the number of operand bytes following the opcode.
func (code Code) Operands() int {
	return int((code & CODE_OPERANDS_MASK) >> CODE_OPERANDS_SHIFT)
}

// Size returns the size in bytes of the whole instruction.
func (code Code) Size() int {
	return 1 + code.Operands()
}

// IsAlu returns true if the opcode is routed to the ALU.
func (code Code) IsAlu() bool {
	return code&CODE_ALU != 0
}

// SetsIp returns true if the opcode may write the instruction pointer.
func (code Code) SetsIp() bool {
	return code&CODE_SETS_IP != 0
}

// Id returns the instruction identifier field.
func (code Code) Id() int {
	return int(code & CODE_ID_MASK)
}

// Known returns true if the opcode names an implemented instruction.
func (code Code) Known() bool {
	_, ok := codeName[code]
	return ok
}

// String returns the mnemonic, or the hex value of an unknown opcode.
func (code Code) String() string {
	name, ok := codeName[code]
	if !ok {
		return fmt.Sprintf("0x%02X", uint8(code))
	}
	return name
}

// Immediate returns true if operand n (0 or 1) is a literal value rather
// than a register index.
func (code Code) Immediate(n int) bool {
	return code == OP_LDI && n == 1
}

// OpcodeDefines returns an OP_<MNEMONIC> define for every opcode.
func OpcodeDefines() iter.Seq2[string, string] {
	defines := make(map[string]string, len(codeName))
	for code, name := range codeName {
		defines["OP_"+name] = fmt.Sprintf("%#x", uint8(code))
	}
	return maps.All(defines)
}
