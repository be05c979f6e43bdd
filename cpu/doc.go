// Package cpu implements the processor and assembler for the LS-8, a
// tiny byte oriented machine.
//
// The CPU consists of 256 bytes of memory, eight 8-bit registers (r0-r7,
// with r7 holding the stack pointer), an instruction pointer, and a
// flags register set by CMP. Each instruction is an opcode byte followed
// by zero to two operand bytes. Opcodes with the ALU bit set are computed
// by the ALU; all others are looked up in a dispatch table.
//
// The assembler translates LS-8 assembly into a memory image, supporting
// labels, equates, macros, and compile-time expression evaluation.
package cpu
