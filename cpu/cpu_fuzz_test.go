package cpu

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/io"
)

// expectAlu is the reference model of the ALU. ok is false for faults.
func expectAlu(code Code, ra, rb uint8) (result uint8, ok bool) {
	switch code {
	case OP_ADD:
		return ra + rb, true
	case OP_SUB:
		return ra - rb, true
	case OP_MUL:
		return uint8(uint(ra) * uint(rb) % 256), true
	case OP_DIV:
		if rb == 0 {
			return
		}
		return ra / rb, true
	case OP_MOD:
		if rb == 0 {
			return
		}
		return ra % rb, true
	case OP_INC:
		return ra + 1, true
	case OP_DEC:
		return ra - 1, true
	case OP_AND:
		return ra & rb, true
	case OP_OR:
		return ra | rb, true
	case OP_XOR:
		return ra ^ rb, true
	case OP_SHL:
		if rb >= 8 {
			return 0, true
		}
		return ra << rb, true
	case OP_SHR:
		if rb >= 8 {
			return 0, true
		}
		return ra >> rb, true
	case OP_NOT:
		return ^ra, true
	}

	return
}

func FuzzCpu(f *testing.F) {
	for op := range 256 {
		f.Add(uint8(op), uint8(0), uint8(1), uint8(0x12), uint8(0x34), uint8(0))
		f.Add(uint8(op), uint8(3), uint8(3), uint8(0xff), uint8(0), uint8(FLAG_E))
	}

	f.Fuzz(func(t *testing.T, opcode uint8, a uint8, b uint8, va uint8, vb uint8, flags uint8) {
		assert := assert.New(t)

		code := Code(opcode)

		cpu := NewCpu()
		output := &bytes.Buffer{}
		cpu.SetChannel(&io.Console{Output: output})

		cpu.Ip = 0x40
		cpu.Memory.Write(0x40, opcode)
		cpu.Memory.Write(0x41, a)
		cpu.Memory.Write(0x42, b)
		cpu.Flags = Flag(flags & 7)
		for n := range uint8(REGISTER_COUNT - 1) {
			cpu.Register[n] = 0x10 + n
		}
		cpu.SetRegister(a, va)
		cpu.SetRegister(b, vb)

		pre := *cpu
		ra := pre.GetRegister(a)
		rb := pre.GetRegister(b)

		err := cpu.Execute(code)

		code_str := fmt.Sprintf("0x%02x (%v) a:%d b:%d\ncpu:%v", opcode, code, a, b, cpu.String())

		if err != nil {
			assert.True(errors.Is(err, ErrOpcode{}), code_str)
			assert.Equal(pre.Ip, cpu.Ip, code_str)
			assert.Equal(pre.Ticks, cpu.Ticks, code_str)
			switch {
			case errors.Is(err, ErrOpcodeDecode):
				assert.False(code.IsAlu(), code_str)
				assert.False(code.Known(), code_str)
			case errors.Is(err, ErrOpcodeAlu):
				assert.True(code.IsAlu(), code_str)
				assert.False(code.Known(), code_str)
			case errors.Is(err, ErrDivideByZero):
				assert.Contains([]Code{OP_DIV, OP_MOD}, code, code_str)
				assert.Equal(uint8(0), rb, code_str)
			default:
				assert.NoError(err, code_str)
			}
			return
		}

		assert.True(code.Known(), code_str)
		assert.Equal(pre.Ticks+1, cpu.Ticks, code_str)

		next_ip := pre.Ip + uint8(code.Size())
		ra_reg := a & REGISTER_MASK

		if code.IsAlu() {
			if code == OP_CMP {
				switch {
				case ra == rb:
					assert.Equal(FLAG_E, cpu.Flags, code_str)
				case ra < rb:
					assert.Equal(FLAG_L, cpu.Flags, code_str)
				default:
					assert.Equal(FLAG_G, cpu.Flags, code_str)
				}
				assert.Equal(pre.Register, cpu.Register, code_str)
			} else {
				expected, ok := expectAlu(code, ra, rb)
				assert.True(ok, code_str)
				expect := pre.Register
				expect[ra_reg] = expected
				assert.Equal(expect, cpu.Register, code_str)
				assert.Equal(pre.Flags, cpu.Flags, code_str)
			}
			assert.Equal(next_ip, cpu.Ip, code_str)
			return
		}

		switch code {
		case OP_NOP:
			assert.Equal(pre.Register, cpu.Register, code_str)
		case OP_HLT:
			assert.True(cpu.Halted, code_str)
		case OP_LDI:
			assert.Equal(b, cpu.Register[ra_reg], code_str)
		case OP_PRN:
			assert.Equal(fmt.Sprintf("%d\n", ra), output.String(), code_str)
		case OP_PRA:
			assert.Equal([]byte{ra}, output.Bytes(), code_str)
		case OP_PUSH:
			sp := pre.Register[REG_SP] - 1
			assert.Equal(sp, cpu.Register[REG_SP], code_str)
			assert.Equal(ra, cpu.Memory.Read(int(sp)), code_str)
		case OP_POP:
			if ra_reg != REG_SP {
				assert.Equal(pre.Register[REG_SP]+1, cpu.Register[REG_SP], code_str)
				assert.Equal(pre.Memory.Read(int(pre.Register[REG_SP])), cpu.Register[ra_reg], code_str)
			}
		case OP_CALL:
			sp := pre.Register[REG_SP] - 1
			assert.Equal(sp, cpu.Register[REG_SP], code_str)
			assert.Equal(next_ip, cpu.Memory.Read(int(sp)), code_str)
			next_ip = cpu.GetRegister(a)
		case OP_RET:
			assert.Equal(pre.Register[REG_SP]+1, cpu.Register[REG_SP], code_str)
			next_ip = pre.Memory.Read(int(pre.Register[REG_SP]))
		case OP_JMP:
			next_ip = ra
		case OP_JEQ, OP_JNE, OP_JGT, OP_JLT, OP_JLE, OP_JGE:
			fl := pre.Flags
			taken := map[Code]bool{
				OP_JEQ: fl&FLAG_E != 0,
				OP_JNE: fl&FLAG_E == 0,
				OP_JGT: fl&FLAG_G != 0,
				OP_JLT: fl&FLAG_L != 0,
				OP_JLE: fl&(FLAG_L|FLAG_E) != 0,
				OP_JGE: fl&(FLAG_G|FLAG_E) != 0,
			}[code]
			if taken {
				next_ip = ra
			}
		case OP_LD:
			assert.Equal(pre.Memory.Read(int(rb)), cpu.Register[ra_reg], code_str)
		case OP_ST:
			assert.Equal(rb, cpu.Memory.Read(int(ra)), code_str)
		default:
			panic(ErrOpcode{Ip: pre.Ip, Code: code})
		}

		assert.Equal(next_ip, cpu.Ip, code_str)
	})
}
