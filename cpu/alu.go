package cpu

// doAlu performs the ALU operation code on registers a and b. All
// results wrap to 8 bits.
//
// ADD, SUB, MUL, DIV, INC and DEC replace register a. The bitwise
// operations, MOD and NOT write to the register named by the operand
// byte after the opcode, which is a in every current encoding.
func (cpu *Cpu) doAlu(code Code, a, b uint8) (err error) {
	dst := cpu.Memory.Read(int(cpu.Ip) + 1)
	ra := cpu.GetRegister(a)
	rb := cpu.GetRegister(b)

	switch code {
	case OP_ADD:
		cpu.SetRegister(a, ra+rb)
	case OP_SUB:
		cpu.SetRegister(a, ra-rb)
	case OP_MUL:
		cpu.SetRegister(a, ra*rb)
	case OP_DIV:
		if rb == 0 {
			err = ErrDivideByZero
			return
		}
		cpu.SetRegister(a, ra/rb)
	case OP_INC:
		cpu.SetRegister(a, ra+1)
	case OP_DEC:
		cpu.SetRegister(a, ra-1)
	case OP_CMP:
		switch {
		case ra == rb:
			cpu.Flags = FLAG_E
		case ra < rb:
			cpu.Flags = FLAG_L
		default:
			cpu.Flags = FLAG_G
		}
	case OP_MOD:
		if rb == 0 {
			err = ErrDivideByZero
			return
		}
		cpu.SetRegister(dst, ra%rb)
	case OP_AND:
		cpu.SetRegister(dst, ra&rb)
	case OP_OR:
		cpu.SetRegister(dst, ra|rb)
	case OP_XOR:
		cpu.SetRegister(dst, ra^rb)
	case OP_SHL:
		cpu.SetRegister(dst, ra<<rb)
	case OP_SHR:
		cpu.SetRegister(dst, ra>>rb)
	case OP_NOT:
		cpu.SetRegister(dst, ^ra)
	default:
		err = ErrOpcodeAlu
	}

	return
}
