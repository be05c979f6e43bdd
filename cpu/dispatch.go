package cpu

// Step is the outcome of executing one instruction.
type Step struct {
	Operands int   // Operand bytes consumed by the instruction.
	Jump     bool  // Set when the handler chose the next IP itself.
	Target   uint8 // Next IP when Jump is set.
}

// Handler executes a single non-ALU instruction. a and b are the two
// bytes following the opcode, whether or not the instruction uses them.
type Handler func(cpu *Cpu, code Code, a, b uint8) (step Step, err error)

// dispatch maps every non-ALU opcode to its handler.
var dispatch = map[Code]Handler{
	OP_NOP:  opNop,
	OP_HLT:  opHlt,
	OP_LDI:  opLdi,
	OP_LD:   opLd,
	OP_ST:   opSt,
	OP_PRN:  opPrn,
	OP_PRA:  opPra,
	OP_PUSH: opPush,
	OP_POP:  opPop,
	OP_CALL: opCall,
	OP_RET:  opRet,
	OP_JMP:  opJmp,
	OP_JEQ:  jumpIf(func(fl Flag) bool { return fl&FLAG_E != 0 }),
	OP_JNE:  jumpIf(func(fl Flag) bool { return fl&FLAG_E == 0 }),
	OP_JGT:  jumpIf(func(fl Flag) bool { return fl&FLAG_G != 0 }),
	OP_JLT:  jumpIf(func(fl Flag) bool { return fl&FLAG_L != 0 }),
	OP_JLE:  jumpIf(func(fl Flag) bool { return fl&(FLAG_L|FLAG_E) != 0 }),
	OP_JGE:  jumpIf(func(fl Flag) bool { return fl&(FLAG_G|FLAG_E) != 0 }),
}

// advance is the step of an instruction that falls through to the next.
func (cpu *Cpu) advance(code Code) Step {
	return Step{Operands: code.Operands()}
}

// jump is the step of an instruction that sets the IP to target.
func (cpu *Cpu) jump(code Code, target uint8) Step {
	return Step{Operands: code.Operands(), Jump: true, Target: target}
}

func opNop(cpu *Cpu, code Code, a, b uint8) (Step, error) {
	return cpu.advance(code), nil
}

func opHlt(cpu *Cpu, code Code, a, b uint8) (Step, error) {
	cpu.Halted = true
	return cpu.advance(code), nil
}

// LDI reg, value
func opLdi(cpu *Cpu, code Code, a, b uint8) (Step, error) {
	cpu.SetRegister(a, b)
	return cpu.advance(code), nil
}

// LD regA, regB: regA = memory[regB]
func opLd(cpu *Cpu, code Code, a, b uint8) (Step, error) {
	cpu.SetRegister(a, cpu.Memory.Read(int(cpu.GetRegister(b))))
	return cpu.advance(code), nil
}

// ST regA, regB: memory[regA] = regB
func opSt(cpu *Cpu, code Code, a, b uint8) (Step, error) {
	cpu.Memory.Write(int(cpu.GetRegister(a)), cpu.GetRegister(b))
	return cpu.advance(code), nil
}

func opPrn(cpu *Cpu, code Code, a, b uint8) (step Step, err error) {
	channel, err := cpu.GetChannel()
	if err != nil {
		return
	}
	err = channel.SendNumber(cpu.GetRegister(a))
	if err != nil {
		return
	}
	return cpu.advance(code), nil
}

func opPra(cpu *Cpu, code Code, a, b uint8) (step Step, err error) {
	channel, err := cpu.GetChannel()
	if err != nil {
		return
	}
	err = channel.SendChar(cpu.GetRegister(a))
	if err != nil {
		return
	}
	return cpu.advance(code), nil
}

func opPush(cpu *Cpu, code Code, a, b uint8) (Step, error) {
	cpu.Push(cpu.GetRegister(a))
	return cpu.advance(code), nil
}

func opPop(cpu *Cpu, code Code, a, b uint8) (Step, error) {
	cpu.SetRegister(a, cpu.Pop())
	return cpu.advance(code), nil
}

// CALL reg: push the address after the operand, then jump to reg.
func opCall(cpu *Cpu, code Code, a, b uint8) (Step, error) {
	cpu.Push(cpu.Ip + uint8(code.Size()))
	return cpu.jump(code, cpu.GetRegister(a)), nil
}

func opRet(cpu *Cpu, code Code, a, b uint8) (Step, error) {
	return cpu.jump(code, cpu.Pop()), nil
}

func opJmp(cpu *Cpu, code Code, a, b uint8) (Step, error) {
	return cpu.jump(code, cpu.GetRegister(a)), nil
}

// jumpIf builds a conditional jump on the flags.
func jumpIf(taken func(fl Flag) bool) Handler {
	return func(cpu *Cpu, code Code, a, b uint8) (Step, error) {
		if taken(cpu.Flags) {
			return cpu.jump(code, cpu.GetRegister(a)), nil
		}
		return cpu.advance(code), nil
	}
}
