package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/ls8/io"
)

// Channel is the observation channel PRN and PRA write to.
type Channel io.Channel

const (
	REGISTER_COUNT = 8
	REGISTER_MASK  = REGISTER_COUNT - 1
)

// Flag is the comparison result register, laid out as 00000LGE.
type Flag uint8

const (
	FLAG_E = Flag(1 << 0) // Equal
	FLAG_G = Flag(1 << 1) // Greater than
	FLAG_L = Flag(1 << 2) // Less than
)

// String returns the set flags as letters, '-' for clear ones.
func (fl Flag) String() string {
	text := []byte("LGE")
	for n, bit := range []Flag{FLAG_L, FLAG_G, FLAG_E} {
		if fl&bit == 0 {
			text[n] = '-'
		}
	}
	return string(text)
}

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%v", MEMORY_SIZE),
	"STACK_TOP":   fmt.Sprintf("%#x", STACK_TOP),
	"SP":          fmt.Sprintf("R%d", REG_SP),
	"FLAG_E":      fmt.Sprintf("%d", uint8(FLAG_E)),
	"FLAG_G":      fmt.Sprintf("%d", uint8(FLAG_G)),
	"FLAG_L":      fmt.Sprintf("%d", uint8(FLAG_L)),
}

// Cpu is the simulation context of a single LS-8 machine. Each Cpu owns
// all of its state, so independent instances may run concurrently.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   Memory                // Addressable memory.
	Register [REGISTER_COUNT]uint8 // Register bank; R7 is the stack pointer.
	Ip       uint8                 // Address of the next instruction.
	Flags    Flag                  // Result of the last CMP.
	Halted   bool                  // Set once HLT has executed.

	Ticks int // Instructions executed since reset.

	channel Channel
}

// NewCpu creates a new CPU in its reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Defines for the cpu.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// SetChannel attaches the observation channel.
func (cpu *Cpu) SetChannel(channel Channel) {
	cpu.channel = channel
}

// GetChannel returns the observation channel.
func (cpu *Cpu) GetChannel() (channel Channel, err error) {
	if cpu.channel == nil {
		err = ErrChannelInvalid
		return
	}

	channel = cpu.channel
	return
}

// Reset the CPU state.
//   - Clears memory, registers and flags.
//   - Seeds the stack pointer with STACK_TOP.
//   - Sets the IP to zero and leaves the halted state.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Memory[:])
	clear(cpu.Register[:])
	cpu.Register[REG_SP] = STACK_TOP
	cpu.Ip = 0
	cpu.Flags = 0
	cpu.Halted = false
	cpu.Ticks = 0
}

// Load copies a program image into memory starting at address zero.
func (cpu *Cpu) Load(data []uint8) (err error) {
	if len(data) > MEMORY_SIZE {
		err = ErrProgramSize
		return
	}

	copy(cpu.Memory[:], data)

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", len(data))
	}

	return
}

// GetRegister returns the value of register index, modulo the register
// count.
func (cpu *Cpu) GetRegister(index uint8) uint8 {
	return cpu.Register[index&REGISTER_MASK]
}

// SetRegister sets register index, modulo the register count.
func (cpu *Cpu) SetRegister(index uint8, value uint8) {
	cpu.Register[index&REGISTER_MASK] = value
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"ip",
		"fl",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
		"stack",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "ip":
			strval = fmt.Sprintf("%02X %v", cpu.Ip, cpu.Disassemble(cpu.Ip))
		case "fl":
			strval = cpu.Flags.String()
			if cpu.Halted {
				strval += " halted"
			}
		case "r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7":
			strval = fmt.Sprintf("%02X", cpu.Register[reg[1]-'0'])
		case "stack":
			if cpu.StackDepth() > 0 {
				strval = fmt.Sprintf("%02X (%d)", cpu.Peek(), cpu.StackDepth())
			} else {
				strval = "--"
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Trace returns a single line snapshot: the IP, the three bytes at the
// IP, and every register.
func (cpu *Cpu) Trace() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "TRACE: %02X |", cpu.Ip)
	for _, value := range cpu.Memory.Slice(int(cpu.Ip), 3) {
		fmt.Fprintf(&sb, " %02X", value)
	}
	sb.WriteString(" |")
	for _, value := range cpu.Register {
		fmt.Fprintf(&sb, " %02X", value)
	}

	return sb.String()
}

// Disassemble returns the instruction at addr in assembly syntax.
func (cpu *Cpu) Disassemble(addr uint8) string {
	code := Code(cpu.Memory.Read(int(addr)))
	if !code.Known() {
		return fmt.Sprintf("DB 0x%02x", uint8(code))
	}

	words := make([]string, code.Operands())
	for n := range words {
		value := cpu.Memory.Read(int(addr) + 1 + n)
		if code.Immediate(n) {
			words[n] = fmt.Sprintf("0x%02x", value)
		} else {
			words[n] = fmt.Sprintf("R%d", value&REGISTER_MASK)
		}
	}

	if len(words) == 0 {
		return code.String()
	}

	return code.String() + " " + strings.Join(words, ",")
}

// isFault is true for errors raised by the instruction itself.
func isFault(err error) bool {
	return errors.Is(err, ErrOpcodeDecode) ||
		errors.Is(err, ErrOpcodeAlu) ||
		errors.Is(err, ErrDivideByZero)
}

// FetchCode fetches the opcode at the instruction pointer.
func (cpu *Cpu) FetchCode() Code {
	return Code(cpu.Memory.Read(int(cpu.Ip)))
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	return cpu.Execute(cpu.FetchCode())
}

// Execute executes a single decoded instruction located at the IP. The
// operand bytes are read from the addresses following the IP.
//
// On error the machine state is left as the failing handler left it and
// the IP is not advanced. Instruction faults are joined with an ErrOpcode
// naming the instruction; channel errors are returned as they are.
func (cpu *Cpu) Execute(code Code) (err error) {
	ip := cpu.Ip

	defer func() {
		if isFault(err) {
			err = errors.Join(ErrOpcode{Ip: ip, Code: code}, err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%02x: %v", ip, cpu.Disassemble(ip))
	}

	a := cpu.Memory.Read(int(ip) + 1)
	b := cpu.Memory.Read(int(ip) + 2)

	var step Step
	if code.IsAlu() {
		err = cpu.doAlu(code, a, b)
		step = cpu.advance(code)
	} else {
		handler, ok := dispatch[code]
		if !ok {
			err = ErrOpcodeDecode
			return
		}
		step, err = handler(cpu, code, a, b)
	}
	if err != nil {
		return
	}

	if step.Jump {
		cpu.Ip = step.Target
	} else {
		cpu.Ip = ip + 1 + uint8(step.Operands)
	}

	cpu.Ticks += 1

	return
}
