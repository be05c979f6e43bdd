// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	goio "io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/internal"
	"github.com/ezrec/ls8/io"
)

const (
	STEP_LIMIT_NONE = 0 // No limit on executed instructions.
)

var _emulator_defines = map[string]string{
	"STEP_LIMIT_NONE": fmt.Sprintf("%v", STEP_LIMIT_NONE),
}

// Emulator state. CPU + console + program image.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Assembled listing, if the program came from source.

	Rom     io.Rom     // Program image loaded on reset.
	Console io.Console // Output of PRN and PRA.
	History io.Ring    // Most recent output, kept for fault reports.

	TraceOutput goio.Writer // If set, receives a trace line before each step.
	StepLimit   int         // Maximum instructions per run; STEP_LIMIT_NONE for no limit.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Cpu.SetChannel(io.Tee(&emu.Console, &emu.History))

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		cpu.OpcodeDefines(),
		emu.Rom.Defines(),
	)
}

// Reset the machine and load the program image.
//
// When an assembled Program is present its binary replaces the Rom.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	if emu.Program != nil && len(emu.Program.Opcodes) > 0 {
		emu.Rom.Data = emu.Program.Binary()
		emu.Rom.Comment = emu.Program.Comments()
	}

	emu.Cpu.Reset()
	emu.History.Rewind()

	err = emu.Cpu.Load(emu.Rom.Data)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: reset, %d byte image", len(emu.Rom.Data))
	}

	return
}

// LineNo returns the source line of the instruction at the IP, or zero
// when there is no assembled listing for it.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(emu.Cpu.Ip)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single step of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.Cpu.Halted {
		done = true
		return
	}

	ip := emu.Cpu.Ip
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, LineNo: lineno, Err: err}
		}
	}()

	if emu.StepLimit != STEP_LIMIT_NONE && emu.Cpu.Ticks >= emu.StepLimit {
		err = ErrStepLimit
		return
	}

	if emu.TraceOutput != nil {
		_, err = fmt.Fprintln(emu.TraceOutput, emu.Cpu.Trace())
		if err != nil {
			return
		}
	}

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.Halted

	return
}

// Run ticks the emulator until the program halts or faults.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halted after %d instructions", emu.Cpu.Ticks)
	}

	return
}
