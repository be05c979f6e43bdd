// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
)

// Process exit codes.
const (
	EXIT_HALT   = 0 // Program executed HLT.
	EXIT_USAGE  = 1 // Bad invocation.
	EXIT_FAULT  = 2 // Load error, or unknown opcode.
	EXIT_ALU    = 3 // Unknown ALU operation.
	EXIT_ARITH  = 4 // Division by zero.
	EXIT_LIMIT  = 5 // Step limit exceeded.
	EXIT_OUTPUT = 6 // Console write failure.
)

func main() {
	os.Exit(run(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}

// exitCode maps a runtime error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return EXIT_HALT
	case errors.Is(err, cpu.ErrOpcodeAlu):
		return EXIT_ALU
	case errors.Is(err, cpu.ErrDivideByZero):
		return EXIT_ARITH
	case errors.Is(err, emulator.ErrStepLimit):
		return EXIT_LIMIT
	case errors.Is(err, cpu.ErrOpcodeDecode):
		return EXIT_FAULT
	default:
		return EXIT_OUTPUT
	}
}

func run(name string, args []string, stdout io.Writer, stderr io.Writer) int {
	var compile string
	var output string
	var save bool
	var trace bool
	var verbose bool
	var limit int

	logger := log.New(stderr, "", 0)

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: %v [options] [PROGRAM.ls8]\n", name)
		flags.PrintDefaults()
	}

	flags.StringVar(&compile, "c", "", ".asm file to assemble")
	flags.StringVar(&output, "o", "-", "Image output when saving")
	flags.BoolVar(&save, "s", false, "Save assembled image, do not execute")
	flags.BoolVar(&trace, "t", false, "Trace each step to stderr")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.IntVar(&limit, "n", emulator.STEP_LIMIT_NONE, "Step limit (0 for none)")

	err := flags.Parse(args)
	if err != nil {
		return EXIT_USAGE
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.StepLimit = limit
	emu.Console.Output = stdout
	if trace {
		emu.TraceOutput = stderr
	}

	switch {
	case len(compile) != 0 && flags.NArg() == 0:
		// Assemble a new image.
		inf, err := os.Open(compile)
		if err != nil {
			logger.Printf("%v: %v", compile, err)
			return EXIT_FAULT
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for equ, value := range emu.Defines() {
			asm.Predefine(equ, value)
		}
		emu.Program, err = asm.Parse(inf)
		if err != nil {
			logger.Printf("%v: %v", compile, err)
			return EXIT_FAULT
		}
		emu.Rom.Data = emu.Program.Binary()
		emu.Rom.Comment = emu.Program.Comments()
	case len(compile) == 0 && flags.NArg() == 1:
		image := flags.Arg(0)
		inf, err := os.Open(image)
		if err != nil {
			logger.Printf("%v: %v", image, err)
			return EXIT_FAULT
		}
		defer inf.Close()

		err = emu.Rom.Load(inf)
		if err != nil {
			logger.Printf("%v: %v", image, err)
			return EXIT_FAULT
		}
	default:
		flags.Usage()
		return EXIT_USAGE
	}

	if save {
		ouf := stdout
		if output != "-" {
			file, err := os.Create(output)
			if err != nil {
				logger.Printf("%v: %v", output, err)
				return EXIT_FAULT
			}
			defer file.Close()
			ouf = file
		}
		err = emu.Rom.Store(ouf)
		if err != nil {
			logger.Printf("%v: %v", output, err)
			return EXIT_OUTPUT
		}
		return EXIT_HALT
	}

	err = emu.Reset()
	if err != nil {
		logger.Printf("%v", err)
		return EXIT_FAULT
	}

	err = emu.Run()
	if err != nil {
		logger.Printf("%v", err)
		if verbose {
			logger.Print(emu.Cpu.String())
			if emu.History.Dropped() > 0 {
				logger.Printf("output (last %d bytes): %q", len(emu.History.Data), emu.History.Bytes())
			} else {
				logger.Printf("output: %q", emu.History.Bytes())
			}
		}
	}

	return exitCode(err)
}
