package cpu

import (
	"iter"
	"strings"
)

// Opcode is one assembled line: its source location and the bytes it
// generated.
type Opcode struct {
	LineNo    int
	Ip        int
	Words     []string
	Bytes     []uint8
	LinkLabel string // Label resolved into the final byte at link time.
}

// Program is an assembled listing.
type Program struct {
	Opcodes []Opcode
}

// Debug locates the listing entry covering an address.
type Debug struct {
	*Opcode
	Index int
}

func (prog *Program) Debug(ip uint8) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(ip) >= op.Ip && int(ip) < op.Ip+len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(ip) - op.Ip,
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program.
func (prog *Program) Binary() (bins []uint8) {
	for _, value := range prog.Bytes() {
		bins = append(bins, value)
	}

	return
}

// Bytes iterates over every generated byte and its address.
func (prog *Program) Bytes() iter.Seq2[int, uint8] {
	return func(yield func(ip int, value uint8) bool) {
		for _, op := range prog.Opcodes {
			for n, value := range op.Bytes {
				if !yield(op.Ip+n, value) {
					return
				}
			}
		}
	}
}

// Comments returns the source text of each entry keyed by its address.
func (prog *Program) Comments() (comments map[int]string) {
	comments = make(map[int]string, len(prog.Opcodes))
	for _, op := range prog.Opcodes {
		comments[op.Ip] = strings.Join(op.Words, " ")
	}

	return
}
