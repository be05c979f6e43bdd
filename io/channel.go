// Package io provides the I/O side of the LS-8 machine: the observation
// channel that PRN and PRA write to, and the Rom that carries a program
// image in its binary-literal text form.
package io

// Channel is the output side of the machine. The CPU never reads from it,
// so a Channel must not affect execution.
type Channel interface {
	// SendNumber emits a value as a decimal number on its own line.
	SendNumber(value uint8) error
	// SendChar emits a value as a single character.
	SendChar(value uint8) error
}
