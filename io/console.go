package io

import (
	"fmt"
	"io"
)

// Console is a line oriented Channel that writes to an io.Writer.
type Console struct {
	Output io.Writer

	Lines int // Count of SendNumber lines emitted.
}

var _ Channel = (*Console)(nil)

// SendNumber writes the decimal value followed by a newline.
func (con *Console) SendNumber(value uint8) (err error) {
	if con.Output == nil {
		return ErrChannelClosed
	}

	_, err = fmt.Fprintf(con.Output, "%d\n", value)
	if err != nil {
		return
	}

	con.Lines++

	return
}

// SendChar writes the raw byte value.
func (con *Console) SendChar(value uint8) (err error) {
	if con.Output == nil {
		return ErrChannelClosed
	}

	_, err = con.Output.Write([]byte{value})

	return
}
