package io

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"maps"
	"strconv"
	"strings"
)

const (
	ROM_SIZE       = 256 // Largest image that fits the machine's memory.
	ROM_COMMENT    = "#" // Comment marker in the image text format.
	ROM_DIGITS_MAX = 8   // Binary digits in a single byte literal.
)

// Rom holds a program image: the bytes loaded into memory starting at
// address zero.
type Rom struct {
	Data    []uint8
	Comment map[int]string // Optional per-address comments for Store.
}

// Defines returns the image defines.
func (rom *Rom) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"ROM_SIZE": fmt.Sprintf("%v", ROM_SIZE),
	})
}

// Load replaces the image with the one read from input.
//
// Each line is blank, a comment (everything after '#' is dropped), or a
// binary literal of one to eight '0'/'1' digits naming a single byte.
func (rom *Rom) Load(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var data []uint8
	var lineno int
	var line string

	defer func() {
		if err != nil {
			err = &ErrImage{LineNo: lineno, Line: line, Err: err}
		}
	}()

	for scanner.Scan() {
		lineno++
		line = scanner.Text()

		text, _, _ := strings.Cut(line, ROM_COMMENT)
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}

		if len(text) > ROM_DIGITS_MAX || strings.Trim(text, "01") != "" {
			err = ErrImageSyntax
			return
		}

		var value uint64
		value, err = strconv.ParseUint(text, 2, 8)
		if err != nil {
			err = ErrImageSyntax
			return
		}

		if len(data) == ROM_SIZE {
			err = ErrImageSize
			return
		}

		data = append(data, uint8(value))
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	rom.Data = data
	clear(rom.Comment)

	return
}

// Store writes the image in the text format accepted by Load.
func (rom *Rom) Store(output io.Writer) (err error) {
	w := bufio.NewWriter(output)

	for addr, value := range rom.Data {
		comment, ok := rom.Comment[addr]
		if ok {
			_, err = fmt.Fprintf(w, "%08b %s %s\n", value, ROM_COMMENT, comment)
		} else {
			_, err = fmt.Fprintf(w, "%08b\n", value)
		}
		if err != nil {
			return
		}
	}

	return w.Flush()
}

