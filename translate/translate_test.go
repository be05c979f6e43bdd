package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("halted", From("halted"))
	assert.Equal("bad opcode 0x42", From("bad opcode 0x%02x", 0x42))
	assert.Equal("line 7 'x'", From("line %d '%v'", 7, "x"))
}

func TestNewPrinter(t *testing.T) {
	assert := assert.New(t)

	for _, locales := range [][]string{nil, {}, {"en-US"}, {"fr-FR", "en-GB"}} {
		printer := newPrinter(locales)
		assert.NotNil(printer)
		assert.Equal("address 0x0a", printer.Sprintf("address 0x%02x", 10), locales)
		assert.Equal("macro M line 3", printer.Sprintf("macro %v line %v", "M", 3), locales)
	}
}
