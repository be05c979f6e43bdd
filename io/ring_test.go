package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRing_Empty(t *testing.T) {
	assert := assert.New(t)

	ring := &Ring{}
	assert.Nil(ring.Bytes())
	assert.Equal(0, ring.Dropped())

	ring.Rewind()
	assert.Equal(RING_DEFAULT_CAPACITY, ring.Capacity)
	assert.Nil(ring.Bytes())
}

func TestRing_Send(t *testing.T) {
	assert := assert.New(t)

	ring := &Ring{}
	assert.NoError(ring.SendNumber(17))
	assert.NoError(ring.SendChar('A'))
	assert.Equal([]uint8("17\nA"), ring.Bytes())
	assert.Equal(0, ring.Dropped())
}

func TestRing_Wrap(t *testing.T) {
	assert := assert.New(t)

	ring := &Ring{Capacity: 4}
	for _, value := range []byte("abcdefg") {
		assert.NoError(ring.SendChar(value))
	}
	assert.Equal([]uint8("defg"), ring.Bytes())
	assert.Equal(3, ring.Dropped())

	ring.Rewind()
	assert.NoError(ring.SendNumber(200))
	assert.Equal([]uint8("200\n"), ring.Bytes())
}

func TestTee(t *testing.T) {
	assert := assert.New(t)

	var buff bytes.Buffer
	ring := &Ring{}
	ch := Tee(&Console{Output: &buff}, ring)

	assert.NoError(ch.SendNumber(3))
	assert.NoError(ch.SendChar('!'))
	assert.Equal("3\n!", buff.String())
	assert.Equal([]uint8("3\n!"), ring.Bytes())
}

func TestTee_Error(t *testing.T) {
	assert := assert.New(t)

	ring := &Ring{}
	ch := Tee(&Console{}, ring)

	assert.ErrorIs(ch.SendNumber(3), ErrChannelClosed)
	assert.ErrorIs(ch.SendChar('x'), ErrChannelClosed)
	assert.Nil(ring.Bytes())
}
