package io

import (
	"fmt"
)

const (
	// RING_DEFAULT_CAPACITY is the default capacity in bytes for a new ring.
	RING_DEFAULT_CAPACITY = 256
)

// Ring is a Channel that remembers the most recent output bytes, in the
// form a Console would have written them. Older bytes are overwritten
// once Capacity is reached.
type Ring struct {
	Capacity int

	WriteIndex int // Total bytes ever written.
	Data       []uint8
}

var _ Channel = (*Ring)(nil)

// Rewind empties the ring.
func (ring *Ring) Rewind() {
	if ring.Capacity == 0 {
		ring.Capacity = RING_DEFAULT_CAPACITY
	}
	ring.Data = make([]uint8, ring.Capacity)
	ring.WriteIndex = 0
}

func (ring *Ring) write(values ...uint8) {
	if ring.Data == nil {
		ring.Rewind()
	}

	for _, value := range values {
		ring.Data[ring.WriteIndex%len(ring.Data)] = value
		ring.WriteIndex++
	}
}

// SendNumber records the decimal value followed by a newline.
func (ring *Ring) SendNumber(value uint8) (err error) {
	ring.write(fmt.Appendf(nil, "%d\n", value)...)
	return
}

// SendChar records the raw byte value.
func (ring *Ring) SendChar(value uint8) (err error) {
	ring.write(value)
	return
}

// Bytes returns the retained output, oldest first.
func (ring *Ring) Bytes() (data []uint8) {
	if ring.WriteIndex == 0 {
		return
	}

	size := len(ring.Data)
	if ring.WriteIndex <= size {
		data = append(data, ring.Data[:ring.WriteIndex]...)
		return
	}

	start := ring.WriteIndex % size
	data = append(data, ring.Data[start:]...)
	data = append(data, ring.Data[:start]...)

	return
}

// Dropped returns the number of bytes lost to overwrite.
func (ring *Ring) Dropped() int {
	return max(0, ring.WriteIndex-len(ring.Data))
}
