package io

// tee fans each send out to every channel in order.
type tee []Channel

// Tee returns a Channel that sends to each of channels in turn, stopping
// at the first error.
func Tee(channels ...Channel) Channel {
	return tee(channels)
}

func (t tee) SendNumber(value uint8) (err error) {
	for _, ch := range t {
		err = ch.SendNumber(value)
		if err != nil {
			return
		}
	}
	return
}

func (t tee) SendChar(value uint8) (err error) {
	for _, ch := range t {
		err = ch.SendChar(value)
		if err != nil {
			return
		}
	}
	return
}
