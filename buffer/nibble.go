package buffer

// NibbleState is the fill level of a NibbleInput.
type NibbleState uint8

const (
	NibbleEmpty NibbleState = iota
	NibbleOneDigit
	NibbleComplete
)

// NibbleInput accumulates the two hex digits of one byte.
type NibbleInput struct {
	State NibbleState
	Value byte
}

// Push adds digit (0..15) as the next nibble. Pushing onto a complete input
// starts over with digit as the high nibble.
func (n NibbleInput) Push(digit byte) NibbleInput {
	digit &= 0x0F
	switch n.State {
	case NibbleOneDigit:
		return NibbleInput{State: NibbleComplete, Value: n.Value<<4 | digit}
	default:
		return NibbleInput{State: NibbleOneDigit, Value: digit}
	}
}

// Byte returns the assembled byte once both nibbles are present.
func (n NibbleInput) Byte() (byte, bool) {
	if n.State != NibbleComplete {
		return 0, false
	}
	return n.Value, true
}

// String renders the pending digits as two cells, '_' marking an empty slot.
func (n NibbleInput) String() string {
	const digits = "0123456789ABCDEF"
	switch n.State {
	case NibbleOneDigit:
		return string([]byte{digits[n.Value&0x0F], '_'})
	case NibbleComplete:
		return string([]byte{digits[n.Value>>4], digits[n.Value&0x0F]})
	default:
		return "__"
	}
}
