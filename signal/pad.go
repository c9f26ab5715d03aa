package signal

import "fmt"

// CausalPad prepends amount zero-valued time steps to every batch element
// of s. Batch size and channel count are unchanged; the output time
// length is s.Len() + amount. An amount of 0 returns a plain copy.
func CausalPad(s *Signal, amount int) (*Signal, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPad, amount)
	}

	out, err := New(s.batch, s.length+amount, s.channels)
	if err != nil {
		return nil, err
	}

	offset := amount * s.channels
	for b := 0; b < s.batch; b++ {
		copy(out.frame(b)[offset:], s.frame(b))
	}

	return out, nil
}

// RightPad appends amount zero-valued time steps to every batch element
// of s. Batch size and channel count are unchanged; the output time
// length is s.Len() + amount. An amount of 0 returns a plain copy.
func RightPad(s *Signal, amount int) (*Signal, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPad, amount)
	}

	out, err := New(s.batch, s.length+amount, s.channels)
	if err != nil {
		return nil, err
	}

	for b := 0; b < s.batch; b++ {
		copy(out.frame(b), s.frame(b))
	}

	return out, nil
}

// TrimTail removes the final amount time steps from every batch element
// of s. The amount must be in [0, s.Len()].
func TrimTail(s *Signal, amount int) (*Signal, error) {
	if amount < 0 || amount > s.length {
		return nil, fmt.Errorf("%w: %d of %d time steps", ErrInvalidTrim, amount, s.length)
	}

	out, err := New(s.batch, s.length-amount, s.channels)
	if err != nil {
		return nil, err
	}

	n := out.length * out.channels
	for b := 0; b < s.batch; b++ {
		copy(out.frame(b), s.frame(b)[:n])
	}

	return out, nil
}
