package journal

import (
	"sync/atomic"
)

// SequenceNumberUint is the type of the numbers assigned to entries.
type SequenceNumberUint = uint64

// SequenceGenerator hands out strictly increasing sequence numbers.
type SequenceGenerator interface {
	// Next returns a number that is higher than any number returned or observed before.
	Next() SequenceNumberUint

	// AdvancePast makes sure that Next returns numbers higher than n.
	AdvancePast(n SequenceNumberUint)
}

// Sequence is the default SequenceGenerator, starting at 1.
// The zero value is ready to use. It may be shared by any number of journals.
type Sequence struct {
	last atomic.Uint64
}

// NewSequence creates a Sequence whose first number is 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next implements SequenceGenerator.
func (s *Sequence) Next() SequenceNumberUint {
	return s.last.Add(1)
}

// AdvancePast implements SequenceGenerator.
func (s *Sequence) AdvancePast(n SequenceNumberUint) {
	for {
		last := s.last.Load()
		if last >= n || s.last.CompareAndSwap(last, n) {
			return
		}
	}
}
