package sequence

import "github.com/sarchlab/dynseq/naming"

// Builder can build sequences.
type Builder struct {
	capacity int
	data     []string
}

// MakeBuilder creates a builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		capacity: DefaultCapacity,
	}
}

// WithCapacity sets the initial capacity. Values that are not positive fall
// back to DefaultCapacity at build time.
func (b Builder) WithCapacity(n int) Builder {
	b.capacity = n
	return b
}

// WithData makes the built sequence take over data as its backing store, with
// the same ownership rules as FromSlice. Non-empty data overrides the
// capacity.
func (b Builder) WithData(data []string) Builder {
	b.data = data
	return b
}

// Build creates a sequence with the given name. It panics if the name is not
// valid.
func (b Builder) Build(name string) *Sequence {
	s := &Sequence{
		NamedBase: naming.MakeNamedBase(name),
	}

	if len(b.data) > 0 {
		s.storage = b.data
		s.length = len(b.data)

		return s
	}

	capacity := b.capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	s.storage = make([]string, capacity)

	return s
}
