package pancam

import (
	"maps"
	"slices"
)

const (
	// DefaultHistorySize keeps only the pair of samples a difference is
	// computed from.
	DefaultHistorySize = 2
	minHistorySize     = 2
)

// Contact is one active pointer interaction. It keeps a fixed-capacity ring
// of its most recent samples; the ring is never empty while the contact
// exists.
type Contact struct {
	ID int

	samples []Sample
	pos     int // next write index
	full    bool
	count   int // samples observed over the contact's life
}

// newContact seeds the history with s twice so Previous and Latest are valid
// before a second real sample arrives.
func newContact(id int, s Sample, size int) *Contact {
	if size < minHistorySize {
		size = minHistorySize
	}
	c := &Contact{ID: id, samples: make([]Sample, size)}
	c.push(s)
	c.push(s)
	return c
}

func (c *Contact) push(s Sample) {
	c.samples[c.pos] = s
	c.pos++
	if c.pos >= len(c.samples) {
		c.pos = 0
		c.full = true
	}
	c.count++
}

// Len returns the number of samples currently retained.
func (c *Contact) Len() int {
	if c.full {
		return len(c.samples)
	}
	return c.pos
}

// Count returns the number of samples recorded since the press, including the
// duplicated press sample.
func (c *Contact) Count() int {
	return c.count
}

// at returns the i-th most recent sample (0 = latest).
func (c *Contact) at(i int) Sample {
	n := len(c.samples)
	return c.samples[(c.pos-1-i+2*n)%n]
}

// Latest returns the most recent sample.
func (c *Contact) Latest() Sample {
	return c.at(0)
}

// Previous returns the sample recorded before Latest.
func (c *Contact) Previous() Sample {
	return c.at(1)
}

// Samples returns the retained samples, oldest first.
func (c *Contact) Samples() []Sample {
	n := c.Len()
	out := make([]Sample, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = c.at(i)
	}
	return out
}

// Difference returns the change between the two most recent samples.
func (c *Contact) Difference() PointerDifference {
	return Difference(c.Previous(), c.Latest())
}

func (c *Contact) clone() *Contact {
	cp := *c
	cp.samples = slices.Clone(c.samples)
	return &cp
}

// Registry maps contact IDs to their contacts. Iteration order is not
// meaningful; use IDs for a stable order.
type Registry map[int]*Contact

// IDs returns the registered contact IDs in ascending order.
func (r Registry) IDs() []int {
	return slices.Sorted(maps.Keys(r))
}

// Clone returns a deep copy of r.
func (r Registry) Clone() Registry {
	out := make(Registry, len(r))
	for id, c := range r {
		out[id] = c.clone()
	}
	return out
}
