package ballpit

import (
	"github.com/bits-and-blooms/bitset"
)

// Contacts marks which bodies collided during the current frame. It only
// feeds rendering and is cleared at the start of every step.
type Contacts struct {
	bits *bitset.BitSet
}

func NewContacts(n int) *Contacts {
	return &Contacts{bits: bitset.New(uint(n))}
}

func (c *Contacts) Reset(n int) {
	if c.bits == nil {
		c.bits = bitset.New(uint(n))
		return
	}
	c.bits.ClearAll()
}

func (c *Contacts) Mark(p Pair) {
	c.bits.Set(uint(p.I)).Set(uint(p.J))
}

func (c *Contacts) Has(i int) bool {
	if c == nil || c.bits == nil || i < 0 {
		return false
	}
	return c.bits.Test(uint(i))
}

func (c *Contacts) Count() int {
	if c == nil || c.bits == nil {
		return 0
	}
	return int(c.bits.Count())
}
