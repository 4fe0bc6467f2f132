package domain

// Cursor is the allocation-free counterpart to All/VisitAll: it walks
// the same seventeen generators in the same fixed order, but hands out
// a borrowed PermutationRef per step instead of an owned Permutation,
// reusing a single caller-supplied buffer across the whole walk.
//
// Candidate strings for the generator currently being walked are
// computed eagerly, one generator at a time, the same way All does it;
// what Cursor saves over All is not candidate computation but
// allocation of the validated results themselves — each surfaced
// candidate is copied into buf exactly once, in place, rather than
// returned as an independently heap-allocated Domain/Permutation. Each
// candidate is still validated through reparse, which builds an owned
// Domain via the public suffix list and allocates accordingly; buf
// itself is never reallocated except to grow to fit a longer candidate
// than it currently holds.
type Cursor struct {
	d      Domain
	filter FilterRef
	buf    []byte

	stage      int
	loaded     bool
	candidates []string
	candIdx    int

	current    PermutationRef
	hasCurrent bool
	done       bool
}

// NewCursor builds a Cursor over d's full generator sequence. buf is
// reused as the backing store for every Ref handed out by Current; a
// nil or short buf is grown as needed.
func NewCursor(d Domain, filter FilterRef, buf []byte) *Cursor {
	return &Cursor{d: d, filter: filter, buf: buf}
}

// Advance moves to the next permutation that passes the cursor's
// filter, returning false once every generator is exhausted. The Ref
// returned by the previous Current call is invalidated by this call.
func (c *Cursor) Advance() bool {
	if c.done {
		c.hasCurrent = false
		return false
	}
	for {
		if !c.loaded {
			if c.stage >= len(generatorOrder) {
				c.done = true
				c.hasCurrent = false
				return false
			}
			c.candidates = c.d.candidates(generatorOrder[c.stage])
			c.candIdx = 0
			c.loaded = true
		}

		for c.candIdx < len(c.candidates) {
			candidate := c.candidates[c.candIdx]
			c.candIdx++

			nd, err := c.d.reparse(candidate)
			if err != nil {
				continue
			}

			if l := len(nd.FQDN); cap(c.buf) < l {
				c.buf = make([]byte, l)
			} else {
				c.buf = c.buf[:l]
			}
			copy(c.buf, nd.FQDN)

			tldStart, tldLen, labelStart, labelLen := locate(c.buf, nd.TLD)
			ref := Ref{
				buf:        c.buf,
				fqdnStart:  0,
				fqdnLen:    len(c.buf),
				tldStart:   tldStart,
				tldLen:     tldLen,
				labelStart: labelStart,
				labelLen:   labelLen,
			}

			if !c.filter.MatchesRef(ref) {
				continue
			}

			c.current = PermutationRef{Domain: ref, Kind: generatorOrder[c.stage]}
			c.hasCurrent = true
			return true
		}

		c.stage++
		c.loaded = false
	}
}

// Current returns the permutation most recently reached by Advance.
// ok is false if Advance has not yet been called, or has returned
// false.
func (c *Cursor) Current() (PermutationRef, bool) {
	return c.current, c.hasCurrent
}
