package watchface

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// VariantCount is the number of variants every edition cycles through.
const VariantCount = 3

var ErrTooFewVariants = errors.New("variant selector needs at least two variants")

// Source draws uniform integers in [0, n). *rand.Rand satisfies it.
//
// Source must not be degenerate: one that keeps returning the current
// variant makes Selector.Next loop forever.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG source. A zero seed is replaced by a random one.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Current is the selector state: unset before the first selection, then one
// of the variant indices.
type Current struct {
	index int
	set   bool
}

// Index returns the active variant. ok is false while unset.
func (c Current) Index() (index int, ok bool) { return c.index, c.set }

func (c Current) String() string {
	if !c.set {
		return "unset"
	}
	return fmt.Sprintf("%d", c.index)
}

// Selector picks a new variant on every call, never the one currently
// active. The first pick after construction accepts any draw.
type Selector struct {
	n       int
	source  Source
	current Current
	draws   int
}

func NewSelector(n int, source Source) (*Selector, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVariants, n)
	}
	if source == nil {
		return nil, errors.New("variant selector needs a random source")
	}
	return &Selector{n: n, source: source}, nil
}

func (s *Selector) Current() Current { return s.current }

// Draws is the total number of candidates drawn, rejected ones included.
func (s *Selector) Draws() int { return s.draws }

// Next draws candidates until one differs from the current variant, makes
// it current and returns it.
func (s *Selector) Next() int {
	candidate := s.draw()
	if s.current.set {
		for candidate == s.current.index {
			candidate = s.draw()
		}
	}
	s.current = Current{index: candidate, set: true}
	return candidate
}

func (s *Selector) draw() int {
	s.draws++
	return s.source.IntN(s.n)
}
