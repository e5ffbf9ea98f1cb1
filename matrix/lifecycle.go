// SPDX-License-Identifier: MIT
// Package matrix: library lifecycle and RNG (component I).
//
// Grounded on misc.c's m4ri_init/m4ri_fini (GCC constructor/destructor
// attributes building and tearing down the global Gray-code codebook) and
// m4ri_random_word. Go has no load-time constructor hook, so InitLibrary
// is called explicitly by callers who want to pay the table-build cost
// up front; every M4RM/M4RI entry point self-initializes via the same
// sync.Once regardless, so InitLibrary is an optimization, not a
// requirement.

package matrix

import (
	"math/rand"
	"sync"
)

var (
	codebookOnce sync.Once
	codebookMu   sync.Mutex
	codebook     []*grayTable // codebook[k] is the table for block size k, nil for unbuilt k
	rng          *rand.Rand
	rngSeed      uint64 = 1
)

// buildAllCodes builds Gray-code tables for k = 1..MaxKay, mirroring
// m4ri_build_all_codes.
func buildAllCodes() {
	tables := make([]*grayTable, MaxKay+1)
	for k := 1; k <= MaxKay; k++ {
		tables[k] = buildCode(k)
	}
	codebookMu.Lock()
	codebook = tables
	rng = rand.New(rand.NewSource(int64(rngSeed)))
	codebookMu.Unlock()
}

// InitLibrary eagerly builds the Gray-code tables and seeds the package
// RNG. Optional: every operation that needs a table builds it lazily on
// first use regardless, via the same sync.Once.
func InitLibrary() {
	codebookOnce.Do(buildAllCodes)
}

// FiniLibrary tears down the Gray-code tables, allowing a subsequent
// InitLibrary (or lazy first use) to rebuild them from scratch — legal,
// per spec, if unusual. Intended for tests/benchmarks that want a clean
// slate, not something production callers need to invoke.
func FiniLibrary() {
	codebookMu.Lock()
	codebook = nil
	codebookMu.Unlock()
	codebookOnce = sync.Once{}
}

// tableFor returns the Gray-code table for block size k, building the
// full codebook on first use if necessary.
func tableFor(k int) *grayTable {
	InitLibrary()
	codebookMu.Lock()
	t := codebook[k]
	codebookMu.Unlock()
	return t
}

// SeedRNG sets the seed used by the next InitLibrary-triggered table
// build's random source, and reseeds it immediately if already built.
func SeedRNG(seed uint64) {
	codebookMu.Lock()
	rngSeed = seed
	if codebook != nil {
		rng = rand.New(rand.NewSource(int64(seed)))
	}
	codebookMu.Unlock()
}

// randomWord returns a pseudo-random 64-bit word from the package RNG,
// the Go analogue of m4ri_random_word's three-call random() composition;
// math/rand's Uint64 already yields a full 64-bit random word, so no
// multi-call XOR composition is needed here.
func randomWord() uint64 {
	InitLibrary()
	codebookMu.Lock()
	v := rng.Uint64()
	codebookMu.Unlock()
	return v
}

// Randomize fills m with uniformly random bits, respecting row width and
// masking off any don't-care bits beyond ncols in the last word of each row.
func (m *Matrix) Randomize() {
	for i := 0; i < m.nrows; i++ {
		base := m.rows[i]
		for w := 0; w < m.width; w++ {
			v := randomWord()
			if w == 0 {
				v &= m.lowBitmask
			}
			if w == m.width-1 {
				v &= m.highBitmask
			}
			m.block[base+w] = v
		}
	}
}
