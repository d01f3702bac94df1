package strhash

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/strhash-go/strhash/internal/modmath"
)

// Fingerprint is the position-independent hash of one substring: an
// ordered tuple of residues, one per modulus. Two fingerprints are equal
// iff every residue matches.
type Fingerprint []uint64

// Equal reports whether f and other hold identical residues.
func (f Fingerprint) Equal(other Fingerprint) bool {
	if len(f) != len(other) {
		return false
	}
	for i := range f {
		if f[i] != other[i] {
			return false
		}
	}
	return true
}

// Pair is the two-modulus fingerprint form. Unlike Fingerprint it is
// comparable, so it can key a map directly.
type Pair struct {
	H1 uint64
	H2 uint64
}

// Table answers O(1) substring fingerprint queries against an immutable
// text after O(n*K) preprocessing, where K is the number of moduli.
//
// A Table never mutates after New returns, so it is safe for concurrent
// readers without synchronization.
type Table struct {
	text   string
	vals   []uint64 // alphabet value per text position
	moduli []uint64
	base   uint64

	prefix [][]uint64 // [k][i]: polynomial prefix hash mod moduli[k]
	pow    [][]uint64 // [k][i]: base^i mod moduli[k]
	invPow [][]uint64 // [k][i]: inverse of base^i mod moduli[k]

	logger *Logger
}

// New builds a fingerprint Table over text.
//
// Defaults match the common competitive-programming configuration: base 31,
// double hashing over DefaultModuli, lowercase alphabet. All of these can
// be overridden with options.
//
// Unless WithoutValidation is set, New verifies that every modulus is a
// prime coprime to the base; the modular-inverse preprocessing silently
// produces garbage fingerprints when that does not hold.
func New(text string, optFns ...Option) (*Table, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(o)
	}

	if len(o.moduli) == 0 {
		return nil, ErrEmptyModuli
	}
	if o.base <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveBase, o.base)
	}
	base := uint64(o.base)

	vals, err := mapText(text, o.alphabet)
	if err != nil {
		return nil, err
	}

	t := &Table{
		text:   text,
		vals:   vals,
		moduli: append([]uint64(nil), o.moduli...),
		base:   base,
		prefix: make([][]uint64, len(o.moduli)),
		pow:    make([][]uint64, len(o.moduli)),
		invPow: make([][]uint64, len(o.moduli)),
		logger: o.logger,
	}

	if o.validate {
		seen := make(map[uint64]struct{}, len(t.moduli))
		for _, m := range t.moduli {
			if _, ok := seen[m]; ok {
				return nil, &ModulusError{Modulus: m, Reason: "duplicate modulus"}
			}
			seen[m] = struct{}{}
		}
	}

	// Per-modulus preprocessing is independent, so moduli build in
	// parallel. Each goroutine writes only its own k slot.
	var g errgroup.Group
	g.SetLimit(len(t.moduli))
	for k := range t.moduli {
		g.Go(func() error {
			return t.buildModulus(k, o.validate)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	t.logger.LogBuild(len(text), len(t.moduli), o.validate)

	return t, nil
}

// buildModulus fills pow, invPow and prefix for modulus index k.
func (t *Table) buildModulus(k int, validate bool) error {
	m := t.moduli[k]
	if m < 2 {
		return &ModulusError{Modulus: m, Reason: "modulus must be at least 2"}
	}
	if validate {
		if !modmath.IsPrime(m) {
			return &ModulusError{Modulus: m, Reason: "modulus is not prime"}
		}
		if t.base%m == 0 {
			return &ModulusError{Modulus: m, Reason: fmt.Sprintf("base %d is a multiple of the modulus", t.base)}
		}
	}

	n := len(t.vals)

	pow := make([]uint64, n+1)
	pow[0] = 1 % m
	for i := 1; i <= n; i++ {
		pow[i] = modmath.Mul(t.base, pow[i-1], m)
	}

	// One Fermat inversion for base^n, then the cheaper backward
	// recurrence inv[i] = inv[i+1] * base for everything below it.
	invPow := make([]uint64, n+1)
	invPow[n] = modmath.Inverse(pow[n], m)
	for i := n - 1; i >= 0; i-- {
		invPow[i] = modmath.Mul(invPow[i+1], t.base, m)
	}

	prefix := make([]uint64, n)
	var run uint64
	for i := 0; i < n; i++ {
		run = modmath.Add(run, modmath.Mul(t.vals[i], pow[i], m), m)
		prefix[i] = run
	}

	t.pow[k] = pow
	t.invPow[k] = invPow
	t.prefix[k] = prefix

	return nil
}

// mapText applies the alphabet mapping to every byte of text.
func mapText(text string, alphabet Alphabet) ([]uint64, error) {
	vals := make([]uint64, len(text))
	for i := 0; i < len(text); i++ {
		v, ok := alphabet(text[i])
		if !ok || v == 0 {
			return nil, &AlphabetError{Char: text[i], Pos: i}
		}
		vals[i] = v
	}
	return vals, nil
}

// Len returns the length of the underlying text.
func (t *Table) Len() int {
	return len(t.text)
}

// Text returns the underlying text.
func (t *Table) Text() string {
	return t.text
}

// Base returns the polynomial base.
func (t *Table) Base() uint64 {
	return t.base
}

// Moduli returns a copy of the configured moduli, in order.
func (t *Table) Moduli() []uint64 {
	return append([]uint64(nil), t.moduli...)
}

func (t *Table) checkRange(l, r int) error {
	if l < 0 || r >= len(t.text) || l > r {
		return &RangeError{Low: l, High: r, N: len(t.text)}
	}
	return nil
}

// residue computes the position-independent residue of text[l..r] for
// modulus index k. Bounds must already be validated.
//
// prefix[r] - prefix[l-1] is base^l times the polynomial value of the
// substring; multiplying by invPow[l] divides that factor out, so equal
// substrings at different offsets land on the same residue.
func (t *Table) residue(k, l, r int) uint64 {
	m := t.moduli[k]
	high := t.prefix[k][r]
	var low uint64
	if l > 0 {
		low = t.prefix[k][l-1]
	}
	return modmath.Mul(modmath.Sub(high, low, m), t.invPow[k][l], m)
}

// Fingerprint returns the fingerprint of text[l..r] (0-based, inclusive
// bounds). The result has one residue per configured modulus.
func (t *Table) Fingerprint(l, r int) (Fingerprint, error) {
	if err := t.checkRange(l, r); err != nil {
		return nil, err
	}
	fp := make(Fingerprint, len(t.moduli))
	for k := range t.moduli {
		fp[k] = t.residue(k, l, r)
	}
	return fp, nil
}

// FingerprintPair is the double-hashing fast path: it returns the first
// two residues of Fingerprint(l, r) without allocating. The table must
// carry at least two moduli.
func (t *Table) FingerprintPair(l, r int) (Pair, error) {
	if len(t.moduli) < 2 {
		return Pair{}, ErrPairForm
	}
	if err := t.checkRange(l, r); err != nil {
		return Pair{}, err
	}
	return Pair{
		H1: t.residue(0, l, r),
		H2: t.residue(1, l, r),
	}, nil
}

// Equal reports whether text[l1..r1] and text[l2..r2] have identical
// fingerprints. Substrings of different lengths never compare equal.
// Like any fingerprint comparison this can report a false positive with
// probability on the order of 1/product(moduli).
func (t *Table) Equal(l1, r1, l2, r2 int) (bool, error) {
	if r1-l1 != r2-l2 {
		if err := t.checkRange(l1, r1); err != nil {
			return false, err
		}
		if err := t.checkRange(l2, r2); err != nil {
			return false, err
		}
		return false, nil
	}
	a, err := t.Fingerprint(l1, r1)
	if err != nil {
		return false, err
	}
	b, err := t.Fingerprint(l2, r2)
	if err != nil {
		return false, err
	}
	return a.Equal(b), nil
}
