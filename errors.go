package strhash

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyModuli is returned when construction is given no moduli.
	ErrEmptyModuli = errors.New("at least one modulus is required")

	// ErrNonPositiveBase is returned when construction is given a zero
	// or negative base.
	ErrNonPositiveBase = errors.New("base must be positive")

	// ErrPairForm is returned by FingerprintPair when the table carries
	// fewer than two moduli.
	ErrPairForm = errors.New("pair form requires at least two moduli")
)

// RangeError indicates substring bounds outside the table's text.
// The table is unaffected; the caller may retry with corrected bounds.
type RangeError struct {
	Low  int
	High int
	N    int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("substring range [%d, %d] out of bounds for text of length %d", e.Low, e.High, e.N)
}

// ModulusError indicates a modulus that cannot support the scheme: it is
// composite, too small, duplicated, or shares a factor with the base.
// Fermat inversion is only valid for a prime modulus coprime to the base,
// so such a modulus would corrupt every fingerprint silently.
type ModulusError struct {
	Modulus uint64
	Reason  string
}

func (e *ModulusError) Error() string {
	return fmt.Sprintf("modulus %d: %s", e.Modulus, e.Reason)
}

// AlphabetError indicates a text character outside the configured
// alphabet mapping.
type AlphabetError struct {
	Char byte
	Pos  int
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("character %q at position %d is outside the configured alphabet", e.Char, e.Pos)
}
