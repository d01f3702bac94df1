// Package strhash implements position-independent substring fingerprinting
// over an immutable text: after O(n*K) preprocessing, the fingerprint of
// any substring is answered in O(1), and identical substrings at different
// offsets always fingerprint equal.
//
// # Scheme
//
// The text is treated as the coefficients of a polynomial evaluated at a
// fixed base and reduced modulo K large primes ("double hashing" at the
// default K=2). For each modulus the table precomputes prefix hashes, base
// powers and modular inverse powers, so a substring query is a subtraction
// plus one multiplication by an inverse power:
//
//	hash(s[l..r]) = (prefix[r] - prefix[l-1]) * base^-l  (mod p)
//
// Dividing out base^l is what makes the fingerprint independent of where
// the substring occurs.
//
// # Usage
//
//	t, err := strhash.New("abacaba")
//	if err != nil { ... }
//	a, _ := t.FingerprintPair(0, 2) // "aba"
//	b, _ := t.FingerprintPair(4, 6) // "aba"
//	if a == b { ... } // equal with overwhelming probability
//
// # Guarantees
//
// Equal substrings never fingerprint different (no false negatives).
// Distinct substrings fingerprint equal with probability on the order of
// 1/product(moduli) per comparison; add moduli via WithModuli to shrink
// it further. This is a probabilistic equality test, not a MAC: none of
// it is cryptographically secure.
//
// A Table is immutable after New and safe for unsynchronized concurrent
// readers. There is no append or update; a changed text needs a new Table.
//
// # Subpackages
//
// Package hashkey turns fingerprints into well-mixed, per-process-seeded
// map keys that resist adversarial collision flooding. Package substridx
// indexes all fixed-length substrings of a table by fingerprint.
package strhash
