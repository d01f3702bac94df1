package strhash

// Alphabet maps a text byte to its polynomial coefficient. The mapping
// must be injective and must never return 0 for a supported byte: zero
// coefficients make "a" and "aa" collide when the zero character leads.
// Returning ok=false marks the byte as outside the alphabet, which New
// reports as an AlphabetError.
type Alphabet func(c byte) (v uint64, ok bool)

// Lowercase maps 'a'..'z' to 1..26. This is the default alphabet.
func Lowercase(c byte) (uint64, bool) {
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return uint64(c-'a') + 1, true
}

// Letters maps 'a'..'z' to 1..26 and 'A'..'Z' to 27..52.
func Letters(c byte) (uint64, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 1, true
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 27, true
	default:
		return 0, false
	}
}

// Bytes maps every byte b to b+1, supporting arbitrary binary text.
// Pair it with a base above 256 (e.g. WithBase(257)) so that single
// characters cannot alias longer substrings.
func Bytes(c byte) (uint64, bool) {
	return uint64(c) + 1, true
}
