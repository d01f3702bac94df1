package strhash

// DefaultBase is the polynomial base used when WithBase is not given.
// 31 exceeds the default lowercase alphabet size and is coprime to the
// default moduli.
const DefaultBase = 31

// DefaultModuli are the primes used when WithModuli is not given. Two
// moduli ("double hashing") push the false-positive rate of fingerprint
// equality to roughly 1e-17 per comparison.
var DefaultModuli = []uint64{1_000_000_009, 100_000_007}

type options struct {
	moduli   []uint64
	base     int64
	alphabet Alphabet
	validate bool
	logger   *Logger
}

func defaultOptions() *options {
	return &options{
		moduli:   DefaultModuli,
		base:     DefaultBase,
		alphabet: Lowercase,
		validate: true,
		logger:   NoopLogger(),
	}
}

// Option configures Table construction.
type Option func(*options)

// WithModuli replaces the default moduli. Order matters: residue k of
// every fingerprint is taken mod moduli[k], and FingerprintPair uses the
// first two. Each modulus must be a prime that does not divide the base;
// unless WithoutValidation is set, New checks this.
//
// Adding moduli lowers the collision probability at a proportional cost
// in preprocessing time and memory.
func WithModuli(moduli ...uint64) Option {
	return func(o *options) {
		o.moduli = moduli
	}
}

// WithBase replaces the default polynomial base. The base must be
// positive, larger than the biggest alphabet coefficient, and coprime to
// every modulus.
func WithBase(base int) Option {
	return func(o *options) {
		o.base = int64(base)
	}
}

// WithAlphabet replaces the default Lowercase mapping.
//
// If a is nil, Lowercase is used.
func WithAlphabet(a Alphabet) Option {
	return func(o *options) {
		if a == nil {
			a = Lowercase
		}
		o.alphabet = a
	}
}

// WithoutValidation skips the primality and coprimality checks on the
// moduli. Construction gets cheaper for very large primes, but a
// composite modulus then corrupts every fingerprint silently instead of
// failing at New.
func WithoutValidation() Option {
	return func(o *options) {
		o.validate = false
	}
}

// WithLogger configures structured logging for construction.
//
// If l is nil, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
