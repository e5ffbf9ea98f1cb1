// Package matrix defines configuration options for GF(2) matrix
// construction.
package matrix

// MatrixOptions records ancillary settings for GF(2) matrix work:
//   - Seed:            an RNG seed value.
//   - StrassenCutoff:  a Strassen recursion cutoff value.
//   - M4RMK:            a Method-of-Four-Russians block size; 0 stands
//     for "let optK choose".
//
// No function in this package reads a MatrixOptions: NewMatrix takes no
// options, Randomize uses the seed set by SeedRNG, and MulStrassen and
// MulM4RM take their cutoff and k as explicit arguments.
//
// Use NewMatrixOptions to create with default values and overrides.
type MatrixOptions struct {
	Seed           uint64
	StrassenCutoff int
	M4RMK          int
}

// Option configures a MatrixOptions instance.
type Option func(*MatrixOptions)

// WithSeed returns an Option that sets MatrixOptions.Seed.
func WithSeed(seed uint64) Option {
	return func(o *MatrixOptions) { o.Seed = seed }
}

// WithStrassenCutoff returns an Option that sets MatrixOptions.StrassenCutoff.
func WithStrassenCutoff(n int) Option {
	return func(o *MatrixOptions) { o.StrassenCutoff = n }
}

// WithM4RMK returns an Option that sets MatrixOptions.M4RMK.
func WithM4RMK(k int) Option {
	return func(o *MatrixOptions) { o.M4RMK = k }
}

// NewMatrixOptions constructs a MatrixOptions with given Option functions
// applied. Defaults: Seed=1, StrassenCutoff=64, M4RMK=0 (heuristic).
func NewMatrixOptions(opts ...Option) MatrixOptions {
	mo := MatrixOptions{
		Seed:           1,
		StrassenCutoff: 64,
		M4RMK:          0,
	}
	for _, opt := range opts {
		opt(&mo)
	}

	return mo
}
