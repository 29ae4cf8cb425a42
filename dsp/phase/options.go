package phase

import "github.com/cwbudde/algo-tasar/dsp/core"

// Option mutates the constant set used by [New].
type Option func(*Constants)

// WithPlanck overrides the Planck constant. Non-positive or non-finite values are ignored.
func WithPlanck(h float64) Option {
	return func(c *Constants) {
		if core.Positive(h) {
			c.Planck = h
		}
	}
}

// WithBoltzmann overrides the Boltzmann constant. Non-positive or non-finite values are ignored.
func WithBoltzmann(kb float64) Option {
	return func(c *Constants) {
		if core.Positive(kb) {
			c.Boltzmann = kb
		}
	}
}

// WithEuler overrides the Euler capacity factor. Non-positive or non-finite values are ignored.
func WithEuler(e float64) Option {
	return func(c *Constants) {
		if core.Positive(e) {
			c.Euler = e
		}
	}
}

// WithConstants applies every field of src under the same rules as the
// single-constant options.
func WithConstants(src Constants) Option {
	return func(c *Constants) {
		WithPlanck(src.Planck)(c)
		WithBoltzmann(src.Boltzmann)(c)
		WithEuler(src.Euler)(c)
	}
}

// ApplyOptions applies zero or more options to the default constants.
func ApplyOptions(opts ...Option) Constants {
	c := DefaultConstants()
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}
