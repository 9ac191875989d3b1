package identicon

import (
	"github.com/jmylchreest/identicon/internal/colour"
)

// Coloured is the pipeline stage after the fill colour has been picked.
type Coloured struct {
	seed Seed
	rgb  colour.RGB
}

// PickColour takes the fill colour from the first three seed bytes.
func (s Seeded) PickColour() Coloured {
	return Coloured{
		seed: s.seed,
		rgb:  colour.RGB{R: s.seed[0], G: s.seed[1], B: s.seed[2]},
	}
}

// Seed returns the seed.
func (c Coloured) Seed() Seed {
	return c.seed
}

// RGB returns the fill colour.
func (c Coloured) RGB() colour.RGB {
	return c.rgb
}

// Descriptor returns a snapshot of the stage.
func (c Coloured) Descriptor() Descriptor {
	d := newDescriptor(StageColoured, c.seed)
	d.RGB = &c.rgb
	return d
}
