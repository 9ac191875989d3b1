package identicon

import (
	"crypto/md5" // #nosec G501 -- see identicon.go
)

// Seeded is the first pipeline stage: only the seed is known.
type Seeded struct {
	seed Seed
}

// Hash derives the seed for input from the MD5 digest of its raw bytes.
// The empty string is a valid input.
func Hash(input string) Seeded {
	return Seeded{seed: md5.Sum([]byte(input))} // #nosec G401
}

// Seed returns the seed.
func (s Seeded) Seed() Seed {
	return s.seed
}

// Descriptor returns a snapshot of the stage.
func (s Seeded) Descriptor() Descriptor {
	return newDescriptor(StageSeeded, s.seed)
}
