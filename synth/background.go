package synth

import "fmt"

// Remnant holds the dimensionless spin and the mass of the remnant black hole.
type Remnant struct {
	Spin float64
	Mass float64
}

// Background is the remnant at each time sample. A single entry applies to
// every sample.
type Background []Remnant

// Fixed returns a constant background.
func Fixed(spin, mass float64) Background {
	return Background{{Spin: spin, Mass: mass}}
}

// Track pairs per-sample spins and masses. Either slice may hold a single
// value, which is broadcast against the other.
func Track(spins, masses []float64) (Background, error) {
	n := max(len(spins), len(masses))
	if len(spins) == 0 || len(masses) == 0 ||
		(len(spins) != 1 && len(spins) != n) || (len(masses) != 1 && len(masses) != n) {
		return nil, fmt.Errorf("%w: cannot pair %d spins with %d masses", ErrInvalidArgument, len(spins), len(masses))
	}

	bg := make(Background, n)
	for i := range bg {
		bg[i] = Remnant{Spin: spins[min(i, len(spins)-1)], Mass: masses[min(i, len(masses)-1)]}
	}
	return bg, nil
}

// Constant reports whether every sample sees the same remnant, and returns it.
func (b Background) Constant() (Remnant, bool) {
	if len(b) == 0 {
		return Remnant{}, false
	}
	for _, r := range b[1:] {
		if r != b[0] {
			return Remnant{}, false
		}
	}
	return b[0], true
}

func (b Background) at(i int) Remnant {
	if len(b) == 1 {
		return b[0]
	}
	return b[i]
}

func (b Background) validate(n int) error {
	if len(b) != 1 && len(b) != n {
		return fmt.Errorf("%w: background has %d entries for %d samples", ErrInvalidArgument, len(b), n)
	}
	return nil
}
