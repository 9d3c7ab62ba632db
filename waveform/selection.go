package waveform

import "slices"

// ModeSelection chooses which (ℓ, m) modes take part in a fit or a score:
// either every mode of a waveform ([AllModes]) or an explicit list
// ([ModeList]). The zero value selects all modes.
type ModeSelection struct {
	list  []LM
	isSet bool
}

// AllModes selects every mode.
func AllModes() ModeSelection {
	return ModeSelection{}
}

// ModeList selects exactly the given modes. Duplicates are dropped.
func ModeList(modes ...LM) ModeSelection {
	list := make([]LM, 0, len(modes))
	for _, lm := range modes {
		if !slices.Contains(list, lm) {
			list = append(list, lm)
		}
	}
	return ModeSelection{list: list, isSet: true}
}

// IsAll reports whether the selection includes every mode.
func (s ModeSelection) IsAll() bool {
	return !s.isSet
}

// Contains reports whether lm is selected.
func (s ModeSelection) Contains(lm LM) bool {
	return !s.isSet || slices.Contains(s.list, lm)
}

// Pairs returns the selected modes inside [ellMin, ellMax], in column order.
func (s ModeSelection) Pairs(ellMin, ellMax int) []LM {
	all := LMRange(ellMin, ellMax)
	if !s.isSet {
		return all
	}
	out := make([]LM, 0, len(s.list))
	for _, lm := range all {
		if slices.Contains(s.list, lm) {
			out = append(out, lm)
		}
	}
	return out
}

// EllRange returns the smallest and largest ℓ selected for azimuthal number m.
// ok is false for [AllModes] and for a list without any mode of that m.
func (s ModeSelection) EllRange(m int) (lo, hi int, ok bool) {
	if !s.isSet {
		return 0, 0, false
	}
	for _, lm := range s.list {
		if lm.M != m {
			continue
		}
		if !ok {
			lo, hi, ok = lm.Ell, lm.Ell, true
			continue
		}
		lo = min(lo, lm.Ell)
		hi = max(hi, lm.Ell)
	}
	return lo, hi, ok
}
