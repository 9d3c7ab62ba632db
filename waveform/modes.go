package waveform

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// Modes is a multi-mode complex time series. Data is row-major: sample i,
// column j lives at Data[i*NumModes()+j].
type Modes struct {
	Label  string
	T      []float64
	Data   []complex128
	EllMin int
	EllMax int
}

// Functor fills the data array for the time axis t and the column modes lm.
// It must return len(t)*len(lm) values.
type Functor func(t []float64, lm []LM) ([]complex128, error)

// New wraps t and data as a waveform after validating their shapes.
// Neither slice is copied.
func New(t []float64, data []complex128, ellMin, ellMax int) (*Modes, error) {
	if err := validateRange(ellMin, ellMax); err != nil {
		return nil, err
	}
	if err := validateAxis(t); err != nil {
		return nil, err
	}
	if want := len(t) * NumModes(ellMin, ellMax); len(data) != want {
		return nil, fmt.Errorf("%w: %d values for %d samples × %d modes",
			ErrShapeMismatch, len(data), len(t), NumModes(ellMin, ellMax))
	}
	return &Modes{T: t, Data: data, EllMin: ellMin, EllMax: ellMax}, nil
}

// Zeros returns a zero-filled waveform on a copy of t.
func Zeros(t []float64, ellMin, ellMax int) (*Modes, error) {
	if err := validateRange(ellMin, ellMax); err != nil {
		return nil, err
	}
	return New(append([]float64(nil), t...), make([]complex128, len(t)*NumModes(ellMin, ellMax)), ellMin, ellMax)
}

// Construct builds a labelled waveform by invoking fill once with the time
// axis and the column enumeration of [ellMin, ellMax].
func Construct(label string, fill Functor, t []float64, ellMin, ellMax int) (*Modes, error) {
	if err := validateRange(ellMin, ellMax); err != nil {
		return nil, err
	}
	if err := validateAxis(t); err != nil {
		return nil, err
	}

	axis := append([]float64(nil), t...)
	data, err := fill(axis, LMRange(ellMin, ellMax))
	if err != nil {
		return nil, err
	}

	w, err := New(axis, data, ellMin, ellMax)
	if err != nil {
		return nil, err
	}
	w.Label = label
	return w, nil
}

func validateAxis(t []float64) error {
	if len(t) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidAxis)
	}
	for i := 1; i < len(t); i++ {
		if !(t[i] > t[i-1]) {
			return fmt.Errorf("%w: not ascending at index %d", ErrInvalidAxis, i)
		}
	}
	return nil
}

// Len returns the number of time samples.
func (w *Modes) Len() int { return len(w.T) }

// NumModes returns the number of columns.
func (w *Modes) NumModes() int { return NumModes(w.EllMin, w.EllMax) }

// Pairs returns the column modes in order.
func (w *Modes) Pairs() []LM { return LMRange(w.EllMin, w.EllMax) }

// Has reports whether (ℓ, m) is a column of w.
func (w *Modes) Has(lm LM) bool {
	return lm.Ell >= w.EllMin && lm.Ell <= w.EllMax && lm.M >= -lm.Ell && lm.M <= lm.Ell
}

// Index returns the column of lm.
func (w *Modes) Index(lm LM) (int, error) {
	if !w.Has(lm) {
		return 0, fmt.Errorf("%w: %v not in ell range [%d, %d]", ErrInvalidRange, lm, w.EllMin, w.EllMax)
	}
	return LMIndex(lm.Ell, lm.M, w.EllMin), nil
}

// Row returns sample i without copying.
func (w *Modes) Row(i int) []complex128 {
	nm := w.NumModes()
	return w.Data[i*nm : (i+1)*nm]
}

// At returns the value of column j at sample i.
func (w *Modes) At(i, j int) complex128 {
	return w.Data[i*w.NumModes()+j]
}

// Column returns a copy of column j.
func (w *Modes) Column(j int) []complex128 {
	nm := w.NumModes()
	out := make([]complex128, len(w.T))
	for i := range out {
		out[i] = w.Data[i*nm+j]
	}
	return out
}

// SetColumn overwrites column j with vals.
func (w *Modes) SetColumn(j int, vals []complex128) {
	nm := w.NumModes()
	for i, v := range vals {
		w.Data[i*nm+j] = v
	}
}

// Restrict zeroes every column not selected by sel.
func (w *Modes) Restrict(sel ModeSelection) {
	if sel.IsAll() {
		return
	}
	nm := w.NumModes()
	for j, lm := range w.Pairs() {
		if sel.Contains(lm) {
			continue
		}
		for i := range w.T {
			w.Data[i*nm+j] = 0
		}
	}
}

// Copy returns a deep copy.
func (w *Modes) Copy() *Modes {
	return &Modes{
		Label:  w.Label,
		T:      append([]float64(nil), w.T...),
		Data:   append([]complex128(nil), w.Data...),
		EllMin: w.EllMin,
		EllMax: w.EllMax,
	}
}

// Window returns a copy of samples [i, j), clamped to the axis like a
// slice expression that tolerates out-of-range bounds.
func (w *Modes) Window(i, j int) *Modes {
	n := len(w.T)
	i = min(max(i, 0), n)
	j = min(max(j, i), n)
	nm := w.NumModes()
	return &Modes{
		Label:  w.Label,
		T:      append([]float64(nil), w.T[i:j]...),
		Data:   append([]complex128(nil), w.Data[i*nm:j*nm]...),
		EllMin: w.EllMin,
		EllMax: w.EllMax,
	}
}

// NearestIndex returns the index of the first sample closest to t0, or 0 for
// an empty waveform.
func (w *Modes) NearestIndex(t0 float64) int {
	if len(w.T) == 0 {
		return 0
	}
	d := make([]float64, len(w.T))
	copy(d, w.T)
	floats.AddConst(-t0, d)
	for i, v := range d {
		d[i] = math.Abs(v)
	}
	return floats.MinIdx(d)
}

// Parts splits column j into its real and imaginary parts.
func (w *Modes) Parts(j int, re, im []float64) {
	nm := w.NumModes()
	for i := range w.T {
		v := w.Data[i*nm+j]
		re[i] = real(v)
		im[i] = imag(v)
	}
}

// Norm returns the total power across modes, Σ_lm |h_lm|², per sample.
func (w *Modes) Norm() []float64 {
	n := len(w.T)
	out := make([]float64, n)
	re := make([]float64, n)
	im := make([]float64, n)
	pow := make([]float64, n)
	for j := range w.NumModes() {
		w.Parts(j, re, im)
		vecmath.Power(pow, re, im)
		vecmath.AddBlockInPlace(out, pow)
	}
	return out
}

// Interpolate resamples every mode onto the ascending axis t with a
// not-a-knot cubic spline on the real and imaginary parts. Axes shorter than
// four samples fall back to piecewise-linear interpolation. Values outside
// the original axis are held at the end points.
func (w *Modes) Interpolate(t []float64) (*Modes, error) {
	if err := validateAxis(t); err != nil {
		return nil, err
	}
	if len(w.T) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples to interpolate, have %d", ErrInvalidAxis, len(w.T))
	}

	out, err := Zeros(t, w.EllMin, w.EllMax)
	if err != nil {
		return nil, err
	}
	out.Label = w.Label

	n := len(w.T)
	nm := w.NumModes()
	re := make([]float64, n)
	im := make([]float64, n)
	for j := range nm {
		w.Parts(j, re, im)

		fr, fi := newSpline(n), newSpline(n)
		if err := fr.Fit(w.T, re); err != nil {
			return nil, fmt.Errorf("waveform: fit real part of column %d: %w", j, err)
		}
		if err := fi.Fit(w.T, im); err != nil {
			return nil, fmt.Errorf("waveform: fit imaginary part of column %d: %w", j, err)
		}

		for i, x := range out.T {
			out.Data[i*nm+j] = complex(fr.Predict(x), fi.Predict(x))
		}
	}
	return out, nil
}

func newSpline(n int) interp.FittablePredictor {
	if n < 4 {
		return &interp.PiecewiseLinear{}
	}
	return &interp.NotAKnotCubic{}
}
