// Package pid provides particle-identification performance curves.
// A Curve is a ROC curve built from two sets of classifier
// probabilities, one for signal and one for background: both samples
// are histogrammed over a common binning and the curve points are the
// tail-integral fractions above each bin.
package pid

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/ddavis/trtpy/pkg/errors"
)

// DefaultBinEdges is the number of edges of the default binning,
// spanning [0, 1]
const DefaultBinEdges = 100

type options struct {
	edges       []float64
	interpolate bool
}

// Option configures curve construction
type Option func(*options)

// WithBinning sets explicit histogram bin edges (ascending)
func WithBinning(edges []float64) Option {
	return func(o *options) { o.edges = edges }
}

// WithLinearBinning sets n evenly spaced edges between min and max
func WithLinearBinning(n int, min, max float64) Option {
	return func(o *options) { o.edges = floats.Span(make([]float64, n), min, max) }
}

// WithInterpolation builds the efficiency interpolants eagerly so the
// first Efficiency call cannot fail late
func WithInterpolation() Option {
	return func(o *options) { o.interpolate = true }
}

// Curve is a ROC curve over a signal and a background sample
type Curve struct {
	sigPoints  []float64
	bkgPoints  []float64
	sigInteg   float64
	bkgInteg   float64
	sigEntries int
	bkgEntries int

	forward *interp.PiecewiseLinear // signal eff -> background eff
	inverse *interp.PiecewiseLinear // background eff -> signal eff
}

// New builds a curve from raw signal and background probabilities
func New(sig, bkg []float64, opts ...Option) (*Curve, error) {
	if len(sig) == 0 || len(bkg) == 0 {
		return nil, errors.New(errors.ErrCurveInput, "signal and background samples must be non-empty")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.edges == nil {
		o.edges = floats.Span(make([]float64, DefaultBinEdges), 0.0, 1.0)
	}
	if len(o.edges) < 2 {
		return nil, errors.New(errors.ErrCurveInput, "binning needs at least two edges")
	}

	sigHist := histogram(sig, o.edges)
	bkgHist := histogram(bkg, o.edges)

	c := &Curve{
		sigInteg:   floats.Sum(sigHist),
		bkgInteg:   floats.Sum(bkgHist),
		sigEntries: len(sig),
		bkgEntries: len(bkg),
	}
	if c.sigInteg == 0 || c.bkgInteg == 0 {
		return nil, errors.New(errors.ErrCurveInput, "binning leaves no entries in range")
	}

	nbins := len(o.edges) - 1
	c.sigPoints = make([]float64, nbins)
	c.bkgPoints = make([]float64, nbins)
	for i := 0; i < nbins; i++ {
		c.sigPoints[i] = floats.Sum(sigHist[i+1:]) / c.sigInteg
		c.bkgPoints[i] = floats.Sum(bkgHist[i+1:]) / c.bkgInteg
	}

	if o.interpolate {
		if err := c.buildInterpolants(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Points returns the curve points: signal efficiency on x, background
// efficiency on y
func (c *Curve) Points() (sig, bkg []float64) {
	sig = make([]float64, len(c.sigPoints))
	bkg = make([]float64, len(c.bkgPoints))
	copy(sig, c.sigPoints)
	copy(bkg, c.bkgPoints)
	return sig, bkg
}

// Integrals returns the histogram integrals the points were
// normalized by
func (c *Curve) Integrals() (sig, bkg float64) {
	return c.sigInteg, c.bkgInteg
}

// Efficiency computes the background efficiency at a target signal
// efficiency. The returned error term combines the binomial error of
// the forward lookup with that of the inverse lookup at atBkg. With
// normByEntries the errors are normalized by sample size instead of
// histogram integral. Targets outside the fitted range are held at the
// nearest curve point rather than extrapolated.
func (c *Curve) Efficiency(atSig, atBkg float64, normByEntries bool) (float64, float64, error) {
	if err := c.buildInterpolants(); err != nil {
		return 0, 0, err
	}

	normSig, normBkg := c.sigInteg, c.bkgInteg
	if normByEntries {
		normSig, normBkg = float64(c.sigEntries), float64(c.bkgEntries)
	}

	eff := c.forward.Predict(atSig)
	errFwd := binomialError(eff, normBkg)

	effInv := c.inverse.Predict(atBkg)
	errInv := binomialError(effInv, normSig)

	return eff, math.Sqrt(errFwd*errFwd + errInv*errInv), nil
}

// buildInterpolants fits piecewise-linear interpolants over the curve
// points, once
func (c *Curve) buildInterpolants() error {
	if c.forward != nil {
		return nil
	}

	forward, err := fitIncreasing(c.sigPoints, c.bkgPoints)
	if err != nil {
		return err
	}
	inverse, err := fitIncreasing(c.bkgPoints, c.sigPoints)
	if err != nil {
		return err
	}
	c.forward = forward
	c.inverse = inverse
	return nil
}

// fitIncreasing fits a piecewise-linear interpolant over (xs, ys).
// The tail-integral construction makes both coordinate sequences
// non-increasing, so reading the points back to front gives ascending
// abscissae; flat regions produce duplicate x values, of which the one
// with the smallest ordinate is kept.
func fitIncreasing(xs, ys []float64) (*interp.PiecewiseLinear, error) {
	fx := make([]float64, 0, len(xs))
	fy := make([]float64, 0, len(ys))
	for i := len(xs) - 1; i >= 0; i-- {
		if len(fx) > 0 && xs[i] <= fx[len(fx)-1] {
			continue
		}
		fx = append(fx, xs[i])
		fy = append(fy, ys[i])
	}
	if len(fx) < 2 {
		return nil, errors.New(errors.ErrCurveInterp, "curve is degenerate, not enough distinct points to interpolate")
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(fx, fy); err != nil {
		return nil, errors.Wrap(err, errors.ErrCurveInterp, "failed to fit interpolant")
	}
	return &pl, nil
}

// binomialError is the usual sqrt(e(1-e)/N)
func binomialError(eff, norm float64) float64 {
	return math.Sqrt(eff * (1 - eff) / norm)
}

// histogram counts samples per bin. Entries outside [first, last] are
// dropped; an exact hit on the last edge lands in the last bin so a
// probability of exactly 1.0 is not lost.
func histogram(samples, edges []float64) []float64 {
	counts := make([]float64, len(edges)-1)
	last := edges[len(edges)-1]
	for _, x := range samples {
		if x < edges[0] || x > last {
			continue
		}
		if x == last {
			counts[len(counts)-1]++
			continue
		}
		i := sort.SearchFloat64s(edges, x)
		if i < len(edges) && edges[i] == x {
			// exact edge hit opens the bin to its right
			counts[i]++
		} else {
			counts[i-1]++
		}
	}
	return counts
}
