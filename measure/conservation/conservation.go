package conservation

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-tasar/dsp/core"
	"github.com/cwbudde/algo-tasar/dsp/phase"
)

var (
	ErrEmptyInput      = errors.New("conservation: empty input")
	ErrNilTransform    = errors.New("conservation: nil transform")
	ErrFFTSizeTooSmall = errors.New("conservation: FFT size shorter than input")
)

// Config holds analysis parameters.
type Config struct {
	// FFTSize is the transform length used for the spectral energy check.
	// Zero selects the next power of two at or above the input length.
	FFTSize int
}

// Result holds conservation metrics for one block.
type Result struct {
	Samples           int
	NonFinite         int     // samples with a NaN or infinite part; they propagate into the metrics
	MaxRoundTripError float64 // max |ShiftBackward(ShiftForward(z)) - real(z)|
	RMSRoundTripError float64
	MaxMagnitudeDrift float64 // max ||ShiftForward(z)| - |z||
	DiscardedEnergy   float64 // sum of squared imaginary parts dropped by ShiftBackward
	InputEnergy       float64
	ShiftedEnergy     float64
	EnergyRatio       float64 // ShiftedEnergy / InputEnergy, NaN for a silent block
}

// Analyzer evaluates a transform over sample blocks.
type Analyzer struct {
	tr  *phase.Transform
	cfg Config
}

// NewAnalyzer creates an analyzer for tr.
func NewAnalyzer(tr *phase.Transform, cfg Config) *Analyzer {
	if cfg.FFTSize < 0 {
		cfg.FFTSize = 0
	}
	return &Analyzer{tr: tr, cfg: cfg}
}

// Analyze is a one-shot analysis of a complex block.
func Analyze(tr *phase.Transform, in []complex128, cfg Config) (Result, error) {
	return NewAnalyzer(tr, cfg).Analyze(in)
}

// AnalyzeReal promotes real samples to complex and analyzes them.
func (a *Analyzer) AnalyzeReal(in []float64) (Result, error) {
	z := make([]complex128, len(in))
	for i, x := range in {
		z[i] = complex(x, 0)
	}
	return a.Analyze(z)
}

// Analyze computes conservation metrics for in.
func (a *Analyzer) Analyze(in []complex128) (Result, error) {
	if a.tr == nil {
		return Result{}, ErrNilTransform
	}
	if len(in) == 0 {
		return Result{}, ErrEmptyInput
	}

	fftSize := a.cfg.FFTSize
	if fftSize == 0 {
		fftSize = max(nextPowerOf2(len(in)), 2)
	}
	if fftSize < len(in) {
		return Result{}, fmt.Errorf("%w: %d < %d", ErrFFTSizeTooSmall, fftSize, len(in))
	}

	n := len(in)
	shifted := make([]complex128, n)
	recovered := make([]float64, n)
	if err := a.tr.ShiftForwardBlock(shifted, in); err != nil {
		return Result{}, err
	}
	if err := a.tr.ShiftBackwardBlock(recovered, shifted); err != nil {
		return Result{}, err
	}

	res := Result{Samples: n}
	factor := a.tr.PhaseFactor()

	var sumSq float64
	for i, z := range in {
		if !core.IsFiniteComplex(z) {
			res.NonFinite++
		}

		e := math.Abs(recovered[i] - real(z))
		res.MaxRoundTripError = maxNaN(res.MaxRoundTripError, e)
		sumSq += e * e

		dropped := imag(shifted[i] * factor)
		res.DiscardedEnergy += dropped * dropped
	}
	res.RMSRoundTripError = math.Sqrt(sumSq / float64(n))
	res.MaxMagnitudeDrift = magnitudeDrift(in, shifted)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("conservation: failed to create FFT plan: %w", err)
	}

	res.InputEnergy, err = spectralEnergy(plan, in, fftSize)
	if err != nil {
		return Result{}, err
	}
	res.ShiftedEnergy, err = spectralEnergy(plan, shifted, fftSize)
	if err != nil {
		return Result{}, err
	}

	if res.InputEnergy == 0 {
		res.EnergyRatio = math.NaN()
	} else {
		res.EnergyRatio = res.ShiftedEnergy / res.InputEnergy
	}

	return res, nil
}

func magnitudeDrift(in, shifted []complex128) float64 {
	n := len(in)
	buf := make([]float64, 4*n)
	re, im := buf[:n], buf[n:2*n]
	magIn, magOut := buf[2*n:3*n], buf[3*n:]

	core.SplitComplex(re, im, in)
	vecmath.Magnitude(magIn, re, im)
	core.SplitComplex(re, im, shifted)
	vecmath.Magnitude(magOut, re, im)

	drift := 0.0
	for i := range magIn {
		drift = maxNaN(drift, math.Abs(magOut[i]-magIn[i]))
	}
	return drift
}

// spectralEnergy returns sum |X[k]|^2 / N, which equals the time-domain
// energy of x by Parseval's theorem.
func spectralEnergy(plan *algofft.Plan[complex128], x []complex128, fftSize int) (float64, error) {
	padded := make([]complex128, fftSize)
	copy(padded, x)

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, padded); err != nil {
		return 0, fmt.Errorf("conservation: forward FFT failed: %w", err)
	}

	re := make([]float64, fftSize)
	im := make([]float64, fftSize)
	power := make([]float64, fftSize)
	core.SplitComplex(re, im, spectrum)
	vecmath.Power(power, re, im)

	sum := 0.0
	for _, p := range power {
		sum += p
	}
	return sum / float64(fftSize), nil
}

// maxNaN is math.Max except that a NaN on either side wins over +Inf,
// so a NaN sample is never hidden by a later infinite one.
func maxNaN(cur, v float64) float64 {
	if math.IsNaN(cur) || math.IsNaN(v) {
		return math.NaN()
	}
	return math.Max(cur, v)
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
