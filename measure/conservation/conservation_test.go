package conservation

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cwbudde/algo-tasar/dsp/phase"
	"github.com/cwbudde/algo-tasar/internal/testutil"
)

func TestAnalyzeRealPair(t *testing.T) {
	res, err := NewAnalyzer(phase.New(), Config{}).AnalyzeReal([]float64{1, -1})
	if err != nil {
		t.Fatalf("AnalyzeReal error: %v", err)
	}

	want := Result{
		Samples:       2,
		InputEnergy:   2,
		ShiftedEnergy: 2,
		EnergyRatio:   1,
	}
	if diff := cmp.Diff(want, res, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("AnalyzeReal() mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeRepresentativeReals(t *testing.T) {
	res, err := NewAnalyzer(phase.New(), Config{}).AnalyzeReal(testutil.RepresentativeReals())
	if err != nil {
		t.Fatalf("AnalyzeReal error: %v", err)
	}

	if res.Samples != 5 {
		t.Fatalf("Samples = %d, want 5", res.Samples)
	}
	if res.MaxRoundTripError >= 1e-9 {
		t.Fatalf("MaxRoundTripError = %v, want < 1e-9", res.MaxRoundTripError)
	}
	if res.RMSRoundTripError > res.MaxRoundTripError {
		t.Fatalf("RMS %v exceeds max %v", res.RMSRoundTripError, res.MaxRoundTripError)
	}
	if math.Abs(res.EnergyRatio-1) > 1e-9 {
		t.Fatalf("EnergyRatio = %v, want 1", res.EnergyRatio)
	}
}

func TestAnalyzeComplexBlock(t *testing.T) {
	tr := phase.New()
	in := testutil.DeterministicComplex(11, 10, 100)

	res, err := Analyze(tr, in, Config{})
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	if res.MaxMagnitudeDrift > 1e-12 {
		t.Fatalf("MaxMagnitudeDrift = %v, want ~0", res.MaxMagnitudeDrift)
	}
	if math.Abs(res.EnergyRatio-1) > 1e-12 {
		t.Fatalf("EnergyRatio = %v, want 1", res.EnergyRatio)
	}

	var energy, discarded float64
	f := tr.PhaseFactor()
	for _, z := range in {
		energy += real(z)*real(z) + imag(z)*imag(z)
		d := imag(z * f * f)
		discarded += d * d
	}
	if math.Abs(res.InputEnergy-energy) > 1e-9*energy {
		t.Fatalf("InputEnergy = %v, want %v", res.InputEnergy, energy)
	}
	if math.Abs(res.DiscardedEnergy-discarded) > 1e-9*discarded {
		t.Fatalf("DiscardedEnergy = %v, want %v", res.DiscardedEnergy, discarded)
	}
}

func TestAnalyzeShieldDiscardsImaginary(t *testing.T) {
	res, err := Analyze(phase.New(), []complex128{0.5 + 0.5i}, Config{})
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	if math.Abs(res.DiscardedEnergy-0.25) > 1e-12 {
		t.Fatalf("DiscardedEnergy = %v, want 0.25", res.DiscardedEnergy)
	}
	if res.MaxRoundTripError > 1e-12 {
		t.Fatalf("MaxRoundTripError = %v, want ~0", res.MaxRoundTripError)
	}
}

func TestAnalyzeSilentBlock(t *testing.T) {
	res, err := Analyze(phase.New(), make([]complex128, 8), Config{FFTSize: 8})
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if res.InputEnergy != 0 || !math.IsNaN(res.EnergyRatio) {
		t.Fatalf("InputEnergy = %v, EnergyRatio = %v; want 0 and NaN", res.InputEnergy, res.EnergyRatio)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	tests := []struct {
		name string
		tr   *phase.Transform
		in   []complex128
		cfg  Config
		want error
	}{
		{name: "nil transform", tr: nil, in: []complex128{1}, want: ErrNilTransform},
		{name: "empty", tr: phase.New(), in: nil, want: ErrEmptyInput},
		{name: "short fft", tr: phase.New(), in: make([]complex128, 4), cfg: Config{FFTSize: 2}, want: ErrFFTSizeTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analyze(tt.tr, tt.in, tt.cfg)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNextPowerOf2(t *testing.T) {
	tests := []struct{ in, want int }{{0, 1}, {1, 1}, {2, 2}, {5, 8}, {64, 64}, {100, 128}}
	for _, tt := range tests {
		if got := nextPowerOf2(tt.in); got != tt.want {
			t.Fatalf("nextPowerOf2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAnalyzeNonFinite(t *testing.T) {
	in := []complex128{1, complex(math.NaN(), 0), complex(0, math.Inf(1))}

	res, err := Analyze(phase.New(), in, Config{})
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if res.NonFinite != 2 {
		t.Fatalf("NonFinite = %d, want 2", res.NonFinite)
	}
	if !math.IsNaN(res.MaxRoundTripError) {
		t.Fatalf("MaxRoundTripError = %v, want NaN", res.MaxRoundTripError)
	}
	if !math.IsNaN(res.MaxMagnitudeDrift) {
		t.Fatalf("MaxMagnitudeDrift = %v, want NaN", res.MaxMagnitudeDrift)
	}
}

func TestAnalyzeInfiniteAfterNaN(t *testing.T) {
	// The NaN sample comes first; the second recovers +Inf against a real part
	// of 0, and that +Inf error must not replace the NaN.
	in := []complex128{complex(math.NaN(), 0), complex(0, math.Inf(1))}

	res, err := Analyze(phase.New(), in, Config{})
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if !math.IsNaN(res.MaxRoundTripError) {
		t.Fatalf("MaxRoundTripError = %v, want NaN", res.MaxRoundTripError)
	}
}

func TestMaxNaN(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)

	tests := []struct {
		name    string
		cur, v  float64
		wantNaN bool
		want    float64
	}{
		{name: "finite", cur: 1, v: 2, want: 2},
		{name: "inf", cur: 1, v: inf, want: inf},
		{name: "nan then inf", cur: nan, v: inf, wantNaN: true},
		{name: "inf then nan", cur: inf, v: nan, wantNaN: true},
		{name: "nan then finite", cur: nan, v: 0, wantNaN: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := maxNaN(tt.cur, tt.v)
			if tt.wantNaN {
				if !math.IsNaN(got) {
					t.Fatalf("maxNaN(%v, %v) = %v, want NaN", tt.cur, tt.v, got)
				}
				return
			}
			if got != tt.want {
				t.Fatalf("maxNaN(%v, %v) = %v, want %v", tt.cur, tt.v, got, tt.want)
			}
		})
	}
}
