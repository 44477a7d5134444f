// Package spectral implements a frequency-domain fundamental estimator:
// Hann window, FFT magnitude spectrum, harmonic product spectrum to guard
// against octave errors, and parabolic interpolation on the winning bin.
//
// It serves as a cross-check for the time-domain YIN detector and shares
// its failure semantics: every degenerate input collapses to the silence
// sentinel, never an error.
package spectral

import (
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-trainer/pitch"
)

const (
	defaultMinFreq    = 80.0
	defaultMaxFreq    = 1200.0
	defaultHarmonics  = 3
	defaultSilenceRMS = 0.02
)

// Config holds estimator parameters. Zero values select the defaults
// (80–1200 Hz range, 3-term harmonic product, RMS silence floor 0.02,
// FFT size auto-chosen as the next power of two above the frame length).
type Config struct {
	MinFreq    float64
	MaxFreq    float64
	FFTSize    int
	Harmonics  int
	SilenceRMS float64
}

func normalizeConfig(cfg Config) Config {
	if cfg.MinFreq <= 0 {
		cfg.MinFreq = defaultMinFreq
	}

	if cfg.MaxFreq <= 0 {
		cfg.MaxFreq = defaultMaxFreq
	}

	if cfg.MaxFreq < cfg.MinFreq {
		cfg.MaxFreq = cfg.MinFreq
	}

	if cfg.Harmonics <= 0 {
		cfg.Harmonics = defaultHarmonics
	}

	if cfg.SilenceRMS <= 0 {
		cfg.SilenceRMS = defaultSilenceRMS
	}

	return cfg
}

// Estimator computes fundamental estimates from audio frames.
type Estimator struct {
	cfg Config
}

// NewEstimator creates an estimator with the given configuration.
func NewEstimator(cfg Config) *Estimator {
	return &Estimator{cfg: normalizeConfig(cfg)}
}

// Config returns the normalized configuration.
func (e *Estimator) Config() Config { return e.cfg }

// Estimate is a one-shot estimation with default configuration.
func Estimate(samples []float64, sampleRate float64) pitch.Estimate {
	return NewEstimator(Config{}).Estimate(samples, sampleRate)
}

// Estimate returns the fundamental frequency of one mono audio frame.
//
//nolint:funlen
func (e *Estimator) Estimate(samples []float64, sampleRate float64) pitch.Estimate {
	if len(samples) < 2 || sampleRate <= 0 {
		return pitch.Silence()
	}

	if rms(samples) < e.cfg.SilenceRMS {
		return pitch.Silence()
	}

	fftSize := e.cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(samples))
	}

	if fftSize < len(samples) || fftSize < 4 {
		return pitch.Silence()
	}

	windowed := make([]float64, len(samples))
	vecmath.MulBlock(windowed, samples, hann(len(samples)))

	inData := make([]complex128, fftSize)
	for i, v := range windowed {
		inData[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return pitch.Silence()
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return pitch.Silence()
	}

	binCount := fftSize/2 + 1
	mag := magnitudes(out[:binCount])

	binHz := sampleRate / float64(fftSize)

	minBin := int(math.Ceil(e.cfg.MinFreq / binHz))
	if minBin < 1 {
		minBin = 1
	}

	maxBin := int(math.Floor(e.cfg.MaxFreq / binHz))
	if maxBin > binCount-2 {
		maxBin = binCount - 2
	}

	if minBin > maxBin {
		return pitch.Silence()
	}

	bestBin := e.harmonicProductPeak(mag, minBin, maxBin)
	if bestBin < 1 || mag[bestBin] <= 0 {
		return pitch.Silence()
	}

	// Sub-bin refinement on the magnitude peak.
	refined := float64(bestBin)

	alpha := mag[bestBin-1]
	beta := mag[bestBin]
	gamma := mag[bestBin+1]

	denom := 2 * (2*beta - alpha - gamma)
	if math.Abs(denom) > 1e-12 {
		refined += (gamma - alpha) / denom
	}

	hz := refined * binHz
	if hz <= 0 {
		return pitch.Silence()
	}

	return pitch.FromHz(hz, e.dominance(mag, bestBin, minBin, maxBin))
}

// candidateFloor is the minimum share of the range peak a bin needs to
// enter the harmonic product. Without it a bin at half the fundamental
// ties with the fundamental on a clean tone: both products reduce to one
// large factor times leakage.
const candidateFloor = 0.3

// harmonicProductPeak returns the bin in [minBin, maxBin] maximizing the
// product of the magnitudes at its first Harmonics multiples. Multiplying
// in the harmonics demotes subharmonic candidates, which carry energy at
// the fundamental but not at its upper multiples.
func (e *Estimator) harmonicProductPeak(mag []float64, minBin, maxBin int) int {
	rangePeak := 0.0
	for bin := minBin; bin <= maxBin; bin++ {
		if mag[bin] > rangePeak {
			rangePeak = mag[bin]
		}
	}

	bestBin := -1
	bestVal := 0.0

	// The bias keeps near-zero harmonic bins (pure tones have only
	// leakage there) from reducing the product to numerical noise.
	bias := 1e-3 * rangePeak

	for bin := minBin; bin <= maxBin; bin++ {
		if mag[bin] < candidateFloor*rangePeak {
			continue
		}

		v := mag[bin]
		for k := 2; k <= e.cfg.Harmonics; k++ {
			h := bin * k
			if h >= len(mag) {
				break
			}

			v *= mag[h] + bias
		}

		if v > bestVal {
			bestVal = v
			bestBin = bin
		}
	}

	return bestBin
}

// dominance is the winning bin's share of the magnitude mass in the
// search range, used as a 0..1 confidence.
func (e *Estimator) dominance(mag []float64, bin, minBin, maxBin int) float64 {
	var total float64
	for i := minBin; i <= maxBin; i++ {
		total += mag[i]
	}

	if total <= 0 {
		return 0
	}

	c := mag[bin] / total
	if c > 1 {
		c = 1
	}

	return c
}

func magnitudes(bins []complex128) []float64 {
	re := make([]float64, len(bins))
	im := make([]float64, len(bins))

	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(bins))
	vecmath.Magnitude(out, re, im)

	return out
}

func hann(n int) []float64 {
	coeffs := make([]float64, n)
	if n == 1 {
		coeffs[0] = 1
		return coeffs
	}

	for i := range coeffs {
		coeffs[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}

	return coeffs
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

func rms(samples []float64) float64 {
	var sumSq float64
	for _, s := range samples {
		sumSq += s * s
	}

	return math.Sqrt(sumSq / float64(len(samples)))
}
