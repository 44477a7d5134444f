// Package yin implements the YIN monophonic pitch detection algorithm
// (de Cheveigné & Kawahara, 2002).
//
// YIN is preferred over naive autocorrelation because the cumulative mean
// normalized difference (CMND) suppresses the classic octave-error failure
// mode of locking onto a subharmonic. Every degenerate input — silence,
// too few samples, invalid sample rate, unpitched noise — maps to the same
// silence sentinel, never an error.
package yin

import (
	"math"

	"github.com/cwbudde/algo-trainer/pitch"
)

const (
	defaultMinFreq    = 80.0
	defaultMaxFreq    = 1200.0
	defaultThreshold  = 0.15
	defaultSilenceRMS = 0.02

	// CMND values above this at the global minimum mean the frame is
	// judged unpitched.
	unpitchedCeiling = 0.5
)

// Config holds detector parameters. Zero values select the defaults
// (80–1200 Hz search range, clarity threshold 0.15, RMS silence floor
// 0.02).
type Config struct {
	MinFreq    float64
	MaxFreq    float64
	Threshold  float64
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

	if cfg.Threshold <= 0 {
		cfg.Threshold = defaultThreshold
	}

	if cfg.SilenceRMS <= 0 {
		cfg.SilenceRMS = defaultSilenceRMS
	}

	return cfg
}

// Detector runs YIN over successive frames, reusing internal scratch
// buffers between calls. The scratch never affects results; it only
// avoids per-frame allocation in real-time loops. A Detector is not safe
// for concurrent use; create one per goroutine.
type Detector struct {
	cfg  Config
	diff []float64
	cmnd []float64
}

// NewDetector creates a detector with the given configuration.
func NewDetector(cfg Config) *Detector {
	return &Detector{cfg: normalizeConfig(cfg)}
}

// Config returns the normalized detector configuration.
func (d *Detector) Config() Config { return d.cfg }

// Detect is a one-shot detection with default configuration.
func Detect(samples []float64, sampleRate float64) pitch.Estimate {
	return NewDetector(Config{}).Detect(samples, sampleRate)
}

// Detect estimates the fundamental frequency of one mono audio frame.
// Deterministic for identical input and configuration.
func (d *Detector) Detect(samples []float64, sampleRate float64) pitch.Estimate {
	if len(samples) < 2 || sampleRate <= 0 {
		return pitch.Silence()
	}

	// Silence gate on the mean-centered RMS. This prevents spurious
	// octave jumping on background noise.
	var sum float64
	for _, s := range samples {
		sum += s
	}

	mean := sum / float64(len(samples))

	var energy float64

	for _, s := range samples {
		v := s - mean
		energy += v * v
	}

	rms := math.Sqrt(energy / float64(len(samples)))
	if rms < d.cfg.SilenceRMS {
		return pitch.Silence()
	}

	minLag := int(math.Ceil(sampleRate / d.cfg.MaxFreq))
	maxLag := int(math.Floor(sampleRate / d.cfg.MinFreq))

	halfLen := len(samples) / 2
	if maxLag > halfLen {
		maxLag = halfLen
	}

	if minLag >= maxLag || maxLag < 2 {
		return pitch.Silence()
	}

	diff := d.scratchDiff(maxLag + 1)
	cmnd := d.scratchCmnd(maxLag + 1)

	// Difference function: self-dissimilarity at each candidate period,
	// summed over the first half of the frame.
	for tau := 1; tau <= maxLag; tau++ {
		var s float64

		for j := 0; j < halfLen; j++ {
			v := samples[j] - samples[j+tau]
			s += v * v
		}

		diff[tau] = s
	}

	// Cumulative mean normalized difference. Normalizes away loudness so
	// the absolute threshold below is scale-invariant.
	cmnd[0] = 1

	var runningSum float64

	for tau := 1; tau <= maxLag; tau++ {
		runningSum += diff[tau]
		if runningSum > 0 {
			cmnd[tau] = diff[tau] * float64(tau) / runningSum
		} else {
			cmnd[tau] = 1
		}
	}

	// Absolute threshold: first dip below the clarity threshold, then
	// walk forward to the bottom of that valley so the leading edge of a
	// dip is not picked before it bottoms out.
	bestTau := 0

	for tau := minLag; tau <= maxLag; tau++ {
		if cmnd[tau] < d.cfg.Threshold {
			t := tau
			for t+1 <= maxLag && cmnd[t+1] < cmnd[t] {
				t++
			}

			bestTau = t

			break
		}
	}

	// No dip below threshold: fall back to the global minimum, but give
	// up if even that is too high to be a pitched signal.
	if bestTau == 0 {
		minVal := math.MaxFloat64

		for tau := minLag; tau <= maxLag; tau++ {
			if cmnd[tau] < minVal {
				minVal = cmnd[tau]
				bestTau = tau
			}
		}

		if minVal > unpitchedCeiling {
			return pitch.Silence()
		}
	}

	// Parabolic interpolation around the chosen lag for sub-sample
	// frequency resolution. Skipped at range boundaries and for a
	// degenerate parabola.
	tauRefined := float64(bestTau)

	if bestTau > 0 && bestTau < maxLag {
		alpha := cmnd[bestTau-1]
		beta := cmnd[bestTau]
		gamma := cmnd[bestTau+1]

		denom := 2 * (2*beta - alpha - gamma)
		if math.Abs(denom) > 1e-10 {
			tauRefined = float64(bestTau) + (gamma-alpha)/denom
		}
	}

	if tauRefined <= 0 {
		return pitch.Silence()
	}

	hz := sampleRate / tauRefined
	confidence := 1 - math.Min(cmnd[bestTau], 1)

	return pitch.FromHz(hz, confidence)
}

func (d *Detector) scratchDiff(n int) []float64 {
	if cap(d.diff) < n {
		d.diff = make([]float64, n)
	}

	d.diff = d.diff[:n]

	return d.diff
}

func (d *Detector) scratchCmnd(n int) []float64 {
	if cap(d.cmnd) < n {
		d.cmnd = make([]float64, n)
	}

	d.cmnd = d.cmnd[:n]

	return d.cmnd
}
