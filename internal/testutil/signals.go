package testutil

import (
	"math"
	"math/rand"
)

// Sine generates a deterministic sine tone.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// HarmonicTone generates a fundamental plus partials at integer multiples.
// amplitudes[0] scales the fundamental, amplitudes[1] the octave, and so
// on. Used as the octave-error fixture for pitch detectors.
func HarmonicTone(freqHz, sampleRate float64, amplitudes []float64, length int) []float64 {
	out := make([]float64, length)

	for i := range out {
		t := float64(i) / sampleRate

		var v float64
		for k, a := range amplitudes {
			v += a * math.Sin(2*math.Pi*float64(k+1)*freqHz*t)
		}

		out[i] = v
	}

	return out
}

// Noise generates white noise with a fixed seed for reproducibility.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}
