package yin

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-trainer/internal/testutil"
)

const sampleRate = 44100.0

func TestDetectA440(t *testing.T) {
	samples := testutil.Sine(440, sampleRate, 0.5, 4410)

	est := Detect(samples, sampleRate)
	if est.Hz == 0 {
		t.Fatal("expected a pitch, got silence")
	}

	if err := math.Abs(est.Hz - 440); err >= 2 {
		t.Errorf("Hz: got %g, want ~440 (error %g)", est.Hz, err)
	}

	if est.Confidence <= 0.8 {
		t.Errorf("Confidence: got %g, want > 0.8", est.Confidence)
	}

	if err := math.Abs(est.MidiFloat - 69); err >= 0.1 {
		t.Errorf("MidiFloat: got %g, want ~69", est.MidiFloat)
	}
}

func TestDetectBb3(t *testing.T) {
	// Bb3 = 233.08 Hz concert, a common trumpet note.
	samples := testutil.Sine(233.08, sampleRate, 0.5, 4410)

	est := Detect(samples, sampleRate)
	if err := math.Abs(est.Hz - 233.08); err >= 2 {
		t.Errorf("Hz: got %g, want ~233.08 (error %g)", est.Hz, err)
	}
}

func TestDetectC6(t *testing.T) {
	// C6 = 1046.5 Hz. Fewer samples per period at the top of the range,
	// so the tolerance widens.
	samples := testutil.Sine(1046.5, sampleRate, 0.5, 4410)

	est := Detect(samples, sampleRate)
	if err := math.Abs(est.Hz - 1046.5); err >= 10 {
		t.Errorf("Hz: got %g, want ~1046.5 (error %g)", est.Hz, err)
	}
}

func TestDetectSweepAccuracy(t *testing.T) {
	// Above ~1000 Hz the period spans only a few dozen samples, so the
	// tolerance widens from 2 Hz to 10 Hz. The 800-1200 Hz entries guard
	// the sub-sample refinement: without it the lag quantization error
	// alone exceeds these bounds.
	cases := []struct {
		freq, tol float64
	}{
		{82.41, 2},
		{110, 2},
		{146.83, 2},
		{196, 2},
		{261.63, 2},
		{329.63, 2},
		{440, 2},
		{587.33, 2},
		{783.99, 2},
		{880, 2},
		{990, 2},
		{1046.5, 10},
		{1180, 10},
	}

	for _, c := range cases {
		samples := testutil.Sine(c.freq, sampleRate, 0.5, 4410)

		est := Detect(samples, sampleRate)
		if err := math.Abs(est.Hz - c.freq); err >= c.tol {
			t.Errorf("%g Hz: got %g (error %g, tolerance %g)", c.freq, est.Hz, err, c.tol)
		}
	}
}

func TestDetectSilence(t *testing.T) {
	samples := make([]float64, 4410)

	est := Detect(samples, sampleRate)
	if !est.IsSilence() {
		t.Errorf("all-zero frame: got %+v, want silence", est)
	}

	if est.MidiFloat != 0 {
		t.Errorf("silence MidiFloat: got %g, want 0", est.MidiFloat)
	}
}

func TestDetectDegenerateInput(t *testing.T) {
	if est := Detect(nil, sampleRate); !est.IsSilence() {
		t.Errorf("empty frame: got %+v, want silence", est)
	}

	if est := Detect([]float64{0.5}, sampleRate); !est.IsSilence() {
		t.Errorf("single sample: got %+v, want silence", est)
	}

	if est := Detect(testutil.Sine(440, sampleRate, 0.5, 4410), 0); !est.IsSilence() {
		t.Errorf("zero sample rate: got %+v, want silence", est)
	}

	if est := Detect(testutil.Sine(440, sampleRate, 0.5, 4410), -1); !est.IsSilence() {
		t.Errorf("negative sample rate: got %+v, want silence", est)
	}
}

func TestDetectQuietNoiseGated(t *testing.T) {
	// Low-level noise stays under the RMS floor and must not produce a
	// pitch.
	samples := testutil.Noise(1, 0.01, 4410)

	est := Detect(samples, sampleRate)
	if !est.IsSilence() {
		t.Errorf("quiet noise: got %+v, want silence", est)
	}
}

func TestDetectLoudNoiseUnpitched(t *testing.T) {
	// Loud white noise passes the RMS gate but has no stable period; the
	// global-minimum fallback must reject it via the unpitched ceiling.
	samples := testutil.Noise(42, 0.8, 4410)

	est := Detect(samples, sampleRate)
	if !est.IsSilence() {
		t.Errorf("loud noise: got %+v, want silence", est)
	}
}

func TestDetectOctaveRobustness(t *testing.T) {
	// Fundamental plus strong octave and third harmonic. A naive
	// autocorrelation picker tends to lock onto a subharmonic here.
	samples := testutil.HarmonicTone(440, sampleRate, []float64{0.5, 0.3, 0.1}, 4410)

	est := Detect(samples, sampleRate)
	if err := math.Abs(est.Hz - 440); err >= 5 {
		t.Errorf("Hz: got %g, want ~440 despite harmonics (error %g)", est.Hz, err)
	}
}

func TestDetectDCOffsetRejected(t *testing.T) {
	// The silence gate centers the frame first, so a DC pedestal must not
	// defeat it.
	samples := make([]float64, 4410)
	for i := range samples {
		samples[i] = 0.7
	}

	est := Detect(samples, sampleRate)
	if !est.IsSilence() {
		t.Errorf("DC frame: got %+v, want silence", est)
	}
}

func TestDetectDeterministic(t *testing.T) {
	samples := testutil.HarmonicTone(330, sampleRate, []float64{0.5, 0.2}, 4410)
	d := NewDetector(Config{})

	first := d.Detect(samples, sampleRate)

	for i := 0; i < 5; i++ {
		if got := d.Detect(samples, sampleRate); got != first {
			t.Fatalf("run %d: got %+v, want %+v", i, got, first)
		}
	}

	// Scratch reuse across different frame sizes must not leak state.
	d.Detect(testutil.Sine(880, sampleRate, 0.5, 2048), sampleRate)

	if got := d.Detect(samples, sampleRate); got != first {
		t.Fatalf("after resize: got %+v, want %+v", got, first)
	}
}

func TestNormalizeConfig(t *testing.T) {
	d := NewDetector(Config{})
	cfg := d.Config()

	if cfg.MinFreq != 80 || cfg.MaxFreq != 1200 {
		t.Errorf("default range: got %g-%g, want 80-1200", cfg.MinFreq, cfg.MaxFreq)
	}

	if cfg.Threshold != 0.15 {
		t.Errorf("default threshold: got %g, want 0.15", cfg.Threshold)
	}

	if cfg.SilenceRMS != 0.02 {
		t.Errorf("default silence floor: got %g, want 0.02", cfg.SilenceRMS)
	}

	inv := NewDetector(Config{MinFreq: 500, MaxFreq: 100}).Config()
	if inv.MaxFreq < inv.MinFreq {
		t.Errorf("inverted range not normalized: %g-%g", inv.MinFreq, inv.MaxFreq)
	}
}

func TestDetectNarrowRange(t *testing.T) {
	// A range excluding the true pitch must not report it.
	samples := testutil.Sine(440, sampleRate, 0.5, 4410)
	d := NewDetector(Config{MinFreq: 900, MaxFreq: 1200})

	est := d.Detect(samples, sampleRate)
	if est.Hz != 0 && math.Abs(est.Hz-440) < 2 {
		t.Errorf("440 Hz reported outside configured range: %+v", est)
	}
}
