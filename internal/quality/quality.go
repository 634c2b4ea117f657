package quality

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Report describes how far a marked buffer moved from its original.
type Report struct {
	// Changed is the number of samples whose value differs.
	Changed int `json:"changed" yaml:"changed"`
	// MaxDeviation is the largest absolute per-sample difference.
	MaxDeviation float64 `json:"max_deviation" yaml:"max_deviation"`
	// MSE is the mean squared difference over all samples.
	MSE float64 `json:"mse" yaml:"mse"`
	// SNR is the signal to noise ratio in dB. It is zero when either the
	// original signal or the difference is silent.
	SNR float64 `json:"snr_db" yaml:"snr_db"`
}

// Measure compares two buffers of equal length. Extra samples in the longer
// buffer are ignored.
func Measure(original, marked []int) Report {
	n := min(len(original), len(marked))
	if n == 0 {
		return Report{}
	}
	o, m := toFloats(original[:n]), toFloats(marked[:n])

	diff := make([]float64, n)
	floats.SubTo(diff, m, o)

	var r Report
	r.Changed = floats.Count(func(v float64) bool { return v != 0 }, diff)
	if r.Changed == 0 {
		return r
	}
	r.MaxDeviation = floats.Norm(diff, math.Inf(1))

	sq := make([]float64, n)
	floats.MulTo(sq, diff, diff)
	r.MSE = stat.Mean(sq, nil)

	if signal := floats.Dot(o, o) / float64(n); signal > 0 {
		r.SNR = 10 * math.Log10(signal/r.MSE)
	}
	return r
}

func toFloats(s []int) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}
