package bench

import "math"

// Stats summarizes the per-operation times of a case, in seconds.
type Stats struct {
	// Sample holds one seconds-per-op value per measured batch.
	Sample []float64 `json:"sample"`

	Mean      float64 `json:"mean"`
	Variance  float64 `json:"variance"`
	Deviation float64 `json:"deviation"`
	// SEM is the standard error of the mean.
	SEM float64 `json:"sem"`
	// MOE is the margin of error at 95% confidence.
	MOE float64 `json:"moe"`
	// RME is MOE relative to Mean, as a percentage.
	RME float64 `json:"rme"`
}

// tTable holds two-tailed Student-t critical values at 95% confidence,
// indexed by degrees of freedom.
var tTable = [...]float64{
	1: 12.706, 2: 4.303, 3: 3.182, 4: 2.776, 5: 2.571,
	6: 2.447, 7: 2.365, 8: 2.306, 9: 2.262, 10: 2.228,
	11: 2.201, 12: 2.179, 13: 2.16, 14: 2.145, 15: 2.131,
	16: 2.12, 17: 2.11, 18: 2.101, 19: 2.093, 20: 2.086,
	21: 2.08, 22: 2.074, 23: 2.069, 24: 2.064, 25: 2.06,
	26: 2.056, 27: 2.052, 28: 2.048, 29: 2.045, 30: 2.042,
}

// tInfinity is used once degrees of freedom exceed the table.
const tInfinity = 1.96

func criticalValue(df int) float64 {
	if df < 1 {
		return 0
	}
	if df < len(tTable) {
		return tTable[df]
	}
	return tInfinity
}

// ComputeStats summarizes sample. An empty sample yields zero Stats.
func ComputeStats(sample []float64) Stats {
	s := Stats{Sample: sample}
	n := len(sample)
	if n == 0 {
		return s
	}

	var sum float64
	for _, v := range sample {
		sum += v
	}
	s.Mean = sum / float64(n)

	if n > 1 {
		var sq float64
		for _, v := range sample {
			d := v - s.Mean
			sq += d * d
		}
		s.Variance = sq / float64(n-1)
	}

	s.Deviation = math.Sqrt(s.Variance)
	s.SEM = s.Deviation / math.Sqrt(float64(n))
	s.MOE = s.SEM * criticalValue(n-1)
	if s.Mean > 0 {
		s.RME = s.MOE / s.Mean * 100
	}
	return s
}
