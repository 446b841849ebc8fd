package bench

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Result contains the measurement of a single case.
type Result struct {
	// Name is the case name as registered.
	Name string `json:"name"`
	// Stats holds per-op timings in seconds.
	Stats Stats `json:"stats"`
	// Hz is operations per second (1 / Stats.Mean).
	Hz float64 `json:"hz"`
	// Count is the number of operations run per sample.
	Count int `json:"count"`
	// Iterations is the total number of measured operations.
	Iterations int64 `json:"iterations"`
	// Elapsed is the wall time spent sampling, excluding warmup and calibration.
	Elapsed time.Duration `json:"elapsed"`
}

// summaryPrinter formats the summary line. The report package owns
// locale-specific output; this line always uses English grouping.
var summaryPrinter = message.NewPrinter(language.English)

// String returns a one-line summary, e.g.
//
//	exp-slices x 1,234,567 ops/sec ±0.52% (87 runs sampled)
func (r Result) String() string {
	return summaryPrinter.Sprintf("%s x %v ops/sec ±%.2f%% (%d runs sampled)",
		r.Name,
		number.Decimal(r.Hz, number.MaxFractionDigits(0)),
		r.Stats.RME,
		len(r.Stats.Sample))
}

// Fastest returns the names of the results with the highest Hz, in the order
// given. Every tied name is included.
func Fastest(results []Result) []string {
	var names []string
	var best float64
	for _, r := range results {
		switch {
		case len(names) == 0 || r.Hz > best:
			best = r.Hz
			names = append(names[:0], r.Name)
		case r.Hz == best:
			names = append(names, r.Name)
		}
	}
	return names
}
