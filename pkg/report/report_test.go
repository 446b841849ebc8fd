package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/drish/ben/pkg/bench"
)

func result(name string, hz float64) bench.Result {
	return bench.Result{Name: name, Hz: hz, Stats: bench.Stats{Mean: 1 / hz}}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		prev     float64
		cur      float64
		expected string
	}{
		{"faster", 100, 150, "50.00% faster"},
		{"slower keeps the faster suffix", 200, 150, "-25.00% faster"},
		{"equal", 42, 42, "0.00% faster"},
		{"rounds to two places", 3, 4, "33.33% faster"},
		{"zero previous", 0, 10, "Infinity% faster"},
		{"zero previous, negative current", 0, -10, "-Infinity% faster"},
		{"zero both", 0, 0, "NaN% faster"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Diff(tt.prev, tt.cur))
		})
	}
}

func TestDiff_Formula(t *testing.T) {
	// ((b-a)*100/a) rounded to two decimals, whatever the sign.
	assert.Equal(t, "-20.03% faster", Diff(1234.5, 987.25))
	assert.Equal(t, "11.76% faster", Diff(17, 19))
	assert.Equal(t, "199999900.00% faster", Diff(0.5, 1e6))
}

func TestBuild(t *testing.T) {
	results := []bench.Result{
		result("gods-arraylist", 1000),
		result("exp-slices", 1500),
		result("text-collate", 750),
	}

	rep := Build(results, language.English)
	require.Len(t, rep.Rows, 3)

	assert.Equal(t, "gods-arraylist", rep.Rows[0].Name)
	assert.Equal(t, "exp-slices", rep.Rows[1].Name)
	assert.Equal(t, "text-collate", rep.Rows[2].Name)

	assert.Equal(t, NotApplicable, rep.Rows[0].Diff)
	assert.Equal(t, "50.00% faster", rep.Rows[1].Diff)
	assert.Equal(t, "-50.00% faster", rep.Rows[2].Diff)

	assert.Equal(t, "0.001", rep.Rows[0].MeanTime)
	assert.Equal(t, "1,000", rep.Rows[0].OpsPerSec)
	assert.Equal(t, "1,500", rep.Rows[1].OpsPerSec)

	assert.Equal(t, []string{"exp-slices"}, rep.Fastest)
	assert.Equal(t, "Fastest is exp-slices", rep.FastestLine())
}

func TestBuild_MeanTimeIsPlainDecimal(t *testing.T) {
	r := bench.Result{Name: "text-collate", Hz: 40255, Stats: bench.Stats{Mean: 2.4841432617187497e-05}}

	rep := Build([]bench.Result{r}, language.English)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, "0.000024841432617187497", rep.Rows[0].MeanTime)
}

func TestBuild_ZeroThroughputDiff(t *testing.T) {
	rep := Build([]bench.Result{
		{Name: "stalled", Hz: 0},
		result("exp-slices", 40255),
	}, language.English)

	require.Len(t, rep.Rows, 2)
	assert.Equal(t, "Infinity% faster", rep.Rows[1].Diff)
}

func TestBuild_SingleResult(t *testing.T) {
	rep := Build([]bench.Result{result("only", 10)}, language.English)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, NotApplicable, rep.Rows[0].Diff)
	assert.Equal(t, "Fastest is only", rep.FastestLine())
}

func TestBuild_Empty(t *testing.T) {
	rep := Build(nil, language.English)
	assert.Empty(t, rep.Rows)
	assert.Equal(t, "Fastest is ", rep.FastestLine())
}

func TestBuild_Ties(t *testing.T) {
	rep := Build([]bench.Result{
		result("a", 500),
		result("b", 100),
		result("c", 500),
	}, language.English)
	assert.Equal(t, "Fastest is a,c", rep.FastestLine())
}

func TestBuild_OpsPerSecFormatting(t *testing.T) {
	r := bench.Result{Name: "x", Hz: 1234567.5}

	en := Build([]bench.Result{r}, language.English)
	assert.Equal(t, "1,234,567.5", en.Rows[0].OpsPerSec)

	de := Build([]bench.Result{r}, language.German)
	assert.Equal(t, "1.234.567,5", de.Rows[0].OpsPerSec)
}

func TestReport_Table(t *testing.T) {
	rep := Build([]bench.Result{
		result("first", 10),
		result("second", 20),
		result("third", 30),
	}, language.English)

	out := rep.Table().String()

	for _, h := range Header {
		assert.Contains(t, out, h)
	}
	assert.Equal(t, 1, strings.Count(out, "Mean time"), "exactly one header row")

	first := strings.Index(out, "first")
	second := strings.Index(out, "second")
	third := strings.Index(out, "third")
	require.Positive(t, first)
	assert.Less(t, first, second)
	assert.Less(t, second, third)

	assert.Equal(t, 1, strings.Count(out, NotApplicable))
	assert.Equal(t, 2, strings.Count(out, "% faster"))
}

func TestReport_Render(t *testing.T) {
	rep := Build([]bench.Result{result("a", 1), result("b", 2)}, language.English)

	var buf bytes.Buffer
	require.NoError(t, rep.Render(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Fastest is b\n"))
	assert.Contains(t, out, "100.00% faster")
}
