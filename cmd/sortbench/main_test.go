package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/drish/ben/pkg/bench"
	"github.com/drish/ben/pkg/fixture"
)

var sortedLabels = []string{
	"Aerosmith", "Airspoken", "Amycambe", "Anberlin", "Blink-182",
	"Box Car Racer", "City Lights", "Guns n Roses", "Jamestown Story",
	"Lights", "Linkin Park", "Oasis", "Plus 44", "Priest", "PVRIS",
	"Sum 41", "The Red Jumpsuit Apparatus", "Yellowcard",
}

// stubRunner calls each op once, records what it produced, and returns a
// canned result keyed by case name.
type stubRunner struct {
	hz     map[string]float64
	fail   string
	ran    []string
	sorted map[string][]string
}

func (r *stubRunner) Run(_ context.Context, c bench.Case) (bench.Result, error) {
	r.ran = append(r.ran, c.Name)
	if c.Name == r.fail {
		return bench.Result{}, errors.New("stub failure")
	}

	sink = nil
	c.Op()
	if r.sorted == nil {
		r.sorted = map[string][]string{}
	}
	r.sorted[c.Name] = fixture.Labels(sink)

	hz := r.hz[c.Name]
	return bench.Result{
		Name:  c.Name,
		Hz:    hz,
		Stats: bench.Stats{Sample: []float64{1 / hz}, Mean: 1 / hz},
	}, nil
}

func TestNewSuite(t *testing.T) {
	suite := newSuite(&stubRunner{}, nil, fixture.Records())

	assert.Equal(t, "sort-comparator", suite.Name)
	assert.Equal(t, []string{"gods-arraylist", "exp-slices", "text-collate"}, suite.Names())
}

func TestNewSuite_SharedFixture(t *testing.T) {
	records := fixture.Records()
	runner := &stubRunner{hz: map[string]float64{"gods-arraylist": 1, "exp-slices": 1, "text-collate": 1}}

	_, err := newSuite(runner, nil, records).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, runner.sorted, 3)
	for name, labels := range runner.sorted {
		assert.Equal(t, sortedLabels, labels, name)
	}
	assert.Equal(t, fixture.Records(), records, "fixture must not be mutated")
}

func TestRun(t *testing.T) {
	runner := &stubRunner{hz: map[string]float64{
		"gods-arraylist": 1000,
		"exp-slices":     4000,
		"text-collate":   500,
	}}
	suite := newSuite(runner, nil, fixture.Records())

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), &buf, suite, language.English))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Greater(t, len(lines), 4)
	assert.Equal(t, "gods-arraylist x 1,000 ops/sec ±0.00% (1 runs sampled)", lines[0])
	assert.Equal(t, "exp-slices x 4,000 ops/sec ±0.00% (1 runs sampled)", lines[1])
	assert.Equal(t, "text-collate x 500 ops/sec ±0.00% (1 runs sampled)", lines[2])
	assert.Equal(t, "Fastest is exp-slices", lines[3])

	table := strings.Join(lines[4:], "\n")
	for _, want := range []string{"Name", "Mean time", "Ops/sec", "Diff", "N/A", "300.00% faster", "-87.50% faster", "0.001", "0.002"} {
		assert.Contains(t, table, want)
	}
	assert.Less(t, strings.Index(table, "gods-arraylist"), strings.Index(table, "exp-slices"))
	assert.Less(t, strings.Index(table, "exp-slices"), strings.Index(table, "text-collate"))
}

func TestRun_Locale(t *testing.T) {
	runner := &stubRunner{hz: map[string]float64{
		"gods-arraylist": 1234567.5,
		"exp-slices":     1,
		"text-collate":   1,
	}}

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), &buf, newSuite(runner, nil, fixture.Records()), language.German))

	assert.Contains(t, buf.String(), "1.234.567,5")
	// Summary lines keep English grouping.
	assert.Contains(t, buf.String(), "gods-arraylist x 1,234,568 ops/sec")
}

func TestRun_Failure(t *testing.T) {
	runner := &stubRunner{
		hz:   map[string]float64{"gods-arraylist": 1, "exp-slices": 1, "text-collate": 1},
		fail: "exp-slices",
	}

	var buf bytes.Buffer
	err := run(context.Background(), &buf, newSuite(runner, nil, fixture.Records()), language.English)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exp-slices")
	assert.Equal(t, []string{"gods-arraylist", "exp-slices"}, runner.ran)
	assert.Empty(t, buf.String())
}
