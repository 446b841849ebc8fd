// Package report turns benchmark results into the comparison printed by
// the sort comparator: a "Fastest is" line and a table of name, mean time,
// ops/sec and the change relative to the previous row.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/drish/ben/pkg/bench"
)

// NotApplicable is the Diff of the first row.
const NotApplicable = "N/A"

// Header is the table header.
var Header = []string{"Name", "Mean time", "Ops/sec", "Diff"}

// Row is one formatted table row.
type Row struct {
	Name      string
	MeanTime  string
	OpsPerSec string
	Diff      string
}

// Cells returns the row in Header order.
func (r Row) Cells() []string {
	return []string{r.Name, r.MeanTime, r.OpsPerSec, r.Diff}
}

// Report is the rendered-ready comparison of a result set.
type Report struct {
	Fastest []string
	Rows    []Row
}

// Diff formats the throughput change from prev to cur as a percentage of
// prev. Slower results keep the "faster" suffix with a negative value.
// A zero prev is not guarded and yields Infinity, -Infinity or NaN.
func Diff(prev, cur float64) string {
	pct := (cur - prev) * 100 / prev
	switch {
	case math.IsNaN(pct):
		return "NaN% faster"
	case math.IsInf(pct, 1):
		return "Infinity% faster"
	case math.IsInf(pct, -1):
		return "-Infinity% faster"
	}
	return fmt.Sprintf("%.2f%% faster", pct)
}

// Build formats results in order. Ops/sec uses the grouping rules of lang.
func Build(results []bench.Result, lang language.Tag) Report {
	p := message.NewPrinter(lang)

	rep := Report{
		Fastest: bench.Fastest(results),
		Rows:    make([]Row, 0, len(results)),
	}

	for i, r := range results {
		diff := NotApplicable
		if i > 0 {
			diff = Diff(results[i-1].Hz, r.Hz)
		}
		rep.Rows = append(rep.Rows, Row{
			Name:      r.Name,
			MeanTime:  strconv.FormatFloat(r.Stats.Mean, 'f', -1, 64),
			OpsPerSec: p.Sprintf("%v", number.Decimal(r.Hz, number.MaxFractionDigits(3))),
			Diff:      diff,
		})
	}
	return rep
}

// FastestLine returns "Fastest is " followed by the comma-separated names.
func (r Report) FastestLine() string {
	return "Fastest is " + strings.Join(r.Fastest, ",")
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00CED1")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// Table builds a lipgloss table with one header row and one row per result.
func (r Report) Table() *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(Header...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, row := range r.Rows {
		t.Row(row.Cells()...)
	}
	return t
}

// Render writes the fastest line followed by the table.
func (r Report) Render(w io.Writer) error {
	if _, err := fmt.Fprintln(w, r.FastestLine()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, r.Table().String())
	return err
}
