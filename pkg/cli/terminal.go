package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/kelseyhightower/envconfig"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/drish/ben/pkg/bench"
)

// Banner is the ben logo.
var Banner = []string{
	`    __                `,
	`   / /_  ___  ____    `,
	`  / __ \/ _ \/ __ \   `,
	` / /_/ /  __/ / / /   `,
	`/_.___/\___/_/ /_/    `,
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00CED1"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	flagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9B30FF")).
			Bold(true)

	exampleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// PrintBanner writes lines with a teal to purple gradient.
func PrintBanner(w io.Writer, lines []string) {
	if len(lines) == 0 {
		return
	}

	teal, _ := colorful.Hex("#00CED1")
	purple, _ := colorful.Hex("#9B30FF")
	bgColor := lipgloss.Color("#1a1a2e")

	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, len(line))
	}

	var rendered []string
	for _, line := range lines {
		var b strings.Builder
		for i, r := range line {
			t := 0.0
			if maxWidth > 1 {
				t = float64(i) / float64(maxWidth-1)
			}
			c := teal.BlendLuv(purple, t)
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(c.Hex())).
				Background(bgColor).
				Bold(true)
			b.WriteString(style.Render(string(r)))
		}
		rendered = append(rendered, b.String())
	}

	box := lipgloss.NewStyle().
		Background(bgColor).
		Padding(0, 2).
		Render(strings.Join(rendered, "\n"))

	fmt.Fprintln(w, box)
	fmt.Fprintln(w)
}

// envUsageFormat lists BEN_* variables via envconfig's usage template.
const envUsageFormat = "{{range .}}  {{usage_key .}}\t{{usage_description .}}\n{{end}}"

// Synopsis returns the one-line invocation of fs, e.g.
// "sortbench [-duration <duration>] [-json]".
func Synopsis(fs *flag.FlagSet) string {
	parts := []string{fs.Name()}
	fs.VisitAll(func(f *flag.Flag) {
		if isBoolFlag(f) {
			parts = append(parts, fmt.Sprintf("[-%s]", f.Name))
			return
		}
		parts = append(parts, fmt.Sprintf("[-%s <%s>]", f.Name, flagType(f)))
	})
	return strings.Join(parts, " ")
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// flagType maps *flag.durationValue to "duration".
func flagType(f *flag.Flag) string {
	name := strings.TrimPrefix(fmt.Sprintf("%T", f.Value), "*flag.")
	return strings.TrimSuffix(name, "Value")
}

// Usage returns a flag.Usage func printing the synopsis and options of fs,
// then the BEN_* variables described by the envconfig specs (pointers to
// structs with desc tags).
func Usage(w io.Writer, fs *flag.FlagSet, example string, specs ...any) func() {
	return func() {
		fmt.Fprintln(w, titleStyle.Render("Usage:"))
		fmt.Fprintf(w, "  %s\n\n", Synopsis(fs))

		fmt.Fprintln(w, titleStyle.Render("Options:"))
		fs.VisitAll(func(f *flag.Flag) {
			fmt.Fprintf(w, "  %s %s\n", flagStyle.Render("-"+f.Name), descStyle.Render(flagType(f)))
			if isBoolFlag(f) {
				fmt.Fprintf(w, "      %s\n", f.Usage)
				return
			}
			fmt.Fprintf(w, "      %s (default %s)\n", f.Usage, f.DefValue)
		})
		fmt.Fprintln(w)

		if len(specs) > 0 {
			fmt.Fprintln(w, titleStyle.Render("Environment:"))
			for _, spec := range specs {
				if err := envconfig.Usagef(bench.EnvPrefix, spec, w, envUsageFormat); err != nil {
					fmt.Fprintf(w, "  (%v)\n", err)
				}
			}
			fmt.Fprintln(w)
		}

		if example != "" {
			fmt.Fprintln(w, titleStyle.Render("Example:"))
			fmt.Fprintln(w, exampleStyle.Render("  "+example))
			fmt.Fprintln(w)
		}

		fmt.Fprintln(w, descStyle.Render(fmt.Sprintf("Run '%s -help' for full documentation.", fs.Name())))
	}
}

// PrintDocs renders markdown for the terminal, falling back to the raw text.
func PrintDocs(w io.Writer, markdown string) {
	// Get terminal width, default to 80 if not a terminal
	width := 80
	if tw, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && tw > 0 {
		width = tw
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		fmt.Fprintln(w, markdown)
		return
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		fmt.Fprintln(w, markdown)
		return
	}

	fmt.Fprint(w, out)
}
