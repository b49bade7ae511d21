package display

import (
	"fmt"
	"io"
	"strings"

	"offsets-finder/internal/model"
	"offsets-finder/internal/scanner"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Palette holds the colors used for console output.
type Palette struct {
	Banner   text.Colors
	Category text.Colors
	Found    text.Colors
	Offset   text.Colors
	Missing  text.Colors
	Label    text.Colors
}

// DefaultPalette is the bright scheme used on color terminals.
func DefaultPalette() Palette {
	return Palette{
		Banner:   text.Colors{text.FgHiCyan, text.Bold},
		Category: text.Colors{text.FgHiMagenta, text.Bold},
		Found:    text.Colors{text.FgHiGreen, text.Bold},
		Offset:   text.Colors{text.FgHiYellow},
		Missing:  text.Colors{text.FgHiRed, text.Bold},
		Label:    text.Colors{text.FgHiWhite},
	}
}

// PlainPalette prints without escape sequences.
func PlainPalette() Palette {
	return Palette{}
}

// Printer writes scan output for a human.
type Printer struct {
	out     io.Writer
	palette Palette
}

func NewPrinter(out io.Writer, palette Palette) *Printer {
	return &Printer{out: out, palette: palette}
}

// Results lists every result grouped by category in scan order.
func (p *Printer) Results(results []model.Result, variant model.Variant) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.palette.Banner.Sprintf("====== %s OFFSETS ======", strings.ToUpper(variant.Name())))

	current := ""
	for i, r := range results {
		if i == 0 || r.Category != current {
			fmt.Fprintln(p.out)
			fmt.Fprintln(p.out, p.palette.Category.Sprintf("--- %s ---", r.Category))
			current = r.Category
		}

		if r.Found {
			fmt.Fprintf(p.out, "%s %s\n", p.palette.Found.Sprint(r.Name), p.palette.Offset.Sprint(r.Offset))
		} else {
			fmt.Fprintf(p.out, "%s %s\n", p.palette.Missing.Sprint(r.Name), p.palette.Missing.Sprint("NOT FOUND"))
		}
	}
}

// Statistics prints found/missing counts and the success rate.
func (p *Printer) Statistics(results []model.Result) {
	stats := model.Summarize(results)

	t := p.newTable()
	t.SetTitle(p.palette.Banner.Sprint("STATISTICS"))
	t.AppendRows([]table.Row{
		{p.palette.Label.Sprint("Total offsets"), stats.Total},
		{p.palette.Found.Sprint("Found"), stats.Found},
		{p.palette.Missing.Sprint("Missing"), stats.Missing},
		{p.palette.Label.Sprint("Success rate"), fmt.Sprintf("%.1f%%", stats.Percent())},
	})
	fmt.Fprintln(p.out)
	t.Render()
}

// Batch prints one summary row per scanned dump.
func (p *Printer) Batch(scans []scanner.FileScan) {
	t := p.newTable()
	t.AppendHeader(table.Row{"Dump", "Game", "Found", "Total", "Rate"})
	for _, s := range scans {
		if s.Err != nil {
			t.AppendRow(table.Row{s.Path, "-", "-", "-", p.palette.Missing.Sprint("FAILED")})
			continue
		}
		stats := model.Summarize(s.Results)
		t.AppendRow(table.Row{s.Path, s.Variant.Name(), stats.Found, stats.Total, fmt.Sprintf("%.1f%%", stats.Percent())})
	}
	t.Render()
}

// Changes prints the offsets that differ between two scans.
func (p *Printer) Changes(changes []scanner.Change) {
	if len(changes) == 0 {
		fmt.Fprintln(p.out, p.palette.Found.Sprint("No offset changes"))
		return
	}

	t := p.newTable()
	t.AppendHeader(table.Row{"Category", "Name", "Old", "New"})
	for _, c := range changes {
		t.AppendRow(table.Row{c.Category, c.Name, p.value(c.Old, c.OldFound), p.value(c.New, c.NewFound)})
	}
	t.Render()
}

// Variants prints target counts per category for each variant table.
func (p *Printer) Variants(tables map[model.Variant]model.GameConfig) {
	t := p.newTable()
	t.AppendHeader(table.Row{"Game", "Category", "Targets"})
	for _, v := range model.Variants {
		cfg, ok := tables[v]
		if !ok {
			continue
		}
		for _, s := range cfg {
			n := model.GameConfig{s}.TargetCount()
			t.AppendRow(table.Row{v.Name(), s.Category.Label(), n})
		}
		t.AppendSeparator()
	}
	t.Render()
}

func (p *Printer) value(offset string, found bool) string {
	if !found {
		return p.palette.Missing.Sprint("NOT FOUND")
	}
	return p.palette.Offset.Sprint(offset)
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleLight)
	return t
}
