package display

import (
	"bytes"
	"errors"
	"testing"

	"offsets-finder/internal/model"
	"offsets-finder/internal/scanner"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
)

func TestResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, PlainPalette())

	p.Results([]model.Result{
		model.FoundResult("StaticClass", "0x5C", "Core"),
		model.MissingResult("isBot", "Bot Detection"),
	}, model.FreeFireMax)

	out := buf.String()
	assert.Contains(t, out, "====== FREE FIRE MAX OFFSETS ======")
	assert.Contains(t, out, "--- Core ---\nStaticClass 0x5C\n")
	assert.Contains(t, out, "--- Bot Detection ---\nisBot NOT FOUND\n")
	assert.NotContains(t, out, "\x1b[")
}

func TestStatistics(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, PlainPalette()).Statistics([]model.Result{
		model.FoundResult("a", "0x1", "Core"),
		model.MissingResult("b", "Core"),
		model.MissingResult("c", "Core"),
		model.MissingResult("d", "Core"),
	})

	out := buf.String()
	assert.Contains(t, out, "STATISTICS")
	assert.Contains(t, out, "Total offsets")
	assert.Contains(t, out, "25.0%")
}

func TestStatisticsEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, PlainPalette()).Statistics(nil)
	assert.Contains(t, buf.String(), "0.0%")
}

func TestDefaultPaletteColors(t *testing.T) {
	text.EnableColors()

	var buf bytes.Buffer
	NewPrinter(&buf, DefaultPalette()).Results([]model.Result{
		model.FoundResult("StaticClass", "0x5C", "Core"),
	}, model.FreeFire)
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestBatch(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, PlainPalette()).Batch([]scanner.FileScan{
		{Path: "a.cs", Variant: model.FreeFireTela, Results: []model.Result{model.FoundResult("x", "0x1", "Core")}},
		{Path: "b.cs", Err: errors.New("boom")},
	})

	out := buf.String()
	assert.Contains(t, out, "a.cs")
	assert.Contains(t, out, "Free Fire TELA")
	assert.Contains(t, out, "100.0%")
	assert.Contains(t, out, "FAILED")
}

func TestChanges(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, PlainPalette())

	p.Changes(nil)
	assert.Contains(t, buf.String(), "No offset changes")

	buf.Reset()
	p.Changes([]scanner.Change{{Name: "Head", Category: "Skeleton/Bones", Old: "0x10", OldFound: true}})
	out := buf.String()
	assert.Contains(t, out, "Head")
	assert.Contains(t, out, "0x10")
	assert.Contains(t, out, "NOT FOUND")
}

func TestVariants(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, PlainPalette()).Variants(map[model.Variant]model.GameConfig{
		model.FreeFireMax: {
			{Category: model.CategoryCore, Targets: []model.Target{model.NewFixed("a", "0x1"), model.NewSeparator()}},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Free Fire MAX")
	assert.Contains(t, out, "Core")
	assert.NotContains(t, out, "Free Fire TELA")
}
