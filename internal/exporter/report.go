package exporter

import (
	"bufio"
	"fmt"
	"strings"

	"offsets-finder/internal/model"
)

const notFound = "NOT FOUND"

// renderPlainText emits a category-sectioned "name = value" report that
// lists missing offsets too.
func renderPlainText(results []model.Result, variant model.Variant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "====== %s OFFSETS ======\n\n", strings.ToUpper(variant.Name()))

	eachByCategory(results,
		func(category string, first bool) {
			if !first {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "--- %s ---\n", category)
		},
		func(r model.Result) {
			if r.Found {
				fmt.Fprintf(&b, "%s = %s\n", r.Name, r.Offset)
			} else {
				fmt.Fprintf(&b, "%s = %s\n", r.Name, notFound)
			}
		},
	)

	stats := model.Summarize(results)
	b.WriteString("\n====== STATISTICS ======\n")
	fmt.Fprintf(&b, "Found: %d/%d\n", stats.Found, stats.Total)
	return b.String()
}

// ParseReport reads a plain-text report back into Results. Banner, blank
// and statistics lines are ignored.
func ParseReport(text string) []model.Result {
	var results []model.Result
	category := ""

	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		switch {
		case line == "" || strings.HasPrefix(line, "======"):
			continue
		case strings.HasPrefix(line, "--- ") && strings.HasSuffix(line, " ---"):
			category = strings.TrimSuffix(strings.TrimPrefix(line, "--- "), " ---")
			continue
		}

		name, value, ok := strings.Cut(line, " = ")
		if !ok {
			continue
		}
		if value == notFound {
			results = append(results, model.MissingResult(name, category))
		} else {
			results = append(results, model.FoundResult(name, value, category))
		}
	}

	return results
}
