package model

import (
	"fmt"
	"strings"
)

// Result is the outcome of resolving one Target against a dump.
type Result struct {
	Name string
	// Offset is the discovered or known hex value. Only meaningful when Found is set.
	Offset   string
	Found    bool
	Category string
}

// FoundResult builds a Result with a present offset.
func FoundResult(name, offset, category string) Result {
	return Result{Name: name, Offset: offset, Found: true, Category: category}
}

// MissingResult builds a Result whose offset was not found.
func MissingResult(name, category string) Result {
	return Result{Name: name, Category: category}
}

// Stats summarizes a Result list.
type Stats struct {
	Total   int
	Found   int
	Missing int
}

// Summarize counts found and missing results.
func Summarize(results []Result) Stats {
	s := Stats{Total: len(results)}
	for _, r := range results {
		if r.Found {
			s.Found++
		}
	}
	s.Missing = s.Total - s.Found
	return s
}

// Percent is the share of found results, 0 for an empty list.
func (s Stats) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Found) / float64(s.Total) * 100
}

// Format selects an export renderer.
type Format int

const (
	FormatJSON Format = iota
	FormatCppHeader
	FormatRustModule
	FormatPlainText
)

// Formats lists the export formats in menu order.
var Formats = []Format{FormatJSON, FormatCppHeader, FormatRustModule, FormatPlainText}

// Extension is the default file extension, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCppHeader:
		return "hpp"
	case FormatRustModule:
		return "rs"
	case FormatPlainText:
		return "txt"
	default:
		return "txt"
	}
}

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCppHeader:
		return "cpp"
	case FormatRustModule:
		return "rust"
	case FormatPlainText:
		return "txt"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a command-line selector to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "cpp", "hpp", "header":
		return FormatCppHeader, nil
	case "rust", "rs":
		return FormatRustModule, nil
	case "txt", "text", "plain":
		return FormatPlainText, nil
	default:
		return 0, fmt.Errorf("unknown export format %q", s)
	}
}
