package scanner

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"offsets-finder/internal/model"
	"offsets-finder/internal/textutil"

	"github.com/rs/zerolog/log"
)

// maxLineSize bounds a single dump line. Decompiled dumps occasionally carry
// very long attribute lines.
const maxLineSize = 64 * 1024 * 1024

var hexLiteral = regexp.MustCompile(`0[xX][0-9A-Fa-f]+`)

// ExtractHex returns the leftmost hex literal in line.
func ExtractHex(line string) (string, bool) {
	m := hexLiteral.FindString(line)
	return m, m != ""
}

// FindPattern resolves a pattern against dump lines. Only the first line
// containing the pattern is considered: if it carries no hex literal the
// pattern is not found, even when a later line would match.
func FindPattern(lines []string, pattern string) (string, bool) {
	for _, line := range lines {
		if strings.Contains(line, pattern) {
			return ExtractHex(line)
		}
	}
	return "", false
}

// ReadLines loads a dump file as lines in file order.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dump: %w", err)
	}
	defer file.Close()

	var lines []string
	sc := bufio.NewScanner(file)
	sc.Buffer(make([]byte, 0, 1024*1024), maxLineSize)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan dump: %w", err)
	}

	return lines, nil
}

// Resolve turns every non-separator target of cfg into a Result, in table order.
func Resolve(lines []string, cfg model.GameConfig) []model.Result {
	results := make([]model.Result, 0, cfg.TargetCount())

	for _, section := range cfg {
		label := section.Category.Label()

		for _, t := range section.Targets {
			switch t.Kind() {
			case model.KindSeparator:
				continue
			case model.KindFixed:
				results = append(results, model.FoundResult(t.Name(), t.Hex(), label))
			case model.KindPattern:
				if offset, ok := FindPattern(lines, t.Pattern()); ok {
					results = append(results, model.FoundResult(t.Name(), offset, label))
				} else {
					log.Debug().Str("target", t.Name()).Str("pattern", textutil.Truncate(t.Pattern(), 40)).Msg("Pattern not found")
					results = append(results, model.MissingResult(t.Name(), label))
				}
			}
		}
	}

	return results
}

// ScanFile reads a dump and resolves cfg against it.
func ScanFile(path string, cfg model.GameConfig) ([]model.Result, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}

	results := Resolve(lines, cfg)

	stats := model.Summarize(results)
	log.Debug().
		Str("file", path).
		Int("lines", len(lines)).
		Int("found", stats.Found).
		Int("total", stats.Total).
		Msg("Scanned dump")

	return results, nil
}

// Scan is ScanFile for callers that only care about results. An unreadable
// file yields an empty list; the cause is logged.
func Scan(path string, cfg model.GameConfig) []model.Result {
	results, err := ScanFile(path, cfg)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("Scan failed")
		return []model.Result{}
	}
	return results
}
