package exporter

import (
	"errors"
	"fmt"
	"os"

	"offsets-finder/internal/model"

	"github.com/rs/zerolog/log"
)

// ToolName appears in generated file headers.
const ToolName = "Free Fire Offsets Finder"

// ErrUnknownFormat is returned for a Format outside model.Formats.
var ErrUnknownFormat = errors.New("unknown export format")

// Render formats results for a variant. It never touches the filesystem.
func Render(results []model.Result, variant model.Variant, format model.Format) (string, error) {
	switch format {
	case model.FormatJSON:
		return renderJSON(results, variant)
	case model.FormatCppHeader:
		return renderCppHeader(results, variant), nil
	case model.FormatRustModule:
		return renderRustModule(results, variant), nil
	case model.FormatPlainText:
		return renderPlainText(results, variant), nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
}

// Export renders results and writes them to path, replacing any existing
// file. A failed write removes the file instead of leaving it truncated.
func Export(results []model.Result, variant model.Variant, format model.Format, path string) error {
	content, err := Render(results, variant, format)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write export file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close export file: %w", err)
	}

	log.Info().Str("path", path).Str("format", format.String()).Int("results", len(results)).Msg("Exported offsets")
	return nil
}

// eachByCategory walks results in scan order, calling onCategory whenever
// the category differs from the previous result's.
func eachByCategory(results []model.Result, onCategory func(category string, first bool), onResult func(r model.Result)) {
	current := ""
	first := true
	for _, r := range results {
		if first || r.Category != current {
			onCategory(r.Category, first)
			current = r.Category
			first = false
		}
		onResult(r)
	}
}
