package filewalker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// DumpExtensions lists the file types treated as class dumps.
var DumpExtensions = map[string]bool{
	".cs":  true,
	".txt": true,
}

// Walker discovers dump files.
type Walker struct {
	exts map[string]bool
}

// NewWalker creates a Walker matching DumpExtensions.
func NewWalker() *Walker {
	return &Walker{exts: DumpExtensions}
}

// Walk resolves each argument to dump files. Files are taken as given
// regardless of extension; directories are searched recursively.
func (w *Walker) Walk(roots ...string) ([]string, error) {
	var paths []string

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}
		if !info.IsDir() {
			paths = append(paths, root)
			continue
		}

		err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("Error walking path")
				return nil
			}
			if info.IsDir() {
				return nil
			}
			if w.exts[strings.ToLower(filepath.Ext(path))] {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk directory: %w", err)
		}
	}

	log.Info().Int("count", len(paths)).Msg("Discovered dumps")
	return paths, nil
}
