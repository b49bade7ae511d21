package scanner

import (
	"context"

	"offsets-finder/internal/model"
	"offsets-finder/internal/worker"

	"github.com/rs/zerolog/log"
)

// ConfigFunc picks the variant and table to scan a given dump with.
type ConfigFunc func(path string) (model.Variant, model.GameConfig)

// FileScan is the outcome of scanning one dump in a batch.
type FileScan struct {
	Path    string
	Variant model.Variant
	Results []model.Result
	Err     error
}

// ScanAll scans several dumps concurrently. Each scan is independent and
// synchronous; output order matches paths.
func ScanAll(ctx context.Context, paths []string, workers int, configFor ConfigFunc) []FileScan {
	pool := worker.NewPool[string, FileScan](workers,
		func(ctx context.Context, path string) (FileScan, error) {
			variant, cfg := configFor(path)
			results, err := ScanFile(path, cfg)
			return FileScan{Path: path, Variant: variant, Results: results, Err: err}, err
		},
	)

	jobs := pool.Execute(ctx, paths)

	scans := make([]FileScan, len(jobs))
	for i, j := range jobs {
		scans[i] = j.Result
		if j.Skipped {
			scans[i] = FileScan{Path: j.Input, Err: context.Canceled}
			if err := ctx.Err(); err != nil {
				scans[i].Err = err
			}
		}
	}

	log.Info().Int("files", len(paths)).Int("workers", workers).Msg("Batch scan complete")
	return scans
}
