package worker

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Job pairs an input with what processing it produced.
type Job[T any, R any] struct {
	Input  T
	Result R
	Err    error
	// Skipped is set when the context was cancelled before the job ran.
	Skipped bool
}

// ProcessFunc handles a single input.
type ProcessFunc[T any, R any] func(ctx context.Context, input T) (R, error)

// Pool runs a ProcessFunc over a slice of inputs with bounded concurrency.
type Pool[T any, R any] struct {
	workers int
	process ProcessFunc[T, R]
}

// NewPool creates a pool with at least one worker.
func NewPool[T any, R any](workers int, fn ProcessFunc[T, R]) *Pool[T, R] {
	if workers < 1 {
		workers = 1
	}
	return &Pool[T, R]{
		workers: workers,
		process: fn,
	}
}

// Execute processes every input and returns one Job per input, in input
// order. Inputs not reached before ctx is cancelled come back Skipped.
func (p *Pool[T, R]) Execute(ctx context.Context, inputs []T) []Job[T, R] {
	jobs := make([]Job[T, R], len(inputs))
	for i := range inputs {
		jobs[i] = Job[T, R]{Input: inputs[i], Skipped: true}
	}

	idxCh := make(chan int)
	var wg sync.WaitGroup

	workers := min(p.workers, len(inputs))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for idx := range idxCh {
				result, err := p.process(ctx, inputs[idx])
				jobs[idx] = Job[T, R]{Input: inputs[idx], Result: result, Err: err}
				if err != nil {
					log.Error().Err(err).Int("worker", workerID).Int("index", idx).Msg("Job failed")
				}
			}
		}(w)
	}

feed:
	for i := range inputs {
		select {
		case <-ctx.Done():
			log.Warn().Int("remaining", len(inputs)-i).Msg("Cancelled, skipping remaining jobs")
			break feed
		case idxCh <- i:
		}
	}
	close(idxCh)

	wg.Wait()
	return jobs
}
