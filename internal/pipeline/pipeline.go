// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"
	"sync"
)

// Config controls the worker pool.
type Config struct {
	Threads int // number of worker goroutines; < 1 means runtime.NumCPU()
}

func (c Config) workers(jobs int) int {
	n := c.Threads
	if n < 1 {
		n = runtime.NumCPU()
	}
	return max(1, min(n, jobs))
}

// Func computes the outputs of one input.
type Func[In, Out any] func(ctx context.Context, in In) ([]Out, error)

// ForEach runs work over items on cfg.Threads goroutines and calls visit for
// every output, in the order of items and then of the outputs of each item.
// It stops early and returns the first error from work or visit, or the
// context's error if ctx is cancelled.
func ForEach[In, Out any](
	ctx context.Context,
	cfg Config,
	items []In,
	work Func[In, Out],
	visit func(Out) error,
) error {
	if len(items) == 0 {
		return ctx.Err()
	}
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct {
		idx int
		in  In
	}
	type result struct {
		idx  int
		outs []Out
		err  error
	}
	n := cfg.workers(len(items))
	jobs := make(chan job, n*2)
	results := make(chan result, n*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(n)
	for w := 0; w < n; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-runCtx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					outs, err := work(runCtx, j.in)
					select {
					case results <- result{idx: j.idx, outs: outs, err: err}:
					case <-runCtx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: buffers out-of-order results until their turn.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]result)
		next := 0
		for r := range results {
			if cerr != nil {
				continue
			}
			pending[r.idx] = r
			for {
				cur, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if cur.err != nil {
					cerr = cur.err
					cancel()
					break
				}
				for _, o := range cur.outs {
					if err := visit(o); err != nil {
						cerr = err
						cancel()
						break
					}
				}
				if cerr != nil {
					break
				}
			}
		}
	}()

	// Feed work
feed:
	for i, it := range items {
		select {
		case <-runCtx.Done():
			break feed
		case jobs <- job{idx: i, in: it}:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}
