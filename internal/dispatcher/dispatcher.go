package dispatcher

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/model"
	"github.com/nguyentantai21042004/brief-flow/internal/observer"
	"golang.org/x/sync/errgroup"
)

func (d *implDispatcher) RunAll(ctx context.Context, chunks []model.Chunk, fn AnalyzeFunc) ([]model.UnitResult, observer.Summary) {
	started := time.Now()
	total := len(chunks)
	out := make(chan model.UnitResult, total)

	var g errgroup.Group
	g.SetLimit(d.maxWorkers)

	for _, c := range chunks {
		g.Go(func() error {
			out <- d.runOne(ctx, c, total, fn)
			return nil
		})
	}
	_ = g.Wait()
	close(out)

	results := make([]model.UnitResult, 0, total)
	for r := range out {
		results = append(results, r)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ChunkIndex < results[j].ChunkIndex
	})

	counts := model.Stats(results)
	summary := observer.Summary{
		Total:     counts.Total,
		Succeeded: counts.Succeeded,
		Failed:    counts.Failed,
		Elapsed:   time.Since(started),
	}
	d.obs.RunFinished(ctx, summary)
	return results, summary
}

// runOne isolates a single analysis: cancellation and panics become failed results.
func (d *implDispatcher) runOne(ctx context.Context, c model.Chunk, total int, fn AnalyzeFunc) (r model.UnitResult) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			r = model.NewResult(c).Fail(fmt.Errorf("panic: %v", p))
		}
		r.ChunkIndex = c.Index
		if r.Elapsed == 0 {
			r.Elapsed = time.Since(start)
		}
		if r.Success {
			d.obs.ChunkSucceeded(ctx, r)
		} else {
			if r.ChunkText == "" {
				r.ChunkText = c.Text
			}
			d.obs.ChunkFailed(ctx, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return model.NewResult(c).Fail(fmt.Errorf("not started: %w", err))
	}
	d.obs.ChunkStarted(ctx, c.Index, total)
	return fn(ctx, c)
}
