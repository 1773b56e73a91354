package observer

import (
	"context"
	"testing"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/logger"
	"github.com/nguyentantai21042004/brief-flow/internal/model"
	"github.com/stretchr/testify/assert"
)

type counting struct {
	started, succeeded, failed, stages, finished int
}

func (c *counting) ChunkStarted(context.Context, int, int)           { c.started++ }
func (c *counting) ChunkSucceeded(context.Context, model.UnitResult) { c.succeeded++ }
func (c *counting) ChunkFailed(context.Context, model.UnitResult)    { c.failed++ }
func (c *counting) StageCompleted(context.Context, int, string)      { c.stages++ }
func (c *counting) RunFinished(context.Context, Summary)             { c.finished++ }

func TestMulti(t *testing.T) {
	a, b := &counting{}, &counting{}
	m := Multi(a, Nop(), NewLog(logger.NewNop()), b)
	ctx := context.Background()

	m.ChunkStarted(ctx, 0, 2)
	m.ChunkSucceeded(ctx, model.UnitResult{ChunkIndex: 0, Success: true})
	m.ChunkFailed(ctx, model.UnitResult{ChunkIndex: 1, Error: "boom"})
	m.StageCompleted(ctx, 0, model.StageSummarized)
	m.RunFinished(ctx, Summary{Total: 2, Succeeded: 1, Failed: 1, Elapsed: time.Second})

	for _, c := range []*counting{a, b} {
		assert.Equal(t, counting{started: 1, succeeded: 1, failed: 1, stages: 1, finished: 1}, *c)
	}
}
