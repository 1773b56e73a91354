package questions

import (
	"github.com/nguyentantai21042004/brief-flow/internal/analyzer"
	"github.com/nguyentantai21042004/brief-flow/internal/observer"
)

type implPipeline struct {
	analyzer analyzer.Analyzer
	obs      observer.Observer
}

// New creates a Pipeline that issues its stage calls through a.
func New(a analyzer.Analyzer, obs observer.Observer) Pipeline {
	if obs == nil {
		obs = observer.Nop()
	}
	return &implPipeline{analyzer: a, obs: obs}
}
