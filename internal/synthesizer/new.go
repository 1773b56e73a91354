package synthesizer

import (
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/analyzer"
	"github.com/nguyentantai21042004/brief-flow/internal/config"
	"github.com/nguyentantai21042004/brief-flow/internal/llm"
	"github.com/nguyentantai21042004/brief-flow/internal/logger"
)

const defaultWordBudget = 800

// Options configures a Synthesizer. A nil Completer or the rules strategy
// disables the model-based path.
type Options struct {
	Completer   llm.Completer
	Strategy    string
	MergePrompt string
	WordBudget  int
	Timeout     time.Duration
	Logger      logger.Logger
	// Now stamps GeneratedAt; defaults to time.Now.
	Now func() time.Time
}

type implSynthesizer struct {
	analyzer    analyzer.Analyzer
	primary     bool
	mergePrompt string
	wordBudget  int
	l           logger.Logger
	now         func() time.Time
}

// New creates a Synthesizer.
func New(opts Options) Synthesizer {
	if opts.WordBudget <= 0 {
		opts.WordBudget = defaultWordBudget
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &implSynthesizer{
		analyzer:    analyzer.New(opts.Completer, opts.Timeout),
		primary:     opts.Completer != nil && opts.Strategy != config.MergeRules,
		mergePrompt: opts.MergePrompt,
		wordBudget:  opts.WordBudget,
		l:           opts.Logger,
		now:         opts.Now,
	}
}
