package analyzer

import (
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/llm"
)

const defaultCallTimeout = 60 * time.Second

type implAnalyzer struct {
	completer llm.Completer
	timeout   time.Duration
}

// New creates an Analyzer that bounds every call to timeout.
func New(c llm.Completer, timeout time.Duration) Analyzer {
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &implAnalyzer{completer: c, timeout: timeout}
}
