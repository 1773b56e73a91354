package output

import (
	"github.com/nguyentantai21042004/brief-flow/internal/logger"
)

type implWriter struct {
	root   string
	logger logger.Logger
}

// New creates a Writer that places each run under root/<run name>.
func New(root string, log logger.Logger) Writer {
	return &implWriter{
		root:   root,
		logger: log,
	}
}
