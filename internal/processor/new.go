package processor

import (
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/brief-flow/internal/analyzer"
	"github.com/nguyentantai21042004/brief-flow/internal/config"
	"github.com/nguyentantai21042004/brief-flow/internal/dispatcher"
	"github.com/nguyentantai21042004/brief-flow/internal/logger"
	"github.com/nguyentantai21042004/brief-flow/internal/output"
	"github.com/nguyentantai21042004/brief-flow/internal/questions"
	"github.com/nguyentantai21042004/brief-flow/internal/runstore"
	"github.com/nguyentantai21042004/brief-flow/internal/segmenter"
	"github.com/nguyentantai21042004/brief-flow/internal/synthesizer"
	"github.com/nguyentantai21042004/brief-flow/internal/transcribe"
)

// Deps are the collaborators of a Processor. Transcriber and Store are optional.
type Deps struct {
	Segmenter   segmenter.Segmenter
	Dispatcher  dispatcher.Dispatcher
	Analyzer    analyzer.Analyzer
	Brief       analyzer.Instruction
	Questions   questions.Pipeline
	Synthesizer synthesizer.Synthesizer
	Transcriber transcribe.Transcriber
	Writer      output.Writer
	Store       runstore.Store
	Logger      logger.Logger

	// NewID defaults to uuid.NewString.
	NewID func() string
	// Now defaults to time.Now.
	Now func() time.Time
}

type implProcessor struct {
	cfg *config.Config
	Deps
	logger logger.Logger
}

// New creates a new Processor instance.
func New(cfg *config.Config, d Deps) Processor {
	if d.Logger == nil {
		d.Logger = logger.NewNop()
	}
	if d.NewID == nil {
		d.NewID = uuid.NewString
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return &implProcessor{
		cfg:    cfg,
		Deps:   d,
		logger: d.Logger,
	}
}
