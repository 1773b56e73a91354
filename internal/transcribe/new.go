package transcribe

import (
	"github.com/nguyentantai21042004/brief-flow/internal/config"
	"github.com/nguyentantai21042004/brief-flow/internal/logger"
	"github.com/nguyentantai21042004/brief-flow/pkg/executor"
)

type implTranscriber struct {
	cfg      config.WhisperConfig
	tempDir  string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcriber that runs ffmpeg and whisper.cpp through exec.
func New(cfg config.WhisperConfig, tempDir string, exec executor.Executor, log logger.Logger) Transcriber {
	if cfg.BinaryPath == "" {
		cfg.BinaryPath = "whisper-cli"
	}
	return &implTranscriber{
		cfg:      cfg,
		tempDir:  tempDir,
		executor: exec,
		logger:   log,
	}
}
