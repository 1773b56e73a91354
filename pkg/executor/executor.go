package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrCommand wraps every failed invocation.
var ErrCommand = errors.New("command failed")

type implExecutor struct{}

// New creates an Executor backed by os/exec.
func New() Executor {
	return &implExecutor{}
}

// Run executes cmd and returns its stdout. Stderr is attached to the error.
func (e *implExecutor) Run(ctx context.Context, cmd Command) (string, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrCommand, cmd.Name, ctx.Err())
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%w: %s: %w\nstderr: %s", ErrCommand, cmd.Name, err, msg)
		}
		return "", fmt.Errorf("%w: %s: %w", ErrCommand, cmd.Name, err)
	}

	return stdout.String(), nil
}
