package executor

import "context"

// Executor runs external tools such as ffmpeg and whisper.cpp.
type Executor interface {
	Run(ctx context.Context, cmd Command) (string, error)
}

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
}

// String renders the command line for logs.
func (c Command) String() string {
	s := c.Name
	for _, a := range c.Args {
		s += " " + a
	}
	return s
}
