package transcribe

import "context"

// Transcriber converts an audio file into timestamped transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
