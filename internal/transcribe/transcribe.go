package transcribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/brief-flow/pkg/executor"
)

var audioExtensions = map[string]bool{
	".wav": true, ".mp3": true, ".m4a": true, ".flac": true,
	".ogg": true, ".webm": true, ".mp4": true,
}

// IsAudio reports whether path has a supported audio extension.
func IsAudio(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

// Transcribe extracts 16kHz mono audio, runs whisper.cpp with SRT output and
// returns the transcript as "[MM:SS -> MM:SS] text" lines under a short header.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if err := os.MkdirAll(t.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	workDir, err := os.MkdirTemp(t.tempDir, "transcribe-*")
	if err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			t.logger.Warn(ctx, "Failed to cleanup %s: %v", workDir, err)
		}
	}()

	wavPath, err := t.extractAudio(ctx, audioPath, workDir)
	if err != nil {
		return "", fmt.Errorf("extract audio: %w", err)
	}

	srtPath, err := t.whisper(ctx, wavPath)
	if err != nil {
		return "", fmt.Errorf("whisper: %w", err)
	}

	srt, err := os.ReadFile(srtPath)
	if err != nil {
		return "", fmt.Errorf("read srt: %w", err)
	}

	header := fmt.Sprintf("# Transcript\nAudio: %s\nLanguage: %s\n\n", filepath.Base(audioPath), t.cfg.Language)
	body := SRTToTimestamped(string(srt))
	if body == "" {
		return "", fmt.Errorf("whisper produced an empty transcript for %s", audioPath)
	}
	return header + body, nil
}

// extractAudio converts the input to the 16kHz mono PCM wav whisper expects.
func (t *implTranscriber) extractAudio(ctx context.Context, audioPath, workDir string) (string, error) {
	wavPath := filepath.Join(workDir, "audio.wav")
	t.logger.Info(ctx, "Extracting audio: %s", audioPath)

	cmd := executor.Command{
		Name: "ffmpeg",
		Args: []string{
			"-i", audioPath,
			"-vn",
			"-ar", "16000",
			"-ac", "1",
			"-c:a", "pcm_s16le",
			"-y",
			wavPath,
		},
	}
	if _, err := t.executor.Run(ctx, cmd); err != nil {
		return "", err
	}
	return wavPath, nil
}

// whisper runs whisper.cpp and returns the path of the SRT it wrote.
func (t *implTranscriber) whisper(ctx context.Context, wavPath string) (string, error) {
	prefix := strings.TrimSuffix(wavPath, filepath.Ext(wavPath))
	t.logger.Info(ctx, "Transcribing with %d threads: %s", t.cfg.Threads, wavPath)

	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", wavPath,
		"-osrt",
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"--output-file", prefix,
	}
	if t.cfg.Prompt != "" {
		args = append(args, "--prompt", t.cfg.Prompt)
	}

	if _, err := t.executor.Run(ctx, executor.Command{Name: t.cfg.BinaryPath, Args: args}); err != nil {
		return "", err
	}
	return prefix + ".srt", nil
}
