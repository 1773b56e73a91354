package output

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

// WritePartials writes chunks.json, one partials/chunk_NN.json per result
// (failures included) and the transcript of audio sources.
func (w *implWriter) WritePartials(ctx context.Context, run model.Run) (Paths, error) {
	p := Paths{Dir: filepath.Join(w.root, runName(run))}

	partialsDir := filepath.Join(p.Dir, "partials")
	if err := os.MkdirAll(partialsDir, 0755); err != nil {
		return Paths{}, fmt.Errorf("create output dir: %w", err)
	}

	p.Chunks = filepath.Join(p.Dir, "chunks.json")
	if err := writeJSON(p.Chunks, run.Chunks); err != nil {
		return Paths{}, fmt.Errorf("write chunks: %w", err)
	}

	for _, r := range run.Results {
		path := filepath.Join(partialsDir, PartialName(r.ChunkIndex))
		if err := writeJSON(path, r); err != nil {
			return Paths{}, fmt.Errorf("write partial %d: %w", r.ChunkIndex, err)
		}
		p.Partials = append(p.Partials, path)
	}

	if run.Transcript != "" {
		p.Transcript = filepath.Join(p.Dir, "transcript.txt")
		if err := os.WriteFile(p.Transcript, []byte(run.Transcript), 0644); err != nil {
			return Paths{}, fmt.Errorf("write transcript: %w", err)
		}
	}

	w.logger.Debug(ctx, "Run %s: %d partials written to %s", run.ID, len(p.Partials), p.Dir)
	return p, nil
}

// WriteDocument writes the rendered markdown and its docx export next to the
// partials in p.Dir. A failed docx export is logged, not returned.
func (w *implWriter) WriteDocument(ctx context.Context, run model.Run, p Paths) (Paths, error) {
	name := runName(run)
	if p.Dir == "" {
		p.Dir = filepath.Join(w.root, name)
	}
	if err := os.MkdirAll(p.Dir, 0755); err != nil {
		return Paths{}, fmt.Errorf("create output dir: %w", err)
	}

	base := fmt.Sprintf("%s_%s", name, documentSuffix(run.Artifact.Kind))
	p.Markdown = filepath.Join(p.Dir, base+".md")
	if err := os.WriteFile(p.Markdown, []byte(run.Document), 0644); err != nil {
		return Paths{}, fmt.Errorf("write markdown: %w", err)
	}

	docxPath := filepath.Join(p.Dir, base+".docx")
	if err := markdownToDocx(Title(name, run.Artifact.Kind), run.Document, docxPath); err != nil {
		w.logger.Warn(ctx, "Failed to export docx for %s: %v", name, err)
	} else {
		p.Docx = docxPath
	}

	w.logger.Info(ctx, "Run %s written to %s (%d partials)", run.ID, p.Dir, len(p.Partials))
	return p, nil
}

func runName(run model.Run) string {
	if run.Name == "" {
		return run.ID
	}
	return run.Name
}

// PartialName is the file name of a chunk's partial result, numbered from 1.
func PartialName(chunkIndex int) string {
	return fmt.Sprintf("chunk_%02d.json", chunkIndex+1)
}

// Title is the heading used for the docx export.
func Title(name, kind string) string {
	name = strings.ReplaceAll(name, "_", " ")
	if kind == model.KindQuestions {
		return name + " - Questions"
	}
	return name + " - Brief"
}

func documentSuffix(kind string) string {
	if kind == model.KindQuestions {
		return "questions"
	}
	return "brief"
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
