package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveToArchived moves a processed input into the archived folder.
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}
	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))

	p.logger.Info(ctx, "Archiving input: %s -> %s", path, dest)

	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
