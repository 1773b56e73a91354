package runstore

import (
	"context"

	"github.com/nguyentantai21042004/brief-flow/internal/model"
)

// Store keeps the history of pipeline runs.
type Store interface {
	Record(ctx context.Context, run model.Run) error
	Get(ctx context.Context, id string) (Entry, error)
	List(ctx context.Context, limit int) ([]Entry, error)
	Close() error
}
