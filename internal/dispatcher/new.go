package dispatcher

import "github.com/nguyentantai21042004/brief-flow/internal/observer"

const defaultMaxWorkers = 4

type implDispatcher struct {
	maxWorkers int
	obs        observer.Observer
}

// New creates a Dispatcher running at most maxWorkers analyses at once.
func New(maxWorkers int, obs observer.Observer) Dispatcher {
	if maxWorkers <= 0 {
		maxWorkers = defaultMaxWorkers
	}
	if obs == nil {
		obs = observer.Nop()
	}
	return &implDispatcher{maxWorkers: maxWorkers, obs: obs}
}
