package cleanup

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/silverhalide/studio-api/internal/storage"
)

const maxAttempts = 3

type task struct {
	Key      string
	Attempts int
}

// Dispatcher deletes storage objects in the background so admin operations
// never block on (or fail because of) storage cleanup. Failed deletes are
// parked and retried by a periodic sweep; deletes are idempotent, so a key
// swept twice is harmless.
type Dispatcher struct {
	store storage.Store
	queue chan task

	mu      sync.Mutex
	pending []task
}

func NewDispatcher(store storage.Store) *Dispatcher {
	d := &Dispatcher{
		store: store,
		queue: make(chan task, 100),
	}

	go d.worker()
	go d.sweep()
	return d
}

// Dispatch enqueues a storage key for deletion. Never blocks the caller.
func (d *Dispatcher) Dispatch(key string) {
	if key == "" {
		return
	}

	select {
	case d.queue <- task{Key: key}:
	default:
		d.park(task{Key: key})
	}
}

func (d *Dispatcher) worker() {
	for t := range d.queue {
		d.run(t)
	}
}

func (d *Dispatcher) run(t task) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := d.store.Delete(ctx, t.Key); err != nil {
		t.Attempts++
		log.Printf("cleanup: delete %s failed (attempt %d): %v", t.Key, t.Attempts, err)

		if t.Attempts < maxAttempts {
			d.park(t)
		}
		return
	}
}

func (d *Dispatcher) park(t task) {
	d.mu.Lock()
	d.pending = append(d.pending, t)
	d.mu.Unlock()
}

func (d *Dispatcher) sweep() {
	for range time.Tick(time.Minute) {
		d.mu.Lock()
		batch := d.pending
		d.pending = nil
		d.mu.Unlock()

		for _, t := range batch {
			d.run(t)
		}
	}
}
