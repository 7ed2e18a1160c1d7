package cleanup

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStore struct {
	mu      sync.Mutex
	deletes []string
	err     error
}

func (s *recordingStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	return "", errors.New("not used")
}

func (s *recordingStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes = append(s.deletes, key)
	return s.err
}

func TestRun_SuccessLeavesNothingPending(t *testing.T) {
	store := &recordingStore{}
	d := &Dispatcher{store: store, queue: make(chan task, 1)}

	d.run(task{Key: "jobs/7/contracts/a.pdf"})

	assert.Equal(t, []string{"jobs/7/contracts/a.pdf"}, store.deletes)
	assert.Empty(t, d.pending)
}

func TestRun_FailureParksForRetry(t *testing.T) {
	store := &recordingStore{err: errors.New("bucket unreachable")}
	d := &Dispatcher{store: store, queue: make(chan task, 1)}

	d.run(task{Key: "jobs/7/contracts/a.pdf"})

	require.Len(t, d.pending, 1)
	assert.Equal(t, 1, d.pending[0].Attempts)
}

func TestRun_GivesUpAfterMaxAttempts(t *testing.T) {
	store := &recordingStore{err: errors.New("bucket unreachable")}
	d := &Dispatcher{store: store, queue: make(chan task, 1)}

	d.run(task{Key: "jobs/7/contracts/a.pdf", Attempts: maxAttempts - 1})

	assert.Empty(t, d.pending, "the key is abandoned, never retried forever")
}

func TestDispatch_IgnoresEmptyKey(t *testing.T) {
	d := &Dispatcher{store: &recordingStore{}, queue: make(chan task, 1)}

	d.Dispatch("")

	assert.Empty(t, d.queue)
	assert.Empty(t, d.pending)
}

func TestDispatch_FullQueueParksInsteadOfBlocking(t *testing.T) {
	d := &Dispatcher{store: &recordingStore{}, queue: make(chan task, 1)}

	d.Dispatch("one")
	d.Dispatch("two") // queue full, must not block

	assert.Len(t, d.queue, 1)
	require.Len(t, d.pending, 1)
	assert.Equal(t, "two", d.pending[0].Key)
}
