package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/steward/pkg/models"
)

var (
	ErrStorageShutdown = errors.New("session storage is shutdown")
	ErrSlotOccupied    = errors.New("test already holds a session")
	ErrSessionClosed   = errors.New("session is closed")
)

// CloseFunc releases leftover live session on storage shutdown
type CloseFunc func(ctx context.Context, h Handle) error

// SlotStorage keeps at most one handle per test identity
type SlotStorage interface {
	Allocate(id models.TestIdentity, h Handle) error
	Get(id models.TestIdentity) (Handle, bool)
	Release(id models.TestIdentity) (Handle, bool)
	Len() int
	IsShutdown() bool
}

type LocalSlotStorage struct {
	slots    map[models.TestIdentity]Handle
	closer   CloseFunc
	shutdown bool
	mtx      sync.RWMutex
	l        *zap.SugaredLogger
}

func NewLocalSlotStorage(closer CloseFunc, l *zap.Logger) *LocalSlotStorage {
	return &LocalSlotStorage{
		slots:  make(map[models.TestIdentity]Handle),
		closer: closer,
		l:      l.Sugar(),
	}
}

func (s *LocalSlotStorage) Allocate(id models.TestIdentity, h Handle) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.shutdown {
		return ErrStorageShutdown
	}
	if _, ok := s.slots[id]; ok {
		return errors.Wrapf(ErrSlotOccupied, "test %s", id)
	}
	s.slots[id] = h
	return nil
}

func (s *LocalSlotStorage) Get(id models.TestIdentity) (Handle, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	h, ok := s.slots[id]
	return h, ok
}

func (s *LocalSlotStorage) Release(id models.TestIdentity) (Handle, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	h, ok := s.slots[id]
	if !ok {
		return Handle{}, false
	}
	delete(s.slots, id)
	return h, true
}

func (s *LocalSlotStorage) Len() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return len(s.slots)
}

func (s *LocalSlotStorage) IsShutdown() bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.shutdown
}

// Shutdown rejects new allocations and closes live sessions still held by tests
func (s *LocalSlotStorage) Shutdown(ctx context.Context) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.shutdown = true

	live := 0
	done := make(chan struct{})
	var wg sync.WaitGroup
	for id, h := range s.slots {
		delete(s.slots, id)
		if h.Kind() != KindLive {
			continue
		}
		live++
		wg.Add(1)
		go func(id models.TestIdentity, h Handle) {
			defer wg.Done()
			if err := s.closer(ctx, h); err != nil {
				s.l.Warnw("failed to release leftover session", zap.Stringer("test", id), zap.Error(err))
			}
		}(id, h)
	}
	if live > 0 {
		s.l.Infof("session storage is shutting down, releasing %d live sessions", live)
	}

	go func() {
		defer close(done)
		wg.Wait()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
	}
	return nil
}
