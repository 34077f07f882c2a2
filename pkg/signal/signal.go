package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

type (
	ShutdownHook  func(ctx context.Context) error
	InterruptHook func()
)

type Handler struct {
	hooks      map[any][]ShutdownHook
	interrupts []InterruptHook
	timeout    time.Duration
	signals    chan os.Signal
	l          *zap.SugaredLogger
}

func NewHandler(timeout time.Duration, l *zap.Logger) *Handler {
	return &Handler{
		hooks:   make(map[any][]ShutdownHook),
		timeout: timeout,
		signals: make(chan os.Signal, 2),
		l:       l.Sugar(),
	}
}

// Start waits for done to be closed or for a signal and runs shutdown hooks afterwards.
// Non-zero result means the run was interrupted or hooks did not complete in time.
func (h *Handler) Start(done <-chan struct{}) int {
	signal.Notify(h.signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(h.signals)

	code := 0
	select {
	case <-done:
		h.l.Debug("run completed, shutting down...")
	case sig := <-h.signals:
		h.l.Infow("signal caught, shutting down...", zap.String("signal", sig.String()))
		for _, hook := range h.interrupts {
			hook()
		}
		code = 1
	}

	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	hooksDone := h.performShutdown(ctx)

	select {
	case <-ctx.Done():
		h.l.Warnf("shutdown hooks did not complete within %v, exiting immediately", h.timeout)
		return 1
	case <-hooksDone:
		h.l.Infof("graceful shutdown completed in %v", time.Since(start))
		return code
	case sig := <-h.signals:
		h.l.Infow("second signal caught, exiting immediately", zap.String("signal", sig.String()))
	}

	return 1
}

func (h *Handler) RegisterShutdownHook(group any, hook ShutdownHook) {
	h.hooks[group] = append(h.hooks[group], hook)
}

// RegisterInterruptHook hook runs right after a signal is caught, before shutdown hooks
func (h *Handler) RegisterInterruptHook(hook InterruptHook) {
	h.interrupts = append(h.interrupts, hook)
}

func (h *Handler) performShutdown(ctx context.Context) <-chan struct{} {
	var wg sync.WaitGroup
	done := make(chan struct{})
	for _, s := range h.hooks {
		wg.Add(1)
		go func(hooks []ShutdownHook) {
			defer wg.Done()
			for i := len(hooks) - 1; i >= 0; i-- {
				if err := hooks[i](ctx); err != nil {
					h.l.Warnw("shutdown hook failed", zap.Error(err))
				}
			}
		}(s)
	}

	go func() {
		defer close(done)
		wg.Wait()
	}()

	return done
}
