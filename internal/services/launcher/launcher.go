package launcher

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/selebrow/steward/internal/common/clock"
	"github.com/selebrow/steward/pkg/capabilities"
	"github.com/selebrow/steward/pkg/models"
	"github.com/selebrow/steward/pkg/session"
	"github.com/selebrow/steward/pkg/webdriver"
)

const (
	DefaultAttempts       = 4
	DefaultBackoff        = time.Second
	DefaultConnectTimeout = 120 * time.Second
	DefaultRequestTimeout = 180 * time.Second
)

type SessionLauncher interface {
	Launch(ctx context.Context, serverURL string, caps *capabilities.Set, timeouts models.Timeouts) (*session.Live, error)
}

type Options struct {
	// Attempts total number of create attempts, including the first one
	Attempts int
	// Backoff fixed pause between attempts
	Backoff time.Duration
}

func DefaultOptions() Options {
	return Options{
		Attempts: DefaultAttempts,
		Backoff:  DefaultBackoff,
	}
}

func DefaultTimeouts() models.Timeouts {
	return models.Timeouts{
		Connect: DefaultConnectTimeout,
		Request: DefaultRequestTimeout,
	}
}

// LaunchError session could not be launched, Err is the error of the last attempt
type LaunchError struct {
	Kind     webdriver.ErrorKind
	Attempts int
	Err      error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch session after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

type retryPhase int

const (
	attempting retryPhase = iota
	succeeded
	exhausted
	failed
)

type retryState struct {
	phase       retryPhase
	attempt     int
	maxAttempts int
	lastErr     error
}

type SessionLauncherImpl struct {
	factory  webdriver.Factory
	attempts int
	backoff  wait.Backoff
	after    clock.AfterFunc
	now      clock.NowFunc
	l        *zap.SugaredLogger
}

func NewSessionLauncher(
	factory webdriver.Factory,
	opts Options,
	after clock.AfterFunc,
	now clock.NowFunc,
	l *zap.Logger,
) *SessionLauncherImpl {
	attempts := opts.Attempts
	if attempts < 1 {
		attempts = 1
	}
	return &SessionLauncherImpl{
		factory:  factory,
		attempts: attempts,
		backoff: wait.Backoff{
			Duration: opts.Backoff,
			Factor:   1,
			Steps:    attempts - 1,
		},
		after: after,
		now:   now,
		l:     l.Sugar(),
	}
}

// Launch creates remote session. Only locking port collisions of Firefox are retried,
// any other failure is returned right away.
func (s *SessionLauncherImpl) Launch(
	ctx context.Context,
	serverURL string,
	caps *capabilities.Set,
	timeouts models.Timeouts,
) (*session.Live, error) {
	browser := caps.GetString(capabilities.BrowserNameKey)
	l := s.l.With(zap.String("browser", browser))

	rs := retryState{phase: attempting, maxAttempts: s.attempts}
	b := s.backoff
	var client webdriver.Client
	for rs.phase == attempting {
		rs.attempt++
		c, err := s.factory.Create(ctx, serverURL, caps, timeouts.Connect, timeouts.Request)
		if err == nil {
			client = c
			rs.phase = succeeded
			continue
		}
		rs.lastErr = err

		switch kind := webdriver.KindOf(err); {
		case kind == webdriver.KindLockingPort && browser == capabilities.Firefox:
			if rs.attempt >= rs.maxAttempts {
				rs.phase = exhausted
				continue
			}
			delay := b.Step()
			l.With(zap.Error(err)).
				Warnf("attempt %d of %d to create session failed on locking port, next retry in %s",
					rs.attempt, rs.maxAttempts, delay)
			select {
			case <-ctx.Done():
				rs.lastErr = errors.Wrap(ctx.Err(), "launch cancelled")
				rs.phase = failed
			case <-s.after(delay):
			}
		case kind == webdriver.KindNodeUnavailable:
			l.With(zap.Error(err)).
				Warnf("hub failed to forward the new session, node is probably not registered with the hub %s", serverURL)
			rs.phase = failed
		default:
			rs.phase = failed
		}
	}

	switch rs.phase {
	case succeeded:
		return session.NewLive(browser, caps, client, s.now(), rs.attempt), nil
	case exhausted:
		l.With(zap.Error(rs.lastErr)).Warnf("all %d attempts to create session failed", rs.attempt)
	}
	return nil, &LaunchError{
		Kind:     webdriver.KindOf(rs.lastErr),
		Attempts: rs.attempt,
		Err:      rs.lastErr,
	}
}
