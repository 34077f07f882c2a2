package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/steward/internal/common/clock"
	"github.com/selebrow/steward/internal/services/launcher"
	"github.com/selebrow/steward/internal/services/teardown"
	"github.com/selebrow/steward/pkg/capabilities"
	"github.com/selebrow/steward/pkg/event"
	evmodels "github.com/selebrow/steward/pkg/event/models"
	"github.com/selebrow/steward/pkg/framework"
	"github.com/selebrow/steward/pkg/models"
	"github.com/selebrow/steward/pkg/policy"
	"github.com/selebrow/steward/pkg/session"
)

var ErrUsage = errors.New("test is not a test case")

// UsageError listener was given a test of unsupported type, this is integration defect
type UsageError struct {
	Test string
	Type string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrUsage, e.Test, e.Type)
}

func (e *UsageError) Unwrap() error {
	return ErrUsage
}

func newUsageError(t framework.Test) *UsageError {
	e := &UsageError{Type: fmt.Sprintf("%T", t)}
	if t != nil {
		e.Test = t.Name()
	}
	return e
}

// Settings process wide values the listener is configured with
type Settings struct {
	ServerURL   string
	BrowserName string
	Timeouts    models.Timeouts
}

type Listener struct {
	settings Settings
	builder  *capabilities.Builder
	launcher launcher.SessionLauncher
	teardown teardown.SessionTeardown
	slots    session.SlotStorage
	eb       event.EventBroker
	now      clock.NowFunc
	l        *zap.SugaredLogger
}

func NewListener(
	settings Settings,
	builder *capabilities.Builder,
	launcher launcher.SessionLauncher,
	teardown teardown.SessionTeardown,
	slots session.SlotStorage,
	eb event.EventBroker,
	now clock.NowFunc,
	l *zap.Logger,
) *Listener {
	return &Listener{
		settings: settings,
		builder:  builder,
		launcher: launcher,
		teardown: teardown,
		slots:    slots,
		eb:       eb,
		now:      now,
		l:        l.Sugar(),
	}
}

func (s *Listener) Settings() Settings {
	return s.settings
}

// OnTestStart attaches session handle to the test: null one if the test does not need
// a browser, live one otherwise.
func (s *Listener) OnTestStart(ctx context.Context, test framework.Test) error {
	var tc framework.TestCase
	switch t := test.(type) {
	case framework.WarningTest:
		s.l.Debugf("ignoring warning test %s", t.Name())
		return nil
	case framework.TestCase:
		tc = t
	default:
		return newUsageError(test)
	}

	id := tc.Identity()
	if _, ok := s.slots.Get(id); ok || tc.Slot().Handle().Kind() != session.KindAbsent {
		return errors.Wrapf(session.ErrSlotOccupied, "test %s", id)
	}

	markers := tc.Markers()
	decision := policy.Resolve(policy.FlagsFromMarkers(markers.Class, markers.Method))
	if decision.Action == policy.Skip {
		return s.skip(tc, decision.Reason)
	}
	return s.launch(ctx, tc)
}

func (s *Listener) skip(tc framework.TestCase, reason string) error {
	id := tc.Identity()
	h := session.Null()
	if err := s.slots.Allocate(id, h); err != nil {
		return err
	}
	tc.Slot().Set(h)

	s.l.With(zap.Stringer("test", id)).Infof("browser session is not started: %s", reason)
	s.eb.Publish(evmodels.NewSessionSkippedEvent(evmodels.SessionSkipped{
		Test:   id,
		Reason: reason,
	}))
	return nil
}

func (s *Listener) launch(ctx context.Context, tc framework.TestCase) error {
	id := tc.Identity()
	browser := s.settings.BrowserName
	l := s.l.With(zap.Stringer("test", id), zap.String("browser", browser))

	caps, err := s.builder.BuildFor(browser, id)
	if err != nil {
		return errors.Wrapf(err, "failed to build capabilities for %s", id)
	}

	if typed, err := capabilities.Decode(caps); err == nil {
		l = l.With(zap.String("browser_version", typed.GetVersion()), zap.Bool("vnc", typed.IsVNCEnabled()))
	} else {
		l.Debugw("capabilities do not match selenoid options", zap.Error(err))
	}
	l.Infof("starting %s browser session for %s", browser, id)
	start := s.now()
	live, err := s.launcher.Launch(ctx, s.settings.ServerURL, caps, s.settings.Timeouts)
	s.eb.Publish(evmodels.NewSessionRequestedEvent(evmodels.SessionRequested{
		Test:          id,
		BrowserName:   browser,
		Attempts:      attempts(live, err),
		StartDuration: s.now().Sub(start),
		Error:         err,
	}))
	if err != nil {
		return errors.Wrapf(err, "failed to start browser session for %s", id)
	}

	h := session.FromLive(live)
	if err := s.slots.Allocate(id, h); err != nil {
		if tdErr := s.teardown.Teardown(ctx, h); tdErr != nil {
			l.Warnw("failed to release session which could not be attached to the test", zap.Error(tdErr))
		}
		return err
	}
	tc.Slot().Set(h)

	l.With(zap.String("session_id", live.ID())).Infof("browser session started in %d attempt(s)", live.Attempts())
	return nil
}

// OnTestEnd releases the live session of the test. Teardown failures are logged but not returned
// as the test has already completed.
func (s *Listener) OnTestEnd(ctx context.Context, test framework.Test, elapsed time.Duration) error {
	var tc framework.TestCase
	switch t := test.(type) {
	case framework.WarningTest:
		return nil
	case framework.TestCase:
		tc = t
	default:
		return newUsageError(test)
	}

	id := tc.Identity()
	h := tc.Slot().Take()
	if stored, ok := s.slots.Release(id); ok && h.Kind() == session.KindAbsent {
		h = stored
	}

	live, ok := h.Live()
	if !ok {
		return nil
	}

	l := s.l.With(zap.Stringer("test", id), zap.String("session_id", live.ID()))
	l.Infof("closing browser session %s of %s, test took %s", live.ID(), id, elapsed)
	err := s.teardown.Teardown(ctx, h)
	s.eb.Publish(evmodels.NewSessionReleasedEvent(evmodels.SessionReleased{
		Test:            id,
		BrowserName:     live.Browser(),
		SessionDuration: s.now().Sub(live.Created()),
		Error:           err,
	}))
	if err != nil {
		l.Warnw("browser session teardown failed", zap.Error(err))
	}
	return nil
}

func attempts(live *session.Live, err error) int {
	if live != nil {
		return live.Attempts()
	}
	var le *launcher.LaunchError
	if errors.As(err, &le) {
		return le.Attempts
	}
	return 0
}
