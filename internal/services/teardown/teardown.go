package teardown

import (
	"context"
	stderrors "errors"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/steward/pkg/session"
	"github.com/selebrow/steward/pkg/webdriver"
)

type SessionTeardown interface {
	Teardown(ctx context.Context, h session.Handle) error
}

type SessionTeardownImpl struct {
	l *zap.SugaredLogger
}

func NewSessionTeardown(l *zap.Logger) *SessionTeardownImpl {
	return &SessionTeardownImpl{
		l: l.Sugar(),
	}
}

// Teardown releases live session. Every step is attempted exactly once even if
// previous one failed; cookie cleanup failures are only logged.
func (t *SessionTeardownImpl) Teardown(ctx context.Context, h session.Handle) error {
	live, ok := h.Live()
	if !ok {
		return nil
	}
	if !live.MarkClosed() {
		return nil
	}

	l := t.l.With(zap.String("session_id", live.ID()), zap.String("browser", live.Browser()))
	c := live.Client()

	// older drivers leak cookies into the next session of the same node
	if _, err := c.Execute(ctx, webdriver.NewCommand(webdriver.DeleteAllCookies, nil)); err != nil {
		l.Warnw("failed to delete cookies", zap.Error(err))
	}

	var errs []error
	if err := c.Close(ctx); err != nil {
		l.Warnw("failed to close browser window", zap.Error(err))
		errs = append(errs, errors.Wrap(err, "close"))
	}
	if err := c.Quit(ctx); err != nil {
		l.Warnw("failed to quit session", zap.Error(err))
		errs = append(errs, errors.Wrap(err, "quit"))
	}

	if err := stderrors.Join(errs...); err != nil {
		return errors.Wrapf(err, "teardown of session %s", live.ID())
	}
	l.Debug("session released")
	return nil
}
