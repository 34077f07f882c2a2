package suite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/steward/internal/common/clock"
	"github.com/selebrow/steward/pkg/framework"
	"github.com/selebrow/steward/pkg/lifecycle"
	"github.com/selebrow/steward/pkg/models"
	"github.com/selebrow/steward/pkg/session"
	"github.com/selebrow/steward/pkg/webdriver"
)

type (
	Failure struct {
		Test models.TestIdentity
		Err  error
	}

	Result struct {
		Passed    int
		Failed    int
		NoBrowser int
		Warnings  int
		Failures  []Failure
	}
)

func (r *Result) OK() bool {
	return r.Failed == 0
}

type Runner struct {
	listener framework.Listener
	now      clock.NowFunc
	l        *zap.SugaredLogger
}

func NewRunner(listener framework.Listener, now clock.NowFunc, l *zap.Logger) *Runner {
	return &Runner{
		listener: listener,
		now:      now,
		l:        l.Sugar(),
	}
}

// Run executes suite tests one by one. Cancelling ctx stops the run before the next test,
// error is returned when listener rejects the test or run was cancelled.
func (r *Runner) Run(ctx context.Context, s *Suite) (*Result, error) {
	res := new(Result)
	r.l.Infof("running suite %s", s.Name)

	for _, c := range s.Classes {
		if len(c.Methods) == 0 {
			if err := r.warn(ctx, c, res); err != nil {
				return res, err
			}
			continue
		}
		for _, m := range c.Methods {
			if err := ctx.Err(); err != nil {
				return res, errors.Wrap(err, "suite run interrupted")
			}
			tc := framework.NewCase(
				models.TestIdentity{Class: c.Name, Method: m.Name},
				framework.Markers{Class: c.Markers, Method: m.Markers},
			)
			if err := r.runTest(ctx, tc, m, res); err != nil {
				return res, err
			}
		}
	}

	r.l.Infof("suite %s completed: %d passed, %d failed, %d without browser, %d warnings",
		s.Name, res.Passed, res.Failed, res.NoBrowser, res.Warnings)
	return res, nil
}

func (r *Runner) warn(ctx context.Context, c Class, res *Result) error {
	w := framework.NewWarning(c.Name, fmt.Sprintf("class %s has no test methods", c.Name))
	if err := r.listener.OnTestStart(ctx, w); err != nil {
		return err
	}
	r.l.Warn(w.Warning())
	res.Warnings++
	return r.listener.OnTestEnd(ctx, w, 0)
}

func (r *Runner) runTest(ctx context.Context, tc *framework.Case, m Method, res *Result) error {
	l := r.l.With(zap.Stringer("test", tc.Identity()))
	start := r.now()

	err := r.listener.OnTestStart(ctx, tc)
	if errors.Is(err, lifecycle.ErrUsage) {
		return err
	}
	kind := tc.Session().Kind()
	if err == nil {
		err = r.body(ctx, tc.Session(), m)
	}
	if endErr := r.listener.OnTestEnd(ctx, tc, r.now().Sub(start)); endErr != nil {
		return endErr
	}

	switch {
	case err != nil:
		l.With(zap.Error(err)).Error("test failed")
		res.Failed++
		res.Failures = append(res.Failures, Failure{Test: tc.Identity(), Err: err})
	case kind == session.KindNull:
		res.NoBrowser++
		res.Passed++
	default:
		res.Passed++
	}
	return nil
}

func (r *Runner) body(ctx context.Context, h session.Handle, m Method) error {
	if m.URL == "" {
		return nil
	}
	live, ok := h.Live()
	if !ok {
		return errors.Errorf("test opens %s but runs without a browser", m.URL)
	}

	if _, err := live.Execute(ctx, webdriver.NewGetCommand(m.URL)); err != nil {
		return errors.Wrapf(err, "failed to open %s", m.URL)
	}
	title, err := live.Execute(ctx, webdriver.NewCommand(webdriver.GetTitle, nil))
	if err != nil {
		return errors.Wrap(err, "failed to get page title")
	}
	got, _ := title.(string)
	if m.Title != "" && !strings.Contains(got, m.Title) {
		return errors.Errorf("page title %q does not contain %q", got, m.Title)
	}
	return nil
}
