package launcher_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/selebrow/steward/internal/services/launcher"
	"github.com/selebrow/steward/mocks"
	"github.com/selebrow/steward/pkg/capabilities"
	"github.com/selebrow/steward/pkg/models"
	"github.com/selebrow/steward/pkg/session"
	"github.com/selebrow/steward/pkg/webdriver"
)

const testURL = "http://hub:4444/wd/hub"

var testTimeouts = models.Timeouts{Connect: 2 * time.Minute, Request: 3 * time.Minute}

func lockingPortErr(attempt int) error {
	return &webdriver.RemoteError{
		Command:    webdriver.NewSession,
		StatusCode: 500,
		Message:    fmt.Sprintf("attempt %d: Unable to bind to locking port 7054 within 45000 ms", attempt),
		Kind:       webdriver.KindLockingPort,
	}
}

func readyAfter(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.UnixMilli(0)
	return ch
}

func newLauncher(t *testing.T, f webdriver.Factory, after *mocks.AfterFunc) *launcher.SessionLauncherImpl {
	return launcher.NewSessionLauncher(
		f,
		launcher.DefaultOptions(),
		after.Execute,
		func() time.Time { return time.UnixMilli(1000) },
		zaptest.NewLogger(t),
	)
}

func TestSessionLauncher_LaunchFirstAttempt(t *testing.T) {
	g := NewWithT(t)
	f := mocks.NewFactory(t)
	after := mocks.NewAfterFunc(t)
	c := mocks.NewClient(t)
	l := newLauncher(t, f, after)

	caps := capabilities.Build(capabilities.Chrome)
	c.EXPECT().SessionID().Return("abc").Once()
	f.EXPECT().Create(context.TODO(), testURL, caps, 2*time.Minute, 3*time.Minute).Return(c, nil).Once()

	live, err := l.Launch(context.TODO(), testURL, caps, testTimeouts)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(live.ID()).To(Equal("abc"))
	g.Expect(live.Browser()).To(Equal("chrome"))
	g.Expect(live.Attempts()).To(Equal(1))
	g.Expect(live.Created()).To(Equal(time.UnixMilli(1000)))
	g.Expect(live.Client()).To(BeIdenticalTo(c))
	g.Expect(live.Capabilities().Map()).To(Equal(caps.Map()))
}

func TestSessionLauncher_LaunchRetriesLockingPort(t *testing.T) {
	g := NewWithT(t)
	f := mocks.NewFactory(t)
	after := mocks.NewAfterFunc(t)
	c := mocks.NewClient(t)

	core, logs := observer.New(zap.WarnLevel)
	l := launcher.NewSessionLauncher(f, launcher.DefaultOptions(), after.Execute, time.Now, zap.New(core))

	caps := capabilities.Build(capabilities.Firefox)
	for i := 1; i <= 3; i++ {
		f.EXPECT().Create(mock.Anything, testURL, caps, mock.Anything, mock.Anything).Return(nil, lockingPortErr(i)).Once()
	}
	f.EXPECT().Create(mock.Anything, testURL, caps, mock.Anything, mock.Anything).Return(c, nil).Once()
	c.EXPECT().SessionID().Return("ff-1")
	after.EXPECT().Execute(time.Second).RunAndReturn(readyAfter).Times(3)

	live, err := l.Launch(context.TODO(), testURL, caps, testTimeouts)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(live.ID()).To(Equal("ff-1"))
	g.Expect(live.Attempts()).To(Equal(4))

	g.Expect(logs.FilterMessageSnippet("locking port").Len()).To(Equal(3))
	g.Expect(logs.FilterMessageSnippet("attempt 2 of 4").Len()).To(Equal(1))
	g.Expect(logs.FilterMessageSnippet("all 4 attempts").Len()).To(BeZero())
}

func TestSessionLauncher_LaunchExhausted(t *testing.T) {
	g := NewWithT(t)
	f := mocks.NewFactory(t)
	after := mocks.NewAfterFunc(t)

	core, logs := observer.New(zap.WarnLevel)
	l := launcher.NewSessionLauncher(f, launcher.DefaultOptions(), after.Execute, time.Now, zap.New(core))

	caps := capabilities.Build(capabilities.Firefox)
	errs := make([]error, 4)
	for i := range errs {
		errs[i] = lockingPortErr(i + 1)
		f.EXPECT().Create(mock.Anything, testURL, caps, mock.Anything, mock.Anything).Return(nil, errs[i]).Once()
	}
	after.EXPECT().Execute(time.Second).RunAndReturn(readyAfter).Times(3)

	live, err := l.Launch(context.TODO(), testURL, caps, testTimeouts)
	g.Expect(live).To(BeNil())
	g.Expect(err).To(MatchError(errs[3]))
	g.Expect(errors.Is(err, errs[2])).To(BeFalse())

	var le *launcher.LaunchError
	g.Expect(errors.As(err, &le)).To(BeTrue())
	g.Expect(le.Attempts).To(Equal(4))
	g.Expect(le.Kind).To(Equal(webdriver.KindLockingPort))
	g.Expect(le.Err).To(BeIdenticalTo(errs[3]))

	g.Expect(logs.FilterMessage("all 4 attempts to create session failed").Len()).To(Equal(1))
}

func TestSessionLauncher_LaunchLockingPortOtherBrowser(t *testing.T) {
	g := NewWithT(t)
	f := mocks.NewFactory(t)
	after := mocks.NewAfterFunc(t)
	l := newLauncher(t, f, after)

	caps := capabilities.Build(capabilities.Chrome)
	f.EXPECT().Create(mock.Anything, testURL, caps, mock.Anything, mock.Anything).Return(nil, lockingPortErr(1)).Once()

	_, err := l.Launch(context.TODO(), testURL, caps, testTimeouts)
	var le *launcher.LaunchError
	g.Expect(errors.As(err, &le)).To(BeTrue())
	g.Expect(le.Attempts).To(Equal(1))
}

func TestSessionLauncher_LaunchNodeUnavailable(t *testing.T) {
	g := NewWithT(t)
	f := mocks.NewFactory(t)
	after := mocks.NewAfterFunc(t)

	core, logs := observer.New(zap.WarnLevel)
	l := launcher.NewSessionLauncher(f, launcher.DefaultOptions(), after.Execute, time.Now, zap.New(core))

	caps := capabilities.Build(capabilities.Firefox)
	fwdErr := errors.New("Error forwarding the new session cannot find : Capabilities {browserName: firefox}")
	f.EXPECT().Create(mock.Anything, testURL, caps, mock.Anything, mock.Anything).Return(nil, fwdErr).Once()

	_, err := l.Launch(context.TODO(), testURL, caps, testTimeouts)
	g.Expect(err).To(MatchError(fwdErr))

	var le *launcher.LaunchError
	g.Expect(errors.As(err, &le)).To(BeTrue())
	g.Expect(le.Attempts).To(Equal(1))
	g.Expect(le.Kind).To(Equal(webdriver.KindNodeUnavailable))
	g.Expect(logs.FilterMessageSnippet("node is probably not registered with the hub").Len()).To(Equal(1))
}

func TestSessionLauncher_LaunchOtherError(t *testing.T) {
	g := NewWithT(t)
	f := mocks.NewFactory(t)
	after := mocks.NewAfterFunc(t)

	core, logs := observer.New(zap.WarnLevel)
	l := launcher.NewSessionLauncher(f, launcher.DefaultOptions(), after.Execute, time.Now, zap.New(core))

	caps := capabilities.Build(capabilities.IE)
	f.EXPECT().Create(mock.Anything, testURL, caps, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	_, err := l.Launch(context.TODO(), testURL, caps, testTimeouts)
	g.Expect(err).To(MatchError(ContainSubstring("failed to launch session after 1 attempt(s): connection refused")))
	g.Expect(logs.Len()).To(BeZero())
}

func TestSessionLauncher_LaunchCancelledDuringBackoff(t *testing.T) {
	g := NewWithT(t)
	f := mocks.NewFactory(t)
	after := mocks.NewAfterFunc(t)
	l := newLauncher(t, f, after)

	ctx, cancel := context.WithCancel(context.Background())
	caps := capabilities.Build(capabilities.Firefox)
	f.EXPECT().Create(mock.Anything, testURL, caps, mock.Anything, mock.Anything).
		Return(nil, lockingPortErr(1)).Once()
	after.EXPECT().Execute(time.Second).RunAndReturn(func(time.Duration) <-chan time.Time {
		cancel()
		return make(chan time.Time)
	}).Once()

	_, err := l.Launch(ctx, testURL, caps, testTimeouts)
	g.Expect(err).To(MatchError(context.Canceled))

	var le *launcher.LaunchError
	g.Expect(errors.As(err, &le)).To(BeTrue())
	g.Expect(le.Attempts).To(Equal(1))
}

func TestSessionLauncher_SingleAttempt(t *testing.T) {
	g := NewWithT(t)
	f := mocks.NewFactory(t)
	after := mocks.NewAfterFunc(t)
	l := launcher.NewSessionLauncher(f, launcher.Options{Attempts: 0}, after.Execute, time.Now, zaptest.NewLogger(t))

	caps := capabilities.Build(capabilities.Firefox)
	f.EXPECT().Create(mock.Anything, testURL, caps, mock.Anything, mock.Anything).
		Return(nil, lockingPortErr(1)).Once()

	_, err := l.Launch(context.TODO(), testURL, caps, testTimeouts)
	var le *launcher.LaunchError
	g.Expect(errors.As(err, &le)).To(BeTrue())
	g.Expect(le.Attempts).To(Equal(1))
}

func TestDefaults(t *testing.T) {
	g := NewWithT(t)
	g.Expect(launcher.DefaultOptions()).To(Equal(launcher.Options{Attempts: 4, Backoff: time.Second}))
	g.Expect(launcher.DefaultTimeouts()).To(Equal(models.Timeouts{
		Connect: 120 * time.Second,
		Request: 180 * time.Second,
	}))
	g.Expect(session.Handle{}.Kind()).To(Equal(session.KindAbsent))
}
