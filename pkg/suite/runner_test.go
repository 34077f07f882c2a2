package suite

import (
	"context"
	"strings"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/steward/internal/services/launcher"
	"github.com/selebrow/steward/internal/services/teardown"
	"github.com/selebrow/steward/pkg/capabilities"
	"github.com/selebrow/steward/pkg/event"
	"github.com/selebrow/steward/pkg/framework"
	"github.com/selebrow/steward/pkg/lifecycle"
	"github.com/selebrow/steward/pkg/session"
	"github.com/selebrow/steward/pkg/webdriver"
	"github.com/selebrow/steward/pkg/webdriver/webdrivertest"
)

func newListener(t *testing.T, hubURL string) *lifecycle.Listener {
	logger := zaptest.NewLogger(t)
	td := teardown.NewSessionTeardown(logger)
	return lifecycle.NewListener(
		lifecycle.Settings{
			ServerURL:   hubURL,
			BrowserName: capabilities.Chrome,
			Timeouts:    launcher.DefaultTimeouts(),
		},
		capabilities.NewBuilder(nil),
		launcher.NewSessionLauncher(webdriver.NewRemoteFactory(nil, logger), launcher.DefaultOptions(), time.After, time.Now, logger),
		td,
		session.NewLocalSlotStorage(td.Teardown, logger),
		event.NewEventBrokerImpl(10, logger),
		time.Now,
		logger,
	)
}

func TestRunner_Run(t *testing.T) {
	g := NewWithT(t)
	hub := webdrivertest.NewHub(t)
	r := NewRunner(newListener(t, hub.URL()), time.Now, zaptest.NewLogger(t))

	s, err := Load(strings.NewReader(`
name: smoke
classes:
  - name: LoginTest
    methods:
      - name: testLogin
        url: http://example.com/login
        title: example.com
      - name: testWrongTitle
        url: http://example.com/
        title: nope
      - name: testApiToken
        markers: [noBrowser]
  - name: ReportTest
    markers: [noBrowser]
    methods:
      - name: testExport
        url: http://example.com/export
  - name: DraftTest
`))
	g.Expect(err).ToNot(HaveOccurred())

	res, err := r.Run(context.TODO(), s)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(res.OK()).To(BeFalse())
	g.Expect(res.Passed).To(Equal(2))
	g.Expect(res.NoBrowser).To(Equal(1))
	g.Expect(res.Failed).To(Equal(2))
	g.Expect(res.Warnings).To(Equal(1))
	g.Expect(res.Failures[0].Test.String()).To(Equal("LoginTest.testWrongTitle"))
	g.Expect(res.Failures[0].Err).To(MatchError(`page title "title of http://example.com/" does not contain "nope"`))
	g.Expect(res.Failures[1].Test.String()).To(Equal("ReportTest.testExport"))
	g.Expect(res.Failures[1].Err).To(MatchError("test opens http://example.com/export but runs without a browser"))

	g.Expect(hub.Commands()).To(Equal([]string{
		"newSession", "get", "getTitle", "deleteAllCookies", "closeWindow", "quit",
		"newSession", "get", "getTitle", "deleteAllCookies", "closeWindow", "quit",
	}))
}

func TestRunner_LaunchFailure(t *testing.T) {
	g := NewWithT(t)
	hub := webdrivertest.NewHub(t)
	hub.FailCreate(webdrivertest.Failure{Message: "Error forwarding the new session Empty pool of VM for setup"})
	r := NewRunner(newListener(t, hub.URL()), time.Now, zaptest.NewLogger(t))

	res, err := r.Run(context.TODO(), &Suite{Name: "s", Classes: []Class{
		{Name: "A", Methods: []Method{{Name: "first"}, {Name: "second"}}},
	}})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(res.Failed).To(Equal(1))
	g.Expect(res.Passed).To(Equal(1))
	g.Expect(webdriver.KindOf(res.Failures[0].Err)).To(Equal(webdriver.KindNodeUnavailable))
	g.Expect(hub.CreateAttempts()).To(Equal(2))
}

func TestRunner_Cancelled(t *testing.T) {
	g := NewWithT(t)
	r := NewRunner(newListener(t, "http://127.0.0.1:1/wd/hub"), time.Now, zaptest.NewLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := r.Run(ctx, &Suite{Classes: []Class{{Name: "A", Methods: []Method{{Name: "m"}}}}})
	g.Expect(err).To(MatchError(context.Canceled))
	g.Expect(res.Passed + res.Failed).To(BeZero())
}

type rejectingListener struct{}

func (rejectingListener) OnTestStart(_ context.Context, test framework.Test) error {
	return &lifecycle.UsageError{Test: test.Name(), Type: "custom"}
}

func (rejectingListener) OnTestEnd(context.Context, framework.Test, time.Duration) error {
	return nil
}

func TestRunner_UsageErrorAbortsRun(t *testing.T) {
	g := NewWithT(t)
	r := NewRunner(rejectingListener{}, time.Now, zaptest.NewLogger(t))

	_, err := r.Run(context.TODO(), &Suite{Classes: []Class{{Name: "A", Methods: []Method{{Name: "m"}}}}})
	g.Expect(err).To(MatchError(lifecycle.ErrUsage))
}
