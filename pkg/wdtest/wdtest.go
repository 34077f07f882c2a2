// Package wdtest attaches browser sessions to go tests.
//
//	func TestLogin(t *testing.T) {
//		h := wdtest.Start(t, listener)
//		live, _ := h.Live()
//		...
//	}
//
// Subtests map to test classes: for TestLogin/valid_password the class is TestLogin
// and the method is valid_password. Session is released on test cleanup.
package wdtest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/selebrow/steward/pkg/framework"
	"github.com/selebrow/steward/pkg/models"
	"github.com/selebrow/steward/pkg/policy"
	"github.com/selebrow/steward/pkg/session"
)

type options struct {
	ctx     context.Context
	markers framework.Markers
}

type Option func(o *options)

// NoBrowser marks the test as one that does not need a browser
func NoBrowser() Option {
	return func(o *options) {
		o.markers.Method = append(o.markers.Method, policy.NoBrowserMarker)
	}
}

// ClassMarkers sets markers of the enclosing test, like those set on the test class
func ClassMarkers(markers ...string) Option {
	return func(o *options) {
		o.markers.Class = append(o.markers.Class, markers...)
	}
}

func MethodMarkers(markers ...string) Option {
	return func(o *options) {
		o.markers.Method = append(o.markers.Method, markers...)
	}
}

func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

// Start notifies listener that test t has started and returns the handle attached to it.
// The test fails immediately if the session could not be started.
func Start(t testing.TB, l framework.Listener, opts ...Option) session.Handle {
	t.Helper()
	o := &options{ctx: context.Background()}
	for _, opt := range opts {
		opt(o)
	}

	tc := framework.NewCase(Identity(t.Name()), o.markers)
	start := time.Now()
	if err := l.OnTestStart(o.ctx, tc); err != nil {
		t.Fatalf("failed to start test %s: %v", tc.Name(), err)
	}
	t.Cleanup(func() {
		if err := l.OnTestEnd(context.WithoutCancel(o.ctx), tc, time.Since(start)); err != nil {
			t.Errorf("failed to end test %s: %v", tc.Name(), err)
		}
	})
	return tc.Session()
}

// Identity converts go test name to test identity
func Identity(name string) models.TestIdentity {
	class, method, ok := strings.Cut(name, "/")
	if !ok {
		return models.TestIdentity{Method: name}
	}
	return models.TestIdentity{Class: class, Method: method}
}
