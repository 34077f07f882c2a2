package session

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/selebrow/steward/pkg/capabilities"
	"github.com/selebrow/steward/pkg/webdriver"
)

type Kind int

const (
	// KindAbsent no handle was attached to the test yet
	KindAbsent Kind = iota
	// KindNull test runs without a browser
	KindNull
	KindLive
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindLive:
		return "live"
	default:
		return "absent"
	}
}

// Handle session attached to a single test. The zero value is absent handle.
type Handle struct {
	kind Kind
	live *Live
}

func Null() Handle {
	return Handle{kind: KindNull}
}

func FromLive(l *Live) Handle {
	if l == nil {
		return Handle{}
	}
	return Handle{kind: KindLive, live: l}
}

func (h Handle) Kind() Kind {
	return h.kind
}

// Live returns the live session, ok is false for any other kind
func (h Handle) Live() (*Live, bool) {
	return h.live, h.kind == KindLive
}

// Client is the remote control of the live session, nil for other kinds
func (h Handle) Client() webdriver.Client {
	if h.kind != KindLive {
		return nil
	}
	return h.live.client
}

func (h Handle) String() string {
	if h.kind == KindLive {
		return "live session " + h.live.id
	}
	return h.kind.String() + " session"
}

type Live struct {
	id       string
	browser  string
	caps     *capabilities.Set
	client   webdriver.Client
	created  time.Time
	attempts int
	closed   atomic.Bool
}

func NewLive(
	browser string,
	caps *capabilities.Set,
	client webdriver.Client,
	created time.Time,
	attempts int,
) *Live {
	return &Live{
		id:       client.SessionID(),
		browser:  browser,
		caps:     caps.Clone(),
		client:   client,
		created:  created,
		attempts: attempts,
	}
}

func (l *Live) ID() string {
	return l.id
}

func (l *Live) Browser() string {
	return l.browser
}

// Capabilities the session was requested with
func (l *Live) Capabilities() *capabilities.Set {
	return l.caps.Clone()
}

func (l *Live) Client() webdriver.Client {
	return l.client
}

func (l *Live) Created() time.Time {
	return l.created
}

// Attempts number of create attempts it took to launch the session
func (l *Live) Attempts() int {
	return l.attempts
}

// Execute runs the command unless the session was closed
func (l *Live) Execute(ctx context.Context, cmd webdriver.Command) (any, error) {
	if l.Closed() {
		return nil, ErrSessionClosed
	}
	return l.client.Execute(ctx, cmd)
}

func (l *Live) Closed() bool {
	return l.closed.Load()
}

// MarkClosed claims the session for teardown, only the first caller gets true
func (l *Live) MarkClosed() bool {
	return l.closed.CompareAndSwap(false, true)
}
