// Package framework describes tests as delivered by a test runner
package framework

import (
	"context"
	"time"

	"github.com/selebrow/steward/pkg/models"
	"github.com/selebrow/steward/pkg/session"
)

type Test interface {
	Name() string
}

// Listener receives test lifecycle events from a runner. Runners call it sequentially,
// OnTestEnd is called for every test OnTestStart was called for.
type Listener interface {
	OnTestStart(ctx context.Context, test Test) error
	OnTestEnd(ctx context.Context, test Test, elapsed time.Duration) error
}

// TestCase regular test method of a test class
type TestCase interface {
	Test
	Identity() models.TestIdentity
	Markers() Markers
	// Slot per-test storage of the session handle
	Slot() *Slot
}

// WarningTest placeholder test the runner reports instead of a broken class
type WarningTest interface {
	Test
	Warning() string
}

type Markers struct {
	Class  []string
	Method []string
}

type Slot struct {
	h session.Handle
}

func (s *Slot) Handle() session.Handle {
	return s.h
}

func (s *Slot) Set(h session.Handle) {
	s.h = h
}

// Take returns attached handle and leaves the slot absent
func (s *Slot) Take() session.Handle {
	h := s.h
	s.h = session.Handle{}
	return h
}

type Case struct {
	id      models.TestIdentity
	markers Markers
	slot    Slot
}

func NewCase(id models.TestIdentity, markers Markers) *Case {
	return &Case{
		id:      id,
		markers: markers,
	}
}

func (c *Case) Name() string {
	return c.id.String()
}

func (c *Case) Identity() models.TestIdentity {
	return c.id
}

func (c *Case) Markers() Markers {
	return c.markers
}

func (c *Case) Slot() *Slot {
	return &c.slot
}

// Session handle currently attached to the test
func (c *Case) Session() session.Handle {
	return c.slot.Handle()
}

type Warning struct {
	name string
	msg  string
}

func NewWarning(name, msg string) *Warning {
	return &Warning{name: name, msg: msg}
}

func (w *Warning) Name() string {
	return w.name
}

func (w *Warning) Warning() string {
	return w.msg
}
