package models

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/selebrow/steward/pkg/models"
)

func TestNewSessionRequestedEvent(t *testing.T) {
	g := NewWithT(t)
	tm := time.UnixMilli(123)
	now = func() time.Time {
		return tm
	}

	se := SessionRequested{
		Test:          models.TestIdentity{Class: "LoginTest", Method: "testLogin"},
		BrowserName:   "firefox",
		Attempts:      2,
		StartDuration: time.Millisecond,
		Error:         errors.New("test"),
	}

	e := NewSessionRequestedEvent(se)

	g.Expect(e.EventTime()).To(Equal(tm))
	g.Expect(e.EventType()).To(Equal(SessionRequestedEventType))
	g.Expect(e.Attributes).To(Equal(se))
}

func TestNewSessionSkippedEvent(t *testing.T) {
	g := NewWithT(t)
	tm := time.UnixMilli(155)
	now = func() time.Time {
		return tm
	}

	ss := SessionSkipped{
		Test:   models.TestIdentity{Class: "ApiTest", Method: "testPing"},
		Reason: "noBrowser set on class",
	}

	e := NewSessionSkippedEvent(ss)

	g.Expect(e.EventTime()).To(Equal(tm))
	g.Expect(e.EventType()).To(Equal(SessionSkippedEventType))
	g.Expect(e.Attributes).To(Equal(ss))
}

func TestNewSessionReleasedEvent(t *testing.T) {
	g := NewWithT(t)
	tm := time.UnixMilli(222)
	now = func() time.Time {
		return tm
	}

	sr := SessionReleased{
		Test:            models.TestIdentity{Class: "LoginTest", Method: "testLogin"},
		BrowserName:     "chrome",
		SessionDuration: time.Minute,
	}

	e := NewSessionReleasedEvent(sr)

	g.Expect(e.EventTime()).To(Equal(tm))
	g.Expect(e.EventType()).To(Equal(SessionReleasedEventType))
	g.Expect(e.Attributes).To(Equal(sr))
}
