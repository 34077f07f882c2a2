package models

import (
	"time"

	"github.com/selebrow/steward/pkg/models"
)

const (
	SessionRequestedEventType = "SessionRequested"
	SessionSkippedEventType   = "SessionSkipped"
	SessionReleasedEventType  = "SessionReleased"
)

type SessionRequested struct {
	Test          models.TestIdentity
	BrowserName   string
	Attempts      int
	StartDuration time.Duration
	Error         error
}

type SessionSkipped struct {
	Test   models.TestIdentity
	Reason string
}

type SessionReleased struct {
	Test            models.TestIdentity
	BrowserName     string
	SessionDuration time.Duration
	Error           error
}

func NewSessionRequestedEvent(s SessionRequested) *Event[SessionRequested] {
	return NewEvent(SessionRequestedEventType, now(), s)
}

func NewSessionSkippedEvent(s SessionSkipped) *Event[SessionSkipped] {
	return NewEvent(SessionSkippedEventType, now(), s)
}

func NewSessionReleasedEvent(s SessionReleased) *Event[SessionReleased] {
	return NewEvent(SessionReleasedEventType, now(), s)
}
