package webdriver

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindLockingPort legacy Firefox driver could not bind its locking port, usually
	// because another Firefox is starting on the same node
	KindLockingPort
	// KindNodeUnavailable hub could not forward the new session to any node
	KindNodeUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case KindLockingPort:
		return "locking port"
	case KindNodeUnavailable:
		return "node unavailable"
	default:
		return "unknown"
	}
}

// The messages are produced by Selenium hub and legacy Firefox driver and are
// not part of any protocol, new driver versions may word them differently.
var classifiers = []struct {
	substr string
	kind   ErrorKind
}{
	{substr: "Unable to bind to locking port", kind: KindLockingPort},
	{substr: "Error forwarding the new session", kind: KindNodeUnavailable},
}

// Classify maps remote end error message to an error kind
func Classify(msg string) ErrorKind {
	for _, c := range classifiers {
		if strings.Contains(msg, c.substr) {
			return c.kind
		}
	}
	return KindUnknown
}

// KindOf returns the kind assigned by RemoteClient or classifies the error text
// of errors produced by other Client implementations
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Kind
	}
	return Classify(err.Error())
}

// RemoteError failed command response of the remote end
type RemoteError struct {
	Command    string
	StatusCode int
	ErrorText  string
	Message    string
	Kind       ErrorKind
}

func (e *RemoteError) Error() string {
	errText := e.ErrorText
	if errText == "" {
		errText = "remote error"
	}
	return fmt.Sprintf("%s failed with HTTP code %d: %s: %s", e.Command, e.StatusCode, errText, e.Message)
}

func (e *RemoteError) Code() int {
	return e.StatusCode
}
