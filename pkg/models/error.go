package models

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// W3C WebDriver error codes, see https://www.w3.org/TR/webdriver2/#errors
const (
	SessionNotCreatedErr = "session not created"
	InvalidSessionIDErr  = "invalid session id"
	UnknownCommandErr    = "unknown command"
	UnknownErr           = "unknown error"
)

type ErrorWithCode interface {
	error
	Code() int
}

type ErrorMessage struct {
	code    int
	err     error
	Message string `json:"message"`
}

func NewErrorMessage(code int, err error) *ErrorMessage {
	return &ErrorMessage{
		code:    code,
		err:     err,
		Message: err.Error(),
	}
}

func (e *ErrorMessage) Code() int {
	return e.code
}

func (e *ErrorMessage) Error() string {
	return e.err.Error()
}

func (e *ErrorMessage) Unwrap() error {
	return e.err
}

func NewTimeoutError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusGatewayTimeout, err)
}

func WrapTimeoutErr(err error, msg string) error {
	var e ErrorWithCode
	if errors.Is(err, context.DeadlineExceeded) && !errors.As(err, &e) {
		err = NewTimeoutError(err)
	}
	return errors.Wrap(err, msg)
}

// ErrorBody error payload as sent by W3C and (partially) JsonWire remote ends
type ErrorBody struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StackTrace string `json:"stacktrace"`
}

// W3CResponse response envelope of W3C remote ends
type W3CResponse struct {
	Value any `json:"value"`
}
