package models

import "time"

// TestIdentity identifies a single test execution as reported by the runner.
type TestIdentity struct {
	Class  string
	Method string
}

func (i TestIdentity) String() string {
	switch {
	case i.Class == "":
		return i.Method
	case i.Method == "":
		return i.Class
	}
	return i.Class + "." + i.Method
}

// SkipFlags tells whether the browser is not needed on class or method level
type SkipFlags struct {
	Class  bool
	Method bool
}

// Timeouts applied to a single session launch attempt
type Timeouts struct {
	Connect time.Duration
	Request time.Duration
}
