// Package policy decides whether a test needs a browser session at all.
package policy

import (
	"slices"

	"github.com/selebrow/steward/pkg/models"
)

// NoBrowserMarker marks classes or methods which do not need a browser
const NoBrowserMarker = "noBrowser"

type Action int

const (
	Launch Action = iota
	Skip
)

func (a Action) String() string {
	if a == Skip {
		return "skip"
	}
	return "launch"
}

type Decision struct {
	Action Action
	Reason string
}

// Resolve never fails. When both flags are set the class level wins the reason.
func Resolve(flags models.SkipFlags) Decision {
	switch {
	case flags.Class:
		return Decision{Action: Skip, Reason: NoBrowserMarker + " set on class"}
	case flags.Method:
		return Decision{Action: Skip, Reason: NoBrowserMarker + " set on method"}
	}
	return Decision{Action: Launch}
}

func FlagsFromMarkers(classMarkers, methodMarkers []string) models.SkipFlags {
	return models.SkipFlags{
		Class:  slices.Contains(classMarkers, NoBrowserMarker),
		Method: slices.Contains(methodMarkers, NoBrowserMarker),
	}
}
