package clock

import "time"

type (
	NowFunc   func() time.Time
	AfterFunc func(d time.Duration) <-chan time.Time
)
