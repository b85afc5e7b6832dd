package clock

import (
	"time"

	"go.uber.org/fx"
)

// Clock supplies the current instant. Every date comparison in the policy
// services goes through this so tests can pin "now".
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// NewSystem returns the wall clock.
func NewSystem() Clock { return systemClock{} }

// Fixed is a test clock frozen at a chosen instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

var Module = fx.Options(
	fx.Provide(NewSystem),
)
