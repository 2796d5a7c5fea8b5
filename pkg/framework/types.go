package framework

import (
	"context"
	"time"
)

// Named is an abstraction for things with a name.
type Named interface {
	Name() string
}

// Runnable defines a generic interface for background runners.
type Runnable interface {
	Run(context.Context) error
}

// TimeSource provides the time for controlling logic.
type TimeSource interface {
	Time() time.Time
}

// Controller defines the logic executed on every loop iteration.
// Implementations must not block; slow work belongs in a Runnable.
type Controller interface {
	Control(ControlContext) error
}

// ControlContext provides the context of the current control
// iteration. The time is sampled once per iteration so every
// controller observes the same clock, and tests can drive controllers
// with synthetic iteration times.
type ControlContext interface {
	TimeSource
	// Context retrieves context.Context.
	Context() context.Context
	// TriggerNext schedules the next iteration to be executed
	// immediately after the current one.
	TriggerNext()
}

// ControlFunc defines the func form of Controller.
type ControlFunc func(ControlContext) error

// Control implements Controller.
func (f ControlFunc) Control(ctx ControlContext) error {
	return f(ctx)
}

// LoopAdder provides specific logic to add components to a loop.
type LoopAdder interface {
	AddToLoop(*Loop)
}
