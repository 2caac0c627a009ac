package client

import (
	"time"

	"github.com/JohnTheGray/Neo4jClient/internal/types"
)

// OperationCompletedEvent describes the outcome of one connection attempt.
// It fires exactly once per Connect call, success or failure, including when
// the transport itself fails before any response is received.
type OperationCompletedEvent struct {
	// ID uniquely identifies the attempt.
	ID types.ID `json:"id"`

	// HasException is true when the attempt failed.
	HasException bool `json:"has_exception"`

	// Exception is the captured error, nil on success.
	Exception error `json:"-"`

	// Duration is the wall-clock time of the attempt.
	Duration time.Duration `json:"duration"`
}

// OperationCompletedHandler observes connection attempt outcomes.
type OperationCompletedHandler func(OperationCompletedEvent)

// OnOperationCompleted registers a handler invoked once per Connect attempt.
// Handlers run synchronously in registration order, after the outcome is
// known and before the error (if any) returns to the caller. Handlers
// observe the error without needing to catch it themselves.
//
// Registration is not safe concurrently with Connect; register handlers
// before connecting.
func (c *GraphClient) OnOperationCompleted(handler OperationCompletedHandler) {
	if handler == nil {
		return
	}
	c.completedHandlers = append(c.completedHandlers, handler)
}

// raiseOperationCompleted fires the registered handlers for one attempt.
func (c *GraphClient) raiseOperationCompleted(event OperationCompletedEvent) {
	for _, handler := range c.completedHandlers {
		handler(event)
	}
}
