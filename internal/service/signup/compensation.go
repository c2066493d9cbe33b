package signup

import (
	"context"
	"log/slog"

	"github.com/josanism/community-api/internal/redact"
)

// undoAction reverses one completed registration step.
type undoAction struct {
	name string
	fn   func(ctx context.Context) error
}

// compensator accumulates undo actions as registration steps succeed and
// replays them in reverse when a later step fails. One compensator lives
// for exactly one registration attempt.
type compensator struct {
	logger *slog.Logger
	undos  []undoAction
}

func newCompensator(logger *slog.Logger) *compensator {
	return &compensator{logger: logger}
}

// push records the undo for a just-completed step.
func (c *compensator) push(name string, fn func(ctx context.Context) error) {
	c.undos = append(c.undos, undoAction{name: name, fn: fn})
}

// run executes the recorded undos in reverse order. Undo failures are
// logged, never returned: the caller reports the error that triggered the
// rollback, and a failed cleanup must not mask it. Cleanup proceeds even
// when the request context is already canceled.
func (c *compensator) run(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	for i := len(c.undos) - 1; i >= 0; i-- {
		undo := c.undos[i]
		if err := undo.fn(ctx); err != nil {
			c.logger.ErrorContext(ctx, "registration compensation failed",
				"step", undo.name,
				"error", redact.Error(err))
			continue
		}
		c.logger.InfoContext(ctx, "registration step compensated", "step", undo.name)
	}
	c.undos = nil
}
