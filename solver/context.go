package solver

import (
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// searchStatus is the published snapshot of an in-progress or just-finished
// iterative-deepening solve.
type searchStatus struct {
	Depth    int
	Terminal bool
}

// Context is the cooperative concurrency surface for one solve: an atomic
// abort flag a caller can set from another goroutine, and the latest
// published search status. Modeled directly on the teacher's AIPlayer
// stopSignal/status plumbing.
type Context struct {
	aborted atomic.Bool
	status  atomic.Pointer[searchStatus]
	id      uuid.UUID
}

// NewContext returns a fresh Context with a new solve identifier.
func NewContext() *Context {
	c := &Context{id: uuid.New()}
	c.status.Store(&searchStatus{})
	return c
}

// Abort signals the solve currently using this Context to stop at its next
// cooperative yield point. Every solve clears the flag when it starts, so an
// Abort made before a solve begins has no effect on that solve.
func (c *Context) Abort() {
	c.aborted.Store(true)
}

// Aborted reports whether Abort has been called since the last reset.
func (c *Context) Aborted() bool {
	return c.aborted.Load()
}

// reset clears the abort flag and status at the start of a new solve. The
// abort flag is otherwise monotonic per solve.
func (c *Context) reset() {
	c.aborted.Store(false)
	c.status.Store(&searchStatus{})
}

// publish records the depth of the latest iterative-deepening iteration,
// including one cut short by an abort, and whether the stored result is
// terminal.
func (c *Context) publish(depth int, terminal bool) {
	c.status.Store(&searchStatus{Depth: depth, Terminal: terminal})
}

// SearchStatus returns the most recently published depth and terminal flag.
func (c *Context) SearchStatus() (depth int, terminal bool) {
	s := c.status.Load()
	if s == nil {
		return 0, false
	}
	return s.Depth, s.Terminal
}

// ID returns the solve identifier stamped into this Context's log lines.
func (c *Context) ID() uuid.UUID {
	return c.id
}

func (c *Context) logger() zerolog.Logger {
	return log.With().Str("solve_id", c.id.String()).Logger()
}

var defaultContext = NewContext()

// Default returns a package-level shared Context, for callers that want the
// teacher's original single-global-instance ergonomics. It supports exactly
// one in-flight solve at a time; use NewContext for anything else.
func Default() *Context {
	return defaultContext
}
