package own

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// Group owns an ordered set of closers, usually [Ptr] values, and closes
// them in reverse order of adoption: whatever was added last, and may
// depend on earlier entries, is disposed of first.
//
// Unlike a single [Ptr], a Group is safe for concurrent use. The objects it
// owns are not made any safer by being in a group.
type Group struct {
	mu sync.Mutex

	name string
	log  zerolog.Logger

	// closers is kept in adoption order. Close walks it backwards.
	closers []io.Closer
	closed  bool
}

// NewGroup creates an empty [Group].
func NewGroup(opts ...GroupOption) *Group {
	g := &Group{log: *logger()}
	for _, opt := range opts {
		opt(g)
	}
	if g.name != "" {
		g.log = g.log.With().Str("group", g.name).Logger()
	}
	return g
}

// Add hands c to the group. The group closes it during [Group.Close]. Add
// returns [ErrGroupClosed] once the group has been closed, in which case
// the caller keeps ownership of c.
func (g *Group) Add(c io.Closer) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return ErrGroupClosed
	}
	g.closers = append(g.closers, c)
	return nil
}

// Len returns the number of closers the group currently owns.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.closers)
}

// Adopt moves ownership of p's object into g and returns the object for
// observation. p is left empty. If the group is already closed, p keeps its
// object and the error is returned.
//
// The returned object may be disposed of at any time by a concurrent
// [Group.Close].
func Adopt[T any](g *Group, p *Ptr[T]) (*T, error) {
	moved := p.Move()
	v := moved.Get()
	if err := g.Add(moved); err != nil {
		p.Assign(moved)
		return nil, fmt.Errorf("adopting %s: %w", typeName[T](), err)
	}
	return v, nil
}

// ---------------------------------------------------------------------------
// Close
// ---------------------------------------------------------------------------

// Close closes every owned closer in reverse adoption order and stops
// accepting new ones. All close errors are joined.
//
// The context bounds the call: once it is done, the closers not yet run
// stay owned by the group and the context error is included in the result.
// A later Close resumes with them. Once every closer has run, further calls
// return [ErrGroupClosed].
//
// The group lock is not held while a closer runs, so a closer may call back
// into the group.
func (g *Group) Close(ctx context.Context) error {
	g.mu.Lock()
	if g.closed && len(g.closers) == 0 {
		g.mu.Unlock()
		return ErrGroupClosed
	}
	g.closed = true
	g.mu.Unlock()

	var errs []error
	for {
		if err := ctx.Err(); err != nil {
			if left := g.Len(); left > 0 {
				g.log.Warn().Err(err).Int("remaining", left).Msg("group close interrupted")
				errs = append(errs, err)
			}
			break
		}
		i, c, ok := g.pop()
		if !ok {
			break
		}
		if err := c.Close(); err != nil {
			g.log.Warn().Err(err).Int("index", i).Msg("close failed")
			errs = append(errs, err)
			continue
		}
		g.log.Debug().Int("index", i).Msg("closed")
	}

	return errors.Join(errs...)
}

// pop removes and returns the most recently added closer and its index.
func (g *Group) pop() (int, io.Closer, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.closers)
	if n == 0 {
		return 0, nil, false
	}
	c := g.closers[n-1]
	g.closers[n-1] = nil
	g.closers = g.closers[:n-1]
	return n - 1, c, true
}
