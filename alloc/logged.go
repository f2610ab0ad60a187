package alloc

import (
	"io"
	"log/slog"
)

// discardLogger is used when a Logged allocator is built with a nil logger.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Logged decorates an Allocator with structured logging. Successful calls are
// logged at Debug, refused allocations at Warn.
type Logged struct {
	inner Allocator
	log   *slog.Logger
}

// NewLogged wraps inner; a nil inner means Heap, a nil logger discards.
func NewLogged(inner Allocator, log *slog.Logger) *Logged {
	if inner == nil {
		inner = Heap{}
	}
	if log == nil {
		log = discardLogger
	}
	return &Logged{inner: inner, log: log.With("allocator", allocatorName(inner))}
}

// Allocate forwards and logs the outcome.
func (g *Logged) Allocate(l Layout, n int) error {
	if err := g.inner.Allocate(l, n); err != nil {
		g.log.Warn("allocate refused",
			"op", "allocate", "size", l.Size, "align", l.Align, "n", n, "err", err)
		return err
	}
	g.log.Debug("allocate", "op", "allocate", "size", l.Size, "align", l.Align, "n", n)

	return nil
}

// Deallocate logs and forwards.
func (g *Logged) Deallocate(l Layout, n int) {
	g.log.Debug("deallocate", "op", "deallocate", "size", l.Size, "align", l.Align, "n", n)
	g.inner.Deallocate(l, n)
}

// Unwrap returns the wrapped allocator.
func (g *Logged) Unwrap() Allocator { return g.inner }

// PropagateOnCopy follows the wrapped allocator's policy.
func (g *Logged) PropagateOnCopy() bool { return PropagatesOnCopy(g.inner) }

// PropagateOnMove follows the wrapped allocator's policy.
func (g *Logged) PropagateOnMove() bool { return PropagatesOnMove(g.inner) }

func allocatorName(a Allocator) string {
	switch v := a.(type) {
	case Heap:
		return "heap"
	case *Arena:
		return v.Name()
	case *Tracker:
		return "tracker(" + allocatorName(v.Unwrap()) + ")"
	case *Logged:
		return allocatorName(v.Unwrap())
	default:
		return "custom"
	}
}

// MaxRecords follows the wrapped allocator's bound.
func (g *Logged) MaxRecords(l Layout) int { return MaxRecords(g.inner, l) }
