package bookmark

import (
	"context"
	"sync"
)

// Regenerator re-renders on every parameter change, keeping only the
// newest request. Starting a pass cancels the one in flight, and a pass
// that was overtaken returns ErrSuperseded rather than a stale document.
//
// Regenerator is safe for concurrent use.
type Regenerator struct {
	render func(context.Context, Params) (*Document, error)

	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	current *Document
}

// NewRegenerator creates a Regenerator rendering with r.
func NewRegenerator(r *Renderer) *Regenerator {
	return &Regenerator{render: r.Render}
}

// Regenerate renders p, cancelling any pass still running.
func (g *Regenerator) Regenerate(ctx context.Context, p Params) (*Document, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g.mu.Lock()
	g.gen++
	gen := g.gen
	if g.cancel != nil {
		g.cancel()
	}
	g.cancel = cancel
	g.mu.Unlock()

	doc, err := g.render(ctx, p)

	g.mu.Lock()
	defer g.mu.Unlock()
	if gen != g.gen {
		return nil, ErrSuperseded
	}
	g.cancel = nil
	if err != nil {
		return nil, err
	}
	g.current = doc
	Logger().Info("bookmark: regenerated", "generation", gen, "seed", p.Seed, "placed", doc.Stats.Placed)
	return doc, nil
}

// Current returns the last completed document, or nil.
func (g *Regenerator) Current() *Document {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Generation returns the number of passes started so far.
func (g *Regenerator) Generation() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gen
}
