package geom

// Compositor accumulates outlines into a single union.
//
// Each Add replaces the running accumulator with the union of the
// accumulator and the new outline, so at most one intermediate region is
// alive at a time.
type Compositor struct {
	acc   *Outline
	added int
}

// Add unions o into the accumulator. Empty outlines are ignored.
func (c *Compositor) Add(o *Outline) {
	if o.IsEmpty() {
		return
	}
	c.added++
	if c.acc == nil {
		c.acc = o
		return
	}
	c.acc = c.acc.Union(o)
}

// AddPath flattens p under the non-zero rule and unions it into the
// accumulator.
func (c *Compositor) AddPath(p *Path) {
	c.Add(NewNonZeroOutline(p))
}

// Len returns the number of non-empty outlines added so far.
func (c *Compositor) Len() int {
	return c.added
}

// Result returns the accumulated union, or nil when nothing was added or
// the union collapsed to nothing.
func (c *Compositor) Result() *Outline {
	return c.acc
}

// Reset discards the accumulator.
func (c *Compositor) Reset() {
	c.acc = nil
	c.added = 0
}

// UnionAll returns the union of all outlines, or nil if there are none.
func UnionAll(outlines ...*Outline) *Outline {
	var c Compositor
	for _, o := range outlines {
		c.Add(o)
	}
	return c.Result()
}

// UnionTree returns the same region as UnionAll but merges neighbours
// pairwise, so each outline takes part in O(log n) boolean operations
// instead of one per later outline. The glyphs of a line are merged this way.
func UnionTree(outlines ...*Outline) *Outline {
	level := make([]*Outline, 0, len(outlines))
	for _, o := range outlines {
		if !o.IsEmpty() {
			level = append(level, o)
		}
	}
	if len(level) == 0 {
		return nil
	}
	for len(level) > 1 {
		next := level[:0]
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next = append(next, level[i])
				break
			}
			next = append(next, level[i].Union(level[i+1]))
		}
		level = next
	}
	return level[0]
}
