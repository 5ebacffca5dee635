package link

import "sync"

// Full is the opacity of a fully visible element.
const Full = 1.0

// Change records the update of one opacity cell.
type Change struct {
	Index    Index
	Old, New float64
}

// An Observer is called synchronously after each mutation of a Channels
// set with all cells changed by that mutation. Cells written with their
// current value are not reported; an observer may see an empty slice.
type Observer func(changes []Change)

// Reader is the read only capability handed to renderers.
type Reader interface {
	Len() int
	Value(i Index) float64
	Snapshot() []float64
	Subscribe(o Observer) (cancel func())
}

// Channels is an ordered set of independently settable opacity cells.
// Values are not clamped. A Channels set has a single writer (the
// Coordinator) but may be read from any goroutine.
type Channels struct {
	mu        sync.RWMutex
	values    []float64
	observers map[int]Observer
	nextID    int
}

// NewChannels returns n cells at full visibility.
func NewChannels(n int) *Channels {
	c := &Channels{
		values:    make([]float64, n),
		observers: make(map[int]Observer),
	}
	for i := range c.values {
		c.values[i] = Full
	}
	return c
}

// Len returns the number of cells.
func (c *Channels) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values)
}

// Value returns cell i. It panics if i is out of range.
func (c *Channels) Value(i Index) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values[i]
}

// Snapshot returns a copy of all cells.
func (c *Channels) Snapshot() []float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]float64(nil), c.values...)
}

// Reader returns c as a read only capability.
func (c *Channels) Reader() Reader { return readOnly{c} }

// Subscribe registers o. The returned function removes it again.
func (c *Channels) Subscribe(o Observer) (cancel func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.observers[id] = o
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.observers, id)
			c.mu.Unlock()
		})
	}
}

// Set sets cell i to v. Out of range indices are ignored.
func (c *Channels) Set(i Index, v float64) {
	c.Batch(func(b *Batch) { b.Set(i, v) })
}

// SetAll sets every listed cell to v and leaves the others unchanged.
func (c *Channels) SetAll(indices []Index, v float64) {
	c.Batch(func(b *Batch) { b.SetAll(indices, v) })
}

// ResetAll sets every cell to v.
func (c *Channels) ResetAll(v float64) {
	c.Batch(func(b *Batch) { b.ResetAll(v) })
}

// Reset sets every cell to full visibility.
func (c *Channels) Reset() { c.ResetAll(Full) }

// Batch runs fn with exclusive write access and notifies the observers
// once, after fn returned, with all changes fn made.
func (c *Channels) Batch(fn func(b *Batch)) {
	c.mu.Lock()
	b := &Batch{values: c.values}
	fn(b)
	observers := make([]Observer, 0, len(c.observers))
	for _, o := range c.observers {
		observers = append(observers, o)
	}
	c.mu.Unlock()

	changes := b.changes()
	for _, o := range observers {
		o(changes)
	}
}

// ----------------------------------------------------------------------------
// Batch

// A Batch collects writes to a Channels set. It is only valid inside the
// function passed to Channels.Batch.
type Batch struct {
	values []float64
	log    []Change
}

// Len returns the number of cells.
func (b *Batch) Len() int { return len(b.values) }

// Set sets cell i to v. Out of range indices are ignored.
func (b *Batch) Set(i Index, v float64) {
	if !i.Valid(len(b.values)) {
		return
	}
	b.log = append(b.log, Change{Index: i, Old: b.values[i], New: v})
	b.values[i] = v
}

// SetAll sets every listed cell to v.
func (b *Batch) SetAll(indices []Index, v float64) {
	for _, i := range indices {
		b.Set(i, v)
	}
}

// ResetAll sets every cell to v.
func (b *Batch) ResetAll(v float64) {
	for i := range b.values {
		b.Set(Index(i), v)
	}
}

// changes folds the write log into one Change per cell, dropping cells
// which end up at their original value.
func (b *Batch) changes() []Change {
	first := make(map[Index]int, len(b.log))
	var out []Change
	for _, ch := range b.log {
		if k, ok := first[ch.Index]; ok {
			out[k].New = ch.New
			continue
		}
		first[ch.Index] = len(out)
		out = append(out, ch)
	}
	kept := out[:0]
	for _, ch := range out {
		if ch.Old != ch.New {
			kept = append(kept, ch)
		}
	}
	return kept
}

type readOnly struct{ c *Channels }

func (r readOnly) Len() int                    { return r.c.Len() }
func (r readOnly) Value(i Index) float64       { return r.c.Value(i) }
func (r readOnly) Snapshot() []float64         { return r.c.Snapshot() }
func (r readOnly) Subscribe(o Observer) func() { return r.c.Subscribe(o) }
