package link

import (
	"sync"
	"testing"
)

func TestChannelsSetAll(t *testing.T) {
	c := NewChannels(5)
	for i, v := range c.Snapshot() {
		if v != Full {
			t.Fatalf("new channel %d = %g, want %g", i, v, Full)
		}
	}

	c.SetAll([]Index{1, 3, 9, None}, 0.25)
	want := []float64{1, 0.25, 1, 0.25, 1}
	for i, v := range c.Snapshot() {
		if v != want[i] {
			t.Errorf("channel %d = %g, want %g", i, v, want[i])
		}
	}

	c.Set(0, 7) // no clamping
	if got := c.Value(0); got != 7 {
		t.Errorf("Value(0) = %g, want 7", got)
	}
}

func TestChannelsResetIdempotent(t *testing.T) {
	c := NewChannels(4)
	c.SetAll([]Index{0, 2}, 0.05)
	for n := 0; n < 3; n++ {
		c.Reset()
		for i, v := range c.Snapshot() {
			if v != Full {
				t.Fatalf("after %d resets channel %d = %g", n+1, i, v)
			}
		}
	}
}

func TestChannelsNotify(t *testing.T) {
	c := NewChannels(3)
	var calls int
	var got []Change
	cancel := c.Reader().Subscribe(func(changes []Change) {
		calls++
		got = changes
	})

	c.Batch(func(b *Batch) {
		b.ResetAll(0.5)
		b.Set(1, Full)
	})
	if calls != 1 {
		t.Fatalf("observer called %d times for one batch, want 1", calls)
	}
	if len(got) != 2 || got[0] != (Change{0, 1, 0.5}) || got[1] != (Change{2, 1, 0.5}) {
		t.Errorf("changes = %v, want cells 0 and 2 from 1 to 0.5", got)
	}

	c.SetAll([]Index{0}, 0.5)
	if calls != 2 || len(got) != 0 {
		t.Errorf("no-op SetAll: calls=%d changes=%v", calls, got)
	}

	cancel()
	cancel()
	c.Reset()
	if calls != 2 {
		t.Errorf("observer called after cancel")
	}
}

func TestChannelsConcurrentReaders(t *testing.T) {
	c := NewChannels(64)
	r := c.Reader()
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 200; n++ {
				snap := r.Snapshot()
				first := snap[0]
				for _, v := range snap {
					if v != first {
						t.Errorf("torn snapshot: %g vs %g", v, first)
						return
					}
				}
			}
		}()
	}
	for n := 0; n < 200; n++ {
		v := float64(n%2) * 0.5
		c.ResetAll(v)
	}
	wg.Wait()
}
