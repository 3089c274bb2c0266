package cache

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for deterministic expiry tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestGetOrFetch_HitSkipsFetcher(t *testing.T) {
	clock := newFakeClock()
	c := New[string](clock.Now)

	calls := 0
	fetch := func() (string, error) {
		calls++
		return "payload", nil
	}

	first, err := c.GetOrFetch("law", DefaultTTL, fetch)
	if err != nil {
		t.Fatalf("GetOrFetch failed: %v", err)
	}

	clock.Advance(9 * time.Minute)
	second, err := c.GetOrFetch("law", DefaultTTL, fetch)
	if err != nil {
		t.Fatalf("GetOrFetch failed: %v", err)
	}

	if calls != 1 {
		t.Errorf("fetcher ran %d times, want 1", calls)
	}
	if first != second {
		t.Errorf("hit returned %q, want stored %q", second, first)
	}
}

func TestGetOrFetch_ExpiryRefetches(t *testing.T) {
	clock := newFakeClock()
	c := New[int](clock.Now)

	calls := 0
	fetch := func() (int, error) {
		calls++
		return calls, nil
	}

	if _, err := c.GetOrFetch("k", DefaultTTL, fetch); err != nil {
		t.Fatalf("GetOrFetch failed: %v", err)
	}

	clock.Advance(DefaultTTL + time.Second)
	v, err := c.GetOrFetch("k", DefaultTTL, fetch)
	if err != nil {
		t.Fatalf("GetOrFetch failed: %v", err)
	}

	if calls != 2 {
		t.Errorf("fetcher ran %d times, want 2", calls)
	}
	if v != 2 {
		t.Errorf("got stale value %d after expiry", v)
	}
}

func TestGetOrFetch_ErrorNotStored(t *testing.T) {
	c := New[string](nil)

	boom := errors.New("upstream down")
	_, err := c.GetOrFetch("k", DefaultTTL, func() (string, error) {
		return "", boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if c.Len() != 0 {
		t.Errorf("failed fetch was stored, Len = %d", c.Len())
	}

	// A later successful fetch must run.
	v, err := c.GetOrFetch("k", DefaultTTL, func() (string, error) {
		return "ok", nil
	})
	if err != nil || v != "ok" {
		t.Fatalf("GetOrFetch = %q, %v; want \"ok\", nil", v, err)
	}
}

func TestGetOrFetch_DistinctKeys(t *testing.T) {
	c := New[string](nil)

	for _, k := range []string{"law", "lee", "jin"} {
		k := k
		v, err := c.GetOrFetch(k, DefaultTTL, func() (string, error) {
			return "data-" + k, nil
		})
		if err != nil {
			t.Fatalf("GetOrFetch(%q) failed: %v", k, err)
		}
		if v != "data-"+k {
			t.Errorf("GetOrFetch(%q) = %q", k, v)
		}
	}
	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}
}

func TestGetOrFetch_ConcurrentMisses(t *testing.T) {
	c := New[int](nil)

	var mu sync.Mutex
	calls := 0

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.GetOrFetch("k", DefaultTTL, func() (int, error) {
				mu.Lock()
				calls++
				mu.Unlock()
				return 1, nil
			})
			if err != nil {
				t.Errorf("GetOrFetch failed: %v", err)
			}
		}()
	}
	wg.Wait()

	// No single-flight guarantee: the fetcher may run more than once, but
	// every caller must get a value and the map must hold one entry.
	if calls < 1 {
		t.Errorf("fetcher never ran")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}
