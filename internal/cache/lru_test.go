// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock lets tests move time forward without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
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

func newTestCache(capacity int, ttl time.Duration) (*LRUCache[[]int], *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewLRUCache[[]int](capacity, ttl)
	c.now = clock.Now
	return c, clock
}

func TestNewLRUCache_Defaults(t *testing.T) {
	c := NewLRUCache[string](0, 0)
	if c.capacity != DefaultCapacity {
		t.Errorf("capacity = %d, want %d", c.capacity, DefaultCapacity)
	}
	if c.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", c.ttl, DefaultTTL)
	}
}

func TestLRUCache_BasicOperations(t *testing.T) {
	cache, _ := newTestCache(3, time.Minute)

	cache.Add("a", []int{1})
	cache.Add("b", []int{2})
	cache.Add("c", []int{3})

	for key, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		got, found := cache.Get(key)
		if !found {
			t.Errorf("Expected to find key %q", key)
			continue
		}
		if len(got) != 1 || got[0] != want {
			t.Errorf("Get(%q) = %v, want [%d]", key, got, want)
		}
	}

	if cache.Len() != 3 {
		t.Errorf("Expected len 3, got %d", cache.Len())
	}
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	cache, _ := newTestCache(3, time.Minute)

	cache.Add("a", []int{1})
	cache.Add("a", []int{9})

	got, found := cache.Get("a")
	if !found || got[0] != 9 {
		t.Errorf("Get(a) = %v, %v; want [9], true", got, found)
	}
	if cache.Len() != 1 {
		t.Errorf("Expected len 1, got %d", cache.Len())
	}
}

func TestLRUCache_Eviction(t *testing.T) {
	cache, _ := newTestCache(3, time.Minute)

	cache.Add("a", nil)
	cache.Add("b", nil)
	cache.Add("c", nil)

	// Access 'a' to make it most recently used
	cache.Get("a")

	// 'b' is now least recently used and gets evicted
	cache.Add("d", nil)

	if _, found := cache.Get("b"); found {
		t.Error("Expected 'b' to be evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, found := cache.Get(key); !found {
			t.Errorf("Expected %q to be present", key)
		}
	}
}

func TestLRUCache_TTLExpiration(t *testing.T) {
	cache, clock := newTestCache(10, 50*time.Millisecond)

	cache.Add("a", []int{1})

	if _, found := cache.Get("a"); !found {
		t.Error("Expected to find key 'a' immediately")
	}

	clock.Advance(60 * time.Millisecond)

	if _, found := cache.Get("a"); found {
		t.Error("Expected key 'a' to be expired")
	}
	if cache.Len() != 0 {
		t.Errorf("Expected expired entry to be dropped, len = %d", cache.Len())
	}
}

func TestLRUCache_CleanupExpired(t *testing.T) {
	cache, clock := newTestCache(10, 50*time.Millisecond)

	cache.Add("a", nil)
	cache.Add("b", nil)
	cache.Add("c", nil)

	clock.Advance(60 * time.Millisecond)
	cache.Add("d", nil)

	if removed := cache.CleanupExpired(); removed != 3 {
		t.Errorf("Expected 3 expired items removed, got %d", removed)
	}
	if cache.Len() != 1 {
		t.Errorf("Expected 1 item remaining, got %d", cache.Len())
	}
}

func TestLRUCache_Stats(t *testing.T) {
	cache, _ := newTestCache(10, time.Minute)

	cache.Add("a", nil)
	cache.Get("a")        // hit
	cache.Get("a")        // hit
	cache.Get("nonexist") // miss

	hits, misses, size := cache.Stats()
	if hits != 2 {
		t.Errorf("Expected 2 hits, got %d", hits)
	}
	if misses != 1 {
		t.Errorf("Expected 1 miss, got %d", misses)
	}
	if size != 1 {
		t.Errorf("Expected size 1, got %d", size)
	}
}

func TestLRUCache_Concurrent(t *testing.T) {
	cache := NewLRUCache[int](100, time.Minute)

	var wg sync.WaitGroup
	for g := 0; g < 50; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("k%d", (id*7+i)%150)
				cache.Add(key, i)
				cache.Get(key)
			}
		}(g)
	}
	wg.Wait()

	if cache.Len() > 100 {
		t.Errorf("cache grew past capacity: %d", cache.Len())
	}
}
