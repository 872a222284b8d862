// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestLRU_BasicOperations(t *testing.T) {
	cache := New[int](3, time.Minute)

	cache.Add("a", 1)
	cache.Add("b", 2)
	cache.Add("c", 3)

	if v, found := cache.Get("a"); !found || v != 1 {
		t.Errorf("Expected to find 'a' = 1, got %d found=%v", v, found)
	}
	if v, found := cache.Get("b"); !found || v != 2 {
		t.Errorf("Expected to find 'b' = 2, got %d found=%v", v, found)
	}
	if cache.Len() != 3 {
		t.Errorf("Expected len 3, got %d", cache.Len())
	}
}

func TestLRU_Update(t *testing.T) {
	cache := New[string](3, time.Minute)

	cache.Add("a", "first")
	cache.Add("a", "second")

	if cache.Len() != 1 {
		t.Errorf("Expected len 1 after update, got %d", cache.Len())
	}
	if v, _ := cache.Get("a"); v != "second" {
		t.Errorf("Expected updated value 'second', got %q", v)
	}
}

func TestLRU_Eviction(t *testing.T) {
	cache := New[int](3, time.Minute)

	cache.Add("a", 1)
	cache.Add("b", 2)
	cache.Add("c", 3)

	// Access 'a' to make it most recently used
	cache.Get("a")

	// Adding a fourth entry should evict 'b' (least recently used)
	cache.Add("d", 4)

	if _, found := cache.Get("b"); found {
		t.Error("Expected 'b' to be evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, found := cache.Get(key); !found {
			t.Errorf("Expected %q to be present", key)
		}
	}
}

func TestLRU_TTLExpiration(t *testing.T) {
	cache := New[int](10, 50*time.Millisecond)

	cache.Add("a", 1)

	if _, found := cache.Get("a"); !found {
		t.Error("Expected to find 'a' immediately")
	}

	time.Sleep(60 * time.Millisecond)

	if _, found := cache.Get("a"); found {
		t.Error("Expected 'a' to be expired")
	}
	if cache.Len() != 0 {
		t.Errorf("Expected expired entry removed, len %d", cache.Len())
	}
}

func TestLRU_Remove(t *testing.T) {
	cache := New[int](10, time.Minute)

	cache.Add("a", 1)

	if !cache.Remove("a") {
		t.Error("Expected Remove to report true for present key")
	}
	if cache.Remove("a") {
		t.Error("Expected Remove to report false for absent key")
	}
	if _, found := cache.Get("a"); found {
		t.Error("Expected 'a' to be gone after Remove")
	}
}

func TestLRU_Clear(t *testing.T) {
	cache := New[int](10, time.Minute)

	cache.Add("a", 1)
	cache.Add("b", 2)
	cache.Clear()

	if cache.Len() != 0 {
		t.Errorf("Expected empty cache after Clear, len %d", cache.Len())
	}
	if _, found := cache.Get("a"); found {
		t.Error("Expected 'a' to be gone after Clear")
	}
}

func TestLRU_Stats(t *testing.T) {
	cache := New[int](10, time.Minute)

	cache.Add("a", 1)
	cache.Get("a")
	cache.Get("missing")

	hits, misses, size := cache.Stats()
	if hits != 1 {
		t.Errorf("Expected 1 hit, got %d", hits)
	}
	if misses != 1 {
		t.Errorf("Expected 1 miss, got %d", misses)
	}
	if size != 1 {
		t.Errorf("Expected size 1, got %d", size)
	}
}

func TestLRU_DefaultsOnInvalidArgs(t *testing.T) {
	cache := New[int](0, 0)

	cache.Add("a", 1)
	if _, found := cache.Get("a"); !found {
		t.Error("Expected cache with defaulted capacity/TTL to work")
	}
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	cache := New[int](100, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key-%d-%d", n, j%10)
				cache.Add(key, j)
				cache.Get(key)
			}
		}(i)
	}
	wg.Wait()

	if cache.Len() > 100 {
		t.Errorf("Expected len <= capacity, got %d", cache.Len())
	}
}
