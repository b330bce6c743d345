package cache

import (
	"context"
	"slices"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	payload := MarshalIndices([]uint32{3, 4, 5, 2, 3, 4})
	if err := c.Set(ctx, "opt:key", payload, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, hit, err := c.Get(ctx, "opt:key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected hit after Set")
	}
	indices, err := UnmarshalIndices(data)
	if err != nil {
		t.Fatalf("UnmarshalIndices: %v", err)
	}
	if !slices.Equal(indices, []uint32{3, 4, 5, 2, 3, 4}) {
		t.Errorf("round trip mismatch: %v", indices)
	}

	if err := c.Delete(ctx, "opt:key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "opt:key"); hit {
		t.Error("expected miss after Delete")
	}
}

func TestFileCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expected expired entry to miss")
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestResultKey(t *testing.T) {
	indices := []uint32{0, 1, 2, 1, 2, 3}

	// Deterministic for the same input.
	if ResultKey(indices, 4, 32) != ResultKey(indices, 4, 32) {
		t.Error("ResultKey should be deterministic")
	}

	// Sensitive to every input that affects the result.
	base := ResultKey(indices, 4, 32)
	if ResultKey([]uint32{0, 1, 2, 1, 3, 2}, 4, 32) == base {
		t.Error("different index buffers should produce different keys")
	}
	if ResultKey(indices, 5, 32) == base {
		t.Error("different vertex counts should produce different keys")
	}
	if ResultKey(indices, 4, 16) == base {
		t.Error("different cache sizes should produce different keys")
	}
}

func TestUnmarshalIndices_BadPayload(t *testing.T) {
	if _, err := UnmarshalIndices([]byte{1, 2, 3}); err == nil {
		t.Error("expected error for a payload that is not a whole number of words")
	}
}
