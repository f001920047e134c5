package cache

import (
	"context"
	"testing"
	"time"
)

func TestInMemorySetGet(t *testing.T) {
	c := NewInMemory()
	ctx := context.Background()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Fatal("miss expected for unknown key")
	}
	if err := c.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok := c.Get(ctx, "k")
	if !ok || got != "v" {
		t.Fatalf("get: (%q, %v)", got, ok)
	}
}

func TestInMemoryExpiry(t *testing.T) {
	c := NewInMemory()
	ctx := context.Background()

	_ = c.Set(ctx, "short", "v", 10*time.Millisecond)
	_ = c.Set(ctx, "forever", "v", 0)

	time.Sleep(30 * time.Millisecond)
	if _, ok := c.Get(ctx, "short"); ok {
		t.Fatal("expired entry must miss")
	}
	if _, ok := c.Get(ctx, "forever"); !ok {
		t.Fatal("zero ttl means no expiry")
	}
}

func TestInMemoryDelete(t *testing.T) {
	c := NewInMemory()
	ctx := context.Background()

	_ = c.Set(ctx, "k", "v", time.Minute)
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatal("deleted entry must miss")
	}
	// deleting a missing key is fine
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestInMemoryDeletePrefix(t *testing.T) {
	c := NewInMemory()
	ctx := context.Background()

	_ = c.Set(ctx, "documentaries:a", "1", time.Minute)
	_ = c.Set(ctx, "documentaries:b", "2", time.Minute)
	_ = c.Set(ctx, "comments:a", "3", time.Minute)

	if err := c.DeletePrefix(ctx, "documentaries:"); err != nil {
		t.Fatalf("delete prefix: %v", err)
	}
	if _, ok := c.Get(ctx, "documentaries:a"); ok {
		t.Fatal("prefixed key a must be gone")
	}
	if _, ok := c.Get(ctx, "documentaries:b"); ok {
		t.Fatal("prefixed key b must be gone")
	}
	if _, ok := c.Get(ctx, "comments:a"); !ok {
		t.Fatal("unrelated prefix must survive")
	}
}
