package session

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"leftover-chef/internal/core/suggest"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	pairs := []suggest.Pair{
		{Name: "egg", Expiry: "2026-09-10"},
		{Name: "milk"},
	}
	if err := store.Set(ctx, "sid-1", pairs); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Get(ctx, "sid-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reflect.DeepEqual(got, pairs) {
		t.Errorf("Get = %v, want %v", got, pairs)
	}
}

func TestMemoryStoreMissingSession(t *testing.T) {
	store := NewMemoryStore(0)
	got, err := store.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("Get = %v, want nil for unknown session", got)
	}
}

func TestMemoryStoreLastWriteWins(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	store.Set(ctx, "sid", []suggest.Pair{{Name: "egg"}})
	store.Set(ctx, "sid", []suggest.Pair{{Name: "tofu"}})

	got, _ := store.Get(ctx, "sid")
	if len(got) != 1 || got[0].Name != "tofu" {
		t.Errorf("Get = %v, want only the second write", got)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	store.Set(ctx, "sid", []suggest.Pair{{Name: "egg"}})
	time.Sleep(30 * time.Millisecond)

	got, err := store.Get(ctx, "sid")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("Get = %v, want nil after ttl elapsed", got)
	}
}

func TestMemoryStoreCopiesOnReadAndWrite(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	in := []suggest.Pair{{Name: "egg"}}
	store.Set(ctx, "sid", in)
	in[0].Name = "mutated"

	got, _ := store.Get(ctx, "sid")
	if got[0].Name != "egg" {
		t.Error("Set kept a reference to the caller's slice")
	}

	got[0].Name = "mutated"
	again, _ := store.Get(ctx, "sid")
	if again[0].Name != "egg" {
		t.Error("Get exposed internal state to the caller")
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sid := fmt.Sprintf("sid-%d", i%5)
			store.Set(ctx, sid, []suggest.Pair{{Name: "egg"}})
			store.Get(ctx, sid)
		}(i)
	}
	wg.Wait()
}
