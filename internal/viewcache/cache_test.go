package viewcache

import "testing"

func TestCacheRoundTrip(t *testing.T) {
	cache, err := New(4)
	if err != nil {
		t.Fatalf("new cache failed: %v", err)
	}

	if _, ok := cache.Get(InvoicesListPath); ok {
		t.Fatal("expected empty cache miss")
	}

	cache.Put(InvoicesListPath, []string{"inv-1"})
	view, ok := cache.Get(InvoicesListPath)
	if !ok {
		t.Fatal("expected cached view")
	}
	if got := view.([]string); len(got) != 1 || got[0] != "inv-1" {
		t.Fatalf("unexpected cached view %+v", got)
	}

	cache.Invalidate(InvoicesListPath)
	if _, ok := cache.Get(InvoicesListPath); ok {
		t.Fatal("expected miss after invalidation")
	}
}

func TestCacheEvictsOldest(t *testing.T) {
	cache, err := New(2)
	if err != nil {
		t.Fatalf("new cache failed: %v", err)
	}
	cache.Put("/dashboard", 1)
	cache.Put("/dashboard/invoices", 2)
	cache.Put("/dashboard/customers", 3)

	if cache.Len() != 2 {
		t.Fatalf("expected bounded cache of 2, got %d", cache.Len())
	}
	if _, ok := cache.Get("/dashboard"); ok {
		t.Fatal("expected oldest view to be evicted")
	}
}

func TestCacheInvalidSize(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("expected error for non-positive size")
	}
}
