package cache

import "testing"

func TestNewRejectsNonPositiveCapacity(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("expected error for zero capacity")
	}
	if _, err := New(-1); err == nil {
		t.Fatal("expected error for negative capacity")
	}
}

func TestGetAfterPut(t *testing.T) {
	c, err := New(4)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	c.Put("7:abc", "rendered body")
	got, ok := c.Get("7:abc")
	if !ok || got != "rendered body" {
		t.Fatalf("Get = (%q, %v)", got, ok)
	}

	if _, ok := c.Get("7:other"); ok {
		t.Fatal("unexpected hit for a different fingerprint")
	}
}

func TestPutUpdatesExistingKey(t *testing.T) {
	c, err := New(2)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	c.Put("1:a", "old")
	c.Put("1:a", "new")
	if got, _ := c.Get("1:a"); got != "new" {
		t.Fatalf("Get = %q, want the updated render", got)
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c, err := New(2)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	c.Put("1:a", "one")
	c.Put("2:a", "two")
	c.Get("1:a") // 2:a is now the oldest
	c.Put("3:a", "three")

	if _, ok := c.Get("2:a"); ok {
		t.Fatal("least recently used entry survived eviction")
	}
	if _, ok := c.Get("1:a"); !ok {
		t.Fatal("recently used entry was evicted")
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want capacity", c.Len())
	}
}
