package cache

import (
	"testing"
)

func TestGetOrCompute(t *testing.T) {
	c, err := New[[]int](8)
	if err != nil {
		t.Fatal(err)
	}

	calls := 0
	compute := func() ([]int, error) {
		calls++
		return []int{1, 2, 3}, nil
	}

	v, hit, err := c.GetOrCompute("k", compute)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("first lookup should be a miss")
	}
	if len(v) != 3 {
		t.Errorf("value = %v", v)
	}

	_, hit, err = c.GetOrCompute("k", compute)
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Error("second lookup should be a hit")
	}
	if calls != 1 {
		t.Errorf("computeFn ran %d times, want 1", calls)
	}

	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("stats = (%d, %d), want (1, 1)", hits, misses)
	}
}

func TestPurge(t *testing.T) {
	c, err := New[int](8)
	if err != nil {
		t.Fatal(err)
	}

	calls := 0
	compute := func() (int, error) {
		calls++
		return calls, nil
	}

	c.GetOrCompute("k", compute)
	c.Purge()
	v, hit, _ := c.GetOrCompute("k", compute)
	if hit {
		t.Error("lookup after purge should be a miss")
	}
	if v != 2 {
		t.Errorf("value = %d, want recomputed 2", v)
	}
}

func TestKey(t *testing.T) {
	base := Key([]string{"dog", "cat"}, 10)

	if Key([]string{"dog", "cat"}, 10) != base {
		t.Error("identical inputs must produce identical keys")
	}
	if Key([]string{"cat", "dog"}, 10) == base {
		t.Error("term order must be part of the key")
	}
	if Key([]string{"dog", "cat", "cat"}, 10) == base {
		t.Error("term repetition must be part of the key")
	}
	if Key([]string{"dog", "cat"}, 20) == base {
		t.Error("limit must be part of the key")
	}
}
