package omap

import "testing"

func intLess(a, b int) bool { return a < b }

func TestInsertKeepsAscendingOrder(t *testing.T) {
	m := New[int, string](4, 4, intLess)
	keys := []int{50, 10, 30, 20, 40, 5, 45}
	for _, k := range keys {
		m.Insert(k, "v")
	}
	if m.Size() != len(keys) {
		t.Fatalf("Size() = %d, want %d", m.Size(), len(keys))
	}
	min, ok := m.MinKey()
	if !ok || min != 5 {
		t.Fatalf("MinKey() = (%d, %v), want (5, true)", min, ok)
	}
	for i := 1; i < m.Size(); i++ {
		if prev, cur := m.seq.At(i-1).Key, m.seq.At(i).Key; prev >= cur {
			t.Fatalf("entries %d,%d hold keys %d,%d, not ascending", i-1, i, prev, cur)
		}
	}
}

func TestInsertSameKeyReplacesValue(t *testing.T) {
	m := New[int, string](4, 4, intLess)
	m.Insert(1, "first")
	m.Insert(1, "second")
	if m.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", m.Size())
	}
	v, ok := m.Lookup(1)
	if !ok || v != "second" {
		t.Fatalf("Lookup(1) = (%q, %v), want (\"second\", true)", v, ok)
	}
}

func TestLookupMissingKeyReportsNotFound(t *testing.T) {
	m := New[int, string](4, 4, intLess)
	m.Insert(10, "ten")
	if _, ok := m.Lookup(99); ok {
		t.Fatalf("Lookup(99) reported found in a map without that key")
	}
}

func TestEraseRemovesExactlyOneEntry(t *testing.T) {
	m := New[int, string](4, 4, intLess)
	for i := 0; i < 30; i++ {
		m.Insert(i, "v")
	}
	if !m.Erase(15) {
		t.Fatalf("Erase(15) = false, want true")
	}
	if m.Size() != 29 {
		t.Fatalf("Size() = %d, want 29", m.Size())
	}
	if _, ok := m.Lookup(15); ok {
		t.Fatalf("Lookup(15) found an entry after Erase")
	}
	if _, ok := m.Lookup(14); !ok {
		t.Fatalf("Lookup(14) missing after unrelated Erase")
	}
}

func TestEraseMissingKeyReturnsFalse(t *testing.T) {
	m := New[int, string](4, 4, intLess)
	m.Insert(1, "v")
	if m.Erase(2) {
		t.Fatalf("Erase(2) = true, want false")
	}
}

func TestManyInsertsStayAscending(t *testing.T) {
	m := New[int, string](4, 4, intLess)
	for i := 99; i >= 0; i-- {
		m.Insert(i, "v")
	}
	last := -1
	for i := 0; i < m.Size(); i++ {
		min, ok := m.MinKey()
		if !ok {
			t.Fatalf("MinKey() reported not-ok on a non-empty map")
		}
		if min <= last {
			t.Fatalf("MinKey() = %d out of order after %d", min, last)
		}
		last = min
		m.Erase(min)
	}
}
