package alloc

import "testing"

func TestDefaultAlwaysAllocatesFresh(t *testing.T) {
	calls := 0
	d := Default[int]{New: func() int { calls++; return calls }}
	a := d.Get()
	b := d.Get()
	if a == b {
		t.Fatalf("Default should not recycle: got %d twice", a)
	}
	d.Put(a)
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestLRUReusesReleasedValues(t *testing.T) {
	news := 0
	resets := 0
	p := NewLRU(4, func() *int {
		news++
		v := 0
		return &v
	}, func(v *int) {
		resets++
		*v = 0
	})
	a := p.Get()
	*a = 42
	p.Put(a)
	b := p.Get()
	if b != a {
		t.Fatalf("expected Get to return the pooled pointer after Put")
	}
	if *b != 0 {
		t.Fatalf("expected resetFn to clear the value, got %d", *b)
	}
	if news != 1 {
		t.Fatalf("news = %d, want 1 (second Get should reuse, not allocate)", news)
	}
	if resets != 1 {
		t.Fatalf("resets = %d, want 1", resets)
	}
}

func TestLRUEvictsOldestWhenFull(t *testing.T) {
	p := NewLRU(2, func() int { return 0 }, nil)
	p.Put(1)
	p.Put(2)
	p.Put(3) // evicts the oldest entry (1)
	first := p.Get()
	second := p.Get()
	third := p.Get() // pool exhausted, allocates fresh (0)
	seen := map[int]bool{first: true, second: true, third: true}
	if !seen[2] || !seen[3] {
		t.Fatalf("expected to see values 2 and 3 among %v", []int{first, second, third})
	}
}
