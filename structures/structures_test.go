// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package structures

import "testing"

func TestPQueueMaxOrdering(t *testing.T) {
	q := NewPQueue[string](MAXPQ)
	q.Push("Jim", 1)
	q.Push("Bob", 3)
	q.Push("Mary", 4)
	q.Push("Larry", 5)
	q.Push("Sally", 2)

	want := []string{"Larry", "Mary", "Bob", "Sally", "Jim"}
	for i, name := range want {
		got, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop() #%d: queue emptied early", i)
		}
		if got != name {
			t.Errorf("Pop() #%d = %q, want %q", i, got, name)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Errorf("Pop() on empty queue should return ok=false")
	}
}

func TestPQueueMinOrdering(t *testing.T) {
	q := NewPQueue[int](MINPQ)
	for _, v := range []int{5, 1, 4, 2, 3} {
		q.Push(v, v)
	}
	for want := 1; want <= 5; want++ {
		got, ok := q.Pop()
		if !ok || got != want {
			t.Errorf("Pop() = %d, %v; want %d, true", got, ok, want)
		}
	}
}

func TestPQueueLen(t *testing.T) {
	q := NewPQueue[int](MAXPQ)
	if q.Len() != 0 {
		t.Fatalf("new queue should be empty")
	}
	q.Push(1, 1)
	q.Push(2, 2)
	if q.Len() != 2 {
		t.Errorf("Len() = %d, want 2", q.Len())
	}
	q.Pop()
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1", q.Len())
	}
}
