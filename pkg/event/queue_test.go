package event

import "testing"

func TestQueue_DrainRunsFIFO(t *testing.T) {
	q := NewQueue()
	var order []int

	q.Post(func() { order = append(order, 1) })
	q.Post(func() { order = append(order, 2) })
	q.Post(func() { order = append(order, 3) })

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}
	q.Drain()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("execution order = %v, want [1 2 3]", order)
	}
	if q.Len() != 0 {
		t.Errorf("Len() after drain = %d, want 0", q.Len())
	}
}

func TestQueue_TasksPostedWhileDraining(t *testing.T) {
	q := NewQueue()
	var order []string

	q.Post(func() {
		order = append(order, "outer")
		q.Post(func() { order = append(order, "inner") })
	})
	q.Drain()

	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("execution order = %v, want [outer inner]", order)
	}
}

func TestQueue_NilTaskIgnored(t *testing.T) {
	q := NewQueue()
	q.Post(nil)
	if q.Len() != 0 {
		t.Errorf("Len() = %d after posting nil, want 0", q.Len())
	}
	q.Drain()
}

func TestQueue_DrainEmptyIsNoOp(t *testing.T) {
	q := NewQueue()
	q.Drain()
	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
}
