package lit

import "testing"

func TestQueuePush(t *testing.T) {
	q := NewQueue()

	if q.Push(New(0, false)); q.Len() != 1 {
		t.Fatalf("TestQueuePush() failed, got: %d", q.Len())
	}
}

func TestQueueAt(t *testing.T) {
	q := NewQueue()
	lit1 := New(0, false)
	lit2 := New(1, false)
	lit3 := New(2, true)

	q.Push(lit1)
	q.Push(lit2)
	q.Push(lit3)

	if o := q.At(0); o != lit1 {
		t.Fatalf("TestQueueAt(0) failed, got: %s", o)
	}
	if o := q.At(1); o != lit2 {
		t.Fatalf("TestQueueAt(1) failed, got: %s", o)
	}
	if o := q.At(2); o != lit3 {
		t.Fatalf("TestQueueAt(2) failed, got: %s", o)
	}
}

func TestQueueTruncate(t *testing.T) {
	q := NewQueue()
	q.Push(New(0, false))
	q.Push(New(1, false))
	q.Push(New(2, false))

	q.Truncate(1)

	if q.Len() != 1 {
		t.Fatalf("TestQueueTruncate() failed, got: %d", q.Len())
	}
}

func TestQueueClear(t *testing.T) {
	q := NewQueue()
	q.Push(New(0, false))
	q.Push(New(1, false))

	if q.Clear(); q.Len() != 0 {
		t.Fatalf("TestQueueClear() failed, got: %d", q.Len())
	}
}

func TestQueueGrowsDuringScan(t *testing.T) {
	q := NewQueue()
	q.Push(New(0, false))

	seen := 0
	for i := 0; i < q.Len(); i++ {
		seen++
		if i == 0 {
			q.Push(New(1, false))
		}
	}
	if seen != 2 {
		t.Fatalf("expected scan to observe a literal pushed mid-scan, got %d items", seen)
	}
}
