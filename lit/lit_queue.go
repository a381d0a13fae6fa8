package lit

// Queue is an append-only propagation queue of literals in enqueue order. It
// is intentionally not a FIFO: position matters because propagation walks the
// queue by index while it may still be growing (newly forced literals are
// appended from within the scan), and a decision level's start position is
// snapshotted so that a later backtrack can discard every literal enqueued
// since. Note that this is not safe for concurrent use.
type Queue struct {
	items []Lit
}

// NewQueue returns a new, empty queue.
func NewQueue() *Queue {
	return &Queue{items: []Lit{}}
}

// Push appends a literal to the end of the queue.
func (q *Queue) Push(l Lit) {
	q.items = append(q.items, l)
}

// At returns the literal at position i.
func (q *Queue) At(i int) Lit {
	return q.items[i]
}

// Len returns the number of literals ever pushed (minus anything discarded
// by Truncate).
func (q *Queue) Len() int {
	return len(q.items)
}

// Truncate discards every literal at or beyond position n, restoring the
// queue to the state it was in when it held exactly n literals.
func (q *Queue) Truncate(n int) {
	q.items = q.items[:n]
}

// Clear empties the queue entirely.
func (q *Queue) Clear() {
	q.items = q.items[:0]
}
