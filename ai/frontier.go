package ai

import "container/heap"

type frontierEntry struct {
	cell int    // flat grid index
	f    int    // g+h at insertion or last decrease
	seq  uint64 // insertion order, breaks f ties
}

// frontier is a min-heap on f with FIFO tiebreak. pos maps a cell to its
// heap slot so a decreased key is fixed in place instead of re-pushed.
type frontier struct {
	entries []frontierEntry
	pos     []int // -1 when not queued
	seq     uint64
}

func newFrontier(cells int) *frontier {
	q := &frontier{
		entries: make([]frontierEntry, 0, cells/4+1),
		pos:     make([]int, cells),
	}
	for i := range q.pos {
		q.pos[i] = -1
	}
	return q
}

func (q *frontier) Len() int { return len(q.entries) }

func (q *frontier) Less(i, j int) bool {
	if q.entries[i].f != q.entries[j].f {
		return q.entries[i].f < q.entries[j].f
	}
	return q.entries[i].seq < q.entries[j].seq
}

func (q *frontier) Swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.pos[q.entries[i].cell] = i
	q.pos[q.entries[j].cell] = j
}

func (q *frontier) Push(x any) {
	e := x.(frontierEntry)
	q.pos[e.cell] = len(q.entries)
	q.entries = append(q.entries, e)
}

func (q *frontier) Pop() any {
	n := len(q.entries)
	e := q.entries[n-1]
	q.entries = q.entries[:n-1]
	q.pos[e.cell] = -1
	return e
}

// upsert inserts cell or, if already queued, moves it to its new priority
func (q *frontier) upsert(cell, f int) {
	q.seq++
	if i := q.pos[cell]; i >= 0 {
		q.entries[i].f = f
		q.entries[i].seq = q.seq
		heap.Fix(q, i)
		return
	}
	heap.Push(q, frontierEntry{cell: cell, f: f, seq: q.seq})
}

// pop removes the lowest-f cell
func (q *frontier) pop() int {
	return heap.Pop(q).(frontierEntry).cell
}
