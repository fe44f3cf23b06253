package pqueue

import (
	"cmp"
	"container/heap"
	"errors"
	"fmt"
)

// Sentinel errors carried by the panics of misused queues.
var (
	// ErrAlreadyQueued indicates Push of an id that is already in the queue.
	ErrAlreadyQueued = errors.New("pqueue: id already queued")
	// ErrNotQueued indicates Fix of an id that is not in the queue.
	ErrNotQueued = errors.New("pqueue: id not queued")
	// ErrEmpty indicates Pop or Peek on an empty queue.
	ErrEmpty = errors.New("pqueue: queue is empty")
)

// initialCapacity is used when New is asked for a zero capacity.
const initialCapacity = 8

// Queue is a min-heap of ids in [0, n) ordered by key(id).
type Queue[K cmp.Ordered] struct {
	h idHeap[K]
}

// idHeap implements heap.Interface and keeps pos in sync on every swap.
type idHeap[K cmp.Ordered] struct {
	ids []int
	pos []int
	key func(int) K
}

func (h *idHeap[K]) Len() int { return len(h.ids) }

func (h *idHeap[K]) Less(i, j int) bool { return h.key(h.ids[i]) < h.key(h.ids[j]) }

func (h *idHeap[K]) Swap(i, j int) {
	h.ids[i], h.ids[j] = h.ids[j], h.ids[i]
	h.pos[h.ids[i]] = i
	h.pos[h.ids[j]] = j
}

// Push appends x; capacity doubles when the backing array is full.
func (h *idHeap[K]) Push(x any) {
	id := x.(int)
	if len(h.ids) == cap(h.ids) {
		grown := make([]int, len(h.ids), max(2*cap(h.ids), initialCapacity))
		copy(grown, h.ids)
		h.ids = grown
	}
	h.pos[id] = len(h.ids)
	h.ids = append(h.ids, id)
}

func (h *idHeap[K]) Pop() any {
	last := len(h.ids) - 1
	id := h.ids[last]
	h.ids = h.ids[:last]
	h.pos[id] = -1
	return id
}

// New returns an empty queue for ids in [0, n) with room for capacity ids
// before the first growth. key must be consistent while an id is queued,
// except for decreases announced through Fix.
func New[K cmp.Ordered](n, capacity int, key func(int) K) *Queue[K] {
	if capacity <= 0 {
		capacity = initialCapacity
	}
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}
	return &Queue[K]{h: idHeap[K]{
		ids: make([]int, 0, capacity),
		pos: pos,
		key: key,
	}}
}

// Len returns the number of queued ids.
func (q *Queue[K]) Len() int { return len(q.h.ids) }

// Cap returns the current capacity of the heap array.
func (q *Queue[K]) Cap() int { return cap(q.h.ids) }

// Contains reports whether id is queued.
func (q *Queue[K]) Contains(id int) bool { return q.h.pos[id] >= 0 }

// Slot returns the heap slot holding id, or -1.
func (q *Queue[K]) Slot(id int) int { return q.h.pos[id] }

// Push inserts id. It panics if id is already queued.
func (q *Queue[K]) Push(id int) {
	if q.h.pos[id] >= 0 {
		panic(fmt.Errorf("%w: %d", ErrAlreadyQueued, id))
	}
	heap.Push(&q.h, id)
}

// Pop removes and returns the id with the smallest key.
// It panics on an empty queue.
func (q *Queue[K]) Pop() int {
	if len(q.h.ids) == 0 {
		panic(ErrEmpty)
	}
	return heap.Pop(&q.h).(int)
}

// Peek returns the id with the smallest key without removing it.
// It panics on an empty queue.
func (q *Queue[K]) Peek() int {
	if len(q.h.ids) == 0 {
		panic(ErrEmpty)
	}
	return q.h.ids[0]
}

// Fix restores heap order after key(id) has changed.
// It panics if id is not queued.
func (q *Queue[K]) Fix(id int) {
	slot := q.h.pos[id]
	if slot < 0 {
		panic(fmt.Errorf("%w: %d", ErrNotQueued, id))
	}
	heap.Fix(&q.h, slot)
}

// Build queues every id in ids at once with a bottom-up heapify.
// It panics if any id is already queued or repeated.
func (q *Queue[K]) Build(ids []int) {
	for _, id := range ids {
		if q.h.pos[id] >= 0 {
			panic(fmt.Errorf("%w: %d", ErrAlreadyQueued, id))
		}
		q.h.pos[id] = len(q.h.ids)
		q.h.ids = append(q.h.ids, id)
	}
	heap.Init(&q.h)
}
