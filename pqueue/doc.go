// Package pqueue provides an indexed binary min-heap over dense integer ids.
//
// Unlike a plain container/heap slice, Queue keeps a reverse index pos[id]
// (the slot an id currently occupies, or -1), so a queued id can be located
// in O(1) and re-positioned after its key decreases. This is the decrease-key
// operation Fast Marching needs when a CLOSE node receives a smaller
// tentative travel time.
//
// Keys are not stored in the heap: Queue calls key(id) on demand, so the
// caller updates its own array and then calls Fix(id).
//
// Complexity:
//
//   - Push, Pop, Fix: O(log n)
//   - Peek, Contains, Slot, Len: O(1)
//   - Build: O(n)
//
// Misuse panics with an error wrapping one of ErrAlreadyQueued, ErrNotQueued
// or ErrEmpty. These indicate a bug in the caller, not a runtime condition.
package pqueue
