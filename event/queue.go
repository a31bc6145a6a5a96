package event

import (
	"sync/atomic"

	"github.com/lixenwraith/flapper/parameter"
)

// InputQueue is a lock-free ring buffer handing host input to the simulation goroutine
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (frame loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Newest events rejected when full, unread slots are never overwritten
type InputQueue struct {
	events    [parameter.TapQueueSize]InputEvent
	published [parameter.TapQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                       // Read index
	tail      atomic.Uint64                       // Write index
}

func NewInputQueue() *InputQueue {
	return &InputQueue{}
}

// Push adds an event and returns its sequence number, ok is false when the ring is full
// Safe for concurrent producers. O(1) amortized
func (q *InputQueue) Push(t InputType) (seq uint64, ok bool) {
	for {
		currentTail := q.tail.Load()
		if currentTail-q.head.Load() >= parameter.TapQueueSize {
			return 0, false
		}

		if q.tail.CompareAndSwap(currentTail, currentTail+1) {
			idx := currentTail & parameter.TapBufferMask

			q.events[idx] = InputEvent{Type: t, Seq: currentTail}
			q.published[idx].Store(true) // MUST be after write
			return currentTail, true
		}
	}
}

// Consume returns all pending events in FIFO order and advances head
// Single-consumer; called once per frame boundary
func (q *InputQueue) Consume() []InputEvent {
	currentHead := q.head.Load()
	currentTail := q.tail.Load()
	if currentTail == currentHead {
		return nil
	}

	available := currentTail - currentHead
	result := make([]InputEvent, 0, available)
	for i := uint64(0); i < available; i++ {
		idx := (currentHead + i) & parameter.TapBufferMask

		if !q.published[idx].Load() {
			break // Writer incomplete, picked up next frame
		}

		result = append(result, q.events[idx])
		q.published[idx].Store(false)
	}

	// Sole writer of head, so a plain store is enough
	q.head.Store(currentHead + uint64(len(result)))
	if len(result) == 0 {
		return nil
	}
	return result
}
