package casement

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// inputQueueSize is the number of pointer samples buffered between frames.
const inputQueueSize = 64

// InputQueue is a bounded FIFO of pointer samples. The platform capture
// callback pushes and the frame loop pops; both sides may run on different
// goroutines.
type InputQueue struct {
	mu      sync.Mutex
	buf     [inputQueueSize]PointerSample
	head    int
	count   int
	dropped int
}

// Push appends s. When the queue is full the sample is dropped and Push
// returns false; the producer never blocks.
func (q *InputQueue) Push(s PointerSample) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.count == inputQueueSize {
		q.dropped++
		return false
	}
	q.buf[(q.head+q.count)%inputQueueSize] = s
	q.count++
	return true
}

// Pop removes and returns the oldest sample.
func (q *InputQueue) Pop() (PointerSample, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.count == 0 {
		return PointerSample{}, false
	}
	s := q.buf[q.head]
	q.head = (q.head + 1) % inputQueueSize
	q.count--
	return s, true
}

// Len returns the number of buffered samples.
func (q *InputQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Clear discards all buffered samples.
func (q *InputQueue) Clear() {
	q.mu.Lock()
	q.head, q.count = 0, 0
	q.mu.Unlock()
}

// TakeDropped returns the number of samples dropped since the last call and
// resets the counter.
func (q *InputQueue) TakeDropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := q.dropped
	q.dropped = 0
	return n
}

// KeyQueue records which keys were pressed since the last drain. Each key is
// held at most once; draining yields keys in ascending key-code order.
type KeyQueue struct {
	mu      sync.Mutex
	pressed [int(ebiten.KeyMax) + 1]bool
	pending int
}

// Press marks k as pressed. Keys outside the ebiten key range are ignored.
func (q *KeyQueue) Press(k ebiten.Key) {
	if k < 0 || k > ebiten.KeyMax {
		return
	}
	q.mu.Lock()
	if !q.pressed[k] {
		q.pressed[k] = true
		q.pending++
	}
	q.mu.Unlock()
}

// Next removes and returns the lowest pressed key.
func (q *KeyQueue) Next() (ebiten.Key, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.pending == 0 {
		return 0, false
	}
	for k := range q.pressed {
		if q.pressed[k] {
			q.pressed[k] = false
			q.pending--
			return ebiten.Key(k), true
		}
	}
	q.pending = 0
	return 0, false
}

// Clear forgets all pressed keys.
func (q *KeyQueue) Clear() {
	q.mu.Lock()
	q.pressed = [int(ebiten.KeyMax) + 1]bool{}
	q.pending = 0
	q.mu.Unlock()
}
