package event

import (
	"github.com/lixenwraith/trinket/parameter"
)

// EffectQueue is a fixed-capacity FIFO ring buffer of effects
// Single-threaded: only the tick's systems push, only the effect system drains
//
// Overflow: Oldest effects overwritten when full
type EffectQueue struct {
	effects [parameter.EffectQueueSize]Effect
	head    uint64 // Read index
	tail    uint64 // Write index
}

func NewEffectQueue() *EffectQueue {
	return &EffectQueue{}
}

// Push appends an effect, dropping the oldest one when the ring is full
func (q *EffectQueue) Push(e Effect) {
	q.effects[q.tail&parameter.EffectBufferMask] = e
	q.tail++
	if q.tail-q.head > parameter.EffectQueueSize {
		q.head = q.tail - parameter.EffectQueueSize
	}
}

// Drain returns all pending effects in FIFO order and empties the queue
func (q *EffectQueue) Drain() []Effect {
	n := q.tail - q.head
	if n == 0 {
		return nil
	}
	result := make([]Effect, 0, n)
	for i := q.head; i < q.tail; i++ {
		result = append(result, q.effects[i&parameter.EffectBufferMask])
	}
	q.head = q.tail
	return result
}

// Peek returns pending effects without consuming them
func (q *EffectQueue) Peek() []Effect {
	n := q.tail - q.head
	if n == 0 {
		return nil
	}
	result := make([]Effect, 0, n)
	for i := q.head; i < q.tail; i++ {
		result = append(result, q.effects[i&parameter.EffectBufferMask])
	}
	return result
}

// Len returns pending effect count
func (q *EffectQueue) Len() int {
	return int(q.tail - q.head)
}

// Reset discards pending effects
func (q *EffectQueue) Reset() {
	q.head = q.tail
}
