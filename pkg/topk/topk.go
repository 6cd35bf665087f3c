// Package topk tracks the k best values seen from a stream using a bounded
// binary heap. Each Offer beyond the first k costs a single fused
// push-pop sift, so memory stays O(k) regardless of stream length.
//
// Like the underlying heap, a TopK is not safe for concurrent use.
package topk

import (
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/JasonNaicker/goheap/pkg/binheap"
)

// TopK retains the k largest (or, in smallest mode, the k smallest) values
// offered so far.
type TopK[T constraints.Ordered] struct {
	k        int
	smallest bool
	heap     *binheap.Heap[T]
}

// New returns a tracker for the k largest values. It panics if k < 1.
func New[T constraints.Ordered](k int) *TopK[T] {
	if k < 1 {
		panic("topk: k must be at least 1")
	}
	// A min-heap keeps the weakest retained value at the root where PushPop
	// can evict it.
	return &TopK[T]{k: k, heap: binheap.New[T](binheap.Min)}
}

// NewSmallest returns a tracker for the k smallest values. It panics if k < 1.
func NewSmallest[T constraints.Ordered](k int) *TopK[T] {
	if k < 1 {
		panic("topk: k must be at least 1")
	}
	return &TopK[T]{k: k, smallest: true, heap: binheap.New[T](binheap.Max)}
}

// Offer feeds one value from the stream into the tracker.
func (t *TopK[T]) Offer(v T) {
	if t.heap.Len() < t.k {
		t.heap.Push(v)
		return
	}
	t.heap.PushPop(v)
}

// Len returns the number of retained values, at most k.
func (t *TopK[T]) Len() int {
	return t.heap.Len()
}

// Values returns the retained values sorted best-first. The tracker is left
// intact and may keep consuming the stream.
func (t *TopK[T]) Values() []T {
	vals := t.heap.Items()
	slices.Sort(vals)
	if !t.smallest {
		slices.Reverse(vals)
	}
	return vals
}
