package binheap

import (
	"fmt"
	"io"
	"math/bits"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Dump writes the polarity tag and the raw backing array to w. Elements
// appear in internal array order, not sorted order. The heap is not modified.
func (h *Heap[T]) Dump(w io.Writer) {
	if h.IsEmpty() {
		fmt.Fprintln(w, "Empty Heap")
		return
	}
	fmt.Fprintf(w, "[%s]:\n%v\n", h.polarity, h.items)
}

// Render writes a level-by-level tree rendering of the heap to w, indenting
// each level proportionally to its depth. The heap is not modified.
func (h *Heap[T]) Render(w io.Writer) {
	if h.IsEmpty() {
		fmt.Fprintln(w, "Empty Heap")
		return
	}
	fmt.Fprintf(w, "[%s]:\n", h.polarity)

	n := len(h.items)
	depth := bits.Len(uint(n))
	for level, index := 0, 0; index < n; level++ {
		end := index + 1<<level
		if end > n {
			end = n
		}

		indent := strings.Repeat(" ", 1<<max(0, depth-level-1))
		spacing := strings.Repeat(" ", 1<<max(0, depth-level))

		row := make([]string, 0, end-index)
		for _, v := range h.items[index:end] {
			row = append(row, fmt.Sprint(v))
		}
		fmt.Fprintln(w, indent+strings.Join(row, spacing))
		index = end
	}
}

// String returns a compact single-line representation for logs and %v.
func (h *Heap[T]) String() string {
	return fmt.Sprintf("[%s] %v", h.polarity, h.items)
}

var _ zapcore.ObjectMarshaler = (*Heap[int])(nil)

// MarshalLogObject lets a heap be logged as a structured zap field carrying
// its polarity, length, and contents.
func (h *Heap[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("polarity", h.polarity.String())
	enc.AddInt("len", len(h.items))
	return enc.AddArray("items", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for _, v := range h.items {
			if err := arr.AppendReflected(v); err != nil {
				return err
			}
		}
		return nil
	}))
}
