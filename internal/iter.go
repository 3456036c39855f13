package internal

import (
	"iter"
)

// IterSeqChunk groups a sequence into slices of up to size elements. The
// final slice may be shorter. Slices are not reused between yields.
func IterSeqChunk[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size < 1 {
			size = 1
		}
		chunk := make([]T, 0, size)
		for val := range seq {
			chunk = append(chunk, val)
			if len(chunk) == size {
				if !yield(chunk) {
					return // Stop if the consumer stops
				}
				chunk = make([]T, 0, size)
			}
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}

// IterSeqRepeat yields value count times.
func IterSeqRepeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for range count {
			if !yield(value) {
				return
			}
		}
	}
}
