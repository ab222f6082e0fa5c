// Package spans partitions half-open integer ranges into contiguous,
// near-equal-length pieces.
package spans

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidSegments indicates a split was requested with fewer than one
// segment.
var ErrInvalidSegments = errors.New("segments must be at least one")

// ErrInvalidLimit indicates a split was requested with a negative limit.
var ErrInvalidLimit = errors.New("limit must be non-negative")

// Span is the half-open integer interval [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns the number of integers the span covers.
func (s Span) Len() int { return s.End - s.Start }

// String formats the span in half-open interval notation.
func (s Span) String() string { return fmt.Sprintf("[%d,%d)", s.Start, s.End) }

// Split partitions [0, limit) into exactly segments contiguous spans.
//
//	Split(2, 6)  -> [0,3) [3,6)
//	Split(2, 7)  -> [0,4) [4,7)
//	Split(4, 10) -> [0,3) [3,6) [6,8) [8,10)
//
// The limit % segments remainder is distributed one unit at a time over
// the leading spans, so span lengths differ by at most one and sum to
// limit, with the longer spans first. When segments exceeds limit the
// trailing spans are empty (Start == End). A limit of zero yields an
// empty sequence.
//
// The returned sequence is deterministic and can be ranged over any
// number of times; stopping early is always safe.
//
// Split returns ErrInvalidSegments when segments is less than one and
// ErrInvalidLimit when limit is negative.
func Split(segments, limit int) (iter.Seq[Span], error) {
	if segments < 1 {
		return nil, ErrInvalidSegments
	}
	if limit < 0 {
		return nil, ErrInvalidLimit
	}

	return func(yield func(Span) bool) {
		if limit == 0 {
			return
		}

		base := limit / segments
		rem := limit % segments
		start := 0

		for i := 0; i < segments; i++ {
			length := base
			if i < rem {
				length++
			}

			span := Span{Start: start, End: start + length}
			if !yield(span) {
				return
			}
			start = span.End
		}
	}, nil
}
