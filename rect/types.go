// Package rect defines core types, interfaces, and alignment options
// for the rect subpackage of github.com/katalvlaran/ndrect.
package rect

import "sort"

// Dim labels one axis of a hyper-rectangle. Labels need not be
// sequential or numeric; any unique name works.
type Dim string

// Shape maps dimension labels to extents (lengths) along each axis.
// A Shape carries no positions — only how long the box is per axis.
type Shape map[Dim]float64

// Clone returns an independent copy of the shape.
// Complexity: O(d)
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for d, l := range s {
		out[d] = l
	}

	return out
}

// Equal reports whether both shapes contain exactly the same
// dimensions with exactly the same lengths.
// Complexity: O(d)
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for d, l := range s {
		if ol, ok := other[d]; !ok || ol != l {
			return false
		}
	}

	return true
}

// Dims returns the dimension labels sorted lexicographically ascending,
// so enumeration is deterministic across runs.
// Complexity: O(d·log d)
func (s Shape) Dims() []Dim {
	out := make([]Dim, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Expr is anything that can enter a sequencing expression: a Rect, an
// unaligned Sequence, or a Resolved sequence. Then accepts any Expr, so
// chains read uniformly regardless of what each side already is.
//
// The interface is sealed: components materializes the flat component
// list each value contributes, which is how Then guarantees an
// unaligned Sequence never nests inside another one.
type Expr interface {
	// components returns the flat list this value contributes when
	// sequenced. A Rect contributes itself; a Sequence contributes its
	// parts; a Resolved contributes itself as one opaque component.
	components() []Aligned
}

// Aligned is the shape-bearing contract shared by Rect and Resolved:
// anything with a defined per-axis extent. An unaligned Sequence is
// deliberately not Aligned — it has no shape until Along is called.
//
// Aligned is sealed to the two in-package implementations; the
// Rect → Sequence → Resolved state machine admits no outside variants.
type Aligned interface {
	Expr

	// Shape returns a fresh copy of the dimension→length mapping.
	Shape() Shape
	// Length returns the extent along d, or 0 when d is absent.
	Length(d Dim) float64
	// NDim returns the number of dimensions in the shape.
	NDim() int
	// Dims returns the dimension labels sorted ascending.
	Dims() []Dim

	// ref exposes the internal shape without copying; callers inside
	// the package must treat it as read-only.
	ref() Shape
}

// AlignOption tunes how Along combines component dimension sets.
type AlignOption func(*alignOptions)

type alignOptions struct {
	strictDims bool
}

// WithStrictDims makes Along require every component to define every
// dimension appearing in any component (the alignment axis included).
// Without it a missing dimension simply contributes length 0 to the
// bound. Violations fail with ErrShapeMismatch.
func WithStrictDims() AlignOption {
	return func(o *alignOptions) { o.strictDims = true }
}
