// Package rect models axis-aligned hyper-rectangles whose dimensions are
// identified by arbitrary labels, and sequences (concatenates) them along
// a chosen axis.
//
// 🚀 What is sequencing?
//
//	Placing hyper-rectangles flush against each other along one axis.
//	Lengths along that axis add up; every other axis is bounded by the
//	largest component (bounding-box rule).  Useful for:
//	  • packing & shelf layout planning
//	  • page / panel composition
//	  • tensor and block-shape bookkeeping
//	  • any "how big is the result" question without coordinates
//
// ✨ Key features:
//   - Rect: immutable label→length mapping, validated at construction
//   - two-phase composition: Then/Repeat build an unaligned Sequence,
//     Along picks the axis and yields a Resolved value
//   - a Resolved sequence chains like a plain Rect (nesting, not mutation)
//   - permissive bounding by default; WithStrictDims for exact dimension sets
//   - FillInto: grow any rectangle until it matches a bounding shape
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ndrect/rect"
//
//	r1 := rect.MustNew(map[rect.Dim]float64{"w": 1, "h": 2})
//	r2 := rect.MustNew(map[rect.Dim]float64{"w": 2, "h": 2})
//
//	row, err := r1.Then(r2).Along("w") // w summed, h bounded
//	if err != nil {
//	  // handle ErrUnknownAxis
//	}
//	fmt.Println(row.Shape()) // map[h:2 w:3]
//
// Performance:
//
//   - Then / Repeat: O(k) in the number of components
//   - Along:         O(k·d) over components and dimensions, computed once
//   - Shape:         O(d) per call (defensive copy)
//
// All values are immutable after construction; sharing them across
// goroutines needs no coordination.
package rect
