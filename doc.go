// Package ndrect models axis-aligned hyper-rectangles in N-dimensional
// space and lets you sequence (concatenate) them along any named axis.
//
// 🚀 What is ndrect?
//
//	A small, immutable value library that brings together:
//		• Rect — an atomic hyper-rectangle: dimension label → positive length
//		• Sequence — an ordered, still-unaligned chain of rectangles
//		• Resolved — a sequence aligned along a chosen axis, with a computed shape
//		• FillInto — grow any rectangle until it matches a bounding shape
//
// ✨ Why choose ndrect?
//
//   - Beginner-friendly – three types, three combinators, clear naming
//   - Rock-solid guarantees – every value immutable, every read a copy
//   - Pure Go – no cgo, no hidden deps
//   - Composable – a resolved sequence chains like a plain rectangle
//
// Everything lives in one subpackage:
//
//	rect/ — Rect, Sequence, Resolved types, the alignment engine and FillInto
//
// Quick ASCII example:
//
//	   w:1     w:2           w:3
//	  ┌───┐ ┌──────┐  @w  ┌─────────┐
//	  │h:2│+│ h:2  │  =   │   h:2   │
//	  └───┘ └──────┘      └─────────┘
//
//	sequencing along w sums widths and bounds (maxes) every other axis.
//
// Dive into rect/doc.go for the full contract and examples/ for
// runnable scenarios.
//
//	go get github.com/katalvlaran/ndrect/rect
package ndrect
