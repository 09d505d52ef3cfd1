package rect

import "errors"

// Sentinel errors for rect construction and sequencing operations.
var (
	// ErrEmptyShape indicates a shape mapping with no dimensions.
	ErrEmptyShape = errors.New("rect: shape must contain at least one dimension")
	// ErrBadLength indicates a dimension length that is not a positive finite number.
	ErrBadLength = errors.New("rect: dimension length must be a positive finite number")
	// ErrBadCount indicates a repeat count below 1.
	ErrBadCount = errors.New("rect: repeat count must be at least 1")
	// ErrUnknownAxis indicates an alignment axis absent from every component.
	ErrUnknownAxis = errors.New("rect: alignment axis not present in any component")
	// ErrShapeMismatch indicates components with unequal dimension sets under strict alignment.
	ErrShapeMismatch = errors.New("rect: components disagree on dimension sets")
	// ErrIndexRange indicates a component index outside [0, Len).
	ErrIndexRange = errors.New("rect: component index out of range")
	// ErrFillBounds indicates a bounding shape that does not contain the current shape.
	ErrFillBounds = errors.New("rect: bounding shape does not contain the current shape")
)
