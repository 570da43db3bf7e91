package hex

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a placement that overlaps or leaves the board.
	ErrValidation = errors.New("hex: invalid placement")

	// ErrEmptyInput marks a decision request with nothing to decide on.
	ErrEmptyInput = errors.New("hex: empty input")

	// ErrEncoding marks malformed shape or board encodings.
	ErrEncoding = errors.New("hex: invalid encoding")

	// ErrShapeMerge is returned when merging a grid into a shape.
	ErrShapeMerge = errors.New("hex: cannot merge a grid into a shape, add cells one by one")
)

// PlacementReason says why a placement target was rejected.
type PlacementReason string

const (
	ReasonOutOfRange PlacementReason = "out of range"
	ReasonOverlap    PlacementReason = "overlaps an occupied cell"
)

// PlacementError describes the first rejected target of a placement.
type PlacementError struct {
	Origin Coord
	Target Coord
	Reason PlacementReason
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("hex: cannot place at %v: target %v %s", e.Origin, e.Target, e.Reason)
}

// Unwrap lets errors.Is match ErrValidation.
func (e *PlacementError) Unwrap() error { return ErrValidation }
