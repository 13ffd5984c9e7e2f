package grid

import "errors"

var (
	// ErrBadShape is returned when a matrix is requested with rows<=0 or cols<=0.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrOutOfRange is returned for a row or column index outside the grid.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrLastColumn is returned when removing the only column left.
	ErrLastColumn = errors.New("grid: no further column removal possible")

	// ErrLastRow is returned when removing the only row left.
	ErrLastRow = errors.New("grid: no further row removal possible")

	// ErrUnknownAction is returned for an action outside the closed set.
	ErrUnknownAction = errors.New("grid: unknown action")

	// ErrInvalidConfig is returned by New for non-positive sizes or a cursor outside the grid.
	ErrInvalidConfig = errors.New("grid: invalid configuration")
)
