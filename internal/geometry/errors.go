package geometry

import "fmt"

// ValidationError reports a dimension value that failed input validation.
type ValidationError struct {
	Shape     string
	Dimension string
	Reason    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: dimension %q %s", e.Shape, e.Dimension, e.Reason)
}

// DegenerateShapeError reports dimensions that are individually valid but
// describe a collapsed shape, such as triangle sides that violate the
// triangle inequality.
type DegenerateShapeError struct {
	Shape  string
	Reason string
}

func (e *DegenerateShapeError) Error() string {
	return fmt.Sprintf("degenerate %s: %s", e.Shape, e.Reason)
}

// UnsupportedShapeError reports a shape name with no registry entry.
type UnsupportedShapeError struct {
	Name string
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("unsupported shape %q", e.Name)
}
