// Package geometry implements the shape registry and the closed-form
// area/perimeter/volume/surface computations behind the calculator.
//
// Everything here is pure float64 arithmetic: the same inputs always produce
// bit-identical Results, and every metric of a validated shape is a finite
// positive real.
package geometry

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Metric names reported by shapes.
const (
	MetricArea        = "area"
	MetricPerimeter   = "perimeter"
	MetricVolume      = "volume"
	MetricSurfaceArea = "surface_area"
)

// Category splits the registry into planar and solid shapes.
type Category string

const (
	Category2D Category = "2d" // area and perimeter
	Category3D Category = "3d" // volume and surface area
)

// ParseCategory maps user input onto a Category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "2d", "2", "planar":
		return Category2D, nil
	case "3d", "3", "solid":
		return Category3D, nil
	}
	return "", fmt.Errorf("unknown category %q (want 2d or 3d)", s)
}

// Dimension is one required input of a shape.
type Dimension struct {
	Name    string // canonical key, e.g. "radius"
	Label   string // prompt label, e.g. "Radius"
	Hint    string // extra prompt guidance, may be empty
	Integer bool   // value must be a whole number
}

// Metric is a single computed quantity.
type Metric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Input is one validated dimension echoed back in a Result.
type Input struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Shape is one registry entry: the dimensions it requires, its display
// metadata and the function evaluating its metrics. Dispatch is by
// canonical Name, never by type switching.
type Shape struct {
	Name       string
	Title      string
	Category   Category
	Dimensions []Dimension
	Formula    string

	evaluate func(in map[string]float64) []Metric
	validate func(in map[string]float64) error
}

// Result is the outcome of one computation.
type Result struct {
	Shape    string   `json:"shape"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
	Inputs   []Input  `json:"inputs"`
	Metrics  []Metric `json:"metrics"`
	Formula  string   `json:"formula"`
}

// Metric returns the named metric value.
func (r Result) Metric(name string) (float64, bool) {
	for _, m := range r.Metrics {
		if m.Name == name {
			return m.Value, true
		}
	}
	return 0, false
}

var registry = slices.Concat(planarShapes, solidShapes)

var shapeIndex = func() map[string]Shape {
	idx := make(map[string]Shape, len(registry))
	for _, s := range registry {
		idx[s.Name] = s
	}
	return idx
}()

// All returns every registered shape in menu order.
func All() []Shape {
	return slices.Clone(registry)
}

// ByCategory returns the registered shapes of one category in menu order.
func ByCategory(c Category) []Shape {
	out := make([]Shape, 0, len(registry))
	for _, s := range registry {
		if s.Category == c {
			out = append(out, s)
		}
	}
	return out
}

// Lookup resolves a shape by name. Matching is case-insensitive and accepts
// spaces or hyphens in place of underscores, so "Right Triangle",
// "right-triangle" and "right_triangle" all resolve to the same entry.
func Lookup(name string) (Shape, error) {
	s, ok := shapeIndex[normalizeName(name)]
	if !ok {
		return Shape{}, &UnsupportedShapeError{Name: name}
	}
	return s, nil
}

func normalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "-", " ")
	n = strings.ReplaceAll(n, "_", " ")
	return strings.Join(strings.Fields(n), "_")
}

// Compute resolves the named shape, validates dims and evaluates its
// metrics.
func Compute(name string, dims map[string]float64) (Result, error) {
	s, err := Lookup(name)
	if err != nil {
		return Result{}, err
	}
	return s.Compute(dims)
}

// Compute validates dims against the shape's required dimensions and
// evaluates its metrics. Dimensions are checked in declaration order:
// missing, then non-finite, then non-positive, then whole-number
// requirements, then any shape-specific degeneracy check.
func (s Shape) Compute(dims map[string]float64) (Result, error) {
	for _, d := range s.Dimensions {
		v, ok := dims[d.Name]
		if !ok {
			return Result{}, &ValidationError{Shape: s.Name, Dimension: d.Name, Reason: "is required"}
		}
		if err := s.checkValue(d, v); err != nil {
			return Result{}, err
		}
	}
	if s.validate != nil {
		if err := s.validate(dims); err != nil {
			return Result{}, err
		}
	}

	inputs := make([]Input, len(s.Dimensions))
	for i, d := range s.Dimensions {
		inputs[i] = Input{Name: d.Name, Value: dims[d.Name]}
	}
	return Result{
		Shape:    s.Name,
		Title:    s.Title,
		Category: s.Category,
		Inputs:   inputs,
		Metrics:  s.evaluate(dims),
		Formula:  s.Formula,
	}, nil
}

// ValidateDimension checks a single dimension value without computing, so
// interactive prompts can reject bad input as soon as it is entered.
func (s Shape) ValidateDimension(name string, v float64) error {
	for _, d := range s.Dimensions {
		if d.Name == name {
			return s.checkValue(d, v)
		}
	}
	return &ValidationError{Shape: s.Name, Dimension: name, Reason: "is not a dimension of this shape"}
}

func (s Shape) checkValue(d Dimension, v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return &ValidationError{Shape: s.Name, Dimension: d.Name, Reason: "must be a finite number"}
	case v <= 0:
		return &ValidationError{Shape: s.Name, Dimension: d.Name, Reason: "must be greater than zero"}
	case d.Integer && v != math.Trunc(v):
		return &ValidationError{Shape: s.Name, Dimension: d.Name, Reason: "must be a whole number"}
	}
	return nil
}
