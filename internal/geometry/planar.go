package geometry

import (
	"fmt"
	"math"
)

func dim(name, label string) Dimension {
	return Dimension{Name: name, Label: label}
}

// regularPolygonMetrics computes area and perimeter of an n-gon with the
// given side length.
func regularPolygonMetrics(n, side float64) []Metric {
	return []Metric{
		{MetricArea, n * side * side / (4 * math.Tan(math.Pi/n))},
		{MetricPerimeter, n * side},
	}
}

// planarShapes lists the 2D entries in menu order.
var planarShapes = []Shape{
	{
		Name:       "circle",
		Title:      "Circle",
		Category:   Category2D,
		Dimensions: []Dimension{dim("radius", "Radius")},
		Formula:    "A = πr²; P = 2πr",
		evaluate: func(in map[string]float64) []Metric {
			r := in["radius"]
			return []Metric{
				{MetricArea, math.Pi * r * r},
				{MetricPerimeter, 2 * math.Pi * r},
			}
		},
	},
	{
		Name:       "square",
		Title:      "Square",
		Category:   Category2D,
		Dimensions: []Dimension{dim("side", "Side length")},
		Formula:    "A = s²; P = 4s",
		evaluate: func(in map[string]float64) []Metric {
			s := in["side"]
			return []Metric{
				{MetricArea, s * s},
				{MetricPerimeter, 4 * s},
			}
		},
	},
	{
		Name:       "rectangle",
		Title:      "Rectangle",
		Category:   Category2D,
		Dimensions: []Dimension{dim("width", "Width"), dim("height", "Height")},
		Formula:    "A = w·h; P = 2(w + h)",
		evaluate: func(in map[string]float64) []Metric {
			w, h := in["width"], in["height"]
			return []Metric{
				{MetricArea, w * h},
				{MetricPerimeter, 2 * (w + h)},
			}
		},
	},
	{
		Name:     "triangle",
		Title:    "Triangle",
		Category: Category2D,
		Dimensions: []Dimension{
			dim("side_a", "Side a"),
			dim("side_b", "Side b"),
			dim("side_c", "Side c"),
		},
		Formula: "A = √(s(s-a)(s-b)(s-c)), s = (a+b+c)/2; P = a + b + c",
		evaluate: func(in map[string]float64) []Metric {
			a, b, c := in["side_a"], in["side_b"], in["side_c"]
			s := (a + b + c) / 2
			return []Metric{
				{MetricArea, math.Sqrt(s * (s - a) * (s - b) * (s - c))},
				{MetricPerimeter, a + b + c},
			}
		},
		validate: func(in map[string]float64) error {
			a, b, c := in["side_a"], in["side_b"], in["side_c"]
			if a+b <= c || a+c <= b || b+c <= a {
				return &DegenerateShapeError{
					Shape:  "triangle",
					Reason: fmt.Sprintf("sides %g, %g and %g violate the triangle inequality", a, b, c),
				}
			}
			return nil
		},
	},
	{
		Name:       "right_triangle",
		Title:      "Right triangle",
		Category:   Category2D,
		Dimensions: []Dimension{dim("base", "Base"), dim("height", "Height")},
		Formula:    "A = b·h/2; P = b + h + √(b² + h²)",
		evaluate: func(in map[string]float64) []Metric {
			b, h := in["base"], in["height"]
			return []Metric{
				{MetricArea, b * h / 2},
				{MetricPerimeter, b + h + math.Hypot(b, h)},
			}
		},
	},
	{
		Name:     "parallelogram",
		Title:    "Parallelogram",
		Category: Category2D,
		Dimensions: []Dimension{
			dim("base", "Base"),
			dim("side", "Slant side"),
			dim("height", "Height"),
		},
		Formula: "A = b·h; P = 2(b + s)",
		evaluate: func(in map[string]float64) []Metric {
			return []Metric{
				{MetricArea, in["base"] * in["height"]},
				{MetricPerimeter, 2 * (in["base"] + in["side"])},
			}
		},
	},
	{
		Name:     "ellipse",
		Title:    "Ellipse",
		Category: Category2D,
		Dimensions: []Dimension{
			dim("semi_major", "Semi-major axis"),
			dim("semi_minor", "Semi-minor axis"),
		},
		Formula: "A = πab; P ≈ π(a+b)(1 + 3h/(10 + √(4-3h))), h = (a-b)²/(a+b)²",
		evaluate: func(in map[string]float64) []Metric {
			// Ramanujan's first approximation for the perimeter.
			a, b := in["semi_major"], in["semi_minor"]
			h := (a - b) * (a - b) / ((a + b) * (a + b))
			return []Metric{
				{MetricArea, math.Pi * a * b},
				{MetricPerimeter, math.Pi * (a + b) * (1 + 3*h/(10+math.Sqrt(4-3*h)))},
			}
		},
	},
	{
		Name:     "regular_polygon",
		Title:    "Regular polygon",
		Category: Category2D,
		Dimensions: []Dimension{
			{Name: "sides", Label: "Number of sides", Hint: "whole number, 3 or more", Integer: true},
			dim("side_length", "Side length"),
		},
		Formula: "A = ns²/(4·tan(π/n)); P = n·s",
		evaluate: func(in map[string]float64) []Metric {
			return regularPolygonMetrics(in["sides"], in["side_length"])
		},
		validate: func(in map[string]float64) error {
			if in["sides"] < 3 {
				return &DegenerateShapeError{
					Shape:  "regular_polygon",
					Reason: "a polygon needs at least 3 sides",
				}
			}
			return nil
		},
	},
	{
		Name:     "rhombus",
		Title:    "Rhombus",
		Category: Category2D,
		Dimensions: []Dimension{
			dim("diagonal_p", "Diagonal p"),
			dim("diagonal_q", "Diagonal q"),
		},
		Formula: "A = p·q/2; P = 4·√((p/2)² + (q/2)²)",
		evaluate: func(in map[string]float64) []Metric {
			p, q := in["diagonal_p"], in["diagonal_q"]
			return []Metric{
				{MetricArea, p * q / 2},
				{MetricPerimeter, 4 * math.Hypot(p/2, q/2)},
			}
		},
	},
	{
		Name:       "pentagon",
		Title:      "Pentagon",
		Category:   Category2D,
		Dimensions: []Dimension{dim("side", "Side length")},
		Formula:    "A = 5s²/(4·tan(π/5)); P = 5s",
		evaluate: func(in map[string]float64) []Metric {
			return regularPolygonMetrics(5, in["side"])
		},
	},
}
