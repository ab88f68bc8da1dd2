package geometry

import "math"

// solidShapes lists the 3D entries in menu order.
var solidShapes = []Shape{
	{
		Name:       "sphere",
		Title:      "Sphere",
		Category:   Category3D,
		Dimensions: []Dimension{dim("radius", "Radius")},
		Formula:    "V = 4πr³/3; S = 4πr²",
		evaluate: func(in map[string]float64) []Metric {
			r := in["radius"]
			return []Metric{
				{MetricVolume, 4.0 / 3.0 * math.Pi * r * r * r},
				{MetricSurfaceArea, 4 * math.Pi * r * r},
			}
		},
	},
	{
		Name:       "cube",
		Title:      "Cube",
		Category:   Category3D,
		Dimensions: []Dimension{dim("side", "Side length")},
		Formula:    "V = s³; S = 6s²",
		evaluate: func(in map[string]float64) []Metric {
			s := in["side"]
			return []Metric{
				{MetricVolume, s * s * s},
				{MetricSurfaceArea, 6 * s * s},
			}
		},
	},
	{
		Name:       "cylinder",
		Title:      "Cylinder",
		Category:   Category3D,
		Dimensions: []Dimension{dim("radius", "Radius"), dim("height", "Height")},
		Formula:    "V = πr²h; S = 2πr(r + h)",
		evaluate: func(in map[string]float64) []Metric {
			r, h := in["radius"], in["height"]
			return []Metric{
				{MetricVolume, math.Pi * r * r * h},
				{MetricSurfaceArea, 2 * math.Pi * r * (r + h)},
			}
		},
	},
	{
		Name:       "cone",
		Title:      "Cone",
		Category:   Category3D,
		Dimensions: []Dimension{dim("radius", "Radius"), dim("height", "Height")},
		Formula:    "V = πr²h/3; S = πr(r + ℓ), ℓ = √(r² + h²)",
		evaluate: func(in map[string]float64) []Metric {
			r, h := in["radius"], in["height"]
			return []Metric{
				{MetricVolume, math.Pi * r * r * h / 3},
				{MetricSurfaceArea, math.Pi * r * (r + math.Hypot(r, h))},
			}
		},
	},
	{
		Name:     "rectangular_prism",
		Title:    "Rectangular prism",
		Category: Category3D,
		Dimensions: []Dimension{
			dim("length", "Length"),
			dim("width", "Width"),
			dim("height", "Height"),
		},
		Formula: "V = l·w·h; S = 2(lw + lh + wh)",
		evaluate: func(in map[string]float64) []Metric {
			l, w, h := in["length"], in["width"], in["height"]
			return []Metric{
				{MetricVolume, l * w * h},
				{MetricSurfaceArea, 2 * (l*w + l*h + w*h)},
			}
		},
	},
	{
		Name:       "square_pyramid",
		Title:      "Square pyramid",
		Category:   Category3D,
		Dimensions: []Dimension{dim("base_side", "Base side"), dim("height", "Height")},
		Formula:    "V = b²h/3; S = b² + 2bℓ, ℓ = √((b/2)² + h²)",
		evaluate: func(in map[string]float64) []Metric {
			b, h := in["base_side"], in["height"]
			return []Metric{
				{MetricVolume, b * b * h / 3},
				{MetricSurfaceArea, b*b + 2*b*math.Hypot(b/2, h)},
			}
		},
	},
	{
		Name:       "triangular_pyramid",
		Title:      "Triangular pyramid",
		Category:   Category3D,
		Dimensions: []Dimension{dim("base_edge", "Base edge"), dim("height", "Height")},
		Formula:    "V = (√3/4)a²·h/3; S = (√3/4)a² + 3(a·m/2), m = √(h² + (a/(2√3))²)",
		evaluate: func(in map[string]float64) []Metric {
			// Equilateral base; m is the slant height through the apothem.
			a, h := in["base_edge"], in["height"]
			base := math.Sqrt(3) / 4 * a * a
			m := math.Hypot(h, a/(2*math.Sqrt(3)))
			return []Metric{
				{MetricVolume, base * h / 3},
				{MetricSurfaceArea, base + 3*(a*m/2)},
			}
		},
	},
}
