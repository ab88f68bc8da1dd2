package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompute(t *testing.T, shape string, dims map[string]float64) Result {
	t.Helper()
	res, err := Compute(shape, dims)
	require.NoError(t, err)
	return res
}

func metric(t *testing.T, res Result, name string) float64 {
	t.Helper()
	v, ok := res.Metric(name)
	require.True(t, ok, "metric %s missing", name)
	return v
}

func TestCircleMatchesClosedForm(t *testing.T) {
	for _, r := range []float64{0.1, 1, 2.5, 10, 123.456, 1e6} {
		res := mustCompute(t, "circle", map[string]float64{"radius": r})
		assert.InEpsilon(t, math.Pi*r*r, metric(t, res, MetricArea), 1e-9, "radius %g", r)
		assert.InEpsilon(t, 2*math.Pi*r, metric(t, res, MetricPerimeter), 1e-9, "radius %g", r)
	}
}

func TestSquare(t *testing.T) {
	res := mustCompute(t, "square", map[string]float64{"side": 5})
	assert.Equal(t, 25.0, metric(t, res, MetricArea))
	assert.Equal(t, 20.0, metric(t, res, MetricPerimeter))
}

func TestRectangle(t *testing.T) {
	res := mustCompute(t, "rectangle", map[string]float64{"width": 3, "height": 4})
	assert.Equal(t, 12.0, metric(t, res, MetricArea))
	assert.Equal(t, 14.0, metric(t, res, MetricPerimeter))
}

func TestTriangleHeron(t *testing.T) {
	res := mustCompute(t, "triangle", map[string]float64{"side_a": 3, "side_b": 4, "side_c": 5})
	assert.InDelta(t, 6.0, metric(t, res, MetricArea), 1e-12)
	assert.Equal(t, 12.0, metric(t, res, MetricPerimeter))
}

func TestTrianglePerimeterIsExactSum(t *testing.T) {
	cases := [][3]float64{
		{3, 4, 5},
		{2.5, 3.5, 4.5},
		{10, 10, 10},
		{0.3, 0.4, 0.5},
	}
	for _, c := range cases {
		a, b, cc := c[0], c[1], c[2]
		res := mustCompute(t, "triangle", map[string]float64{"side_a": a, "side_b": b, "side_c": cc})
		assert.Equal(t, a+b+cc, metric(t, res, MetricPerimeter), "sides %v", c)
	}
}

func TestRightTriangle(t *testing.T) {
	res := mustCompute(t, "right_triangle", map[string]float64{"base": 3, "height": 4})
	assert.Equal(t, 6.0, metric(t, res, MetricArea))
	assert.Equal(t, 12.0, metric(t, res, MetricPerimeter))
}

func TestParallelogram(t *testing.T) {
	res := mustCompute(t, "parallelogram", map[string]float64{"base": 6, "side": 4, "height": 3})
	assert.Equal(t, 18.0, metric(t, res, MetricArea))
	assert.Equal(t, 20.0, metric(t, res, MetricPerimeter))
}

func TestEllipse(t *testing.T) {
	t.Run("known values", func(t *testing.T) {
		res := mustCompute(t, "ellipse", map[string]float64{"semi_major": 5, "semi_minor": 3})
		assert.InDelta(t, 47.12389, metric(t, res, MetricArea), 1e-4)
		assert.InDelta(t, 25.52700, metric(t, res, MetricPerimeter), 1e-4)
	})

	t.Run("equal axes reduce to a circle", func(t *testing.T) {
		res := mustCompute(t, "ellipse", map[string]float64{"semi_major": 2, "semi_minor": 2})
		assert.InEpsilon(t, math.Pi*4, metric(t, res, MetricArea), 1e-12)
		assert.InEpsilon(t, 4*math.Pi, metric(t, res, MetricPerimeter), 1e-12)
	})
}

func TestRegularPolygon(t *testing.T) {
	res := mustCompute(t, "regular_polygon", map[string]float64{"sides": 6, "side_length": 2})
	assert.InDelta(t, 10.39230485, metric(t, res, MetricArea), 1e-8)
	assert.Equal(t, 12.0, metric(t, res, MetricPerimeter))
}

func TestPentagon(t *testing.T) {
	res := mustCompute(t, "pentagon", map[string]float64{"side": 10})
	assert.InDelta(t, 172.0477401, metric(t, res, MetricArea), 1e-6)
	assert.Equal(t, 50.0, metric(t, res, MetricPerimeter))
}

func TestPentagonMatchesFiveSidedPolygon(t *testing.T) {
	pent := mustCompute(t, "pentagon", map[string]float64{"side": 3.7})
	poly := mustCompute(t, "regular_polygon", map[string]float64{"sides": 5, "side_length": 3.7})
	assert.Equal(t, metric(t, poly, MetricArea), metric(t, pent, MetricArea))
	assert.Equal(t, metric(t, poly, MetricPerimeter), metric(t, pent, MetricPerimeter))
}

func TestRhombus(t *testing.T) {
	res := mustCompute(t, "rhombus", map[string]float64{"diagonal_p": 6, "diagonal_q": 8})
	assert.Equal(t, 24.0, metric(t, res, MetricArea))
	assert.Equal(t, 20.0, metric(t, res, MetricPerimeter))
}
