package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSphere(t *testing.T) {
	res := mustCompute(t, "sphere", map[string]float64{"radius": 2})
	assert.InDelta(t, 33.5103, metric(t, res, MetricVolume), 1e-4)
	assert.InDelta(t, 50.2655, metric(t, res, MetricSurfaceArea), 1e-4)
}

func TestCube(t *testing.T) {
	res := mustCompute(t, "cube", map[string]float64{"side": 3})
	assert.Equal(t, 27.0, metric(t, res, MetricVolume))
	assert.Equal(t, 54.0, metric(t, res, MetricSurfaceArea))
}

func TestCylinder(t *testing.T) {
	res := mustCompute(t, "cylinder", map[string]float64{"radius": 2, "height": 5})
	assert.InDelta(t, 20*math.Pi, metric(t, res, MetricVolume), 1e-9)
	assert.InDelta(t, 28*math.Pi, metric(t, res, MetricSurfaceArea), 1e-9)
}

func TestCone(t *testing.T) {
	res := mustCompute(t, "cone", map[string]float64{"radius": 3, "height": 4})
	assert.InDelta(t, 12*math.Pi, metric(t, res, MetricVolume), 1e-9)
	assert.InDelta(t, 24*math.Pi, metric(t, res, MetricSurfaceArea), 1e-9)
}

func TestRectangularPrism(t *testing.T) {
	res := mustCompute(t, "rectangular_prism", map[string]float64{"length": 2, "width": 3, "height": 4})
	assert.Equal(t, 24.0, metric(t, res, MetricVolume))
	assert.Equal(t, 52.0, metric(t, res, MetricSurfaceArea))
}

func TestSquarePyramid(t *testing.T) {
	res := mustCompute(t, "square_pyramid", map[string]float64{"base_side": 6, "height": 4})
	assert.Equal(t, 48.0, metric(t, res, MetricVolume))
	assert.Equal(t, 96.0, metric(t, res, MetricSurfaceArea))
}

func TestTriangularPyramid(t *testing.T) {
	res := mustCompute(t, "triangular_pyramid", map[string]float64{"base_edge": 6, "height": 4})
	assert.InDelta(t, 20.78460969, metric(t, res, MetricVolume), 1e-6)
	assert.InDelta(t, 54.81854777, metric(t, res, MetricSurfaceArea), 1e-6)
}
