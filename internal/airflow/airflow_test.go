package airflow_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hvaceng/ductloss/internal/airflow"
)

func TestCircleArea(t *testing.T) {
	// A 12 in diameter duct: π·6² in², 0.7854 ft².
	area := airflow.CircleArea(12)
	assert.InDelta(t, math.Pi*36, area, 1e-12)
	assert.InDelta(t, 0.7853981634, airflow.SquareFeet(area), 1e-9)
}

func TestRectArea(t *testing.T) {
	assert.Equal(t, 288.0, airflow.RectArea(12, 24))
	assert.Equal(t, 2.0, airflow.SquareFeet(airflow.RectArea(12, 24)))
}

func TestVelocity(t *testing.T) {
	area := airflow.SquareFeet(airflow.CircleArea(12))
	v := airflow.Velocity(1000, area)
	assert.InDelta(t, 1273.2395, v, 1e-3)
}

func TestVelocityPressure(t *testing.T) {
	// (4005/4005)² = 1 in w.c. at the reference velocity.
	assert.InDelta(t, 1.0, airflow.VelocityPressure(4005), 1e-12)
	assert.InDelta(t, 0.0623441, airflow.VelocityPressure(1000), 1e-6)
	assert.Equal(t, 0.0, airflow.VelocityPressure(0))
}

func TestReynoldsNumber(t *testing.T) {
	assert.InDelta(t, 8.5*12*1000, airflow.ReynoldsNumber(12, 1000), 1e-9)
}
