package graphstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalRisk_ConcreteScenarios(t *testing.T) {
	assert.Equal(t, 0.1, CalculateTotalRisk(0, 0, 0.1))
	assert.Equal(t, 25.1, CalculateTotalRisk(5, 0, 0.1))
	assert.Equal(t, 0.1, CalculateTotalRisk(0, 100, 0.1))
	assert.Equal(t, 0.6, CalculateTotalRisk(10, 200, 0.1))
}

func TestCalculateTotalRisk_NoJumpsCarriesSquareUndivided(t *testing.T) {
	assert.Equal(t, float64(36)+0.1, CalculateTotalRisk(6, 0, 0.1))
}

func TestCalculateTotalRisk_JumpsDividesTheSquare(t *testing.T) {
	assert.InDelta(t, float64(100)/50.0+0.2, CalculateTotalRisk(10, 50, 0.2), 1e-9)
}

func TestCalculateTotalRisk_MonotoneInKills(t *testing.T) {
	baseline := 0.05
	jumps := int64(10)
	prev := CalculateTotalRisk(0, jumps, baseline)
	for k := int64(1); k <= 20; k++ {
		next := CalculateTotalRisk(k, jumps, baseline)
		assert.GreaterOrEqual(t, next, prev)
		prev = next
	}
}

func TestCalculateTotalRisk_MonotoneInJumpsWhenKillsPositive(t *testing.T) {
	baseline := 0.05
	kills := int64(7)
	prev := CalculateTotalRisk(kills, 1, baseline)
	for j := int64(2); j <= 50; j++ {
		next := CalculateTotalRisk(kills, j, baseline)
		assert.LessOrEqual(t, next, prev)
		prev = next
	}
}
