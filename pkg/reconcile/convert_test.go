package reconcile

import (
	"testing"

	"github.com/madmikeross/graphengine/pkg/catalog"

	"github.com/stretchr/testify/assert"
)

func TestToSystem_DefaultsAbsentOptionalFields(t *testing.T) {
	detail := &catalog.SystemDetail{
		SystemID:       30000142,
		SecurityStatus: 0.9,
	}
	sys := toSystem(detail)

	assert.Equal(t, int64(30000142), sys.SystemID)
	assert.Equal(t, "undefined", sys.Name)
	assert.Equal(t, int64(-1), sys.ConstellationID)
	assert.Equal(t, int64(-1), sys.StarID)
	assert.Equal(t, "undefined", sys.SecurityClass)
	assert.Empty(t, sys.Stargates)
	assert.Empty(t, sys.Planets)
}

func TestToSystem_CarriesPresentOptionalFields(t *testing.T) {
	name := "Jita"
	constellationID := 20000020
	starID := 40000001
	securityClass := "B"
	detail := &catalog.SystemDetail{
		SystemID:        30000142,
		Name:            &name,
		ConstellationID: &constellationID,
		StarID:          &starID,
		SecurityClass:   &securityClass,
		Stargates:       []int{50000056, 50000057},
		Planets:         []catalog.Planet{{PlanetID: 40000002}},
	}
	sys := toSystem(detail)

	assert.Equal(t, "Jita", sys.Name)
	assert.Equal(t, int64(20000020), sys.ConstellationID)
	assert.Equal(t, int64(40000001), sys.StarID)
	assert.Equal(t, "B", sys.SecurityClass)
	assert.Equal(t, []int64{50000056, 50000057}, sys.Stargates)
	assert.Equal(t, []int64{40000002}, sys.Planets)
}

func TestToStargate_CarriesDestination(t *testing.T) {
	detail := &catalog.StargateDetail{
		StargateID: 50000056,
		SystemID:   30000142,
		Name:       "Stargate (Perimeter)",
		TypeID:     16,
		Destination: catalog.Destination{
			StargateID: 50000057,
			SystemID:   30000144,
		},
	}
	sg := toStargate(detail)

	assert.Equal(t, int64(50000056), sg.StargateID)
	assert.Equal(t, int64(30000142), sg.SystemID)
	assert.Equal(t, int64(30000144), sg.DestinationSystemID)
	assert.Equal(t, int64(50000057), sg.DestinationStargateID)
}
