package reconcile

import (
	"github.com/madmikeross/graphengine/pkg/catalog"
	"github.com/madmikeross/graphengine/pkg/graphstore"
)

// toSystem converts a catalog detail response into a graph System,
// defaulting the optional fields the catalog may omit.
func toSystem(detail *catalog.SystemDetail) graphstore.System {
	name := "undefined"
	if detail.Name != nil {
		name = *detail.Name
	}
	constellationID := int64(-1)
	if detail.ConstellationID != nil {
		constellationID = int64(*detail.ConstellationID)
	}
	starID := int64(-1)
	if detail.StarID != nil {
		starID = int64(*detail.StarID)
	}
	securityClass := "undefined"
	if detail.SecurityClass != nil {
		securityClass = *detail.SecurityClass
	}

	stargates := make([]int64, 0, len(detail.Stargates))
	for _, id := range detail.Stargates {
		stargates = append(stargates, int64(id))
	}
	planets := make([]int64, 0, len(detail.Planets))
	for _, p := range detail.Planets {
		planets = append(planets, int64(p.PlanetID))
	}

	return graphstore.System{
		SystemID:        int64(detail.SystemID),
		Name:            name,
		ConstellationID: constellationID,
		StarID:          starID,
		X:               detail.Position.X,
		Y:               detail.Position.Y,
		Z:               detail.Position.Z,
		SecurityStatus:  detail.SecurityStatus,
		SecurityClass:   securityClass,
		Stargates:       stargates,
		Planets:         planets,
	}
}

// toStargate converts a catalog detail response into a graph Stargate.
func toStargate(detail *catalog.StargateDetail) graphstore.Stargate {
	return graphstore.Stargate{
		StargateID:            int64(detail.StargateID),
		SystemID:              int64(detail.SystemID),
		DestinationSystemID:   int64(detail.Destination.SystemID),
		DestinationStargateID: int64(detail.Destination.StargateID),
		Name:                  detail.Name,
		X:                     detail.Position.X,
		Y:                     detail.Position.Y,
		Z:                     detail.Position.Z,
		TypeID:                int64(detail.TypeID),
	}
}
