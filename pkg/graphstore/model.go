package graphstore

// System is a node representing a star system. Stargates and Planets hold
// only the child ids; full Stargate records live under their own label.
type System struct {
	SystemID        int64
	Name            string
	ConstellationID int64
	StarID          int64
	X, Y, Z         float64
	SecurityStatus  float64
	SecurityClass   string
	Stargates       []int64
	Planets         []int64
	Kills           int64
	Jumps           int64
}

// Stargate is a node representing a permanent jump portal; it implies a
// directed JUMP edge from its parent system to its destination system.
type Stargate struct {
	StargateID            int64
	SystemID              int64
	DestinationSystemID   int64
	DestinationStargateID int64
	Name                  string
	X, Y, Z               float64
	TypeID                int64
}
