package core

// Params fixes everything about a session except the hazard count.
// Durations are in ticks.
type Params struct {
	Grid           Grid
	ItemCount      int
	HazardRecovery int
	ItemFound      int
	Victory        VictoryParams
}

// VictoryParams shapes the victory animation. Positions and speeds are in
// grid cells; an effect spawned "at" a cell starts from its centre.
type VictoryParams struct {
	AngleStep       float64 // radians added per tick
	InitialBurst    int     // particles spawned when the run is won
	RespawnBatch    int     // particles per periodic batch
	RespawnInterval int     // ticks between batches
	MaxParticles    int     // hard cap on live particles
	Gravity         float64 // added to VY every tick
	MinSpeed        float64
	MaxSpeed        float64
	MinDecay        float64 // life lost per tick
	MaxDecay        float64
}

// DefaultParams returns the classic 15x15 board with five pieces.
func DefaultParams() Params {
	return Params{
		Grid:           Grid{Cols: 15, Rows: 15, Start: C(7, 7)},
		ItemCount:      5,
		HazardRecovery: 75,
		ItemFound:      120,
		Victory: VictoryParams{
			AngleStep:       0.03,
			InitialBurst:    40,
			RespawnBatch:    8,
			RespawnInterval: 30,
			MaxParticles:    240,
			Gravity:         0.0015,
			MinSpeed:        0.025,
			MaxSpeed:        0.1125,
			MinDecay:        0.008,
			MaxDecay:        0.022,
		},
	}
}
