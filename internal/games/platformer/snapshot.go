package platformer

import "math"

// Snapshot is a flat copy of the simulation state, used for determinism
// checks and debug logging. Uses primitive types only.
type Snapshot struct {
	Tick      uint64
	Phase     string
	X, Y      float64
	SpeedX    float64
	SpeedY    float64
	Facing    int
	Lives     int
	Collected int
	Seconds   float64

	// Player flags: jumping, hurt, recovering, dead, won (1 = set)
	Flags             [5]int
	RecoveryRemaining int
	JumpBoost         int

	// One CoinState per coin, in level order
	CoinData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	p := g.player

	coinData := make([]int, len(g.coins))
	for i, c := range g.coins {
		coinData[i] = int(c.State)
	}

	var flags [5]int
	for i, set := range []bool{p.Jumping, p.Hurt, p.Recovering, p.Dead, p.Won} {
		if set {
			flags[i] = 1
		}
	}

	return Snapshot{
		Tick:              g.tick,
		Phase:             g.phase.String(),
		X:                 p.X,
		Y:                 p.Y,
		SpeedX:            p.SpeedX,
		SpeedY:            p.SpeedY,
		Facing:            int(p.Facing),
		Lives:             p.Lives,
		Collected:         g.collected,
		Seconds:           g.seconds,
		Flags:             flags,
		RecoveryRemaining: p.RecoveryRemaining,
		JumpBoost:         p.JumpBoostRemaining,
		CoinData:          coinData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.Phase {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	for _, f := range []float64{snap.X, snap.Y, snap.SpeedX, snap.SpeedY, snap.Seconds} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + uint64(snap.Facing)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Collected)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RecoveryRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.JumpBoost)         //#nosec G115 -- hash computation

	for _, v := range snap.Flags {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.CoinData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
