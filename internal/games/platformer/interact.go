package platformer

// Outcome is how an interaction pass ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDied
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeDied:
		return "died"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// Interaction reports what happened during one Interact call.
type Interaction struct {
	Picked  []int // Indexes of coins collected this tick
	Hurt    bool
	Outcome Outcome
}

// Interact checks the player's centre against coins, hazards and goals, in
// that order. collected is the number of coins taken before this tick.
//
// Only the first hazard and the first goal touched are considered. Death
// ends the pass immediately, so a dying player cannot also reach the goal.
func (p *Player) Interact(coins []Coin, hazards []Hazard, goals []Goal, collected int) Interaction {
	var res Interaction
	c := p.Center()

	for i := range coins {
		if coins[i].Touches(c.X, c.Y) && coins[i].Collect() {
			res.Picked = append(res.Picked, i)
		}
	}
	collected += len(res.Picked)

	for i := range hazards {
		if !hazards[i].Hit(c.X, c.Y) {
			continue
		}
		if !p.Invulnerable() {
			res.Hurt = true
			if p.getHurt() {
				res.Outcome = OutcomeDied
				return res
			}
		}
		break
	}

	for i := range goals {
		if !goals[i].Hit(c.X, c.Y) {
			continue
		}
		if collected == len(coins) {
			p.Won = true
			res.Outcome = OutcomeWon
		}
		break
	}

	if p.Recovering {
		p.keepRecovering()
	}
	return res
}
