package platformer

import "fmt"

// Phase is the top-level state of a run.
type Phase int

const (
	PhaseRestart Phase = iota
	PhasePlaying
	PhaseWonEnter
	PhaseWon
	PhaseLostEnter
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseRestart:
		return "Restart"
	case PhasePlaying:
		return "Playing"
	case PhaseWonEnter:
		return "WonEnter"
	case PhaseWon:
		return "Won"
	case PhaseLostEnter:
		return "LostEnter"
	case PhaseLost:
		return "Lost"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Over reports whether the run has ended.
func (p Phase) Over() bool {
	return p == PhaseWonEnter || p == PhaseWon || p == PhaseLostEnter || p == PhaseLost
}

// phaseHandler runs one phase and returns the next one. When again is true
// the next phase runs within the same tick.
type phaseHandler func(g *Game) (next Phase, again bool)

var phaseHandlers = map[Phase]phaseHandler{
	PhaseRestart:   (*Game).restart,
	PhasePlaying:   (*Game).play,
	PhaseWonEnter:  (*Game).wonEnter,
	PhaseWon:       (*Game).waitForRestart,
	PhaseLostEnter: (*Game).lostEnter,
	PhaseLost:      (*Game).waitForRestart,
}

// dispatch runs the current phase, following same-tick transitions.
func (g *Game) dispatch() {
	for {
		handler, ok := phaseHandlers[g.phase]
		if !ok {
			panic(fmt.Sprintf("platformer: no handler for %v", g.phase))
		}

		next, again := handler(g)
		if next != g.phase {
			g.logger.Debug("phase", "from", g.phase, "to", next, "tick", g.tick)
		}
		g.phase = next

		if !again {
			return
		}
	}
}

func (g *Game) restart() (Phase, bool) {
	g.player.Reset()
	for i := range g.coins {
		g.coins[i].Reset()
	}
	g.collected = 0
	g.seconds = 0
	g.clearJump()
	g.started = g.clock.Now()
	g.anim.Reset(len(g.coins))
	return PhasePlaying, false
}

func (g *Game) play() (Phase, bool) {
	p := g.player

	p.Advance(g.movement(), g.lvl.Bounds)
	p.ResolvePlatforms(g.platforms)
	res := p.Interact(g.coins, g.hazards, g.goals, g.collected)
	p.faceFromSpeed()

	for _, i := range res.Picked {
		g.collected++
		g.logger.Info("coin collected", "coin", i, "collected", g.collected, "total", len(g.coins))
	}
	if res.Hurt {
		g.logger.Info("player hurt", "lives", p.Lives)
	}

	g.focus = p.Center()
	g.seconds = g.elapsed()

	switch res.Outcome {
	case OutcomeDied:
		g.logger.Info("player died", "seconds", g.seconds)
		return PhaseLostEnter, false
	case OutcomeWon:
		g.logger.Info("level won", "level", g.lvl.ID, "seconds", g.seconds)
		return PhaseWonEnter, false
	}

	if g.cfg.Rules.FallDeath && p.Y > g.lvl.Bounds.Bottom+g.cfg.Rules.FallMargin {
		p.Kill()
		g.logger.Info("player fell out of the level", "y", p.Y)
		return PhaseLostEnter, false
	}

	return PhasePlaying, false
}

func (g *Game) wonEnter() (Phase, bool) {
	g.clearJump()
	return PhaseWon, true
}

func (g *Game) lostEnter() (Phase, bool) {
	g.clearJump()
	return PhaseLost, true
}

// waitForRestart holds an end screen until a fresh jump press.
func (g *Game) waitForRestart() (Phase, bool) {
	if g.jumpPressed() {
		return PhaseRestart, false
	}
	return g.phase, false
}
