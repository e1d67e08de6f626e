package platformer

// ResolvePlatforms pushes the player out of platforms after Advance.
//
// Every check is a single point probe. Walls are probed at the middle of
// the leading side. Floors and ceilings are probed at two points inset by a
// fifth of the width, so the player does not stand on a platform with only
// the corner of its box.
func (p *Player) ResolvePlatforms(platforms []Platform) {
	midY := p.Y + p.H/2

	switch {
	case p.SpeedX > 0:
		for i := range platforms {
			if platforms[i].Hit(p.X+p.W, midY, DirRight) {
				p.SpeedX = 0
				p.X = platforms[i].Box.X - p.W - 1
			}
		}
	case p.SpeedX < 0:
		for i := range platforms {
			if platforms[i].Hit(p.X, midY, DirLeft) {
				p.SpeedX = 0
				p.X = platforms[i].Box.Right() + 1
			}
		}
	}

	innerLeft := p.X + p.W/5
	innerRight := p.X + p.W - p.W/5

	if p.Jumping {
		if p.SpeedY >= 0 {
			for i := range platforms {
				if p.standsOn(platforms[i], innerLeft, innerRight) {
					p.land()
					p.Y = platforms[i].Box.Y - p.H
				}
			}
			return
		}

		for i := range platforms {
			if platforms[i].Hit(innerLeft, p.Y, DirUp) || platforms[i].Hit(innerRight, p.Y, DirUp) {
				p.SpeedY = 0
				p.Y = platforms[i].Box.Bottom()
			}
		}
		return
	}

	// Standing: follow the ground, and fall when none is left.
	// Every supporting platform re-snaps, the last one wins.
	supported := false
	for i := range platforms {
		if p.standsOn(platforms[i], innerLeft, innerRight) {
			p.Y = platforms[i].Box.Y - p.H
			supported = true
		}
	}
	if !supported {
		p.fall()
	}
}

// standsOn probes below the feet. The bottom edge is read on every call
// because an earlier platform in the same pass may have moved the player.
func (p *Player) standsOn(pl Platform, innerLeft, innerRight float64) bool {
	bottom := p.Y + p.H
	return pl.Hit(innerLeft, bottom, DirDown) || pl.Hit(innerRight, bottom, DirDown)
}
