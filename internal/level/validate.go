package level

import "fmt"

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that a level can be played:
//   - bounds are non-empty
//   - every rectangle has a positive size
//   - the spawn point is inside the horizontal bounds
//   - there is at least one goal
func Validate(l Level) error {
	if l.ID == "" {
		return ValidationError{Code: "MISSING_ID", Message: "level has no id"}
	}

	if l.Bounds.Right <= l.Bounds.Left || l.Bounds.Bottom < l.Bounds.Top {
		return ValidationError{
			Code:    "BAD_BOUNDS",
			Message: fmt.Sprintf("bounds %+v are empty", l.Bounds),
		}
	}

	if l.Spawn.X < l.Bounds.Left || l.Spawn.X > l.Bounds.Right {
		return ValidationError{
			Code:    "SPAWN_OUT_OF_BOUNDS",
			Message: fmt.Sprintf("spawn x=%g outside [%g, %g]", l.Spawn.X, l.Bounds.Left, l.Bounds.Right),
		}
	}

	for i, p := range l.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return ValidationError{
				Code:    "BAD_SIZE",
				Message: fmt.Sprintf("platform %d has size %gx%g", i, p.W, p.H),
			}
		}
	}

	groups := []struct {
		name  string
		items []ItemDef
	}{
		{"coin", l.Coins},
		{"hazard", l.Hazards},
		{"goal", l.Goals},
	}
	for _, g := range groups {
		for i, it := range g.items {
			if it.W <= 0 || it.H <= 0 {
				return ValidationError{
					Code:    "BAD_SIZE",
					Message: fmt.Sprintf("%s %d has size %gx%g", g.name, i, it.W, it.H),
				}
			}
		}
	}

	if len(l.Goals) == 0 {
		return ValidationError{Code: "NO_GOAL", Message: "level has no goal, it cannot be won"}
	}

	return nil
}
