package game

import "fmt"

// Action is the move a player commits to for one turn. The duel knows
// exactly two moves: swing, or wait for the other side to swing.
type Action int

const (
	Attack Action = iota
	Counter
)

func (a Action) String() string {
	switch a {
	case Attack:
		return "attack"
	case Counter:
		return "counter"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction reads an action from its configuration spelling.
func ParseAction(s string) (Action, error) {
	switch s {
	case "attack":
		return Attack, nil
	case "counter":
		return Counter, nil
	}
	return Attack, fmt.Errorf("unknown action %q", s)
}
