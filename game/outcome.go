package game

import "fmt"

// Outcome is the result of checking a state for terminal conditions.
type Outcome int

const (
	Continue Outcome = iota
	WinOne
	WinTwo
	Tie
	// Interrupted marks a state the engine's invariants rule out.
	// Observing it means turn resolution and the terminal check disagree;
	// it is never a playable result.
	Interrupted
)

// Terminal reports whether the match is over.
func (o Outcome) Terminal() bool {
	return o == WinOne || o == WinTwo || o == Tie
}

// Winner returns the winning player ID (1 or 2), or 0 when there is none.
func (o Outcome) Winner() int {
	switch o {
	case WinOne:
		return 1
	case WinTwo:
		return 2
	}
	return 0
}

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case WinOne:
		return "player one wins"
	case WinTwo:
		return "player two wins"
	case Tie:
		return "tie"
	case Interrupted:
		return "interrupted"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}
