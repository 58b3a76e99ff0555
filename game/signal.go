package game

import "fmt"

// Signal is the outcome of evaluating one player move.
type Signal int

const (
	Continue  Signal = iota // No collision and no finish; or the round is locked.
	WallTouch               // The player touched a wall. The round is now locked.
	Finish                  // The player's center reached the finish. The round is now locked.
)

var signalNames = map[Signal]string{
	Continue:  "continue",
	WallTouch: "wall_touch",
	Finish:    "finish",
}

func (s Signal) String() string {
	if name, ok := signalNames[s]; ok {
		return name
	}
	return fmt.Sprintf("signal(%d)", int(s))
}

// MarshalText encodes the signal by name.
func (s Signal) MarshalText() ([]byte, error) {
	if _, ok := signalNames[s]; !ok {
		return nil, fmt.Errorf("unknown signal %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a signal name.
func (s *Signal) UnmarshalText(text []byte) error {
	for sig, name := range signalNames {
		if name == string(text) {
			*s = sig
			return nil
		}
	}
	return fmt.Errorf("unknown signal %q", text)
}

// State is the state of a round.
type State int

const (
	Active   State = iota // Moves are evaluated.
	WallHit               // Locked after a wall touch.
	Finished              // Locked after reaching the finish, or forced by the host.
)

var stateNames = map[State]string{
	Active:   "active",
	WallHit:  "wall_hit",
	Finished: "finished",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	if _, ok := stateNames[s]; !ok {
		return nil, fmt.Errorf("unknown state %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name.
func (s *State) UnmarshalText(text []byte) error {
	for st, name := range stateNames {
		if name == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown state %q", text)
}

// Locked reports whether further moves are inert.
func (s State) Locked() bool {
	return s != Active
}
