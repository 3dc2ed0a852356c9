package cellbloom

import "fmt"

// State is the scene's current behavior. Each state owns exactly one update
// and one draw routine, selected by the behaviors table.
type State uint8

const (
	StateIdle  State = iota // particles drift around their sampled origins
	StateMorph              // particles ease toward line or text targets
	StateHeart              // particles pulse inside a heart outline
	StateLife               // the automaton runs; particles are hidden
	stateCount
)

// String returns the lower-case name of the state.
func (s State) String() string {
	if s < stateCount {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

var stateNames = [stateCount]string{
	StateIdle:  "idle",
	StateMorph: "morph",
	StateHeart: "heart",
	StateLife:  "life",
}

// behavior pairs a state's per-tick update with its render routine.
type behavior struct {
	update func(s *Scene)
	draw   func(s *Scene, f *frameBatch)
}

// behaviors is indexed by State; every state must have both routines.
var behaviors = [stateCount]behavior{
	StateIdle: {
		update: (*Scene).updateIdle,
		draw:   (*Scene).drawIdle,
	},
	StateMorph: {
		update: (*Scene).updateMorph,
		draw:   (*Scene).drawParticles,
	},
	StateHeart: {
		update: (*Scene).updateHeart,
		draw:   (*Scene).drawParticles,
	},
	StateLife: {
		update: (*Scene).updateLife,
		draw:   (*Scene).drawLife,
	},
}
