package chrooma

// State is the mutable ball grid for one search node. The back-pointer,
// the direction taken to reach it, and the step depth live in the
// generic search.Node instead of here; State holds only the fields
// that participate in canonical equality.
type State struct {
	Balls []uint8
}

// InitialState returns the ball layout the board was loaded with.
func (b *Board) InitialState() *State {
	balls := make([]uint8, len(b.initialBalls))
	copy(balls, b.initialBalls)
	return &State{Balls: balls}
}

func (s *State) Clone() *State {
	balls := make([]uint8, len(s.Balls))
	copy(balls, s.Balls)
	return &State{Balls: balls}
}

// CanonicalBytes is the exact byte image used for search deduplication:
// the ball grid, nothing else.
func (s *State) CanonicalBytes() []byte {
	return s.Balls
}

func (s *State) BallCount() int {
	n := 0
	for _, v := range s.Balls {
		if v != 0 {
			n++
		}
	}
	return n
}
