package transmission

import (
	"encoding/binary"
)

// State is the mutable per-search-node record. Parent/move/depth live
// in the generic search.Node instead of here.
type State struct {
	n int

	Amounts      []int   // amounts[i]
	Left         []int   // left[i]
	Connected    [][]int // connected[i][j], edge weight
	ColorSwapped []int8  // -1, 0, +1 tri-state per SwapperTransmitter
}

// NewInitialState seeds amounts/left from each element's initial Amount;
// connected starts empty and colorSwapped starts unset.
func NewInitialState(lvl *Level) *State {
	n := len(lvl.Elements)
	s := &State{
		n:            n,
		Amounts:      make([]int, n),
		Left:         make([]int, n),
		Connected:    make([][]int, n),
		ColorSwapped: make([]int8, n),
	}
	for i := range s.Connected {
		s.Connected[i] = make([]int, n)
	}
	for i, e := range lvl.Elements {
		s.Amounts[i] = e.Amount
		s.Left[i] = e.Amount
	}
	return s
}

func (s *State) Clone() *State {
	c := &State{
		n:            s.n,
		Amounts:      append([]int(nil), s.Amounts...),
		Left:         append([]int(nil), s.Left...),
		Connected:    make([][]int, s.n),
		ColorSwapped: append([]int8(nil), s.ColorSwapped...),
	}
	for i := range s.Connected {
		c.Connected[i] = append([]int(nil), s.Connected[i]...)
	}
	return c
}

// CanonicalBytes packs amounts, left, connected and colorSwapped into a
// fixed-length byte image, the search harness's equality and hash key.
func (s *State) CanonicalBytes() []byte {
	buf := make([]byte, 0, s.n*(8+8+1)+s.n*s.n*8)
	var tmp [8]byte
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(tmp[:], uint64(int64(v)))
		buf = append(buf, tmp[:]...)
	}
	for _, v := range s.Amounts {
		putInt(v)
	}
	for _, v := range s.Left {
		putInt(v)
	}
	for _, row := range s.Connected {
		for _, v := range row {
			putInt(v)
		}
	}
	for _, v := range s.ColorSwapped {
		buf = append(buf, byte(v))
	}
	return buf
}
