package mcparser

import "github.com/humanapp/mindcraft-lang-sub000/internal/mctile"

// State is the full mutable state of one parser invocation: current index,
// bounds, the node-id counter and the diagnostic accumulator. It is owned
// exclusively by one call and never shared: a struct with pointer-receiver
// methods, generalized from a token stream to a bounded tile-index window.
type State struct {
	tiles []*mctile.TileDef
	from  int
	to    int
	index int

	nextNodeID uint32
	diags      []Diag
}

// NewState builds a parser state bounded to [from, to) over tiles. to < 0
// means "end of tiles".
func NewState(tiles []*mctile.TileDef, from, to int) *State {
	if from < 0 {
		from = 0
	}
	if to < 0 || to > len(tiles) {
		to = len(tiles)
	}
	return &State{tiles: tiles, from: from, to: to, index: from}
}

// Mark is a lightweight backtracking point: index only, no diagnostics
// rollback. Used for definite, non-speculative rewinds.
type Mark struct{ index int }

func (s *State) Mark() Mark { return Mark{index: s.index} }

// ResetTo rewinds to a lightweight mark. Never rewinds past s.from.
func (s *State) ResetTo(m Mark) {
	if m.index < s.from {
		m.index = s.from
	}
	s.index = m.index
}

// Checkpoint is a heavyweight backtracking point that additionally captures
// the diagnostic accumulator length: used when a speculative parse may have
// already emitted diagnostics that must be discarded if the speculation is
// abandoned.
type Checkpoint struct {
	index   int
	diagLen int
}

func (s *State) Save() Checkpoint {
	return Checkpoint{index: s.index, diagLen: len(s.diags)}
}

func (s *State) Restore(cp Checkpoint) {
	if cp.index < s.from {
		cp.index = s.from
	}
	s.index = cp.index
	s.diags = s.diags[:cp.diagLen]
}

// Index returns the current tile index.
func (s *State) Index() int { return s.index }

// AtEnd reports whether the cursor has reached the upper bound.
func (s *State) AtEnd() bool { return s.index >= s.to }

// Current returns the tile at the current index, if any.
func (s *State) Current() (*mctile.TileDef, bool) {
	return s.PeekAt(0)
}

// PeekAt returns the tile offset tiles ahead of the current index, if
// within bounds.
func (s *State) PeekAt(offset int) (*mctile.TileDef, bool) {
	i := s.index + offset
	if i < s.from || i >= s.to {
		return nil, false
	}
	return s.tiles[i], true
}

// Advance consumes and returns the current tile.
func (s *State) Advance() (*mctile.TileDef, bool) {
	t, ok := s.Current()
	if ok {
		s.index++
	}
	return t, ok
}

// AllocNodeID returns the next monotonically-increasing node id.
func (s *State) AllocNodeID() uint32 {
	id := s.nextNodeID
	s.nextNodeID++
	return id
}

// AddDiag appends a diagnostic to the accumulator.
func (s *State) AddDiag(d Diag) {
	s.diags = append(s.diags, d)
}

// Diags returns every diagnostic recorded so far.
func (s *State) Diags() []Diag {
	return s.diags
}

// SpanFrom builds a span from a start index to the current index.
func (s *State) SpanFrom(start int) mctile.Span {
	return mctile.Span{From: start, To: s.index}
}
