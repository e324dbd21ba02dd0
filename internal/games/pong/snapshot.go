package pong

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is the complete simulation state of a match in primitive fields.
// It is what `pong sim` prints and what determinism checks compare.
type Snapshot struct {
	MatchID    string  `yaml:"match_id"`
	Tick       uint64  `yaml:"tick"`
	Phase      string  `yaml:"phase"`
	BallX      float64 `yaml:"ball_x"`
	BallY      float64 `yaml:"ball_y"`
	BallVX     float64 `yaml:"ball_vx"`
	BallVY     float64 `yaml:"ball_vy"`
	LeftY      int     `yaml:"left_paddle_y"`
	RightY     int     `yaml:"right_paddle_y"`
	LeftScore  int     `yaml:"left_score"`
	RightScore int     `yaml:"right_score"`
	Winner     string  `yaml:"winner,omitempty"`
}

// Snapshot captures the current match state.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		MatchID:    m.id,
		Tick:       m.tick,
		Phase:      m.phase.String(),
		BallX:      m.ball.X,
		BallY:      m.ball.Y,
		BallVX:     m.ball.VX,
		BallVY:     m.ball.VY,
		LeftY:      m.left.Y,
		RightY:     m.right.Y,
		LeftScore:  m.leftScore,
		RightScore: m.rightScore,
	}
	if m.phase == PhaseGameOver {
		s.Winner = m.winner.String()
	}
	return s
}

// Hash returns an FNV-1a hash of the simulation fields. Floats are hashed by
// their exact bits, so two runs agree only if they are bit-identical.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:]) //nolint:errcheck // hash.Hash never returns an error
	}

	h.Write([]byte(s.MatchID)) //nolint:errcheck // hash.Hash never returns an error
	h.Write([]byte(s.Phase))   //nolint:errcheck // hash.Hash never returns an error
	put(s.Tick)
	put(math.Float64bits(s.BallX))
	put(math.Float64bits(s.BallY))
	put(math.Float64bits(s.BallVX))
	put(math.Float64bits(s.BallVY))
	put(uint64(int64(s.LeftY)))      //nolint:gosec // bit pattern only
	put(uint64(int64(s.RightY)))     //nolint:gosec // bit pattern only
	put(uint64(int64(s.LeftScore)))  //nolint:gosec // bit pattern only
	put(uint64(int64(s.RightScore))) //nolint:gosec // bit pattern only
	return h.Sum64()
}
