package pong

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Player identifies a side of the table.
type Player int

const (
	PlayerNone Player = iota
	Player1           // Left paddle, W/S
	Player2           // Right paddle, Up/Down
)

// String returns a human-readable name for the player.
func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "None"
	}
}

// Keys returns the up and down keys assigned to the player.
func (p Player) Keys() (up, down core.Key) {
	switch p {
	case Player1:
		return core.KeyW, core.KeyS
	case Player2:
		return core.KeyUp, core.KeyDown
	default:
		return core.KeyNone, core.KeyNone
	}
}

// Phase is the coarse match lifecycle state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// StepResult describes what happened during one tick.
type StepResult struct {
	State      core.GameState
	WallBounce bool
	Hits       []Player // Paddles the ball bounced off, left first
	Scorer     Player   // PlayerNone unless a point was scored
	GameOver   bool     // The tick ended the match
	Restarted  bool     // The tick restarted a finished match
}

// Match owns the paddles, the ball and the score of one game.
type Match struct {
	cfg config.PongConfig
	rng *rand.Rand

	id         string
	left       Paddle
	right      Paddle
	ball       *Ball
	leftScore  int
	rightScore int
	phase      Phase
	winner     Player
	tick       uint64
}

// NewMatch creates a match in the Playing phase with the fresh-game layout.
func NewMatch(cfg config.PongConfig, rng *rand.Rand) *Match {
	m := &Match{cfg: cfg, rng: rng}
	m.Restart()
	return m
}

// Restart resets scores and phase and re-creates the paddles and the ball at
// their starting positions.
func (m *Match) Restart() {
	m.leftScore = 0
	m.rightScore = 0
	m.phase = PhasePlaying
	m.winner = PlayerNone
	m.tick = 0
	m.id = newMatchID(m.rng)
	m.layout()
}

// layout places both paddles centered vertically and serves a new ball to the left.
func (m *Match) layout() {
	w, h := m.cfg.Window.Width, m.cfg.Window.Height
	pc := m.cfg.Paddles
	y := h/2 - pc.Height/2

	m.left = Paddle{X: pc.Offset, Y: y, Width: pc.Width, Height: pc.Height, Speed: pc.Speed}
	m.right = Paddle{X: w - pc.Offset - pc.Width, Y: y, Width: pc.Width, Height: pc.Height, Speed: pc.Speed}

	x, by := m.serveOrigin()
	m.ball = NewBall(x, by, BallSpec{
		Size:         m.cfg.Ball.Size,
		BaseSpeed:    m.cfg.Ball.BaseSpeed,
		MaxSpeed:     m.cfg.Ball.MaxSpeed,
		Acceleration: m.cfg.Ball.Acceleration,
	}, m.rng, -1)
}

// serveOrigin returns the ball's serve position, centered with integer division.
func (m *Match) serveOrigin() (float64, float64) {
	size := m.cfg.Ball.Size
	return float64(m.cfg.Window.Width/2 - size/2), float64(m.cfg.Window.Height/2 - size/2)
}

// Step runs one tick. While the match is over only the restart key is polled.
func (m *Match) Step(in core.InputState) StepResult {
	if m.phase == PhaseGameOver {
		if in.TakeTyped(core.KeyR) {
			m.Restart()
			return StepResult{State: m.State(), Restarted: true}
		}
		return StepResult{State: m.State()}
	}

	m.tick++
	var res StepResult

	m.applyInput(&m.left, Player1, in)
	m.applyInput(&m.right, Player2, in)

	h := m.cfg.Window.Height
	m.left.ClampToBounds(0, h)
	m.right.ClampToBounds(0, h)

	m.ball.Advance()
	res.WallBounce = resolveWall(m.ball, h)

	// Both paddles are checked every tick, left first.
	if resolvePaddle(m.ball, &m.left, Player1, m.cfg.Gameplay.Spin) {
		res.Hits = append(res.Hits, Player1)
	}
	if resolvePaddle(m.ball, &m.right, Player2, m.cfg.Gameplay.Spin) {
		res.Hits = append(res.Hits, Player2)
	}

	res.Scorer = m.resolveScoring()
	if res.Scorer != PlayerNone {
		res.GameOver = m.checkWin(res.Scorer)
	}

	res.State = m.State()
	return res
}

// applyInput moves a paddle by the player's held keys.
func (m *Match) applyInput(p *Paddle, player Player, in core.InputState) {
	up, down := player.Keys()
	if in.Held(up) {
		p.MoveUp()
	}
	if in.Held(down) {
		p.MoveDown()
	}
}

// resolveScoring awards a point when the ball has fully left the table and
// serves a new rally. It returns the scorer, or PlayerNone.
func (m *Match) resolveScoring() Player {
	var scorer Player
	switch {
	case m.ball.X < -float64(m.ball.Size()):
		m.rightScore++
		scorer = Player2
	case m.ball.X > float64(m.cfg.Window.Width):
		m.leftScore++
		scorer = Player1
	default:
		return PlayerNone
	}

	x, y := m.serveOrigin()
	m.ball.ResetForRally(x, y, m.serveDirection(scorer))
	return scorer
}

// serveDirection returns the horizontal direction of the serve after scorer won
// a point: +1 is toward Player 2 on the right.
func (m *Match) serveDirection(scorer Player) int {
	toward := scorer
	if m.cfg.Gameplay.ServeToward == config.ServeTowardConceder {
		toward = scorer.Opponent()
	}
	if toward == Player2 {
		return 1
	}
	return -1
}

// checkWin ends the match if scorer reached the winning score.
func (m *Match) checkWin(scorer Player) bool {
	score := m.leftScore
	if scorer == Player2 {
		score = m.rightScore
	}
	if score < m.cfg.Gameplay.WinningScore {
		return false
	}
	m.phase = PhaseGameOver
	m.winner = scorer
	return true
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return PlayerNone
	}
}

// ID returns the match identifier, renewed on every restart.
func (m *Match) ID() string {
	return m.id
}

// Phase returns the current phase.
func (m *Match) Phase() Phase {
	return m.phase
}

// Scores returns the left and right scores.
func (m *Match) Scores() (left, right int) {
	return m.leftScore, m.rightScore
}

// Winner returns the winning player, PlayerNone while playing.
func (m *Match) Winner() Player {
	return m.winner
}

// WinnerLabel returns the game-over headline, empty while playing.
func (m *Match) WinnerLabel() string {
	if m.phase != PhaseGameOver {
		return ""
	}
	return m.winner.String() + " Wins!"
}

// Tick returns the number of ticks played in this match.
func (m *Match) Tick() uint64 {
	return m.tick
}

// Ball returns a copy of the ball.
func (m *Match) Ball() Ball {
	return *m.ball
}

// Paddle returns a copy of the player's paddle.
func (m *Match) Paddle(p Player) Paddle {
	if p == Player2 {
		return m.right
	}
	return m.left
}

// Config returns the configuration the match was built with.
func (m *Match) Config() config.PongConfig {
	return m.cfg
}

// State returns the platform-facing summary of the match.
func (m *Match) State() core.GameState {
	return core.GameState{
		LeftScore:  m.leftScore,
		RightScore: m.rightScore,
		GameOver:   m.phase == PhaseGameOver,
		Winner:     m.WinnerLabel(),
		Tick:       m.tick,
	}
}

// newMatchID draws a UUID from the match RNG so seeded runs get stable IDs.
func newMatchID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
