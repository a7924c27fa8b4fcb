package manager

import (
	"fmt"

	"github.com/google/uuid"
)

// Phase is the round's state-machine value.
type Phase int

const (
	InGame Phase = iota
	Lost
)

func (p Phase) String() string {
	switch p {
	case InGame:
		return "in-game"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// RoundState tracks the current round's phase and score, plus per-session
// stats that survive resets: rounds played and the session high score.
// Nothing here is persisted; a new process is a new session.
type RoundState struct {
	sessionID string
	phase     Phase
	score     int
	rounds    int
	highScore int
}

func NewRoundState() *RoundState {
	return &RoundState{
		sessionID: uuid.New().String(),
		phase:     InGame,
	}
}

func (rs *RoundState) Phase() Phase { return rs.phase }
func (rs *RoundState) Score() int { return rs.score }
func (rs *RoundState) Rounds() int { return rs.rounds }
func (rs *RoundState) HighScore() int { return rs.highScore }
func (rs *RoundState) SessionID() string { return rs.sessionID }

// ScorePoint adds one to the score, once per apple eaten.
func (rs *RoundState) ScorePoint() {
	if rs.phase != InGame {
		panic("manager: scoring outside an active round")
	}
	rs.score++
	if rs.score > rs.highScore {
		rs.highScore = rs.score
	}
}

// Lose ends the round. The phase flag is the only effect; clearing and
// rebuilding the field is the reset sequence's job.
func (rs *RoundState) Lose() {
	if rs.phase != InGame {
		panic("manager: losing a round that is not in play")
	}
	rs.phase = Lost
	rs.rounds++
}

// Restart re-enters play with a zero score. Callers run it last, after the
// field has been cleared and rebuilt.
func (rs *RoundState) Restart() {
	if rs.phase != Lost {
		panic("manager: restarting a round that was not lost")
	}
	rs.score = 0
	rs.phase = InGame
}
