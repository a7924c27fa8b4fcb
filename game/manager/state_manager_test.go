package manager

import "testing"

func TestScoreLifecycle(t *testing.T) {
	rs := NewRoundState()
	if rs.Phase() != InGame {
		t.Fatalf("new round phase = %v", rs.Phase())
	}
	if rs.SessionID() == "" {
		t.Error("empty session id")
	}

	for i := 0; i < 3; i++ {
		rs.ScorePoint()
	}
	if rs.Score() != 3 || rs.HighScore() != 3 {
		t.Errorf("score = %d, high = %d, want 3, 3", rs.Score(), rs.HighScore())
	}

	rs.Lose()
	if rs.Phase() != Lost {
		t.Fatalf("phase after Lose = %v", rs.Phase())
	}
	if rs.Rounds() != 1 {
		t.Errorf("rounds = %d, want 1", rs.Rounds())
	}
	// Losing alone does not clear the score; the reset does.
	if rs.Score() != 3 {
		t.Errorf("score cleared on Lose: %d", rs.Score())
	}

	rs.Restart()
	if rs.Phase() != InGame || rs.Score() != 0 {
		t.Errorf("after Restart: phase %v score %d", rs.Phase(), rs.Score())
	}
	if rs.HighScore() != 3 {
		t.Errorf("high score lost on Restart: %d", rs.HighScore())
	}

	// A worse follow-up round leaves the session high score alone.
	rs.ScorePoint()
	if rs.HighScore() != 3 {
		t.Errorf("high score = %d after 1-point round, want 3", rs.HighScore())
	}
}

func TestInvalidTransitionsPanic(t *testing.T) {
	mustPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		f()
	}

	rs := NewRoundState()
	mustPanic("Restart while in-game", rs.Restart)

	rs.Lose()
	mustPanic("Lose while lost", rs.Lose)
	mustPanic("ScorePoint while lost", rs.ScorePoint)
}
