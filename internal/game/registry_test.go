package game

import (
	"strings"
	"testing"
)

func TestRegisterRejectsCaseInsensitiveDuplicate(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Register("c1", "bob"); err != nil {
		t.Fatalf("first claim failed: %v", err)
	}
	if _, err := r.Register("c2", "Bob"); err != ErrNicknameTaken {
		t.Fatalf("second claim error = %v, want ErrNicknameTaken", err)
	}
	if r.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", r.Count())
	}
}

func TestRegisterRejectsShortNicknames(t *testing.T) {
	r := NewRegistry()
	for _, nick := range []string{"", " ", "x", "  x  "} {
		if _, err := r.Register("c1", nick); err != ErrNicknameTooShort {
			t.Errorf("Register(%q) error = %v, want ErrNicknameTooShort", nick, err)
		}
	}
}

func TestRegisterTruncatesBeforeValidating(t *testing.T) {
	r := NewRegistry()
	p, err := r.Register("c1", "abcdefghijklmnopqrstuvwxyz")
	if err != nil {
		t.Fatal(err)
	}
	if p.Nickname != "abcdefghijklmno" {
		t.Fatalf("Nickname = %q, want 15-char truncation", p.Nickname)
	}

	// Truncation to all-whitespace must still fail the length check.
	long := strings.Repeat(" ", 15) + "realname"
	if _, err := r.Register("c2", long); err != ErrNicknameTooShort {
		t.Fatalf("Register(padded) error = %v, want ErrNicknameTooShort", err)
	}
}

func TestRegisterRejectsRename(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Register("c1", "ana"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Register("c1", "other"); err != ErrNicknameSet {
		t.Fatalf("rename error = %v, want ErrNicknameSet", err)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	r := NewRegistry()
	r.Register("c1", "ana")

	if p := r.Remove("c1"); p == nil || p.Nickname != "ana" {
		t.Fatalf("Remove returned %v, want ana", p)
	}
	if p := r.Remove("c1"); p != nil {
		t.Fatalf("second Remove returned %v, want nil", p)
	}
	if r.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", r.Count())
	}
}

func TestLeaderboardStableTies(t *testing.T) {
	r := NewRegistry()
	r.Register("c1", "ana")
	r.Register("c2", "ben")
	r.Register("c3", "cam")
	r.RecordAnswer("c3", true, 100)

	for i := 0; i < 5; i++ {
		lb := r.Leaderboard()
		got := []string{lb[0].Nickname, lb[1].Nickname, lb[2].Nickname}
		if got[0] != "cam" || got[1] != "ana" || got[2] != "ben" {
			t.Fatalf("Leaderboard order = %v, want [cam ana ben]", got)
		}
	}
}

func TestResetRoundClearsRoundFieldsOnly(t *testing.T) {
	r := NewRegistry()
	r.Register("c1", "ana")
	r.RecordAnswer("c1", true, 150)

	p := r.Get("c1")
	if !p.Answered || !p.CorrectThisRound || p.PointsThisRound != 150 || p.Score != 150 {
		t.Fatalf("unexpected state after RecordAnswer: %+v", p)
	}

	r.ResetRound()
	if p.Answered || p.CorrectThisRound || p.PointsThisRound != 0 {
		t.Fatalf("round fields not cleared: %+v", p)
	}
	if p.Score != 150 {
		t.Fatalf("Score = %d after ResetRound, want 150", p.Score)
	}
}

func TestRoundScorersSortedByGainDescending(t *testing.T) {
	r := NewRegistry()
	r.Register("c1", "slow")
	r.Register("c2", "fast")
	r.Register("c3", "wrong")
	r.RecordAnswer("c1", true, 120)
	r.RecordAnswer("c2", true, 195)
	r.RecordAnswer("c3", false, 0)

	scores := r.RoundScorers()
	if len(scores) != 2 {
		t.Fatalf("len(RoundScorers) = %d, want 2", len(scores))
	}
	if scores[0].Nickname != "fast" || scores[0].ScoreGained != 195 {
		t.Fatalf("scores[0] = %+v, want fast/195", scores[0])
	}
	if scores[1].Nickname != "slow" || scores[1].ScoreGained != 120 {
		t.Fatalf("scores[1] = %+v, want slow/120", scores[1])
	}
}

func TestPlayersPreservesJoinOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("c1", "ana")
	r.Register("c2", "ben")
	r.Register("c3", "cam")
	r.Remove("c2")

	players := r.Players()
	if len(players) != 2 || players[0].Nickname != "ana" || players[1].Nickname != "cam" {
		t.Fatalf("Players() = %v, want [ana cam]", players)
	}
}
