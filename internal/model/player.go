package model

import "time"

// Player is one named participant in the session. The per-round fields are
// rewritten at every question-phase entry.
type Player struct {
	ID               string    `json:"id"`
	Nickname         string    `json:"nickname"`
	Score            int       `json:"score"`
	Answered         bool      `json:"-"`
	CorrectThisRound bool      `json:"-"`
	PointsThisRound  int       `json:"-"`
	JoinedAt         time.Time `json:"joinedAt"`
}

// PlayerSummary is the public view of a player sent in state broadcasts.
type PlayerSummary struct {
	Nickname string `json:"nickname"`
	Score    int    `json:"score"`
}

// RoundScore is one entry of the reveal payload.
type RoundScore struct {
	Nickname    string `json:"nickname"`
	ScoreGained int    `json:"scoreGained"`
}
