package game

import (
	"errors"
	"sort"
	"strings"
	"time"

	"emojitrivia/internal/model"
)

const (
	minNicknameLen = 2
	maxNicknameLen = 15
)

// Nickname claim rejections, reported to the offending client as error
// events.
var (
	ErrNicknameTooShort = errors.New("nickname must be at least 2 characters")
	ErrNicknameTaken    = errors.New("nickname already taken")
	ErrNicknameSet      = errors.New("nickname already set")
)

// Registry maps connection ids to player records. It enforces nickname
// uniqueness and preserves join order so leaderboard ties stay stable.
// It is not safe for concurrent use; the game session is its only caller.
type Registry struct {
	players map[string]*model.Player
	order   []string // connection ids in join order
}

func NewRegistry() *Registry {
	return &Registry{players: make(map[string]*model.Player)}
}

// Register claims a nickname for a connection. The raw nickname is truncated
// to 15 characters and trimmed before validation; claims under 2 characters,
// case-insensitive collisions, and repeat claims from the same connection
// are rejected.
func (r *Registry) Register(connID, nickname string) (*model.Player, error) {
	if _, ok := r.players[connID]; ok {
		return nil, ErrNicknameSet
	}

	if runes := []rune(nickname); len(runes) > maxNicknameLen {
		nickname = string(runes[:maxNicknameLen])
	}
	nickname = strings.TrimSpace(nickname)
	if len([]rune(nickname)) < minNicknameLen {
		return nil, ErrNicknameTooShort
	}

	lower := strings.ToLower(nickname)
	for _, p := range r.players {
		if strings.ToLower(p.Nickname) == lower {
			return nil, ErrNicknameTaken
		}
	}

	p := &model.Player{
		ID:       connID,
		Nickname: nickname,
		JoinedAt: time.Now(),
	}
	r.players[connID] = p
	r.order = append(r.order, connID)
	return p, nil
}

// Get returns the player for a connection, or nil if none is registered.
func (r *Registry) Get(connID string) *model.Player {
	return r.players[connID]
}

// Remove deletes a connection's player and returns it. Removing an
// unregistered id is a no-op returning nil.
func (r *Registry) Remove(connID string) *model.Player {
	p, ok := r.players[connID]
	if !ok {
		return nil
	}
	delete(r.players, connID)
	for i, id := range r.order {
		if id == connID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return p
}

// RecordAnswer marks a player's round result. Rejecting duplicate answers is
// the session's job; this overwrite is unconditional.
func (r *Registry) RecordAnswer(connID string, correct bool, points int) {
	p, ok := r.players[connID]
	if !ok {
		return
	}
	p.Answered = true
	p.CorrectThisRound = correct
	p.PointsThisRound = points
	p.Score += points
}

// ResetRound clears every player's per-round fields. Called exactly once per
// question-phase entry.
func (r *Registry) ResetRound() {
	for _, p := range r.players {
		p.Answered = false
		p.CorrectThisRound = false
		p.PointsThisRound = 0
	}
}

// Count reports the number of registered players.
func (r *Registry) Count() int {
	return len(r.players)
}

// Players returns summaries in join order.
func (r *Registry) Players() []model.PlayerSummary {
	out := make([]model.PlayerSummary, 0, len(r.order))
	for _, id := range r.order {
		p := r.players[id]
		out = append(out, model.PlayerSummary{Nickname: p.Nickname, Score: p.Score})
	}
	return out
}

// Leaderboard returns summaries sorted by score descending. The sort is
// stable over join order so ties never reshuffle between calls.
func (r *Registry) Leaderboard() []model.PlayerSummary {
	out := r.Players()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// RoundScorers returns this round's correct answerers sorted by points
// gained descending, join order breaking ties.
func (r *Registry) RoundScorers() []model.RoundScore {
	out := make([]model.RoundScore, 0)
	for _, id := range r.order {
		p := r.players[id]
		if p.CorrectThisRound {
			out = append(out, model.RoundScore{Nickname: p.Nickname, ScoreGained: p.PointsThisRound})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScoreGained > out[j].ScoreGained
	})
	return out
}
