package game

import "context"

// Sender is the outbound half of the connection layer (avoids import cycle
// with transport/ws, which implements it).
type Sender interface {
	SendTo(connID string, msgType string, payload interface{})
	Broadcast(msgType string, payload interface{})
	BroadcastExcept(connID string, msgType string, payload interface{})
}

// ScoreSink mirrors live scores into an external read model (the Redis
// leaderboard cache). The session nil-checks it and treats failures as
// log-only; the in-memory registry stays authoritative.
type ScoreSink interface {
	UpdateScore(ctx context.Context, nickname string, score int) error
	RemovePlayer(ctx context.Context, nickname string) error
	Clear(ctx context.Context) error
}
