package model

// Phase is the session's game state.
type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhaseQuestion Phase = "question"
	PhaseReveal   Phase = "reveal"
)

// StatePayload is the body of initialState and updateState broadcasts.
// PlayerID is set only on the initialState unicast to a fresh connection.
type StatePayload struct {
	Players         []PlayerSummary `json:"players"`
	Leaderboard     []PlayerSummary `json:"leaderboard"`
	GameState       Phase           `json:"gameState"`
	CurrentQuestion *QuestionView   `json:"currentQuestion"`
	PlayerCount     int             `json:"playerCount"`
	PlayerID        string          `json:"playerId,omitempty"`
}

// RevealPayload is broadcast when a round's answer is revealed. Scores is
// sorted by scoreGained descending.
type RevealPayload struct {
	CorrectAnswer string       `json:"correctAnswer"`
	Scores        []RoundScore `json:"scores"`
}

// AnswerResultPayload is unicast to a player after an accepted submission.
type AnswerResultPayload struct {
	Correct     bool `json:"correct"`
	ScoreGained int  `json:"scoreGained"`
}

// NicknamePayload confirms a successful nickname claim.
type NicknamePayload struct {
	Nickname string `json:"nickname"`
}

// ChatPayload carries a relayed chat line. IsSelf is set only on the echo
// back to the sender.
type ChatPayload struct {
	Nickname string `json:"nickname"`
	Message  string `json:"message"`
	IsSelf   bool   `json:"isSelf,omitempty"`
}

// ErrorPayload reports a protocol or business-rule rejection to one client.
type ErrorPayload struct {
	Message string `json:"message"`
}
