package game

// Inbound is the closed set of typed client events the connection layer may
// hand to the session. Payload shape is validated at the transport boundary;
// the session only ever sees these variants.
type Inbound interface {
	isInbound()
}

// SetNickname claims a nickname for the sending connection.
type SetNickname struct {
	Nickname string
}

// SubmitAnswer is a guess for the current question.
type SubmitAnswer struct {
	Answer string
}

// ChatMessage is a chat line to relay to every client.
type ChatMessage struct {
	Message string
}

func (SetNickname) isInbound()  {}
func (SubmitAnswer) isInbound() {}
func (ChatMessage) isInbound()  {}
