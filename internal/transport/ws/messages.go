package ws

import (
	"encoding/json"
	"errors"
	"fmt"

	"emojitrivia/internal/game"
)

// MessageType defines the type of a WebSocket message.
type MessageType string

// Inbound message types.
const (
	MsgSetNickname  MessageType = "setNickname"
	MsgSubmitAnswer MessageType = "submitAnswer"
	MsgChatMessage  MessageType = "chatMessage"
)

// Message is the WebSocket envelope format.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

var errMissingField = errors.New("missing required field")

type setNicknamePayload struct {
	Nickname *string `json:"nickname"`
}

type submitAnswerPayload struct {
	Answer *string `json:"answer"`
}

type chatMessagePayload struct {
	Message *string `json:"message"`
}

// decodeInbound validates one raw frame and converts it into a typed game
// event. The session core never sees a malformed or unknown message.
func decodeInbound(data []byte) (game.Inbound, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("invalid message: %w", err)
	}

	switch msg.Type {
	case MsgSetNickname:
		var p setNicknamePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return nil, fmt.Errorf("invalid %s payload: %w", msg.Type, err)
		}
		if p.Nickname == nil {
			return nil, fmt.Errorf("%s: %w: nickname", msg.Type, errMissingField)
		}
		return game.SetNickname{Nickname: *p.Nickname}, nil

	case MsgSubmitAnswer:
		var p submitAnswerPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return nil, fmt.Errorf("invalid %s payload: %w", msg.Type, err)
		}
		if p.Answer == nil {
			return nil, fmt.Errorf("%s: %w: answer", msg.Type, errMissingField)
		}
		return game.SubmitAnswer{Answer: *p.Answer}, nil

	case MsgChatMessage:
		var p chatMessagePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return nil, fmt.Errorf("invalid %s payload: %w", msg.Type, err)
		}
		if p.Message == nil {
			return nil, fmt.Errorf("%s: %w: message", msg.Type, errMissingField)
		}
		return game.ChatMessage{Message: *p.Message}, nil

	default:
		return nil, fmt.Errorf("unknown message type %q", msg.Type)
	}
}
