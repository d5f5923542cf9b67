package ws

import (
	"testing"

	"emojitrivia/internal/game"
)

func TestDecodeInbound(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    game.Inbound
		wantErr bool
	}{
		{
			name: "setNickname",
			data: `{"type":"setNickname","payload":{"nickname":"Ana"}}`,
			want: game.SetNickname{Nickname: "Ana"},
		},
		{
			name: "submitAnswer",
			data: `{"type":"submitAnswer","payload":{"answer":"the lion king"}}`,
			want: game.SubmitAnswer{Answer: "the lion king"},
		},
		{
			name: "chatMessage",
			data: `{"type":"chatMessage","payload":{"message":"hi"}}`,
			want: game.ChatMessage{Message: "hi"},
		},
		{
			name:    "invalid json",
			data:    `{"type":`,
			wantErr: true,
		},
		{
			name:    "unknown type",
			data:    `{"type":"teleport","payload":{}}`,
			wantErr: true,
		},
		{
			name:    "missing required field",
			data:    `{"type":"setNickname","payload":{}}`,
			wantErr: true,
		},
		{
			name:    "wrong payload shape",
			data:    `{"type":"submitAnswer","payload":"just a string"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeInbound([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("decodeInbound(%s) = %v, want error", tt.data, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeInbound(%s) error: %v", tt.data, err)
			}
			if got != tt.want {
				t.Fatalf("decodeInbound(%s) = %#v, want %#v", tt.data, got, tt.want)
			}
		})
	}
}

func TestDecodeInboundEmptyStringsAreValid(t *testing.T) {
	// An empty nickname is present-but-invalid: a business-rule rejection for
	// the session, not a protocol violation.
	got, err := decodeInbound([]byte(`{"type":"setNickname","payload":{"nickname":""}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (game.SetNickname{Nickname: ""}) {
		t.Fatalf("got %#v", got)
	}
}
