package rest

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"emojitrivia/internal/model"

	qrcode "github.com/skip2/go-qrcode"
)

// LeaderboardSource is the read-only view of the session the REST layer
// needs.
type LeaderboardSource interface {
	Leaderboard(ctx context.Context) ([]model.PlayerSummary, error)
}

// leaderboardHandler serves GET /v1/leaderboard from the live session.
func leaderboardHandler(src LeaderboardSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lb, err := src.Leaderboard(r.Context())
		if err != nil {
			http.Error(w, "leaderboard unavailable", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"leaderboard": lb,
		})
	}
}

// joinQRHandler serves GET /v1/join/qr: a PNG QR code of the public join URL
// so phones can hop into the game.
func joinQRHandler(publicURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		png, err := qrcode.Encode(publicURL, qrcode.Medium, 256)
		if err != nil {
			log.Printf("QR encode failed: %v", err)
			http.Error(w, "failed to generate QR code", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	}
}
