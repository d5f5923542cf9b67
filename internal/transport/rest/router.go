package rest

import (
	"net/http"
	"os"

	"emojitrivia/internal/config"
	"emojitrivia/internal/transport/ws"

	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router.
type Container struct {
	Session LeaderboardSource
	WSHub   *ws.Hub
	Config  *config.Config
}

// NewRouter creates the HTTP router: the WebSocket endpoint, the small REST
// surface, and the static client assets.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	wsHandler := ws.NewHandler(c.WSHub)

	r.Use(corsMiddleware)

	r.HandleFunc("/ws", wsHandler.ServeWS).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/leaderboard", leaderboardHandler(c.Session)).Methods("GET", "OPTIONS")
	v1.HandleFunc("/join/qr", joinQRHandler(c.Config.PublicURL)).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Browser client, if assets are deployed alongside the server.
	if info, err := os.Stat(c.Config.StaticDir); err == nil && info.IsDir() {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(c.Config.StaticDir)))
	}

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
