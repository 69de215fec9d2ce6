package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter mounts the three endpoints. Every route accepts POST and bare
// OPTIONS; anything else gets a 405 with an Allow header.
func NewRouter(s *RadarServer) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/check", s.CheckPlayers).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/api/last-game-players", s.LastGamePlayers).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/api/radar", s.RadarCheck).Methods(http.MethodPost, http.MethodOptions)
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", "OPTIONS, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	})
	return router
}
