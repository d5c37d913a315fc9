// Package web exposes the match service as a JSON HTTP API. The
// handler owns no game logic: it decodes requests, maps service and
// engine errors to status codes, and serves per-viewer views.
package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"teamcoup/internal/engine"
	"teamcoup/internal/services/match"
)

// Config holds configuration for the web handler
type Config struct {
	MatchService match.Service
}

// Handler serves the HTTP API
type Handler struct {
	matchService match.Service
}

// New creates a new web handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.MatchService == nil {
		return nil, errors.New("match service cannot be nil")
	}

	return &Handler{
		matchService: cfg.MatchService,
	}, nil
}

// RegisterRoutes wires the API routes into the provided mux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /", h.handleHealth)
	mux.HandleFunc("GET /api/games", h.handleListGames)
	mux.HandleFunc("POST /api/create_game", h.handleCreateGame)
	mux.HandleFunc("POST /api/join_game", h.handleJoinGame)
	mux.HandleFunc("POST /api/start_game", h.handleStartGame)
	mux.HandleFunc("POST /api/state", h.handleState)
	mux.HandleFunc("POST /api/action", h.handleAction)
	mux.HandleFunc("POST /api/block", h.handleBlock)
	mux.HandleFunc("POST /api/challenge", h.handleChallenge)
	mux.HandleFunc("POST /api/no_challenge", h.handleNoChallenge)
	mux.HandleFunc("POST /api/no_block", h.handleNoBlock)
	mux.HandleFunc("POST /api/finish_exchange", h.handleFinishExchange)
	mux.HandleFunc("POST /api/choose_loss", h.handleChooseLoss)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Message: "Team Coup backend running",
	})
}

func (h *Handler) handleListGames(w http.ResponseWriter, r *http.Request) {
	out, err := h.matchService.ListOpenGames(r.Context(), &match.ListOpenGamesInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	games := make([]gameSummary, 0, len(out.Games))
	for _, g := range out.Games {
		games = append(games, gameSummary{
			GameID:     g.GameID,
			Mode:       string(g.Mode),
			NumPlayers: g.NumPlayers,
		})
	}
	writeJSON(w, http.StatusOK, listGamesResponse{Games: games})
}

func (h *Handler) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := h.matchService.CreateGame(r.Context(), &match.CreateGameInput{
		Mode: req.Mode,
		Name: req.Name,
		Team: req.Team,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, createGameResponse{
		GameID:      out.GameID,
		PlayerToken: out.PlayerToken,
	})
}

func (h *Handler) handleJoinGame(w http.ResponseWriter, r *http.Request) {
	var req joinGameRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := h.matchService.JoinGame(r.Context(), &match.JoinGameInput{
		GameID: req.GameID,
		Name:   req.Name,
		Team:   req.Team,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, joinGameResponse{
		PlayerToken: out.PlayerToken,
	})
}

func (h *Handler) handleStartGame(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !decode(w, r, &req) {
		return
	}
	h.respondState(w)(h.matchService.StartGame(r.Context(), &match.StartGameInput{
		Token: req.PlayerToken,
	}))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !decode(w, r, &req) {
		return
	}
	h.respondState(w)(h.matchService.GetState(r.Context(), &match.GetStateInput{
		Token: req.PlayerToken,
	}))
}

func (h *Handler) handleAction(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if !decode(w, r, &req) {
		return
	}
	h.respondState(w)(h.matchService.DeclareAction(r.Context(), &match.DeclareActionInput{
		Token:    req.PlayerToken,
		Action:   req.Action,
		TargetID: req.TargetID,
	}))
}

func (h *Handler) handleBlock(w http.ResponseWriter, r *http.Request) {
	var req blockRequest
	if !decode(w, r, &req) {
		return
	}
	h.respondState(w)(h.matchService.DeclareBlock(r.Context(), &match.DeclareBlockInput{
		Token:     req.PlayerToken,
		BlockType: req.BlockType,
	}))
}

func (h *Handler) handleChallenge(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !decode(w, r, &req) {
		return
	}
	h.respondState(w)(h.matchService.Challenge(r.Context(), &match.ChallengeInput{
		Token: req.PlayerToken,
	}))
}

func (h *Handler) handleNoChallenge(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !decode(w, r, &req) {
		return
	}
	h.respondState(w)(h.matchService.PassChallenge(r.Context(), &match.PassChallengeInput{
		Token: req.PlayerToken,
	}))
}

func (h *Handler) handleNoBlock(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !decode(w, r, &req) {
		return
	}
	h.respondState(w)(h.matchService.PassBlock(r.Context(), &match.PassBlockInput{
		Token: req.PlayerToken,
	}))
}

func (h *Handler) handleFinishExchange(w http.ResponseWriter, r *http.Request) {
	var req finishExchangeRequest
	if !decode(w, r, &req) {
		return
	}
	h.respondState(w)(h.matchService.FinishExchange(r.Context(), &match.FinishExchangeInput{
		Token:       req.PlayerToken,
		KeepIndices: req.KeepIndices,
	}))
}

func (h *Handler) handleChooseLoss(w http.ResponseWriter, r *http.Request) {
	var req chooseLossRequest
	if !decode(w, r, &req) {
		return
	}
	h.respondState(w)(h.matchService.ChooseLoss(r.Context(), &match.ChooseLossInput{
		Token:     req.PlayerToken,
		CardIndex: req.CardIndex,
	}))
}

// respondState writes either the view or the mapped error
func (h *Handler) respondState(w http.ResponseWriter) func(*match.StateOutput, error) {
	return func(out *match.StateOutput, err error) {
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out.View)
	}
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return false
	}
	return true
}

// writeError maps the error taxonomy to HTTP statuses: rule
// violations and validation errors are the caller's fault (400/401/
// 404), anything else is an internal failure.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, match.ErrInvalidToken):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Detail: err.Error()})
	case errors.Is(err, match.ErrGameNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Detail: err.Error()})
	case errors.Is(err, match.ErrInvalidMode), engine.IsIllegalMove(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: err.Error()})
	default:
		log.Printf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

// CORS allows any origin; the API is token-authenticated and meant to
// be reachable from a separately hosted frontend.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
