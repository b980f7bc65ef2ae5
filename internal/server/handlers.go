package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/etheris-rpg/etheris/internal/domain"
	"github.com/etheris-rpg/etheris/internal/logger"
)

const (
	defaultRankingLimit = 10
	maxRankingLimit     = 50

	// voteRewardItem is granted on top of the refill for each vote.
	voteRewardItem = "gate_key"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type voteRequest struct {
	User string `json:"user"`
}

type voteResponse struct {
	Status     string `json:"status"`
	ItemReward string `json:"item_reward"`
}

type rankingEntry struct {
	Rank       int    `json:"rank"`
	Name       string `json:"name"`
	UserHandle string `json:"user_handle"`
	Orbs       int64  `json:"orbs,omitempty"`
	PowerLevel int64  `json:"power_level,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Error("readiness check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, healthResponse{
				Status:  "unavailable",
				Message: "database connection failed",
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// handleVote is the vote-site callback: the voter's character is refilled
// and handed one reward item.
func (s *Server) handleVote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.User == "" {
		writeJSON(w, http.StatusBadRequest, healthResponse{Status: "error", Message: "invalid request body"})
		return
	}

	ctx := r.Context()
	ch, err := s.characters.GetByUser(ctx, req.User)
	if err != nil {
		if errors.Is(err, domain.ErrCharacterNotFound) {
			writeJSON(w, http.StatusNotFound, healthResponse{Status: "error", Message: "character not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, healthResponse{Status: "error", Message: "lookup failed"})
		return
	}

	if err := s.characters.Refill(ctx, ch); err != nil && !errors.Is(err, domain.ErrCharacterDead) {
		writeJSON(w, http.StatusInternalServerError, healthResponse{Status: "error", Message: "refill failed"})
		return
	}

	ch.AddItem(voteRewardItem, 1)
	if err := s.characters.Save(ctx, ch); err != nil {
		writeJSON(w, http.StatusInternalServerError, healthResponse{Status: "error", Message: "save failed"})
		return
	}

	logger.FromContext(ctx).Info("vote reward granted", "user", req.User)
	writeJSON(w, http.StatusOK, voteResponse{Status: "ok", ItemReward: voteRewardItem})
}

func rankingLimit(r *http.Request) int {
	limit := defaultRankingLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxRankingLimit {
		limit = maxRankingLimit
	}
	return limit
}

func (s *Server) handleOrbsRanking(w http.ResponseWriter, r *http.Request) {
	chars, err := s.characters.TopByOrbs(r.Context(), rankingLimit(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, healthResponse{Status: "error", Message: "ranking failed"})
		return
	}

	entries := make([]rankingEntry, 0, len(chars))
	for i, ch := range chars {
		entries = append(entries, rankingEntry{
			Rank:       i + 1,
			Name:       ch.Name,
			UserHandle: ch.UserHandle,
			Orbs:       ch.Orbs,
		})
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handlePowerLevelRanking(w http.ResponseWriter, r *http.Request) {
	chars, err := s.characters.TopByPowerLevel(r.Context(), rankingLimit(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, healthResponse{Status: "error", Message: "ranking failed"})
		return
	}

	entries := make([]rankingEntry, 0, len(chars))
	for i, ch := range chars {
		entries = append(entries, rankingEntry{
			Rank:       i + 1,
			Name:       ch.Name,
			UserHandle: ch.UserHandle,
			PowerLevel: ch.FighterData(0).PowerLevel(),
		})
	}
	writeJSON(w, http.StatusOK, entries)
}
