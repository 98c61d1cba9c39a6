package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heropath-app/heropath/internal/domain"
)

// ─── State & Journey ─────────────────────────────────────────────────────────

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	state, err := s.engine.State()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleJourney(w http.ResponseWriter, r *http.Request) {
	j, err := s.engine.Journey(time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, j)
}

func (s *Server) handleStage(w http.ResponseWriter, r *http.Request) {
	status, err := s.engine.Stage(time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// ─── Activities ──────────────────────────────────────────────────────────────

func (s *Server) handleActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"activities": s.engine.Activities(),
	})
}

type logActivityRequest struct {
	Label string `json:"label"`
}

func (s *Server) handleLogActivity(w http.ResponseWriter, r *http.Request) {
	var req logActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Label) == "" {
		writeError(w, http.StatusBadRequest, "label is required")
		return
	}

	result, err := s.engine.LogActivity(req.Label, time.Now())
	if errors.Is(err, domain.ErrUnknownActivity) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleRecentActivity(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	entries, err := s.engine.RecentActivity(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entries": entries,
	})
}

// ─── History ─────────────────────────────────────────────────────────────────

func (s *Server) handleWeeklyHistory(w http.ResponseWriter, r *http.Request) {
	state, err := s.engine.State()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"weeks": state.WeeklyHistory,
	})
}

func (s *Server) handleMonthlyHistory(w http.ResponseWriter, r *http.Request) {
	state, err := s.engine.State()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"months": state.MonthlyHistory,
	})
}

// ─── Rollover (two-phase) ────────────────────────────────────────────────────
// GET /api/rollover/pending proposes; the UI confirms with POST
// /api/rollover/apply, or defers by never calling apply — the proposal then
// re-surfaces on the next check.

func (s *Server) handleRolloverPending(w http.ResponseWriter, r *http.Request) {
	pending, err := s.engine.Sync(time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"pending": pending,
	})
}

func (s *Server) handleRolloverApply(w http.ResponseWriter, r *http.Request) {
	applied, err := s.engine.ApplyRollovers(time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"applied": applied,
	})
}

// ─── Reward ──────────────────────────────────────────────────────────────────

func (s *Server) handleGetReward(w http.ResponseWriter, r *http.Request) {
	state, err := s.engine.State()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"reward": state.Reward,
	})
}

type setRewardRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleSetReward(w http.ResponseWriter, r *http.Request) {
	var req setRewardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.engine.SetReward(req.Text); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"reward": req.Text,
	})
}

// ─── Notifications ───────────────────────────────────────────────────────────

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	notifs, err := s.engine.Notifier().Pending(20)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": notifs,
	})
}

func (s *Server) handleNotificationShown(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	err = s.engine.Notifier().MarkShown(id)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "notification not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
