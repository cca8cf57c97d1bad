package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/MohamedREDA-24/AI-interview-agent/internal/model"
	"github.com/MohamedREDA-24/AI-interview-agent/internal/service"
)

type slotResponse struct {
	SlotID        string    `json:"slot_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	FormattedTime string    `json:"formatted_time"`
}

type sessionResponse struct {
	SessionID      string    `json:"session_id"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `json:"candidate_email"`
	CandidatePhone string    `json:"candidate_phone"`
	ScheduledTime  time.Time `json:"scheduled_time"`
	FormattedTime  string    `json:"formatted_time"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	ReminderSent   bool      `json:"reminder_sent"`
	Notes          string    `json:"notes"`
}

func toSlotResponse(slot *model.Slot) slotResponse {
	return slotResponse{
		SlotID:        slot.ID,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
		FormattedTime: slot.FormattedStart(),
	}
}

func toSessionResponse(session *model.Session) sessionResponse {
	return sessionResponse{
		SessionID:      session.ID,
		CandidateName:  session.CandidateName,
		CandidateEmail: session.CandidateEmail,
		CandidatePhone: session.CandidatePhone,
		ScheduledTime:  session.ScheduledTime,
		FormattedTime:  session.FormattedTime(),
		Status:         string(session.Status),
		CreatedAt:      session.CreatedAt,
		ReminderSent:   session.ReminderSent,
		Notes:          session.Notes,
	}
}

func (s *Server) handleListSlots(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 7)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid days parameter")
		return
	}

	slots, err := s.slots.ListAvailableSlots(r.Context(), days)
	if err != nil {
		s.internalError(w, "list slots", err)
		return
	}

	out := make([]slotResponse, 0, len(slots))
	for _, slot := range slots {
		out = append(out, toSlotResponse(slot))
	}

	writeJSON(w, http.StatusOK, map[string]any{"slots": out, "count": len(out)})
}

func (s *Server) handleBookSession(w http.ResponseWriter, r *http.Request) {
	var req service.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sessionID, err := s.booking.BookSession(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlotUnavailable):
			writeError(w, http.StatusConflict, "slot is not available")
		case errors.Is(err, service.ErrNoSlotsAvailable):
			writeError(w, http.StatusConflict, "no available slots found")
		default:
			s.internalError(w, "book session", err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"session_id": sessionID})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	var status *model.SessionStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		st := model.SessionStatus(raw)
		if !model.ValidSessionStatus(st) {
			writeError(w, http.StatusBadRequest, "invalid status filter")
			return
		}
		status = &st
	}

	sessions, err := s.sessions.ListSessions(r.Context(), status)
	if err != nil {
		s.internalError(w, "list sessions", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"sessions": toSessionResponses(sessions)})
}

func (s *Server) handleUpcomingSessions(w http.ResponseWriter, r *http.Request) {
	hours, err := queryInt(r, "hours", 24)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid hours parameter")
		return
	}

	sessions, err := s.sessions.ListUpcomingSessions(r.Context(), hours)
	if err != nil {
		s.internalError(w, "list upcoming sessions", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"sessions": toSessionResponses(sessions)})
}

func (s *Server) handleSessionDetails(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.GetSessionDetails(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		s.internalError(w, "session details", err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

func (s *Server) handleCancelSession(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.sessions.CancelSession, model.SessionStatusCancelled)
}

func (s *Server) handleCompleteSession(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.sessions.CompleteSession, model.SessionStatusCompleted)
}

func (s *Server) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id string) error, to model.SessionStatus) {
	sessionID := chi.URLParam(r, "sessionID")

	if err := op(r.Context(), sessionID); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		s.internalError(w, "session transition", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"session_id": sessionID,
		"status":     string(to),
	})
}

func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	s.logger.Error("Request failed", zap.String("op", op), zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

func toSessionResponses(sessions []*model.Session) []sessionResponse {
	out := make([]sessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, toSessionResponse(session))
	}
	return out
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.New("invalid integer parameter")
	}
	return v, nil
}
