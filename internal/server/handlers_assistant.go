package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/rohan/learnfast/internal/assistant"
	"github.com/rohan/learnfast/internal/server/middleware"
	"github.com/rohan/learnfast/internal/types"
)

// handleAssistantChat answers one study-assistant message, optionally
// grounded in one of the user's schedules.
func (s *Server) handleAssistantChat(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if s.assistant == nil {
		unavailable := &ErrAssistantUnavailable{}
		s.errorResponse(w, HTTPStatus(unavailable), unavailable.Error())
		return
	}

	var req types.AssistantChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var sched *assistant.ScheduleContext
	if req.ScheduleID != "" {
		scheduleID, err := uuid.Parse(req.ScheduleID)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid schedule ID")
			return
		}

		row, err := s.store.GetSchedule(r.Context(), scheduleID, userID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to load schedule")
			return
		}
		if row == nil {
			notFound := &ErrScheduleNotFound{ScheduleID: scheduleID}
			s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
			return
		}

		var doc types.PlanDoc
		if err := json.Unmarshal(row.Plan, &doc); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Stored plan is corrupted")
			return
		}
		completion, err := s.store.GetCompletionState(r.Context(), scheduleID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to load progress")
			return
		}

		sched = &assistant.ScheduleContext{
			Title:      row.Title,
			Plan:       &doc,
			Completion: completion,
		}
	}

	reply, err := s.assistant.Chat(r.Context(), req.Message, sched)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Assistant request failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.AssistantChatResponse{Reply: reply})
}
