package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/rohan/learnfast/internal/db"
	"github.com/rohan/learnfast/internal/playlist"
	"github.com/rohan/learnfast/internal/schedule"
	"github.com/rohan/learnfast/internal/schemas"
	"github.com/rohan/learnfast/internal/server/middleware"
	"github.com/rohan/learnfast/internal/types"
)

// maxImportSize bounds import request bodies.
const maxImportSize = 4 << 20

// planResponse is the payload returned by preview and detail endpoints.
type planResponse struct {
	ID          uuid.UUID       `json:"id,omitempty"`
	Title       string          `json:"title"`
	PlaylistURL string          `json:"playlist_url"`
	Status      string          `json:"status,omitempty"`
	Plan        *types.PlanDoc  `json:"plan"`
	Completion  map[string]bool `json:"completion,omitempty"`
}

// buildPlan fetches the playlist and generates a fresh plan for the request.
func (s *Server) buildPlan(r *http.Request, req *types.GenerateScheduleRequest) (*playlist.Playlist, *schedule.Plan, error) {
	pacing, err := req.Pacing()
	if err != nil {
		return nil, nil, &ErrValidation{Field: "target_date", Message: err.Error()}
	}

	pl, err := s.source.Playlist(r.Context(), req.PlaylistURL)
	if err != nil {
		return nil, nil, err
	}

	plan, err := schedule.Generate(pl.Items, pacing, nil, nil, s.now())
	if err != nil {
		return nil, nil, err
	}
	return pl, plan, nil
}

// handlePreviewSchedule generates a plan without persisting anything.
func (s *Server) handlePreviewSchedule(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	pl, plan, err := s.buildPlan(r, &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, planResponse{
		Title:       pl.Title,
		PlaylistURL: pl.URL,
		Plan:        types.PlanDocFrom(plan),
	})
}

// handleCreateSchedule generates a plan and persists it for the user.
func (s *Server) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.GenerateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	pl, plan, err := s.buildPlan(r, &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	title := req.Title
	if title == "" {
		title = pl.Title
	}

	doc := types.PlanDocFrom(plan)
	scheduleID, err := s.persistSchedule(r, userID, title, pl.URL, req.Settings(), doc)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, planResponse{
		ID:          scheduleID,
		Title:       title,
		PlaylistURL: pl.URL,
		Status:      db.ScheduleStatusActive,
		Plan:        doc,
	})
}

func (s *Server) persistSchedule(r *http.Request, userID uuid.UUID, title, playlistURL string, settings types.ScheduleSettings, doc *types.PlanDoc) (uuid.UUID, error) {
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	planJSON, err := json.Marshal(doc)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal plan: %w", err)
	}
	return s.store.CreateSchedule(r.Context(), userID, title, playlistURL, settings.ScheduleType, settingsJSON, planJSON)
}

// handleListSchedules returns the user's saved schedules without plan bodies.
func (s *Server) handleListSchedules(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	listings, err := s.store.ListSchedules(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list schedules")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"schedules": listings})
}

// loadSchedule fetches one schedule row for the authenticated user.
func (s *Server) loadSchedule(w http.ResponseWriter, r *http.Request) (uuid.UUID, *planContext, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, nil, false
	}

	scheduleID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid schedule ID")
		return uuid.Nil, nil, false
	}

	row, err := s.store.GetSchedule(r.Context(), scheduleID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load schedule")
		return uuid.Nil, nil, false
	}
	if row == nil {
		notFound := &ErrScheduleNotFound{ScheduleID: scheduleID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return uuid.Nil, nil, false
	}

	var doc types.PlanDoc
	if err := json.Unmarshal(row.Plan, &doc); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Stored plan is corrupted")
		return uuid.Nil, nil, false
	}
	var settings types.ScheduleSettings
	if err := json.Unmarshal(row.Settings, &settings); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Stored settings are corrupted")
		return uuid.Nil, nil, false
	}

	return userID, &planContext{row: row, doc: &doc, settings: settings}, true
}

type planContext struct {
	row      *db.Schedule
	doc      *types.PlanDoc
	settings types.ScheduleSettings
}

// handleGetSchedule returns one schedule with its plan and completion state.
func (s *Server) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	_, pc, ok := s.loadSchedule(w, r)
	if !ok {
		return
	}

	completion, err := s.store.GetCompletionState(r.Context(), pc.row.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load progress")
		return
	}

	s.jsonResponse(w, http.StatusOK, planResponse{
		ID:          pc.row.ID,
		Title:       pc.row.Title,
		PlaylistURL: pc.row.PlaylistURL,
		Status:      pc.row.Status,
		Plan:        pc.doc,
		Completion:  completion,
	})
}

// handleDeleteSchedule removes a schedule and its progress.
func (s *Server) handleDeleteSchedule(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	scheduleID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid schedule ID")
		return
	}

	deleted, err := s.store.DeleteSchedule(r.Context(), scheduleID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete schedule")
		return
	}
	if !deleted {
		notFound := &ErrScheduleNotFound{ScheduleID: scheduleID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleUpdateProgress marks one video complete or incomplete. The update is
// idempotent; repeating it does not change the result.
func (s *Server) handleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	_, pc, ok := s.loadSchedule(w, r)
	if !ok {
		return
	}

	var req types.ProgressUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := pc.doc.ToPlan()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Stored plan is corrupted")
		return
	}
	if !plan.Contains(req.VideoID) {
		unknown := &schedule.ErrUnknownItem{ItemID: req.VideoID}
		s.errorResponse(w, HTTPStatus(unknown), unknown.Error())
		return
	}

	if err := s.store.SetVideoProgress(r.Context(), pc.row.ID, req.VideoID, req.Completed); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update progress")
		return
	}

	completion, err := s.store.GetCompletionState(r.Context(), pc.row.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load progress")
		return
	}

	s.updateScheduleStatus(r, pc, plan, completion)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"completion": completion,
		"completed":  countCompleted(completion),
		"total":      plan.Summary.TotalItems,
	})
}

// updateScheduleStatus flips the schedule between active and completed based
// on whether every scheduled video is done.
func (s *Server) updateScheduleStatus(r *http.Request, pc *planContext, plan *schedule.Plan, completion schedule.CompletionState) {
	status := db.ScheduleStatusActive
	if allCompleted(plan, completion) {
		status = db.ScheduleStatusCompleted
	}
	if status != pc.row.Status {
		if _, err := s.store.UpdateScheduleStatus(r.Context(), pc.row.ID, pc.row.UserID, status); err != nil {
			log.Printf("Failed to update schedule status: %v", err)
		}
	}
}

func allCompleted(plan *schedule.Plan, completion schedule.CompletionState) bool {
	items := plan.Items()
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if !completion[item.ID] {
			return false
		}
	}
	return true
}

func countCompleted(completion schedule.CompletionState) int {
	n := 0
	for _, done := range completion {
		if done {
			n++
		}
	}
	return n
}

// handleRegenerateSchedule refetches the playlist and rebuilds the plan,
// carrying completed work forward so day numbering continues where the user
// left off.
func (s *Server) handleRegenerateSchedule(w http.ResponseWriter, r *http.Request) {
	_, pc, ok := s.loadSchedule(w, r)
	if !ok {
		return
	}

	pacing, err := pc.settings.Pacing()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	pl, err := s.source.Playlist(r.Context(), pc.row.PlaylistURL)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	prior, err := pc.doc.ToPlan()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Stored plan is corrupted")
		return
	}

	completion, err := s.store.GetCompletionState(r.Context(), pc.row.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load progress")
		return
	}

	plan, err := schedule.Generate(pl.Items, pacing, prior, completion, s.now())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	doc := types.PlanDocFrom(plan)
	settingsJSON, err := json.Marshal(pc.settings)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to marshal settings")
		return
	}
	planJSON, err := json.Marshal(doc)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to marshal plan")
		return
	}

	updated, err := s.store.UpdateSchedulePlan(r.Context(), pc.row.ID, pc.row.UserID, settingsJSON, planJSON)
	if err != nil || !updated {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save regenerated plan")
		return
	}

	s.jsonResponse(w, http.StatusOK, planResponse{
		ID:          pc.row.ID,
		Title:       pc.row.Title,
		PlaylistURL: pc.row.PlaylistURL,
		Status:      pc.row.Status,
		Plan:        doc,
		Completion:  completion,
	})
}

// handleAnalytics returns the recent watch-time series for a schedule.
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	_, pc, ok := s.loadSchedule(w, r)
	if !ok {
		return
	}

	windowDays := 7
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days < 1 || days > 90 {
			s.errorResponse(w, http.StatusBadRequest, "days must be between 1 and 90")
			return
		}
		windowDays = days
	}

	plan, err := pc.doc.ToPlan()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Stored plan is corrupted")
		return
	}

	completion, err := s.store.GetCompletionState(r.Context(), pc.row.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load progress")
		return
	}

	reference := s.now()
	series := schedule.RecentWatchTime(plan, completion, windowDays, reference)

	labels := make([]string, windowDays)
	for i := range labels {
		labels[i] = reference.AddDate(0, 0, -(windowDays - 1 - i)).Format("2006-01-02")
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"days":   windowDays,
		"labels": labels,
		"hours":  series,
	})
}

// handleExportSchedule returns a portable document for a schedule.
func (s *Server) handleExportSchedule(w http.ResponseWriter, r *http.Request) {
	_, pc, ok := s.loadSchedule(w, r)
	if !ok {
		return
	}

	completion, err := s.store.GetCompletionState(r.Context(), pc.row.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load progress")
		return
	}
	if completion == nil {
		completion = map[string]bool{}
	}

	doc := types.ExportDocument{
		Version:     types.ExportVersion,
		Title:       pc.row.Title,
		PlaylistURL: pc.row.PlaylistURL,
		Settings:    pc.settings,
		Plan:        *pc.doc,
		Completion:  completion,
		ExportedAt:  s.now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "schedule-"+pc.row.ID.String()+".json"))
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleImportSchedule creates a schedule from a previously exported
// document. The document is schema-validated before anything is stored.
func (s *Server) handleImportSchedule(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := schemas.ValidateExportDocument(body); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var doc types.ExportDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// The schema guarantees shape; ToPlan guarantees the plan is coherent
	plan, err := doc.Plan.ToPlan()
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	scheduleID, err := s.persistSchedule(r, userID, doc.Title, doc.PlaylistURL, doc.Settings, &doc.Plan)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save imported schedule")
		return
	}

	for videoID, completed := range doc.Completion {
		if !completed || !plan.Contains(videoID) {
			continue
		}
		if err := s.store.SetVideoProgress(r.Context(), scheduleID, videoID, true); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to restore progress")
			return
		}
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":    scheduleID,
		"title": doc.Title,
	})
}
