// Package server provides the HTTP REST API for learnfast.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/rohan/learnfast/internal/fetch"
	"github.com/rohan/learnfast/internal/playlist"
	"github.com/rohan/learnfast/internal/schedule"
	"github.com/rohan/learnfast/internal/schemas"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrScheduleNotFound indicates the schedule does not exist for this user
type ErrScheduleNotFound struct {
	ScheduleID uuid.UUID
}

func (e *ErrScheduleNotFound) Error() string {
	return fmt.Sprintf("schedule not found: %s", e.ScheduleID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrAssistantUnavailable indicates the study assistant is not configured
type ErrAssistantUnavailable struct{}

func (e *ErrAssistantUnavailable) Error() string {
	return "study assistant is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrUserNotFound, *ErrScheduleNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrAssistantUnavailable:
		return http.StatusServiceUnavailable
	case *schedule.ErrEmptyItemList, *schedule.ErrInvalidPacing:
		return http.StatusBadRequest
	case *schedule.ErrUnknownItem:
		return http.StatusNotFound
	case *playlist.ErrInvalidURL, *playlist.ErrEmptyPlaylist:
		return http.StatusBadRequest
	case *schemas.ValidationError:
		return http.StatusBadRequest
	case *fetch.Error:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
