package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/career-pathfinder/internal/ranking"
	"github.com/jonathan/career-pathfinder/internal/roadmap"
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

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrRoadmapNotFound indicates the roadmap does not exist or belongs to another user.
type ErrRoadmapNotFound struct {
	ID string
}

func (e *ErrRoadmapNotFound) Error() string {
	return fmt.Sprintf("roadmap not found: %s", e.ID)
}

// ErrTaskNotFound indicates the task id is not part of the roadmap.
type ErrTaskNotFound struct {
	TaskID string
}

func (e *ErrTaskNotFound) Error() string {
	return fmt.Sprintf("task not found: %s", e.TaskID)
}

// ErrCareerNotFound indicates an unknown career id on a catalog route.
type ErrCareerNotFound struct {
	ID string
}

func (e *ErrCareerNotFound) Error() string {
	return fmt.Sprintf("career not found: %s", e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		emailExists    *ErrEmailAlreadyExists
		badCredentials *ErrInvalidCredentials
		passwordBad    *ErrPasswordMismatch
		userMissing    *ErrUserNotFound
		roadmapMissing *ErrRoadmapNotFound
		taskMissing    *ErrTaskNotFound
		careerMissing  *ErrCareerNotFound
		validation     *ErrValidation
		rankingInvalid *ranking.InvalidInputError
		roadmapInvalid *roadmap.InvalidInputError
		careerUnknown  *roadmap.NotFoundError
	)
	switch {
	case errors.As(err, &emailExists):
		return http.StatusConflict
	case errors.As(err, &badCredentials), errors.As(err, &passwordBad):
		return http.StatusUnauthorized
	case errors.As(err, &userMissing), errors.As(err, &roadmapMissing), errors.As(err, &taskMissing),
		errors.As(err, &careerMissing), errors.As(err, &careerUnknown):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &rankingInvalid), errors.As(err, &roadmapInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
