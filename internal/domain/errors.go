package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

type (
	// NotFoundError indicates a record with the given ID does not exist.
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid or incomplete input.
	ValidationError struct {
		Message string
	}

	// StoreError indicates the key-value substrate failed or is unreachable.
	// Details are passed through verbatim for diagnosis.
	StoreError struct {
		Message string
	}
)

func (e *NotFoundError) Error() string   { return e.Message }
func (e *ValidationError) Error() string { return e.Message }
func (e *StoreError) Error() string      { return e.Message }

func (e *NotFoundError) StatusCode() int   { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }
func (e *StoreError) StatusCode() int      { return http.StatusInternalServerError }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrStore      = errors.New("store unavailable")
)

func (e *NotFoundError) Is(target error) bool   { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
func (e *StoreError) Is(target error) bool      { return target == ErrStore }
