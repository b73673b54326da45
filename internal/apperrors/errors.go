package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error so the transport layer can decode it
// once without inspecting messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindDuplicatePeriod
	KindConflict
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindDuplicatePeriod:
		return "duplicate_period"
	case KindConflict:
		return "conflict"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicatePeriod indicates depreciation was already generated for the requested period.
var ErrDuplicatePeriod = errors.New("depreciation for this period already generated")

// ErrConflict indicates a concurrent modification of the same row.
var ErrConflict = errors.New("resource was modified concurrently")

// ErrPersistence indicates a storage failure unrelated to the caller's input.
var ErrPersistence = errors.New("persistence error")

// AppError carries a Kind, a human readable message and the underlying cause.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match an AppError against the sentinel of its kind.
func (e *AppError) Is(target error) bool {
	return sentinelFor(e.Kind) == target
}

func sentinelFor(k Kind) error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindNotFound:
		return ErrNotFound
	case KindDuplicatePeriod:
		return ErrDuplicatePeriod
	case KindConflict:
		return ErrConflict
	case KindPersistence:
		return ErrPersistence
	default:
		return nil
	}
}

// NewAppError creates a new AppError of the given kind.
func NewAppError(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func NewValidationError(message string) *AppError {
	return NewAppError(KindValidation, message, nil)
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(KindNotFound, message, nil)
}

func NewDuplicatePeriodError(year, month int, err error) *AppError {
	return NewAppError(KindDuplicatePeriod, fmt.Sprintf("depreciation for %04d-%02d already generated", year, month), err)
}

func NewConflictError(message string, err error) *AppError {
	return NewAppError(KindConflict, message, err)
}

func NewPersistenceError(message string, err error) *AppError {
	return NewAppError(KindPersistence, message, err)
}

// KindOf returns the Kind of the first AppError in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	switch {
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrDuplicatePeriod):
		return KindDuplicatePeriod
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrPersistence):
		return KindPersistence
	}
	return KindUnknown
}
