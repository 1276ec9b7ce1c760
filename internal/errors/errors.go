package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "on this date"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrMemberNotFound          = &NotFoundError{Entity: "member"}
	ErrSongNotFound            = &NotFoundError{Entity: "song"}
	ErrLeadershipShiftNotFound = &NotFoundError{Entity: "leadership shift"}
	ErrLeaderNotFound          = &NotFoundError{Entity: "leader"}
	ErrPerformanceNotFound     = &NotFoundError{Entity: "performance"}
	ErrPerformanceSongNotFound = &NotFoundError{Entity: "performance song"}
	ErrRehearsalNotFound       = &NotFoundError{Entity: "rehearsal"}
	ErrActiveShiftNotFound     = &NotFoundError{Entity: "active leadership shift"}
)

// Already Exists Errors
var (
	ErrMemberExists          = &AlreadyExistsError{Entity: "member", Context: "with this email"}
	ErrSongExists            = &AlreadyExistsError{Entity: "song", Context: "with this title and composer"}
	ErrLeadershipShiftExists = &AlreadyExistsError{Entity: "leadership shift", Context: "overlapping this date range"}
	ErrPerformanceExists     = &AlreadyExistsError{Entity: "performance", Context: "on this date"}
)

// Business Logic Errors
var (
	ErrInvalidStatus            = errors.New("invalid status")
	ErrInvalidDateRange         = errors.New("end date must be after start date")
	ErrNoActiveShift            = errors.New("no active leadership shift")
	ErrShiftTerminated          = errors.New("shift terminated, cannot attach performance")
	ErrInvalidStatusTransition  = errors.New("status may only advance to its immediate successor")
	ErrPerformanceCompleted     = errors.New("performance is completed and can no longer change")
	ErrRehearsalAlreadyPromoted = errors.New("rehearsal already promoted")
	ErrRehearsalNotCompleted    = errors.New("rehearsal is not completed")
	ErrInvalidPaginationParams  = errors.New("invalid pagination parameters")
	ErrInvalidMergeMode         = errors.New("invalid merge mode")
	ErrBulkReplaceNotSupported  = errors.New("bulk promotion supports add mode only")
)

// Authentication Errors
var (
	ErrMissingAuthHeader = &AuthenticationError{Message: "authorization header missing"}
	ErrInvalidToken      = &AuthenticationError{Message: "invalid or expired token"}
	ErrCapabilityDenied  = &AuthorizationError{Message: "role lacks the required capability"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsConflict reports whether an error belongs to the conflict family: the
// caller has enough identity to resolve it and no mutation happened.
func IsConflict(err error) bool {
	return IsAlreadyExists(err) ||
		errors.Is(err, ErrRehearsalAlreadyPromoted) ||
		errors.Is(err, ErrRehearsalNotCompleted)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
