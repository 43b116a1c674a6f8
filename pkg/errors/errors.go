package errors

import (
	"errors"
	"fmt"
)

// ResourceNotFoundError is returned when a requested record does not exist.
type ResourceNotFoundError struct {
	Resource string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewResourceNotFoundError(resource string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Resource: resource}
}

func NewSessionNotFoundError() *ResourceNotFoundError {
	return &ResourceNotFoundError{Resource: "session"}
}

func IsResourceNotFoundError(err error) bool {
	var target *ResourceNotFoundError
	return errors.As(err, &target)
}

// StorageUnavailableError is returned when the embedded database cannot be
// opened or migrated. It is fatal to the current operation and is never
// retried internally.
type StorageUnavailableError struct {
	Err error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("storage unavailable: %v", e.Err)
}

func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}

func NewStorageUnavailableError(err error) *StorageUnavailableError {
	return &StorageUnavailableError{Err: err}
}

func IsStorageUnavailableError(err error) bool {
	var target *StorageUnavailableError
	return errors.As(err, &target)
}

// MissingKeyError is returned when an update is attempted on a record that
// carries no key. Programmer error, rejected before any I/O.
type MissingKeyError struct {
	Collection string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("record in %q has no id", e.Collection)
}

func NewMissingKeyError(collection string) *MissingKeyError {
	return &MissingKeyError{Collection: collection}
}

func IsMissingKeyError(err error) bool {
	var target *MissingKeyError
	return errors.As(err, &target)
}

// InvalidKeyError is returned when a value cannot be normalized to an
// integer record key.
type InvalidKeyError struct {
	Value any
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid record key %v (%T)", e.Value, e.Value)
}

func NewInvalidKeyError(value any) *InvalidKeyError {
	return &InvalidKeyError{Value: value}
}

func IsInvalidKeyError(err error) bool {
	var target *InvalidKeyError
	return errors.As(err, &target)
}

// ValidationError is returned when a request fails a business rule before
// reaching the store.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// UnauthorizedError is returned for failed logins and rejected tokens.
type UnauthorizedError struct {
	Reason string
}

func (e *UnauthorizedError) Error() string {
	return e.Reason
}

func NewUnauthorizedError(reason string) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason}
}

func IsUnauthorizedError(err error) bool {
	var target *UnauthorizedError
	return errors.As(err, &target)
}
