package service

import (
	"errors"
	"fmt"

	"github.com/isoron/habit-sync/models"
)

var (
	// ErrKeyNotFound is returned for sync keys and link ids that do not
	// exist. Expired links are reported the same way.
	ErrKeyNotFound = errors.New("key not found")

	// ErrEditConflict is matched by every *ConflictError.
	ErrEditConflict = errors.New("edit conflict")

	// ErrRegistrationUnavailable is returned when no fresh key can be
	// handed out right now.
	ErrRegistrationUnavailable = errors.New("registration unavailable")

	// ErrEmptySyncKey is returned when a link is requested for an empty
	// sync key.
	ErrEmptySyncKey = errors.New("sync key must not be empty")
)

// ConflictError rejects a write whose version is not the stored version
// plus one. Current is the record as it was when the write was rejected.
type ConflictError struct {
	Current models.SyncData
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: current version is %d", ErrEditConflict, e.Current.Version)
}

// Is reports ErrEditConflict as the kind of e.
func (e *ConflictError) Is(target error) bool {
	return target == ErrEditConflict
}
