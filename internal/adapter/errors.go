package adapter

import (
	"errors"

	"github.com/isoron/habit-sync/models"
)

var (
	ErrBadRequest         = errors.New("bad request")
	ErrKeyNotFound        = errors.New("key not found")
	ErrEditConflict       = errors.New("edit conflict")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// ConflictError is returned by Put when the server rejected the upload
// because its version did not follow the stored one.
type ConflictError struct {
	Current models.SyncData
}

func (e *ConflictError) Error() string {
	return ErrEditConflict.Error()
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrEditConflict
}
