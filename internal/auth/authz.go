package auth

import (
	apperrors "taskconnect/internal/errors"
	"taskconnect/internal/model"
)

// Authorize allows a mutation iff the caller is the identity that owns the
// target resource. There is no role override: an admin is subject to the
// same equality check as everyone else.
//
// Callers must have established that the resource exists before invoking
// Authorize; a missing resource is reported as not-found, never forbidden.
func Authorize(caller *model.User, ownerID uint) error {
	if caller == nil || caller.ID != ownerID {
		return apperrors.ErrForbidden
	}
	return nil
}
