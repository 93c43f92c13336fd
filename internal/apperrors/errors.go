package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation is not valid for the current state of
// the resource, e.g. an illegal status transition or a lock-wait timeout. The
// caller may retry after re-reading current state.
var ErrConflict = errors.New("conflict with current resource state")

// ErrStore indicates a storage-level failure (connectivity, prepare, execute).
// Retryable with backoff.
var ErrStore = errors.New("store error")

// ErrForbidden indicates that the caller lacks the capability for the operation.
var ErrForbidden = errors.New("operation not permitted")
