package apperrors

import "errors"

// ErrNotFound indicates that a referenced resource does not exist.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates malformed or out-of-range input, including a
// requested term that falls outside a product's term range.
var ErrValidation = errors.New("validation error")

// ErrUnprocessable indicates that no product in the catalog satisfies the
// hard term and type constraints of a simulation request.
var ErrUnprocessable = errors.New("no compatible product")

// ErrInternal indicates an unexpected collaborator failure, e.g. a storage
// error or an empty product catalog.
var ErrInternal = errors.New("internal error")

// ErrDuplicate indicates an attempt to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")
