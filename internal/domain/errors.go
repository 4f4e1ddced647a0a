package domain

import "errors"

// ErrNotFound is returned when an eatery expected to be in the food guide
// is not present (e.g. the target of a set or delete).
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when a field value fails its format constraint
// while constructing a value type or an Eatery.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidIndex is returned when a displayed index does not point into the
// current filtered eatery list. The wrapping message carries the 1-based
// index the user typed, never the internal 0-based one.
var ErrInvalidIndex = errors.New("invalid eatery displayed index")

// ErrDuplicateEatery is returned when a mutation would produce an eatery that
// is strictly equal to one already in the food guide.
// Handlers should map this to HTTP 409 Conflict.
var ErrDuplicateEatery = errors.New("this eatery already exists in the food guide")

// ErrUnsupportedOperation is returned by read-only views when a caller tries
// to mutate them in place.
var ErrUnsupportedOperation = errors.New("unsupported operation")
