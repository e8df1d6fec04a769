package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAmount indicates a monetary field that is not an integer minor-unit string.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidQuantity indicates a quantity outside the accepted range.
var ErrInvalidQuantity = errors.New("invalid quantity")

// ErrUpstream indicates that the remote Store API failed or is unavailable.
var ErrUpstream = errors.New("store api unavailable")
