package v8rand

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error is the class that contains all the errors from this package.
var Error = errs.Class("v8rand")

// Errors returned when an argument to a generator is out of its domain. They
// are wrapped by Error, so use errors.Is to check for them.
var (
	ErrBadSize          = errors.New("size must be non-negative")
	ErrBadDistance      = errors.New("jump distance must be finite, positive, and an exact integer")
	ErrBadBound         = errors.New("bound must be positive")
	ErrBadFloatingBound = errors.New("bound must be finite and positive")
	ErrBadRange         = errors.New("bound must be greater than origin")
)

// ErrBadSeed is returned when constructing or reseeding with a negative seed.
var ErrBadSeed = errors.New("seed must be a non-negative integer")
