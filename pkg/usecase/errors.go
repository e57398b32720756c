package usecase

import "errors"

// Sentinel errors for use case layer
var (
	ErrFactorNotFound          = errors.New("risk factor not found")
	ErrDuplicateModelID        = errors.New("model ID already registered")
	ErrInvalidJurisdictionCode = errors.New("invalid jurisdiction code")
)
