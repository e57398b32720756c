package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidConfig           = goerr.New("invalid configuration")
	ErrMissingName             = goerr.New("name is required")
	ErrDuplicateJurisdiction   = goerr.New("duplicate jurisdiction code")
	ErrInvalidJurisdictionKind = goerr.New("invalid jurisdiction kind")
)
