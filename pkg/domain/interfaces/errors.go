package interfaces

import "errors"

// ErrModelScoreNotFound is returned by every repository backend when a
// model ID has no stored score, so callers can branch without knowing
// the backend
var ErrModelScoreNotFound = errors.New("model risk score not found")
