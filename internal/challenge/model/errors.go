package model

import "errors"

// ErrChallengeNotFound indicates that the requested challenge does not exist.
var ErrChallengeNotFound = errors.New("challenge not found")
