package model

import "errors"

// ErrProgressLogNotFound indicates that the requested progress log does not exist.
var ErrProgressLogNotFound = errors.New("progress log not found")
