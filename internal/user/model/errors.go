package model

import "errors"

// ErrUserNotFound indicates that the requested user does not exist.
var ErrUserNotFound = errors.New("user not found")
