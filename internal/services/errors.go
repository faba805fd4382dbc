package services

import "errors"

// ErrNotFound is returned when an update or toggle targets an identifier
// that does not exist. Handlers surface it as a 404.
var ErrNotFound = errors.New("not found")
