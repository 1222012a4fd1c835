package services

import "errors"

// ErrNotFound reports that a requested entity does not exist. Callers map it
// to whatever failure signal fits their boundary; the HTTP layer turns it
// into a 404.
var ErrNotFound = errors.New("entity not found")
