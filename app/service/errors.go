package service

import "errors"

// ErrNotFound marks a lookup for an absent student id. The route layer
// translates it to 404; everything else coming out of a service is treated
// as a service error and surfaces as 500.
var ErrNotFound = errors.New("Student not found")
