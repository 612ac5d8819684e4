package entities

import "errors"

// ErrVersionConflict is returned by stores when an optimistic version check fails.
var ErrVersionConflict = errors.New("version conflict")

// ErrStatusConflict is returned by stores when the status a write was based
// on no longer matches the stored one.
var ErrStatusConflict = errors.New("status changed concurrently")
