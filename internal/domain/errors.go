package domain

import "errors"

// ErrInvalidFileName is returned when an image name cannot be resolved to a
// file inside the storage root.
var ErrInvalidFileName = errors.New("invalid image file name")
