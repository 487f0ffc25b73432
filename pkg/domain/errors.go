package domain

import "errors"

// ErrUnknownEncoding is returned when a scheme name is not Binary, One-hot or Gray.
var ErrUnknownEncoding = errors.New("unknown encoding")

// ErrProjectNotFound is returned when a project ID cannot be found in the store.
var ErrProjectNotFound = errors.New("project not found")

// ErrInvalidProjectID is returned by stores for ids they cannot hold.
var ErrInvalidProjectID = errors.New("invalid project id")
