package storage

import "errors"

var (
	ErrNotFound        = errors.New("record not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrPageNotFound    = errors.New("page not found")
	ErrProfileNotFound = errors.New("profile not found")
)
