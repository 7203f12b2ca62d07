package service

import (
	"errors"

	"moviedb/internal/model"
)

var (
	ErrIDRequired      = errors.New("id is required")
	ErrNotFound        = errors.New("not found")
	ErrInvalidFilter   = errors.New("invalid filter")
	ErrInvalidScore    = model.ErrInvalidScore
	ErrStorageDisabled = errors.New("poster storage is not configured")
	ErrReaderNil       = errors.New("reader is nil")
)
