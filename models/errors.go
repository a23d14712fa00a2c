package models

import "errors"

// Domain errors shared by controllers and repositories.
var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateSKU     = errors.New("sku already exists")
	ErrStillReferenced  = errors.New("record is still referenced by assets")
	ErrAlreadyProcessed = errors.New("issue request already processed")
	ErrInvalidRole      = errors.New("invalid role")
)
