package core

import "errors"

// Storage errors
var (
	ErrUserNotFound = errors.New("user not found") // update/delete on a missing user
)

// Config errors (adapter construction)
var (
	ErrConnectionStringRequired = errors.New("connection string is required")
)
