// Package common defines sentinel errors used across
// userreg layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorAlreadyExists        = errors.New("already exists")
	ErrorInvalidLoginPassword = errors.New("invalid login/password")
)
