// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrContactNotFound signals that no contact could be resolved for a territory.
	ErrContactNotFound = errors.New("contact not found")
	// ErrWriteAborted signals a rolled-back meeting request write.
	ErrWriteAborted = errors.New("write aborted")
)
