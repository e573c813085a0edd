// Package common defines shared constants and sentinel errors used across
// FleetDesk layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Auth errors. ErrorUnauthorized is returned by the session gate when
	// the supplied credentials match no seeded user.
	ErrorUnauthorized = errors.New("unauthorized")

	// Storage errors. ErrorCorruptedData marks a stored collection value that
	// could not be decoded; repositories recover by treating the collection
	// as empty.
	ErrorCorruptedData = errors.New("corrupted stored data")
)
