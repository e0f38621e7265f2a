package errors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrOwnerNotFound indicates that an owner with the given ID does not exist.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrAssetNotFound indicates that an asset with the given ID does not exist.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrSnapshotNotFound indicates that a snapshot with the given ID does not exist.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrUserNotFound indicates that a user with the given username does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrOwnerInUse indicates that an owner cannot be deleted because assets
	// still reference it.
	ErrOwnerInUse = errors.New("owner has assets")

	// ErrAssetInUse indicates that an asset still carries snapshot history
	// and cannot be deleted without an explicit cascade.
	ErrAssetInUse = errors.New("asset has snapshots")

	// ErrInvalidDateRange indicates that the provided month range is invalid
	// (e.g., start month is after end month).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrNegativeValue indicates that a snapshot value is negative.
	ErrNegativeValue = errors.New("value cannot be negative")

	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidSession indicates a missing, malformed, or expired session token.
	ErrInvalidSession = errors.New("invalid or expired session")

	// ErrInvalidCSVHeaders indicates a snapshot import file whose header row
	// does not match the expected columns.
	ErrInvalidCSVHeaders = errors.New("invalid CSV headers")
)
