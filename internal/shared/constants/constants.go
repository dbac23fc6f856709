// Package constants defines shared constants used across the application.
package constants

// Pagination defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// TrackingIDPrefix prefixes every public complaint tracking identifier.
const TrackingIDPrefix = "JAN"

// AppName is the user-facing product name used in emails and responses.
const AppName = "JanNivaran"

// Gin context keys populated by the auth middleware.
const (
	ContextKeyUserID         = "user_id"
	ContextKeyUserRole       = "user_role"
	ContextKeyUserDepartment = "user_department"
)
