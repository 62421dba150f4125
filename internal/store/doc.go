// Package store defines the persistence interfaces and error values that
// sit between the API layer and the database implementation. Handlers
// depend on these interfaces only; the Postgres implementation lives in
// internal/platform/postgres.
package store
