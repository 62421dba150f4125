// Package postgres provides PostgreSQL implementations of the store
// interfaces, using the pgx driver through database/sql. Driver errors
// are mapped to store sentinel errors at this boundary.
package postgres
