// Package postgres provides the PostgreSQL implementation of the store
// interfaces, reached through database/sql with the pgx driver.
package postgres
