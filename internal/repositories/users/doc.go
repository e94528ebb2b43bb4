// Package users implements SQLite persistence for user records.
//
// The repository works on any dbx.DBTX, so the caller decides whether a call
// runs on the pool, a dedicated connection or inside a transaction.
//
// GetByUserName returns common.ErrorNotFound when no row matches; other
// failures are wrapped as "db error: ...".
package users
