package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
)

// PostgreSQL error codes used by the postgres document backend
const (
	codeUndefinedTable = "42P01"
)

// IsUndefinedTable reports whether a postgres statement failed because a documents
// table does not exist, which means the migrations were not applied.
func IsUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUndefinedTable
}

// IsConnectionFailure reports whether err means the document store could not be
// reached, as opposed to a failure of the operation itself.
func IsConnectionFailure(err error) bool {
	if err == nil {
		return false
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || pgconn.Timeout(err) {
		return true
	}

	return mongo.IsNetworkError(err) || mongo.IsTimeout(err)
}
