package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Cause returns the most specific cause of err: the PostgreSQL error when
// the chain carries one, otherwise the innermost wrapped error. An error
// without a cause is its own cause.
func Cause(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}

	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// CauseMessage is the message shown to clients for a cause.
func CauseMessage(err error) string {
	cause := Cause(err)
	if cause == nil {
		return ""
	}

	var pgErr *pgconn.PgError
	if errors.As(cause, &pgErr) {
		if pgErr.Detail != "" {
			return pgErr.Message + " (" + pgErr.Detail + ")"
		}
		return pgErr.Message
	}
	return cause.Error()
}

func Detail(err error, sep string) string {
	if err == nil {
		return ""
	}
	return err.Error() + sep + CauseMessage(err)
}
