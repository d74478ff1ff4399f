package postgres

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/juho05/wavedial/repos"
)

const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
)

func wrapErr(message string, err error) error {
	if err == nil {
		return nil
	}
	return repos.NewError(message, sqlErrToErrType(err), err)
}

func wrapResErr(message string, result sql.Result, err error) error {
	if err == nil {
		if rows, err2 := result.RowsAffected(); err2 == nil && rows == 0 {
			return repos.NewError(message, repos.ErrNotFound, errors.New("no rows affected"))
		}
		return nil
	}
	return repos.NewError(message, sqlErrToErrType(err), err)
}

func sqlErrToErrType(err error) repos.ErrorType {
	var errType repos.ErrorType
	if errors.As(err, &errType) {
		return errType
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repos.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCodeUniqueViolation:
			return repos.ErrExists
		case pgCodeForeignKeyViolation:
			// a write referenced a row that does not exist
			return repos.ErrNotFound
		}
	}
	return repos.ErrGeneral
}
