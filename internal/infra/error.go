package infra

import (
	"errors"

	"hotelres/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
	KindLockTimeout  RepositoryErrorKind = "LOCK_TIMEOUT"
)

const (
	pgErrCodeUniqueViolation  = "23505"
	pgErrCodeLockNotAvailable = "55P03"
	pgErrCodeQueryCanceled    = "57014" // statement_timeout while waiting on a lock
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies a low-level store error. An explicit kind wins;
// otherwise the postgres error code decides.
func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := KindDBFailure
	if len(kinds) > 0 {
		kind = kinds[0]
	} else {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeUniqueViolation:
				kind = KindDuplicateKey
			case pgErrCodeLockNotAvailable, pgErrCodeQueryCanceled:
				kind = KindLockTimeout
			}
		}
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
