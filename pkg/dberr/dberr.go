// Package dberr maps Postgres constraint failures onto a small typed
// taxonomy. Every write in the repository layer funnels through Translate so
// callers can branch on the violation kind instead of SQLSTATE strings.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies a constraint violation
type Kind string

const (
	KindUnique     Kind = "unique"
	KindForeignKey Kind = "foreign_key"
	KindCheck      Kind = "check"
	KindNotNull    Kind = "not_null"
	KindOther      Kind = "other"
)

// SQLSTATE codes for the integrity constraint violation class (23xxx)
const (
	codeIntegrityClass = "23"
	codeNotNull        = "23502"
	codeForeignKey     = "23503"
	codeUnique         = "23505"
	codeCheck          = "23514"
	codeExclusion      = "23P01"
)

// ConstraintViolation is the single error taxonomy of the store: a write was
// rejected by a declared constraint. It is terminal for the attempted
// operation; the store performs no retry or recovery.
type ConstraintViolation struct {
	Kind       Kind
	Constraint string
	Table      string
	err        error
}

func (e *ConstraintViolation) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("constraint violation (%s) on %q: %s", e.Kind, e.Constraint, e.err)
	}
	return fmt.Sprintf("constraint violation (%s): %s", e.Kind, e.err)
}

func (e *ConstraintViolation) Unwrap() error {
	return e.err
}

// Translate wraps err in a ConstraintViolation when it is a Postgres
// integrity constraint failure. Any other error is returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	if len(pgErr.Code) < 2 || pgErr.Code[:2] != codeIntegrityClass {
		return err
	}

	kind := KindOther
	switch pgErr.Code {
	case codeUnique:
		kind = KindUnique
	case codeForeignKey:
		kind = KindForeignKey
	case codeCheck, codeExclusion:
		kind = KindCheck
	case codeNotNull:
		kind = KindNotNull
	}

	return &ConstraintViolation{
		Kind:       kind,
		Constraint: pgErr.ConstraintName,
		Table:      pgErr.TableName,
		err:        err,
	}
}

// As unwraps err into a *ConstraintViolation if one is in the chain.
func As(err error) (*ConstraintViolation, bool) {
	var cv *ConstraintViolation
	ok := errors.As(err, &cv)
	return cv, ok
}

// IsUnique reports whether err is a unique constraint violation.
func IsUnique(err error) bool {
	cv, ok := As(err)
	return ok && cv.Kind == KindUnique
}

// IsForeignKey reports whether err is a foreign key violation.
func IsForeignKey(err error) bool {
	cv, ok := As(err)
	return ok && cv.Kind == KindForeignKey
}

// IsCheck reports whether err is a check constraint violation.
func IsCheck(err error) bool {
	cv, ok := As(err)
	return ok && cv.Kind == KindCheck
}
