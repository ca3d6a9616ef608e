package infra

import (
	"context"
	"errors"
	"log/slog"

	"bengkel-service/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
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

// WrapRepoErr classifies err. The kind defaults to DB_FAILURE, or is derived
// from the PostgreSQL error code when err carries one.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	var constraint string

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		constraint = pgErr.ConstraintName
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			k = KindDuplicateKey
		case pgErrCodeForeignKeyViolation:
			k = KindForeignKeyViolated
		}
	}
	if len(kind) > 0 {
		k = kind[0]
	}

	return NewRepoErr(k, constraint, msg, err)
}

// NewRepoErr is used by gateways that detect conflicts themselves.
func NewRepoErr(kind RepositoryErrorKind, constraint, msg string, err error) error {
	level := slog.LevelError
	if kind == KindNotFound {
		level = slog.LevelDebug
	}
	slog.Log(context.Background(), level, "Repository error: "+msg,
		slog.String("kind", string(kind)),
		slog.String("constraint", constraint),
	)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, Constraint: constraint, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsConstraint reports a DUPLICATE_KEY or FOREIGN_KEY_VIOLATED error raised by the named constraint.
func IsConstraint(err error, constraint string) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint == constraint
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// Constraint names shared by the schema and the in-memory gateway.
const (
	ConstraintBookingPendingPerDay = "bookings_one_pending_per_user_day"
	ConstraintBookingQueueNumber   = "bookings_service_date_queue_number_key"
	ConstraintHistoryBooking       = "histories_booking_id_key"
	ConstraintUserEmail            = "users_email_key"
	ConstraintVehiclePlate         = "vehicles_plate_number_key"
	ConstraintSparepartCode        = "spareparts_code_key"
)
