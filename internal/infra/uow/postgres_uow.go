package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"bengkel-service/internal/domain/booking"
	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/domain/history"
	"bengkel-service/internal/domain/user"
	"bengkel-service/internal/domain/vehicle"
	"bengkel-service/internal/infra"
	"bengkel-service/internal/infra/repository"
	"bengkel-service/internal/infra/repository/converter"
	"bengkel-service/internal/infra/sqlc"
	"bengkel-service/internal/pkg/errs"
	"bengkel-service/internal/pkg/pgconv"
	"bengkel-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
	loc  *time.Location
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, policy shared.BookingPolicy) *PostgresUoW {
	return &PostgresUoW{
		pool: pool,
		q:    q,
		loc:  policy.Location,
	}
}

// ReadCommitted is enough: queue allocation is serialized by the per-day advisory lock.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{q: u.q, dbtx: u.pool, loc: u.loc}
}

// Outbox exposes the notification queue to the relay outside any usecase transaction.
func (u *PostgresUoW) Outbox() shared.OutboxStore {
	return repository.NewNotificationRepository(u.q, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if isRetryableError(err) && attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	bookingRepo      shared.BookingRepository
	historyRepo      shared.HistoryRepository
	userRepo         shared.UserRepository
	vehicleRepo      shared.VehicleRepository
	catalogRepo      shared.CatalogRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Histories() shared.HistoryRepository {
	if t.historyRepo == nil {
		t.historyRepo = repository.NewHistoryRepository(t.uow.q, t.dbtx)
	}
	return t.historyRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Vehicles() shared.VehicleRepository {
	if t.vehicleRepo == nil {
		t.vehicleRepo = repository.NewVehicleRepository(t.uow.q, t.dbtx)
	}
	return t.vehicleRepo
}

func (t *pgTx) Catalog() shared.CatalogRepository {
	if t.catalogRepo == nil {
		t.catalogRepo = repository.NewCatalogRepository(t.uow.q, t.dbtx)
	}
	return t.catalogRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			q:    t.uow.q,
			dbtx: t.dbtx,
			loc:  t.uow.loc,
		}
	}
	return t.commandReads
}

type commandReads struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX
	loc  *time.Location
}

func (r *commandReads) BookingsByDay(ctx context.Context, day booking.ServiceDay) ([]*booking.Booking, error) {
	rows, err := r.q.ListBookingsByDay(ctx, r.dbtx, pgconv.DateToPgtype(day.Start()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by day", err)
	}

	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := converter.BookingFromRow(row, r.loc)
		if err != nil {
			return nil, infra.WrapRepoErr("stored booking is malformed", err)
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *commandReads) PendingBookingForUserAndDay(ctx context.Context, userID uuid.UUID, day booking.ServiceDay) (*booking.Booking, error) {
	row, err := r.q.FindPendingBookingForUserAndDay(ctx, r.dbtx, sqlc.FindPendingBookingForUserAndDayParams{
		UserID:      userID,
		ServiceDate: pgconv.DateToPgtype(day.Start()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find pending booking", err)
	}
	return r.toBooking(row)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.q.FindBookingByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, notFoundOr(err, "booking not found", "failed to find booking by ID")
	}
	return r.toBooking(row)
}

func (r *commandReads) BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.q.FindBookingByIDForUpdate(ctx, r.dbtx, id)
	if err != nil {
		return nil, notFoundOr(err, "booking not found", "failed to lock booking")
	}
	return r.toBooking(row)
}

func (r *commandReads) HistoryByIDForUpdate(ctx context.Context, id uuid.UUID) (*history.History, error) {
	row, err := r.q.FindHistoryByIDForUpdate(ctx, r.dbtx, id)
	if err != nil {
		return nil, notFoundOr(err, "history not found", "failed to lock history")
	}

	itemRows, err := r.q.ListHistoryItems(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list history items", err)
	}

	h, err := converter.HistoryFromRows(row, itemRows)
	if err != nil {
		return nil, infra.WrapRepoErr("stored history is malformed", err)
	}
	return h, nil
}

func (r *commandReads) VehicleByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	row, err := r.q.FindVehicleByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, notFoundOr(err, "vehicle not found", "failed to find vehicle by ID")
	}
	v, err := converter.VehicleFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored vehicle is malformed", err)
	}
	return v, nil
}

func (r *commandReads) CatalogItemByID(ctx context.Context, kind catalog.Kind, id uuid.UUID) (*catalog.Item, error) {
	var row sqlc.CatalogItem
	var err error
	switch kind {
	case catalog.KindService:
		row, err = r.q.FindServiceByID(ctx, r.dbtx, id)
	case catalog.KindSparepart:
		row, err = r.q.FindSparepartByID(ctx, r.dbtx, id)
	default:
		return nil, infra.WrapRepoErr("unknown catalog kind "+kind.String(), catalog.ErrInvalidKind)
	}
	if err != nil {
		return nil, notFoundOr(err, "catalog item not found", "failed to find catalog item by ID")
	}

	item, err := converter.CatalogItemFromRow(kind, row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored catalog item is malformed", err)
	}
	return item, nil
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.q.FindUserByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, notFoundOr(err, "user not found", "failed to find user by ID")
	}
	return r.toUser(row)
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	row, err := r.q.FindUserByEmail(ctx, r.dbtx, email)
	if err != nil {
		return nil, notFoundOr(err, "user not found", "failed to find user by email")
	}
	return r.toUser(row)
}

func (r *commandReads) toBooking(row sqlc.Bookings) (*booking.Booking, error) {
	b, err := converter.BookingFromRow(row, r.loc)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking is malformed", err)
	}
	return b, nil
}

func (r *commandReads) toUser(row sqlc.Users) (*user.User, error) {
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user is malformed", err)
	}
	return u, nil
}

func notFoundOr(err error, notFoundMsg, failureMsg string) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(failureMsg, err)
}
