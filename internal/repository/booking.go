package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/TutorBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create books a seat. The slot row is locked for the whole
// count-then-insert sequence, so two writers racing for the last seat
// serialize on the lock and the second one observes the first one's row.
// The partial unique index on active (slot_id, booker_id) backstops the
// duplicate check at the storage level.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	capacityQuery := `SELECT capacity FROM slots WHERE id = $1 FOR UPDATE`
	var capacity int
	if err = tx.QueryRowContext(ctx, capacityQuery, b.SlotID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSlotNotFound
		}
		return conflictOr(err, "get slot capacity")
	}

	activeQuery := `SELECT COUNT(*) FROM bookings
			  WHERE slot_id = $1 AND status = $2`
	var active int
	if err = tx.QueryRowContext(
		ctx, activeQuery, b.SlotID, domain.BookingStatusActive,
	).Scan(&active); err != nil {
		return conflictOr(err, "count active bookings")
	}

	if active >= capacity {
		return domain.ErrNoSeatsLeft
	}

	dupQuery := `SELECT EXISTS (
			  SELECT 1 FROM bookings
			  WHERE slot_id = $1 AND booker_id = $2 AND status = $3)`
	var exists bool
	if err = tx.QueryRowContext(
		ctx, dupQuery, b.SlotID, b.BookerID, domain.BookingStatusActive,
	).Scan(&exists); err != nil {
		return conflictOr(err, "check duplicate booking")
	}
	if exists {
		return domain.ErrAlreadyBooked
	}

	query := `INSERT INTO bookings (id, slot_id, booker_id, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(
		ctx, query, b.ID, b.SlotID,
		b.BookerID, b.Status, b.CreatedAt, b.UpdatedAt,
	); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyBooked
		}
		return conflictOr(err, "insert booking")
	}

	if err = tx.Commit(); err != nil {
		return conflictOr(err, "commit booking")
	}

	return nil
}

func (r *BookingRepository) GetWithSlot(ctx context.Context, id string) (*domain.BookingWithSlot, error) {
	query := `SELECT b.id, b.slot_id, b.booker_id, b.status, b.created_at, b.updated_at,
					 s.start_at, s.end_at, s.owner_id
			  FROM bookings b
			  JOIN slots s ON s.id = b.slot_id
			  WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var bws domain.BookingWithSlot
	var slotID sql.NullString
	if err = row.Scan(
		&bws.Booking.ID, &slotID, &bws.Booking.BookerID,
		&bws.Booking.Status, &bws.Booking.CreatedAt, &bws.Booking.UpdatedAt,
		&bws.SlotStartAt, &bws.SlotEndAt, &bws.SlotOwnerID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	bws.Booking.SlotID = slotID.String

	return &bws, nil
}

// Cancel flips an active booking to cancelled. The transition is a single
// conditional UPDATE; when it matches no row the reason is diagnosed
// inside the same transaction.
func (r *BookingRepository) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3
			  RETURNING id, slot_id, booker_id, status, created_at, updated_at`

	var b domain.Booking
	err = tx.QueryRowContext(
		ctx, query, id,
		domain.BookingStatusCancelled, domain.BookingStatusActive,
	).Scan(&b.ID, &b.SlotID, &b.BookerID, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Определяем причину: бронь не найдена или уже отменена
		var status domain.BookingStatus
		checkQuery := `SELECT status FROM bookings WHERE id = $1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, id).Scan(&status); scanErr != nil {
			return nil, domain.ErrBookingNotFound
		}
		if status == domain.BookingStatusCancelled {
			return nil, domain.ErrAlreadyCancelled
		}
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cancel: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) ListByBooker(ctx context.Context, bookerID string) ([]*domain.Booking, error) {
	query := `SELECT id, slot_id, booker_id, status, created_at, updated_at
			  FROM bookings
			  WHERE booker_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by booker: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *BookingRepository) ListBySlot(ctx context.Context, slotID string) ([]*domain.Booking, error) {
	query := `SELECT id, slot_id, booker_id, status, created_at, updated_at
			  FROM bookings
			  WHERE slot_id = $1 AND status = $2
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, slotID, domain.BookingStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list bookings by slot: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ReportRows keeps bookings whose slot was deleted: the slot columns come
// back NULL and the owner is unknown, but the history row itself stays in
// the export.
func (r *BookingRepository) ReportRows(ctx context.Context) ([]*domain.ReportRow, error) {
	query := `SELECT b.id, b.status, COALESCE(owner.username, ''), s.start_at, s.end_at, booker.username, b.created_at
			  FROM bookings b
			  LEFT JOIN slots s ON s.id = b.slot_id
			  LEFT JOIN users owner ON owner.id = s.owner_id
			  JOIN users booker ON booker.id = b.booker_id
			  ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("report rows: %w", err)
	}
	defer rows.Close()

	var res []*domain.ReportRow
	for rows.Next() {
		var row domain.ReportRow
		var startAt, endAt sql.NullTime
		if err = rows.Scan(
			&row.BookingID, &row.Status, &row.OwnerUsername,
			&startAt, &endAt, &row.BookerUsername, &row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		row.StartAt = startAt.Time
		row.EndAt = endAt.Time
		res = append(res, &row)
	}

	return res, rows.Err()
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		// slot_id становится NULL после удаления слота
		var slotID sql.NullString
		if err := rows.Scan(&b.ID, &slotID, &b.BookerID, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		b.SlotID = slotID.String
		res = append(res, &b)
	}

	return res, rows.Err()
}

// conflictOr maps postgres serialization and deadlock failures to
// domain.ErrTxConflict so the service can retry the whole unit of work.
func conflictOr(err error, op string) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && (pgErr.Code == "40001" || pgErr.Code == "40P01") {
		return fmt.Errorf("%s: %w", op, domain.ErrTxConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}
