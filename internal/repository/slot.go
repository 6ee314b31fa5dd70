package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/TutorBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts a slot after checking it against the owner's existing
// slots. The scan runs inside the insert transaction with the owner's rows
// locked, so create-vs-create for the same owner is serialized.
func (r *SlotRepository) Create(ctx context.Context, s *domain.Slot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	existingQuery := `SELECT start_at, end_at FROM slots WHERE owner_id = $1 FOR UPDATE`
	rows, err := tx.QueryContext(ctx, existingQuery, s.OwnerID)
	if err != nil {
		return fmt.Errorf("list owner slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var startAt, endAt time.Time
		if err = rows.Scan(&startAt, &endAt); err != nil {
			return fmt.Errorf("scan owner slot: %w", err)
		}
		if domain.Overlaps(s.StartAt, s.EndAt, startAt, endAt) {
			return domain.ErrSlotOverlap
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("iterate owner slots: %w", err)
	}

	query := `INSERT INTO slots (id, owner_id, start_at, end_at, capacity, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(
		ctx, query,
		s.ID, s.OwnerID, s.StartAt, s.EndAt, s.Capacity, s.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert slot: %w", err)
	}

	return tx.Commit()
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	query := `SELECT id, owner_id, start_at, end_at, capacity, created_at
			  FROM slots
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	var s domain.Slot
	if err = row.Scan(&s.ID, &s.OwnerID, &s.StartAt, &s.EndAt, &s.Capacity, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	return &s, nil
}

func (r *SlotRepository) GetDetails(ctx context.Context, id string) (*domain.SlotDetails, error) {
	query := `
		SELECT
			s.id, s.owner_id, s.start_at, s.end_at, s.capacity, s.created_at,
			s.capacity - COUNT(b.id) AS available_seats
		FROM slots s
		LEFT JOIN bookings b
			ON b.slot_id = s.id
			AND b.status = $2
		WHERE s.id = $1
		GROUP BY s.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, domain.BookingStatusActive)
	if err != nil {
		return nil, fmt.Errorf("get slot details: %w", err)
	}

	var d domain.SlotDetails
	if err = row.Scan(
		&d.Slot.ID, &d.Slot.OwnerID, &d.Slot.StartAt, &d.Slot.EndAt,
		&d.Slot.Capacity, &d.Slot.CreatedAt,
		&d.AvailableSeats,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot details: %w", err)
	}

	return &d, nil
}

func (r *SlotRepository) List(ctx context.Context, ownerID string) ([]*domain.SlotDetails, error) {
	query := `
		SELECT
			s.id, s.owner_id, s.start_at, s.end_at, s.capacity, s.created_at,
			s.capacity - COUNT(b.id) AS available_seats
		FROM slots s
		LEFT JOIN bookings b
			ON b.slot_id = s.id
			AND b.status = $2
		WHERE ($1 = '' OR s.owner_id::text = $1)
		GROUP BY s.id
		ORDER BY s.start_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID, domain.BookingStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var res []*domain.SlotDetails
	for rows.Next() {
		var d domain.SlotDetails
		if err = rows.Scan(
			&d.Slot.ID, &d.Slot.OwnerID, &d.Slot.StartAt, &d.Slot.EndAt,
			&d.Slot.Capacity, &d.Slot.CreatedAt,
			&d.AvailableSeats,
		); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}

// Delete removes a slot unless active bookings reference it. The slot row
// is locked first so the guard cannot race a concurrent booking, which
// takes the same lock before inserting.
func (r *SlotRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT id FROM slots WHERE id = $1 FOR UPDATE`
	var lockedID string
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&lockedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSlotNotFound
		}
		return fmt.Errorf("lock slot: %w", err)
	}

	activeQuery := `SELECT COUNT(*) FROM bookings WHERE slot_id = $1 AND status = $2`
	var active int
	if err = tx.QueryRowContext(ctx, activeQuery, id, domain.BookingStatusActive).Scan(&active); err != nil {
		return fmt.Errorf("count active bookings: %w", err)
	}
	if active > 0 {
		return domain.ErrSlotHasBookings
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM slots WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}

	return tx.Commit()
}
