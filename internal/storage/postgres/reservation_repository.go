package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ventara/stayhub/internal/domain"
)

const reservationColumns = `id, place_id, guest_id, check_in, check_out, guest_count, price, status, created_at`

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

func (r *ReservationRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

// GetPlaceForUpdate locks the place row for the rest of the
// transaction, serializing concurrent availability checks per place.
func (r *ReservationRepository) GetPlaceForUpdate(ctx context.Context, placeID string) (domain.Place, error) {
	const query = `
SELECT id, host_id, name, nightly_price, max_guests, created_at
FROM places
WHERE id = $1
FOR UPDATE`

	var p domain.Place
	err := r.queryRow(ctx, query, placeID).
		Scan(&p.ID, &p.HostID, &p.Name, &p.NightlyPrice, &p.MaxGuests, &p.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Place{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Place{}, domain.ErrPlaceNotFound
		}
		return domain.Place{}, fmt.Errorf("get place for update: %w", err)
	}
	return p, nil
}

func (r *ReservationRepository) UserExists(ctx context.Context, userID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := r.queryRow(ctx, query, userID).Scan(&exists); err != nil {
		if isInvalidUUID(err) {
			return false, domain.ErrInvalidID
		}
		return false, fmt.Errorf("user exists: %w", err)
	}
	return exists, nil
}

// ExistsActiveOverlap implements the half-open overlap rule: intervals
// that merely touch at a boundary do not conflict.
func (r *ReservationRepository) ExistsActiveOverlap(ctx context.Context, placeID string, checkIn, checkOut time.Time) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1
	FROM reservations
	WHERE place_id = $1
	  AND status IN ('pending', 'confirmed')
	  AND check_in < $3
	  AND check_out > $2
)`

	var exists bool
	if err := r.queryRow(ctx, query, placeID, checkIn, checkOut).Scan(&exists); err != nil {
		if isInvalidUUID(err) {
			return false, domain.ErrInvalidID
		}
		return false, fmt.Errorf("exists active overlap: %w", err)
	}
	return exists, nil
}

func (r *ReservationRepository) CreateReservation(ctx context.Context, res domain.Reservation) error {
	const stmt = `
INSERT INTO reservations (id, place_id, guest_id, check_in, check_out, guest_count, price, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.exec(ctx, stmt,
		res.ID,
		res.PlaceID,
		res.GuestID,
		res.CheckIn,
		res.CheckOut,
		res.GuestCount,
		res.Price,
		res.Status,
		res.CreatedAt,
	)
	if err != nil {
		if isExclusionViolation(err) {
			return domain.ErrDateConflict
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create reservation: %w", err)
	}
	return nil
}

func (r *ReservationRepository) GetReservation(ctx context.Context, id string) (domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	return r.scanReservation(r.queryRow(ctx, query, id))
}

func (r *ReservationRepository) GetReservationForUpdate(ctx context.Context, id string) (domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`
	return r.scanReservation(r.queryRow(ctx, query, id))
}

func (r *ReservationRepository) UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	const stmt = `UPDATE reservations SET status = $2 WHERE id = $1`

	tag, err := r.exec(ctx, stmt, id, status)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("update reservation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *ReservationRepository) ListByGuest(ctx context.Context, guestID string) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE guest_id = $1 ORDER BY check_in`
	return r.list(ctx, query, guestID)
}

func (r *ReservationRepository) ListByHost(ctx context.Context, hostID string) ([]domain.Reservation, error) {
	const query = `
SELECT r.id, r.place_id, r.guest_id, r.check_in, r.check_out, r.guest_count, r.price, r.status, r.created_at
FROM reservations r
JOIN places p ON p.id = r.place_id
WHERE p.host_id = $1
ORDER BY r.check_in`
	return r.list(ctx, query, hostID)
}

func (r *ReservationRepository) ListByPlace(ctx context.Context, placeID string) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE place_id = $1 ORDER BY check_in`
	return r.list(ctx, query, placeID)
}

func (r *ReservationRepository) FindPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE status = 'pending' AND created_at < $1 ORDER BY created_at`
	return r.list(ctx, query, cutoff)
}

func (r *ReservationRepository) CountByHostAndStatus(ctx context.Context, hostID string, status domain.ReservationStatus) (int64, error) {
	const query = `
SELECT COUNT(*)
FROM reservations r
JOIN places p ON p.id = r.place_id
WHERE p.host_id = $1 AND r.status = $2`

	var count int64
	if err := r.queryRow(ctx, query, hostID, status).Scan(&count); err != nil {
		if isInvalidUUID(err) {
			return 0, domain.ErrInvalidID
		}
		return 0, fmt.Errorf("count by host and status: %w", err)
	}
	return count, nil
}

func (r *ReservationRepository) list(ctx context.Context, query string, args ...any) ([]domain.Reservation, error) {
	rows, err := r.query(ctx, query, args...)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var out []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		var status string
		if err := rows.Scan(&res.ID, &res.PlaceID, &res.GuestID, &res.CheckIn, &res.CheckOut,
			&res.GuestCount, &res.Price, &status, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res.Status = domain.ReservationStatus(status)
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return out, nil
}

func (r *ReservationRepository) scanReservation(row pgx.Row) (domain.Reservation, error) {
	var res domain.Reservation
	var status string
	err := row.Scan(&res.ID, &res.PlaceID, &res.GuestID, &res.CheckIn, &res.CheckOut,
		&res.GuestCount, &res.Price, &status, &res.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Reservation{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Reservation{}, domain.ErrReservationNotFound
		}
		return domain.Reservation{}, fmt.Errorf("get reservation: %w", err)
	}
	res.Status = domain.ReservationStatus(status)
	return res, nil
}

func (r *ReservationRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *ReservationRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}

func (r *ReservationRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
