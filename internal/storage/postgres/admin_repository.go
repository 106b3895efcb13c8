package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ventara/stayhub/internal/domain"
)

type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

func (r *AdminRepository) CreateUser(ctx context.Context, user domain.User) error {
	const stmt = `INSERT INTO users (id, name, email, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, stmt, user.ID, user.Name, user.Email, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyInUse
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *AdminRepository) CreatePlace(ctx context.Context, place domain.Place) error {
	const stmt = `
INSERT INTO places (id, host_id, name, nightly_price, max_guests, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, stmt,
		place.ID, place.HostID, place.Name, place.NightlyPrice, place.MaxGuests, place.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("create place: %w", err)
	}
	return nil
}

func (r *AdminRepository) GetPlace(ctx context.Context, id string) (domain.Place, error) {
	const query = `SELECT id, host_id, name, nightly_price, max_guests, created_at FROM places WHERE id = $1`

	var p domain.Place
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.HostID, &p.Name, &p.NightlyPrice, &p.MaxGuests, &p.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Place{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Place{}, domain.ErrPlaceNotFound
		}
		return domain.Place{}, fmt.Errorf("get place: %w", err)
	}
	return p, nil
}

func (r *AdminRepository) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	const query = `SELECT id, host_id, name, nightly_price, max_guests, created_at FROM places ORDER BY created_at`
	return r.listPlaces(ctx, query)
}

func (r *AdminRepository) ListPlacesByHost(ctx context.Context, hostID string) ([]domain.Place, error) {
	const query = `SELECT id, host_id, name, nightly_price, max_guests, created_at FROM places WHERE host_id = $1 ORDER BY created_at`
	return r.listPlaces(ctx, query, hostID)
}

func (r *AdminRepository) listPlaces(ctx context.Context, query string, args ...any) ([]domain.Place, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("list places: %w", err)
	}
	defer rows.Close()

	var out []domain.Place
	for rows.Next() {
		var p domain.Place
		if err := rows.Scan(&p.ID, &p.HostID, &p.Name, &p.NightlyPrice, &p.MaxGuests, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan place: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("list places: %w", err)
	}
	return out, nil
}
