package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ventara/stayhub/internal/domain"
)

// ReviewRepository reads the sibling review store. The booking engine
// never writes reviews; it only aggregates ratings for host metrics.
type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

// AverageRatingByHostAndRange averages ratings across all of the
// host's places for reviews created within [from, to]. Returns 0 when
// no reviews match.
func (r *ReviewRepository) AverageRatingByHostAndRange(ctx context.Context, hostID string, from, to time.Time) (float64, error) {
	const query = `
SELECT COALESCE(AVG(rv.rating), 0)
FROM reviews rv
JOIN places p ON p.id = rv.place_id
WHERE p.host_id = $1
  AND rv.created_at BETWEEN $2 AND $3`

	var avg float64
	if err := r.pool.QueryRow(ctx, query, hostID, from, to).Scan(&avg); err != nil {
		if isInvalidUUID(err) {
			return 0, domain.ErrInvalidID
		}
		return 0, fmt.Errorf("average rating by host: %w", err)
	}
	return avg, nil
}
