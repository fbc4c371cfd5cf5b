package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pantheon-service/internal/domain"
)

// FollowRepository encapsulates follow-relation persistence.
type FollowRepository interface {
	Create(ctx context.Context, follow *domain.Follow) error
	Delete(ctx context.Context, userID, followeeID int64) error
	Get(ctx context.Context, userID, followeeID int64) (*domain.Follow, error)
	ListFollowing(ctx context.Context, userID int64) ([]domain.Follow, error)
	ListFollowers(ctx context.Context, userID int64) ([]domain.Follow, error)
}

type followRepository struct {
	pool *pgxpool.Pool
}

// NewFollowRepository instantiates repository.
func NewFollowRepository(pool *pgxpool.Pool) FollowRepository {
	return &followRepository{pool: pool}
}

func (r *followRepository) Create(ctx context.Context, follow *domain.Follow) error {
	const query = `
        INSERT INTO followers (user_id, abonne_id)
        VALUES ($1, $2)
        RETURNING created_at`
	return r.pool.QueryRow(ctx, query, follow.UserID, follow.FolloweeID).Scan(&follow.CreatedAt)
}

func (r *followRepository) Delete(ctx context.Context, userID, followeeID int64) error {
	cmd, err := r.pool.Exec(ctx,
		`DELETE FROM followers WHERE user_id=$1 AND abonne_id=$2`, userID, followeeID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *followRepository) Get(ctx context.Context, userID, followeeID int64) (*domain.Follow, error) {
	const query = `
        SELECT user_id, abonne_id, created_at
        FROM followers WHERE user_id=$1 AND abonne_id=$2`
	var follow domain.Follow
	if err := r.pool.QueryRow(ctx, query, userID, followeeID).
		Scan(&follow.UserID, &follow.FolloweeID, &follow.CreatedAt); err != nil {
		return nil, err
	}
	return &follow, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, userID int64) ([]domain.Follow, error) {
	const query = `
        SELECT user_id, abonne_id, created_at
        FROM followers WHERE user_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *followRepository) ListFollowers(ctx context.Context, userID int64) ([]domain.Follow, error) {
	const query = `
        SELECT user_id, abonne_id, created_at
        FROM followers WHERE abonne_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *followRepository) list(ctx context.Context, query string, userID int64) ([]domain.Follow, error) {
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	follows := []domain.Follow{}
	for rows.Next() {
		var follow domain.Follow
		if err := rows.Scan(&follow.UserID, &follow.FolloweeID, &follow.CreatedAt); err != nil {
			return nil, err
		}
		follows = append(follows, follow)
	}
	return follows, rows.Err()
}
