package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pantheon-service/internal/domain"
)

// GodRepository encapsulates profile-category persistence.
type GodRepository interface {
	Create(ctx context.Context, god *domain.God) error
	Update(ctx context.Context, god *domain.God) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.God, error)
	GetByName(ctx context.Context, nom string) (*domain.God, error)
	List(ctx context.Context) ([]domain.God, error)
}

type godRepository struct {
	pool *pgxpool.Pool
}

// NewGodRepository instantiates repository.
func NewGodRepository(pool *pgxpool.Pool) GodRepository {
	return &godRepository{pool: pool}
}

func (r *godRepository) Create(ctx context.Context, god *domain.God) error {
	const query = `
        INSERT INTO gods (nom, description, mythologie, image_url)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		god.Nom,
		god.Description,
		god.Mythologie,
		god.ImageURL,
	).Scan(&god.ID, &god.CreatedAt, &god.UpdatedAt)
}

func (r *godRepository) Update(ctx context.Context, god *domain.God) error {
	const query = `
        UPDATE gods SET nom=$1, description=$2, mythologie=$3, image_url=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query, god.Nom, god.Description, god.Mythologie, god.ImageURL, god.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *godRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM gods WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *godRepository) GetByID(ctx context.Context, id int64) (*domain.God, error) {
	const query = `
        SELECT id, nom, description, mythologie, image_url, created_at, updated_at
        FROM gods WHERE id=$1`
	return scanGod(r.pool.QueryRow(ctx, query, id))
}

func (r *godRepository) GetByName(ctx context.Context, nom string) (*domain.God, error) {
	const query = `
        SELECT id, nom, description, mythologie, image_url, created_at, updated_at
        FROM gods WHERE nom=$1`
	return scanGod(r.pool.QueryRow(ctx, query, nom))
}

func (r *godRepository) List(ctx context.Context) ([]domain.God, error) {
	const query = `
        SELECT id, nom, description, mythologie, image_url, created_at, updated_at
        FROM gods ORDER BY nom ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	gods := []domain.God{}
	for rows.Next() {
		god, err := scanGod(rows)
		if err != nil {
			return nil, err
		}
		gods = append(gods, *god)
	}
	return gods, rows.Err()
}

func scanGod(row pgx.Row) (*domain.God, error) {
	var god domain.God
	if err := row.Scan(
		&god.ID,
		&god.Nom,
		&god.Description,
		&god.Mythologie,
		&god.ImageURL,
		&god.CreatedAt,
		&god.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &god, nil
}
