package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pantheon-service/internal/domain"
)

// UserSearchFilter captures the advanced user search parameters.
type UserSearchFilter struct {
	Pseudo       *string
	Email        *string
	CreatedAfter *time.Time
}

// UserRepository defines persistence access for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPseudo(ctx context.Context, pseudo string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Search(ctx context.Context, filter UserSearchFilter) ([]domain.User, error)
	UpdateRole(ctx context.Context, id int64, role domain.Role) error
	UpdateStatus(ctx context.Context, id int64, status domain.AccountStatus, bannedUntil *time.Time) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `id, god_id, avatar, pseudo, email, role, actif, banned_until, abonnement, password_hash, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.GodID,
		&user.Avatar,
		&user.Pseudo,
		&user.Email,
		&user.Role,
		&user.Status,
		&user.BannedUntil,
		&user.Subscription,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (god_id, avatar, pseudo, email, role, actif, banned_until, abonnement, password_hash)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		user.GodID,
		user.Avatar,
		user.Pseudo,
		user.Email,
		user.Role,
		user.Status,
		user.BannedUntil,
		user.Subscription,
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET god_id=$1, avatar=$2, pseudo=$3, email=$4, role=$5, actif=$6,
            banned_until=$7, abonnement=$8, password_hash=$9, updated_at=NOW()
        WHERE id=$10`

	cmd, err := r.pool.Exec(ctx, query,
		user.GodID,
		user.Avatar,
		user.Pseudo,
		user.Email,
		user.Role,
		user.Status,
		user.BannedUntil,
		user.Subscription,
		user.PasswordHash,
		user.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id=$1`, userColumns)
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email=$1`, userColumns)
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByPseudo(ctx context.Context, pseudo string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE pseudo=$1`, userColumns)
	return scanUser(r.pool.QueryRow(ctx, query, pseudo))
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY pseudo ASC`, userColumns)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *userRepository) Search(ctx context.Context, filter UserSearchFilter) ([]domain.User, error) {
	clauses := []string{}
	args := []any{}

	if filter.Pseudo != nil {
		args = append(args, "%"+*filter.Pseudo+"%")
		clauses = append(clauses, fmt.Sprintf("pseudo ILIKE $%d", len(args)))
	}
	if filter.Email != nil {
		args = append(args, "%"+*filter.Email+"%")
		clauses = append(clauses, fmt.Sprintf("email ILIKE $%d", len(args)))
	}
	if filter.CreatedAfter != nil {
		args = append(args, *filter.CreatedAfter)
		clauses = append(clauses, fmt.Sprintf("created_at >= $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM users`, userColumns)
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY pseudo ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *userRepository) UpdateRole(ctx context.Context, id int64, role domain.Role) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE users SET role=$1, updated_at=NOW() WHERE id=$2`, role, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) UpdateStatus(ctx context.Context, id int64, status domain.AccountStatus, bannedUntil *time.Time) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE users SET actif=$1, banned_until=$2, updated_at=NOW() WHERE id=$3`,
		status, bannedUntil, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func collectUsers(rows pgx.Rows) ([]domain.User, error) {
	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}
