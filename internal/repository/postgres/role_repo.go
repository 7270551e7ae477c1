package postgres

import (
	"context"
	"errors"

	"go-todo-backend/internal/domain"
	"go-todo-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type roleRepo struct {
	db *pgxpool.Pool
}

func NewRoleRepository(db *pgxpool.Pool) domain.RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	var role domain.Role
	err := r.db.QueryRow(ctx, `SELECT id, name FROM roles WHERE name = $1`, name).Scan(&role.ID, &role.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &role, nil
}

func (r *roleRepo) Create(ctx context.Context, role *domain.Role) error {
	// ON CONFLICT keeps lazy seeding idempotent under concurrent registrations.
	query := `INSERT INTO roles (name) VALUES ($1)
              ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
              RETURNING id`
	err := r.db.QueryRow(ctx, query, role.Name).Scan(&role.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *roleRepo) AssignToUser(ctx context.Context, userID, roleID int64) error {
	query := `INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)
              ON CONFLICT DO NOTHING`
	_, err := r.db.Exec(ctx, query, userID, roleID)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *roleRepo) GetForUser(ctx context.Context, userID int64) ([]string, error) {
	query := `SELECT r.name FROM roles r
              JOIN user_roles ur ON ur.role_id = r.id
              WHERE ur.user_id = $1
              ORDER BY r.name`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, apperror.Internal(err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return names, nil
}
