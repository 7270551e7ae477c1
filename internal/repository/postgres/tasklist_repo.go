package postgres

import (
	"context"
	"errors"

	"go-todo-backend/internal/domain"
	"go-todo-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type taskListRepo struct {
	db *pgxpool.Pool
}

func NewTaskListRepository(db *pgxpool.Pool) domain.TaskListRepository {
	return &taskListRepo{db: db}
}

func (r *taskListRepo) Create(ctx context.Context, list *domain.TaskList) error {
	query := `INSERT INTO task_lists (name, user_id, deleted, is_default)
              VALUES ($1, $2, $3, $4)
              RETURNING id`
	err := r.db.QueryRow(ctx, query, list.Name, list.UserID, list.Deleted, list.IsDefault).Scan(&list.ID)
	if err != nil {
		// A partial unique index on (user_id, lower(name)) WHERE NOT deleted
		// backs the service-layer uniqueness check against races.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("A task list with this name already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *taskListRepo) GetByID(ctx context.Context, id int64) (*domain.TaskList, error) {
	query := `SELECT id, name, user_id, deleted, is_default FROM task_lists WHERE id = $1`
	var list domain.TaskList
	err := r.db.QueryRow(ctx, query, id).Scan(
		&list.ID, &list.Name, &list.UserID, &list.Deleted, &list.IsDefault,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &list, nil
}

func (r *taskListRepo) GetByUser(ctx context.Context, userID int64) ([]domain.TaskList, error) {
	query := `SELECT id, name, user_id, deleted, is_default FROM task_lists
              WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var lists []domain.TaskList
	for rows.Next() {
		var list domain.TaskList
		if err := rows.Scan(&list.ID, &list.Name, &list.UserID, &list.Deleted, &list.IsDefault); err != nil {
			return nil, apperror.Internal(err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return lists, nil
}

func (r *taskListRepo) GetDefaultForUser(ctx context.Context, userID int64) (*domain.TaskList, error) {
	query := `SELECT id, name, user_id, deleted, is_default FROM task_lists
              WHERE user_id = $1 AND is_default ORDER BY id LIMIT 1`
	var list domain.TaskList
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&list.ID, &list.Name, &list.UserID, &list.Deleted, &list.IsDefault,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &list, nil
}

func (r *taskListRepo) Update(ctx context.Context, list *domain.TaskList) error {
	query := `UPDATE task_lists SET name = $2, deleted = $3 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, list.ID, list.Name, list.Deleted)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("A task list with this name already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *taskListRepo) Delete(ctx context.Context, id int64) error {
	// Tasks go with the list via ON DELETE CASCADE.
	_, err := r.db.Exec(ctx, `DELETE FROM task_lists WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}
