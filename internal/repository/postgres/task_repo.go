package postgres

import (
	"context"
	"errors"

	"go-todo-backend/internal/domain"
	"go-todo-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type taskRepo struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) domain.TaskRepository {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(ctx context.Context, task *domain.Task) error {
	query := `INSERT INTO tasks (description, completed, created_at, task_list_id, user_id)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id`
	err := r.db.QueryRow(ctx, query,
		task.Description, task.Completed, task.CreatedAt, task.TaskListID, task.UserID,
	).Scan(&task.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *taskRepo) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `SELECT id, description, completed, created_at, task_list_id, user_id
              FROM tasks WHERE id = $1`
	var task domain.Task
	err := r.db.QueryRow(ctx, query, id).Scan(
		&task.ID, &task.Description, &task.Completed, &task.CreatedAt, &task.TaskListID, &task.UserID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &task, nil
}

func (r *taskRepo) GetByList(ctx context.Context, taskListID int64) ([]domain.Task, error) {
	// Insertion order: ids are assigned by an ascending sequence.
	query := `SELECT id, description, completed, created_at, task_list_id, user_id
              FROM tasks WHERE task_list_id = $1 ORDER BY id`
	return r.queryMany(ctx, query, taskListID)
}

func (r *taskRepo) GetByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	query := `SELECT id, description, completed, created_at, task_list_id, user_id
              FROM tasks WHERE user_id = $1 ORDER BY id`
	return r.queryMany(ctx, query, userID)
}

func (r *taskRepo) queryMany(ctx context.Context, query string, arg any) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID, &task.Description, &task.Completed, &task.CreatedAt, &task.TaskListID, &task.UserID,
		); err != nil {
			return nil, apperror.Internal(err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return tasks, nil
}

func (r *taskRepo) Update(ctx context.Context, task *domain.Task) error {
	query := `UPDATE tasks SET description = $2, completed = $3 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, task.ID, task.Description, task.Completed)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *taskRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}
