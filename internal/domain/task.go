package domain

import (
	"context"
	"time"
)

// Task belongs to one TaskList and redundantly records the owning user
// so ownership checks never need to traverse the list.
type Task struct {
	ID          int64     `json:"id"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	TaskListID  int64     `json:"-"`
	UserID      int64     `json:"-"`
}

// TaskPatch is a partial update. DescriptionSet distinguishes an
// explicit "description": null (clears the field) from an omitted key.
type TaskPatch struct {
	Description    *string
	DescriptionSet bool
	Completed      *bool
}

type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id int64) (*Task, error)
	GetByList(ctx context.Context, taskListID int64) ([]Task, error)
	GetByUser(ctx context.Context, userID int64) ([]Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id int64) error
}

type TaskUsecase interface {
	CreateTask(ctx context.Context, description *string, taskListID *int64, userID int64) (*Task, error)
	UpdateTask(ctx context.Context, taskID int64, patch TaskPatch, userID int64) (*Task, error)
	DeleteTask(ctx context.Context, taskID int64, userID int64) error
	GetTasksForList(ctx context.Context, taskListID int64, userID int64) ([]Task, error)
	GetTasksForUser(ctx context.Context, userID int64) ([]Task, error)
}
