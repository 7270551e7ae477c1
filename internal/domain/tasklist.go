package domain

import "context"

// DefaultTaskListName is the name given to the list provisioned for a
// user on registration or first implicit task placement.
const DefaultTaskListName = "Default Task List"

// TaskList is owned by exactly one user. Tasks reference the list by ID
// only, so the entity graph stays acyclic and serializes cleanly.
type TaskList struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	UserID    int64  `json:"-"`
	Deleted   bool   `json:"deleted"`
	IsDefault bool   `json:"isDefault"`
}

type TaskListRepository interface {
	Create(ctx context.Context, list *TaskList) error
	GetByID(ctx context.Context, id int64) (*TaskList, error)
	GetByUser(ctx context.Context, userID int64) ([]TaskList, error)
	GetDefaultForUser(ctx context.Context, userID int64) (*TaskList, error)
	Update(ctx context.Context, list *TaskList) error
	// Delete removes the list and cascades to its tasks.
	Delete(ctx context.Context, id int64) error
}

type TaskListUsecase interface {
	CreateTaskList(ctx context.Context, userID int64, name string) (*TaskList, error)
	GetOrCreateDefault(ctx context.Context, userID int64) (*TaskList, error)
	UpdateTaskList(ctx context.Context, listID int64, newName string, userID int64) (*TaskList, error)
	SetDeleted(ctx context.Context, listID int64, deleted bool, userID int64) (*TaskList, error)
	DeleteTaskList(ctx context.Context, listID int64, userID int64) error
	GetTaskListsForUser(ctx context.Context, userID int64) ([]TaskList, error)
	GetOwnedTaskList(ctx context.Context, listID int64, userID int64) (*TaskList, error)
}
