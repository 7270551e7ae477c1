package usecase

import (
	"context"
	"strings"

	"go-todo-backend/internal/domain"
	"go-todo-backend/pkg/apperror"
)

type taskListUsecase struct {
	listRepo domain.TaskListRepository
}

func NewTaskListUsecase(listRepo domain.TaskListRepository) domain.TaskListUsecase {
	return &taskListUsecase{listRepo: listRepo}
}

// CreateTaskList validates the caller and name, enforces per-user
// case-insensitive name uniqueness among non-deleted lists, and
// persists a new active, non-default list.
func (u *taskListUsecase) CreateTaskList(ctx context.Context, userID int64, name string) (*domain.TaskList, error) {
	if err := requireValidUser(userID); err != nil {
		return nil, err
	}
	if err := requireValidName(name); err != nil {
		return nil, err
	}

	existing, err := u.listRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, l := range existing {
		if !l.Deleted && strings.EqualFold(l.Name, name) {
			return nil, apperror.BadRequest("Task list name must be unique for the user")
		}
	}

	list := &domain.TaskList{Name: name, UserID: userID}
	if err := u.listRepo.Create(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetOrCreateDefault returns the user's default list, provisioning one
// on first use. Idempotent: repeated calls return the same list.
func (u *taskListUsecase) GetOrCreateDefault(ctx context.Context, userID int64) (*domain.TaskList, error) {
	if err := requireValidUser(userID); err != nil {
		return nil, err
	}

	list, err := u.listRepo.GetDefaultForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if list != nil {
		return list, nil
	}

	list = &domain.TaskList{
		Name:      domain.DefaultTaskListName,
		UserID:    userID,
		IsDefault: true,
	}
	if err := u.listRepo.Create(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (u *taskListUsecase) UpdateTaskList(ctx context.Context, listID int64, newName string, userID int64) (*domain.TaskList, error) {
	if err := requireValidUser(userID); err != nil {
		return nil, err
	}
	if err := requireValidName(newName); err != nil {
		return nil, err
	}

	list, err := u.GetOwnedTaskList(ctx, listID, userID)
	if err != nil {
		return nil, err
	}
	// Ownership is checked before state: a non-owner never learns
	// whether the list is deleted.
	if list.Deleted {
		return nil, apperror.BadRequest("Cannot modify a deleted task list")
	}

	list.Name = newName
	if err := u.listRepo.Update(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetDeleted toggles the soft-delete flag. Un-deleting is the one
// mutation accepted on a deleted list.
func (u *taskListUsecase) SetDeleted(ctx context.Context, listID int64, deleted bool, userID int64) (*domain.TaskList, error) {
	if err := requireValidUser(userID); err != nil {
		return nil, err
	}

	list, err := u.GetOwnedTaskList(ctx, listID, userID)
	if err != nil {
		return nil, err
	}
	if list.IsDefault && deleted {
		return nil, apperror.BadRequest("Default task list cannot be deleted")
	}

	list.Deleted = deleted
	if err := u.listRepo.Update(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (u *taskListUsecase) DeleteTaskList(ctx context.Context, listID int64, userID int64) error {
	if err := requireValidUser(userID); err != nil {
		return err
	}

	list, err := u.GetOwnedTaskList(ctx, listID, userID)
	if err != nil {
		return err
	}
	if list.IsDefault {
		return apperror.BadRequest("Default task list cannot be deleted")
	}

	return u.listRepo.Delete(ctx, list.ID)
}

// GetTaskListsForUser returns all of the user's lists, soft-deleted
// ones included; the response DTO carries the deleted flag.
func (u *taskListUsecase) GetTaskListsForUser(ctx context.Context, userID int64) ([]domain.TaskList, error) {
	if err := requireValidUser(userID); err != nil {
		return nil, err
	}
	return u.listRepo.GetByUser(ctx, userID)
}

// GetOwnedTaskList resolves a list and verifies ownership, in that
// order: absence is NotFound, a foreign owner is Forbidden.
func (u *taskListUsecase) GetOwnedTaskList(ctx context.Context, listID int64, userID int64) (*domain.TaskList, error) {
	list, err := u.listRepo.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, apperror.NotFound("Task list not found")
	}
	if list.UserID != userID {
		return nil, apperror.Forbidden("Task list belongs to another user")
	}
	return list, nil
}
