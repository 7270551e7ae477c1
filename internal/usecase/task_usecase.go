package usecase

import (
	"context"
	"time"

	"go-todo-backend/internal/domain"
	"go-todo-backend/pkg/apperror"
)

type taskUsecase struct {
	taskRepo domain.TaskRepository
	listUC   domain.TaskListUsecase
}

func NewTaskUsecase(taskRepo domain.TaskRepository, listUC domain.TaskListUsecase) domain.TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
		listUC:   listUC,
	}
}

// CreateTask places a task in the given list, or in the caller's
// default list (provisioned if absent) when no list id is supplied.
func (u *taskUsecase) CreateTask(ctx context.Context, description *string, taskListID *int64, userID int64) (*domain.Task, error) {
	if err := requireValidUser(userID); err != nil {
		return nil, err
	}

	var list *domain.TaskList
	var err error
	if taskListID == nil || *taskListID <= 0 {
		list, err = u.listUC.GetOrCreateDefault(ctx, userID)
	} else {
		list, err = u.listUC.GetOwnedTaskList(ctx, *taskListID, userID)
	}
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		Description: description,
		Completed:   false,
		CreatedAt:   time.Now(),
		TaskListID:  list.ID,
		UserID:      userID,
	}
	if err := u.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask applies a partial update: only fields present in the patch
// change, and an explicit null description clears it.
func (u *taskUsecase) UpdateTask(ctx context.Context, taskID int64, patch domain.TaskPatch, userID int64) (*domain.Task, error) {
	task, err := u.findOwnedTask(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if patch.DescriptionSet {
		task.Description = patch.Description
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}

	if err := u.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) DeleteTask(ctx context.Context, taskID int64, userID int64) error {
	task, err := u.findOwnedTask(ctx, taskID, userID)
	if err != nil {
		return err
	}
	return u.taskRepo.Delete(ctx, task.ID)
}

func (u *taskUsecase) GetTasksForList(ctx context.Context, taskListID int64, userID int64) ([]domain.Task, error) {
	if err := requireValidUser(userID); err != nil {
		return nil, err
	}
	list, err := u.listUC.GetOwnedTaskList(ctx, taskListID, userID)
	if err != nil {
		return nil, err
	}
	return u.taskRepo.GetByList(ctx, list.ID)
}

func (u *taskUsecase) GetTasksForUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	if err := requireValidUser(userID); err != nil {
		return nil, err
	}
	return u.taskRepo.GetByUser(ctx, userID)
}

func (u *taskUsecase) findOwnedTask(ctx context.Context, taskID int64, userID int64) (*domain.Task, error) {
	if err := requireValidUser(userID); err != nil {
		return nil, err
	}
	task, err := u.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperror.NotFound("Task not found")
	}
	if task.UserID != userID {
		return nil, apperror.Forbidden("Task belongs to another user")
	}
	return task, nil
}
