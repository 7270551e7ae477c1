package usecase_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"go-todo-backend/internal/domain"
	"go-todo-backend/internal/usecase"
	"go-todo-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func appCode(t *testing.T, err error) int {
	t.Helper()
	appErr, ok := err.(*apperror.AppError)
	if !ok {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func TestCreateTaskList(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create an active non-default list", func(t *testing.T) {
		mockRepo := new(MockTaskListRepo)
		uc := usecase.NewTaskListUsecase(mockRepo)

		mockRepo.On("GetByUser", ctx, int64(1)).Return([]domain.TaskList{}, nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.TaskList")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.TaskList).ID = 10
		}).Return(nil)

		list, err := uc.CreateTaskList(ctx, 1, "Groceries")
		assert.NoError(t, err)
		assert.Equal(t, int64(10), list.ID)
		assert.Equal(t, "Groceries", list.Name)
		assert.False(t, list.IsDefault)
		assert.False(t, list.Deleted)
	})

	t.Run("Should reject a duplicate name case-insensitively", func(t *testing.T) {
		mockRepo := new(MockTaskListRepo)
		uc := usecase.NewTaskListUsecase(mockRepo)

		mockRepo.On("GetByUser", ctx, int64(1)).Return([]domain.TaskList{
			{ID: 10, Name: "Groceries", UserID: 1},
		}, nil)

		_, err := uc.CreateTaskList(ctx, 1, "GROCERIES")
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should allow reusing the name of a soft-deleted list", func(t *testing.T) {
		mockRepo := new(MockTaskListRepo)
		uc := usecase.NewTaskListUsecase(mockRepo)

		mockRepo.On("GetByUser", ctx, int64(1)).Return([]domain.TaskList{
			{ID: 10, Name: "Groceries", UserID: 1, Deleted: true},
		}, nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.TaskList")).Return(nil)

		_, err := uc.CreateTaskList(ctx, 1, "Groceries")
		assert.NoError(t, err)
	})

	t.Run("Should reject a blank name without touching the store", func(t *testing.T) {
		mockRepo := new(MockTaskListRepo)
		uc := usecase.NewTaskListUsecase(mockRepo)

		_, err := uc.CreateTaskList(ctx, 1, "   ")
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
		mockRepo.AssertNotCalled(t, "GetByUser", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject a 256-character name without touching the store", func(t *testing.T) {
		mockRepo := new(MockTaskListRepo)
		uc := usecase.NewTaskListUsecase(mockRepo)

		_, err := uc.CreateTaskList(ctx, 1, strings.Repeat("a", 256))
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should accept a 255-character name", func(t *testing.T) {
		mockRepo := new(MockTaskListRepo)
		uc := usecase.NewTaskListUsecase(mockRepo)

		mockRepo.On("GetByUser", ctx, int64(1)).Return([]domain.TaskList{}, nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.TaskList")).Return(nil)

		_, err := uc.CreateTaskList(ctx, 1, strings.Repeat("a", 255))
		assert.NoError(t, err)
	})

	t.Run("Should reject an invalid user id", func(t *testing.T) {
		mockRepo := new(MockTaskListRepo)
		uc := usecase.NewTaskListUsecase(mockRepo)

		_, err := uc.CreateTaskList(ctx, 0, "Groceries")
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
	})
}

func TestGetOrCreateDefault(t *testing.T) {
	ctx := context.Background()

	t.Run("Should provision the default list on first use", func(t *testing.T) {
		mockRepo := new(MockTaskListRepo)
		uc := usecase.NewTaskListUsecase(mockRepo)

		mockRepo.On("GetDefaultForUser", ctx, int64(1)).Return(nil, nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.TaskList")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.TaskList).ID = 5
		}).Return(nil)

		list, err := uc.GetOrCreateDefault(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), list.ID)
		assert.Equal(t, domain.DefaultTaskListName, list.Name)
		assert.True(t, list.IsDefault)
	})

	t.Run("Should return the existing default without creating another", func(t *testing.T) {
		mockRepo := new(MockTaskListRepo)
		uc := usecase.NewTaskListUsecase(mockRepo)

		existing := &domain.TaskList{ID: 5, Name: domain.DefaultTaskListName, UserID: 1, IsDefault: true}
		mockRepo.On("GetDefaultForUser", ctx, int64(1)).Return(existing, nil)

		first, err := uc.GetOrCreateDefault(ctx, 1)
		assert.NoError(t, err)
		second, err := uc.GetOrCreateDefault(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateTaskList(t *testing.T) {
	ctx := context.Background()

	t.Run("Should rename an owned active list", func(t *testing.T) {
		mockRepo := new(MockTaskListRepo)
		uc := usecase.NewTaskListUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(10)).Return(&domain.TaskList{ID: 10, Name: "Old", UserID: 1}, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.TaskList")).Return(nil)

		list, err := uc.UpdateTaskList(ctx, 10, "New", 1)
		assert.NoError(t, err)
		assert.Equal(t, "New", list.Name)
	})

	t.Run("Should return NotFound for a missing list", func(t *testing.T) {
		mockRepo := new(MockTaskListRepo)
		uc := usecase.NewTaskListUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(99)).Return(nil, nil)

		_, err := uc.UpdateTaskList(ctx, 99, "New", 1)
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appCode(t, err))
	})

	t.Run("Should return Forbidden for a foreign list even when it is deleted", func(t *testing.T) {
		mockRepo := new(MockTaskListRepo)
		uc := usecase.NewTaskListUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(10)).Return(&domain.TaskList{ID: 10, Name: "Old", UserID: 2, Deleted: true}, nil)

		_, err := uc.UpdateTaskList(ctx, 10, "New", 1)
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, appCode(t, err))
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should reject renaming a soft-deleted list the caller owns", func(t *testing.T) {
		mockRepo := new(MockTaskListRepo)
		uc := usecase.NewTaskListUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(10)).Return(&domain.TaskList{ID: 10, Name: "Old", UserID: 1, Deleted: true}, nil)

		_, err := uc.UpdateTaskList(ctx, 10, "New", 1)
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
	})
}

func TestSetDeleted(t *testing.T) {
	ctx := context.Background()

	t.Run("Should soft-delete a normal list", func(t *testing.T) {
		mockRepo := new(MockTaskListRepo)
		uc := usecase.NewTaskListUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(10)).Return(&domain.TaskList{ID: 10, Name: "Groceries", UserID: 1}, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.TaskList")).Return(nil)

		list, err := uc.SetDeleted(ctx, 10, true, 1)
		assert.NoError(t, err)
		assert.True(t, list.Deleted)
	})

	t.Run("Should restore a soft-deleted list", func(t *testing.T) {
		mockRepo := new(MockTaskListRepo)
		uc := usecase.NewTaskListUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(10)).Return(&domain.TaskList{ID: 10, Name: "Groceries", UserID: 1, Deleted: true}, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.TaskList")).Return(nil)

		list, err := uc.SetDeleted(ctx, 10, false, 1)
		assert.NoError(t, err)
		assert.False(t, list.Deleted)
	})

	t.Run("Should refuse to soft-delete the default list even for its owner", func(t *testing.T) {
		mockRepo := new(MockTaskListRepo)
		uc := usecase.NewTaskListUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(5)).Return(&domain.TaskList{ID: 5, Name: domain.DefaultTaskListName, UserID: 1, IsDefault: true}, nil)

		_, err := uc.SetDeleted(ctx, 5, true, 1)
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDeleteTaskList(t *testing.T) {
	ctx := context.Background()

	t.Run("Should hard-delete an owned list", func(t *testing.T) {
		mockRepo := new(MockTaskListRepo)
		uc := usecase.NewTaskListUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(10)).Return(&domain.TaskList{ID: 10, Name: "Groceries", UserID: 1}, nil)
		mockRepo.On("Delete", ctx, int64(10)).Return(nil)

		err := uc.DeleteTaskList(ctx, 10, 1)
		assert.NoError(t, err)
		mockRepo.AssertCalled(t, "Delete", ctx, int64(10))
	})

	t.Run("Should refuse to delete the default list", func(t *testing.T) {
		mockRepo := new(MockTaskListRepo)
		uc := usecase.NewTaskListUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(5)).Return(&domain.TaskList{ID: 5, Name: domain.DefaultTaskListName, UserID: 1, IsDefault: true}, nil)

		err := uc.DeleteTaskList(ctx, 5, 1)
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should refuse to delete a foreign list", func(t *testing.T) {
		mockRepo := new(MockTaskListRepo)
		uc := usecase.NewTaskListUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(10)).Return(&domain.TaskList{ID: 10, Name: "Groceries", UserID: 2}, nil)

		err := uc.DeleteTaskList(ctx, 10, 1)
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, appCode(t, err))
	})
}

func TestGetTaskListsForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return each list once, soft-deleted included", func(t *testing.T) {
		mockRepo := new(MockTaskListRepo)
		uc := usecase.NewTaskListUsecase(mockRepo)

		mockRepo.On("GetByUser", ctx, int64(1)).Return([]domain.TaskList{
			{ID: 5, Name: domain.DefaultTaskListName, UserID: 1, IsDefault: true},
			{ID: 10, Name: "Groceries", UserID: 1, Deleted: true},
		}, nil)

		lists, err := uc.GetTaskListsForUser(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, lists, 2)

		seen := map[int64]int{}
		for _, l := range lists {
			seen[l.ID]++
		}
		assert.Equal(t, 1, seen[5])
		assert.Equal(t, 1, seen[10])
	})
}
