package v1

import (
	"time"

	"go-todo-backend/internal/domain"
)

// DTOs deliberately omit owning-user and list back-references.

type UserDTO struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Bio      *string  `json:"bio,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}

type TaskSummaryDTO struct {
	ID        int64   `json:"id"`
	Title     *string `json:"title"`
	Completed bool    `json:"completed"`
}

type TaskListDTO struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Deleted   bool             `json:"deleted"`
	IsDefault bool             `json:"isDefault"`
	Tasks     []TaskSummaryDTO `json:"tasks"`
}

type TaskDTO struct {
	ID          int64     `json:"id"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

func toUserDTO(user *domain.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Bio:      user.Bio,
		Roles:    user.Roles,
	}
}

func toTaskListDTO(list *domain.TaskList, tasks []domain.Task) TaskListDTO {
	summaries := make([]TaskSummaryDTO, 0, len(tasks))
	for _, t := range tasks {
		summaries = append(summaries, TaskSummaryDTO{
			ID:        t.ID,
			Title:     t.Description,
			Completed: t.Completed,
		})
	}
	return TaskListDTO{
		ID:        list.ID,
		Name:      list.Name,
		Deleted:   list.Deleted,
		IsDefault: list.IsDefault,
		Tasks:     summaries,
	}
}

func toTaskDTO(task *domain.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
	}
}

func toTaskDTOs(tasks []domain.Task) []TaskDTO {
	out := make([]TaskDTO, 0, len(tasks))
	for i := range tasks {
		out = append(out, toTaskDTO(&tasks[i]))
	}
	return out
}
