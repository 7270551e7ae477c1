package usecase

import (
	"strings"
	"unicode/utf8"

	"go-todo-backend/pkg/apperror"
)

const maxListNameLen = 255

func requireValidUser(userID int64) error {
	if userID <= 0 {
		return apperror.BadRequest("Invalid user")
	}
	return nil
}

func requireValidName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperror.BadRequest("Task list name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxListNameLen {
		return apperror.BadRequest("Task list name is too long")
	}
	return nil
}
