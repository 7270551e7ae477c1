package usecase

import (
	"context"
	"time"

	"go-todo-backend/internal/domain"
	"go-todo-backend/pkg/apperror"
	"go-todo-backend/pkg/auth"
)

// welcomeTaskDescription seeds the first task in a new user's default list.
const welcomeTaskDescription = "Welcome! Add your first task."

type userUsecase struct {
	userRepo domain.UserRepository
	roleRepo domain.RoleRepository
	listUC   domain.TaskListUsecase
	taskRepo domain.TaskRepository
	tokens   *auth.TokenManager
}

func NewUserUsecase(
	userRepo domain.UserRepository,
	roleRepo domain.RoleRepository,
	listUC domain.TaskListUsecase,
	taskRepo domain.TaskRepository,
	tokens *auth.TokenManager,
) domain.UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		listUC:   listUC,
		taskRepo: taskRepo,
		tokens:   tokens,
	}
}

// Register creates the user, assigns the default role (seeding it if
// missing) and provisions the default task list with a welcome task.
func (u *userUsecase) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	taken, err := u.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.Conflict("Username is already taken")
	}

	taken, err = u.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.Conflict("Email is already in use")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Roles:        []string{domain.RoleUser},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	role, err := u.roleRepo.GetByName(ctx, domain.RoleUser)
	if err != nil {
		return nil, err
	}
	if role == nil {
		role = &domain.Role{Name: domain.RoleUser}
		if err := u.roleRepo.Create(ctx, role); err != nil {
			return nil, err
		}
	}
	if err := u.roleRepo.AssignToUser(ctx, user.ID, role.ID); err != nil {
		return nil, err
	}

	list, err := u.listUC.GetOrCreateDefault(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	description := welcomeTaskDescription
	welcome := &domain.Task{
		Description: &description,
		CreatedAt:   now,
		TaskListID:  list.ID,
		UserID:      user.ID,
	}
	if err := u.taskRepo.Create(ctx, welcome); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a session token. Absence and a
// wrong password are indistinguishable to the caller.
func (u *userUsecase) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", apperror.Unauthorized("Invalid username or password")
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, "", apperror.Unauthorized("Invalid username or password")
	}

	token, err := u.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	user.Roles, err = u.roleRepo.GetForUser(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (u *userUsecase) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *userUsecase) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *userUsecase) UpdateProfile(ctx context.Context, userID int64, bio *string) (*domain.User, error) {
	user, err := u.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Bio = bio
	user.UpdatedAt = time.Now()
	if err := u.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) UpdatePassword(ctx context.Context, userID int64, newPassword string) error {
	user, err := u.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperror.Internal(err)
	}
	return u.userRepo.UpdatePassword(ctx, user.ID, hash)
}

func (u *userUsecase) DeleteAccount(ctx context.Context, userID int64) error {
	user, err := u.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	// The store cascades the user's task lists and tasks.
	return u.userRepo.Delete(ctx, user.ID)
}
