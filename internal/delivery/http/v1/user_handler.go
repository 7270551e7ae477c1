package v1

import (
	"net/http"

	"go-todo-backend/internal/delivery/http/response"
	"go-todo-backend/internal/domain"
	"go-todo-backend/pkg/apperror"
	"go-todo-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(protected *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := protected.Group("/users")
	{
		users.GET("/me", handler.Me)
		users.PUT("/me", handler.UpdateProfile)
		users.PUT("/me/password", handler.UpdatePassword)
		users.DELETE("/me", handler.DeleteAccount)
	}
}

type UpdateProfileRequest struct {
	Bio *string `json:"bio" binding:"omitempty,max=1000,no_emoji"`
}

type UpdatePasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// callerID returns the authenticated user id stashed by AuthMiddleware.
func callerID(c *gin.Context) int64 {
	v, _ := c.Get(string(domain.KeyUserID))
	id, _ := v.(int64)
	return id
}

// Me godoc
// @Summary      Current user profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.userUC.GetByID(c.Request.Context(), callerID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", toUserDTO(user))
}

// UpdateProfile godoc
// @Summary      Update profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateProfileRequest  true  "Profile JSON"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /users/me [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatValidationErrorsAsString(err)))
		return
	}

	user, err := h.userUC.UpdateProfile(c.Request.Context(), callerID(c), req.Bio)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", toUserDTO(user))
}

// UpdatePassword godoc
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      UpdatePasswordRequest  true  "Password JSON"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /users/me/password [put]
// @Security     BearerAuth
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatValidationErrorsAsString(err)))
		return
	}

	if err := h.userUC.UpdatePassword(c.Request.Context(), callerID(c), req.NewPassword); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password updated", nil)
}

// DeleteAccount godoc
// @Summary      Delete account
// @Description  Permanently removes the account with its task lists and tasks
// @Tags         users
// @Produce      json
// @Success      204  {object}  response.Response
// @Router       /users/me [delete]
// @Security     BearerAuth
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	if err := h.userUC.DeleteAccount(c.Request.Context(), callerID(c)); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
