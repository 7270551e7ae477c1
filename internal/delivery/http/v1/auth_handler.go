package v1

import (
	"net/http"

	"go-todo-backend/config"
	"go-todo-backend/internal/delivery/http/response"
	"go-todo-backend/internal/domain"
	"go-todo-backend/pkg/apperror"
	"go-todo-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userUC domain.UserUsecase
	cfg    *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, userUC domain.UserUsecase, cfg *config.Config, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{userUC: userUC, cfg: cfg}

	auth := public.Group("/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", loginLimiter, handler.Login)
		auth.POST("/logout", handler.Logout)
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates the account, assigns the default role and provisions a default task list
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Registration JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatValidationErrorsAsString(err)))
		return
	}

	user, err := h.userUC.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", toUserDTO(user))
}

// Login godoc
// @Summary      Authenticate a user
// @Description  Verifies credentials and issues a session token, also set as an auth_token cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Login JSON"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatValidationErrorsAsString(err)))
		return
	}

	user, token, err := h.userUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", token, int(h.cfg.JWTTTL.Seconds()), "/", "", h.cfg.CookieSecure, true)

	response.Success(c, http.StatusOK, "Login successful", LoginResponse{
		Token: token,
		User:  toUserDTO(user),
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Clears the auth_token cookie; the bearer token simply expires
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", "", -1, "/", "", h.cfg.CookieSecure, true)
	response.Success(c, http.StatusOK, "Logged out", nil)
}
