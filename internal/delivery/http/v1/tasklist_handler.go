package v1

import (
	"net/http"
	"strconv"

	"go-todo-backend/internal/delivery/http/response"
	"go-todo-backend/internal/domain"
	"go-todo-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type TaskListHandler struct {
	listUC domain.TaskListUsecase
	taskUC domain.TaskUsecase
}

func NewTaskListHandler(protected *gin.RouterGroup, listUC domain.TaskListUsecase, taskUC domain.TaskUsecase) {
	handler := &TaskListHandler{listUC: listUC, taskUC: taskUC}

	lists := protected.Group("/todos/list")
	{
		lists.POST("", handler.Create)
		lists.GET("", handler.GetAll)
		lists.GET("/default", handler.GetDefault)
		lists.PUT("/:id", handler.Update)
		lists.PATCH("/:id/deleted", handler.SetDeleted)
		lists.DELETE("/:id", handler.Delete)
	}
}

type TaskListRequest struct {
	Name string `json:"name"`
}

type SetDeletedRequest struct {
	Deleted bool `json:"deleted"`
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest("Invalid id"))
		return 0, false
	}
	return id, true
}

// Create godoc
// @Summary      Create a task list
// @Tags         task-lists
// @Accept       json
// @Produce      json
// @Param        body  body      TaskListRequest  true  "Task list JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /todos/list [post]
// @Security     BearerAuth
func (h *TaskListHandler) Create(c *gin.Context) {
	var req TaskListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	list, err := h.listUC.CreateTaskList(c.Request.Context(), callerID(c), req.Name)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Task list created", toTaskListDTO(list, nil))
}

// GetAll godoc
// @Summary      List the caller's task lists
// @Description  Returns every list including soft-deleted ones, each with its tasks
// @Tags         task-lists
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /todos/list [get]
// @Security     BearerAuth
func (h *TaskListHandler) GetAll(c *gin.Context) {
	userID := callerID(c)
	lists, err := h.listUC.GetTaskListsForUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]TaskListDTO, 0, len(lists))
	for i := range lists {
		tasks, err := h.taskUC.GetTasksForList(c.Request.Context(), lists[i].ID, userID)
		if err != nil {
			c.Error(err)
			return
		}
		dtos = append(dtos, toTaskListDTO(&lists[i], tasks))
	}
	response.Success(c, http.StatusOK, "OK", dtos)
}

// GetDefault godoc
// @Summary      The caller's default task list
// @Description  Provisions the default list on first use
// @Tags         task-lists
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /todos/list/default [get]
// @Security     BearerAuth
func (h *TaskListHandler) GetDefault(c *gin.Context) {
	userID := callerID(c)
	list, err := h.listUC.GetOrCreateDefault(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	tasks, err := h.taskUC.GetTasksForList(c.Request.Context(), list.ID, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", toTaskListDTO(list, tasks))
}

// Update godoc
// @Summary      Rename a task list
// @Tags         task-lists
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Task list id"
// @Param        body  body      TaskListRequest  true  "Task list JSON"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /todos/list/{id} [put]
// @Security     BearerAuth
func (h *TaskListHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req TaskListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	list, err := h.listUC.UpdateTaskList(c.Request.Context(), id, req.Name, callerID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Task list updated", toTaskListDTO(list, nil))
}

// SetDeleted godoc
// @Summary      Soft-delete or restore a task list
// @Tags         task-lists
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Task list id"
// @Param        body  body      SetDeletedRequest  true  "Deleted flag JSON"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /todos/list/{id}/deleted [patch]
// @Security     BearerAuth
func (h *TaskListHandler) SetDeleted(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req SetDeletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	list, err := h.listUC.SetDeleted(c.Request.Context(), id, req.Deleted, callerID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Task list updated", toTaskListDTO(list, nil))
}

// Delete godoc
// @Summary      Delete a task list
// @Description  Removes the list and cascades to its tasks; the default list cannot be deleted
// @Tags         task-lists
// @Produce      json
// @Param        id   path      int  true  "Task list id"
// @Success      204  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /todos/list/{id} [delete]
// @Security     BearerAuth
func (h *TaskListHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.listUC.DeleteTaskList(c.Request.Context(), id, callerID(c)); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
