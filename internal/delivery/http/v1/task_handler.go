package v1

import (
	"encoding/json"
	"net/http"

	"go-todo-backend/internal/delivery/http/response"
	"go-todo-backend/internal/domain"
	"go-todo-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskUC domain.TaskUsecase
}

func NewTaskHandler(protected *gin.RouterGroup, taskUC domain.TaskUsecase) {
	handler := &TaskHandler{taskUC: taskUC}

	todos := protected.Group("/todos")
	{
		todos.POST("", handler.Create)
		todos.GET("", handler.GetAllForUser)
		todos.GET("/:id", handler.GetForList)
		todos.PUT("/:id", handler.Update)
		todos.DELETE("/:id", handler.Delete)
	}
}

type TaskCreateRequest struct {
	TaskListID  *int64  `json:"taskListId"`
	Description *string `json:"description"`
}

// TaskUpdateRequest keeps description as raw JSON so an explicit null
// (clear the description) is distinguishable from an omitted key.
type TaskUpdateRequest struct {
	Description json.RawMessage `json:"description"`
	Completed   *bool           `json:"completed"`
}

func (r *TaskUpdateRequest) toPatch() (domain.TaskPatch, error) {
	patch := domain.TaskPatch{Completed: r.Completed}
	if len(r.Description) > 0 {
		patch.DescriptionSet = true
		if string(r.Description) != "null" {
			var s string
			if err := json.Unmarshal(r.Description, &s); err != nil {
				return patch, apperror.BadRequest("Description must be a string or null")
			}
			patch.Description = &s
		}
	}
	return patch, nil
}

// Create godoc
// @Summary      Create a task
// @Description  Places the task in the given list, or in the caller's default list when taskListId is omitted
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      TaskCreateRequest  true  "Task JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /todos [post]
// @Security     BearerAuth
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	task, err := h.taskUC.CreateTask(c.Request.Context(), req.Description, req.TaskListID, callerID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Task created", toTaskDTO(task))
}

// GetAllForUser godoc
// @Summary      All tasks of the caller across lists
// @Tags         tasks
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /todos [get]
// @Security     BearerAuth
func (h *TaskHandler) GetAllForUser(c *gin.Context) {
	tasks, err := h.taskUC.GetTasksForUser(c.Request.Context(), callerID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", toTaskDTOs(tasks))
}

// GetForList godoc
// @Summary      Tasks of one task list
// @Tags         tasks
// @Produce      json
// @Param        id   path      int  true  "Task list id"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /todos/{id} [get]
// @Security     BearerAuth
func (h *TaskHandler) GetForList(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	tasks, err := h.taskUC.GetTasksForList(c.Request.Context(), id, callerID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", toTaskDTOs(tasks))
}

// Update godoc
// @Summary      Update a task
// @Description  Partial update; omitted fields are unchanged and "description": null clears it
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Task id"
// @Param        body  body      TaskUpdateRequest  true  "Patch JSON"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /todos/{id} [put]
// @Security     BearerAuth
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	patch, err := req.toPatch()
	if err != nil {
		c.Error(err)
		return
	}

	task, err := h.taskUC.UpdateTask(c.Request.Context(), id, patch, callerID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Task updated", toTaskDTO(task))
}

// Delete godoc
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        id   path      int  true  "Task id"
// @Success      204  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /todos/{id} [delete]
// @Security     BearerAuth
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.taskUC.DeleteTask(c.Request.Context(), id, callerID(c)); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
