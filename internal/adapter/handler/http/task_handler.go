package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/http/middleware"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/interfaces"
)

// CreateTaskRequest 작업 생성 요청
type CreateTaskRequest struct {
	Title             string     `json:"title" validate:"required,max=200"`
	Description       string     `json:"description"`
	Priority          string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	Deadline          *time.Time `json:"deadline"`
	EstimatedDuration *int       `json:"estimated_duration" validate:"omitempty,min=1"`
	Difficulty        *int       `json:"difficulty"`
	ExperienceReward  *int       `json:"experience_reward" validate:"omitempty,min=0"`
	Tags              []string   `json:"tags" validate:"omitempty,dive,max=50"`
	QuestID           *string    `json:"quest_id"`
}

// UpdateTaskRequest 작업 수정 요청.
// completed는 이전 클라이언트 호환용이며 status가 함께 오면 status가 우선합니다.
type UpdateTaskRequest struct {
	Title             *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description       *string    `json:"description"`
	Status            *string    `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Completed         *bool      `json:"completed"`
	Priority          *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	Deadline          *time.Time `json:"deadline"`
	EstimatedDuration *int       `json:"estimated_duration" validate:"omitempty,min=1"`
	Difficulty        *int       `json:"difficulty"`
	ExperienceReward  *int       `json:"experience_reward" validate:"omitempty,min=0"`
	Tags              []string   `json:"tags" validate:"omitempty,dive,max=50"`
	QuestID           *string    `json:"quest_id"`
}

// TaskHandler 작업 CRUD HTTP 핸들러
type TaskHandler struct {
	logger      *zap.Logger
	taskUseCase interfaces.TaskUseCase
}

// NewTaskHandler 작업 핸들러 생성
func NewTaskHandler(logger *zap.Logger, taskUseCase interfaces.TaskUseCase) *TaskHandler {
	return &TaskHandler{
		logger:      logger,
		taskUseCase: taskUseCase,
	}
}

// List handles GET /api/v1/tasks
func (h *TaskHandler) List(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	params, err := parseListParams(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskUseCase.List(c.Request().Context(), actor, params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// Create handles POST /api/v1/tasks
func (h *TaskHandler) Create(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	var req CreateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.taskUseCase.Create(c.Request().Context(), actor, dto.CreateTaskParams{
		Title:             req.Title,
		Description:       req.Description,
		Priority:          entity.Priority(req.Priority),
		Deadline:          req.Deadline,
		EstimatedDuration: req.EstimatedDuration,
		Difficulty:        req.Difficulty,
		ExperienceReward:  req.ExperienceReward,
		Tags:              req.Tags,
		QuestID:           req.QuestID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// Get handles GET /api/v1/tasks/:id
func (h *TaskHandler) Get(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	task, err := h.taskUseCase.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Update handles PUT /api/v1/tasks/:id
func (h *TaskHandler) Update(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	var req UpdateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	params := dto.UpdateTaskParams{
		Title:             req.Title,
		Description:       req.Description,
		Deadline:          req.Deadline,
		EstimatedDuration: req.EstimatedDuration,
		Difficulty:        req.Difficulty,
		ExperienceReward:  req.ExperienceReward,
		Tags:              req.Tags,
		QuestID:           req.QuestID,
	}

	switch {
	case req.Status != nil:
		status := entity.TaskStatus(*req.Status)
		params.Status = &status
	case req.Completed != nil:
		status := entity.TaskStatusPending
		if *req.Completed {
			status = entity.TaskStatusCompleted
		}
		params.Status = &status
	}

	if req.Priority != nil {
		priority := entity.Priority(*req.Priority)
		params.Priority = &priority
	}

	task, err := h.taskUseCase.Update(c.Request().Context(), actor, c.Param("id"), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Complete handles POST /api/v1/tasks/:id/complete
func (h *TaskHandler) Complete(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	task, err := h.taskUseCase.Complete(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /api/v1/tasks/:id
func (h *TaskHandler) Delete(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	if err := h.taskUseCase.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
