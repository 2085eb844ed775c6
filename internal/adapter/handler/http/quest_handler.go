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

// CreateQuestRequest 퀘스트 생성 요청
type CreateQuestRequest struct {
	Title             string                 `json:"title" validate:"required,max=200"`
	Description       string                 `json:"description"`
	Difficulty        *int                   `json:"difficulty"`
	Priority          string                 `json:"priority" validate:"omitempty,oneof=low medium high"`
	Deadline          *time.Time             `json:"deadline"`
	RewardExperience  *int                   `json:"reward_experience" validate:"omitempty,min=0"`
	RewardDescription string                 `json:"reward_description"`
	Tags              []string               `json:"tags" validate:"omitempty,dive,max=50"`
	IsPublic          bool                   `json:"is_public"`
	QuestType         string                 `json:"quest_type" validate:"omitempty,max=50"`
	Metadata          map[string]interface{} `json:"metadata"`
}

// UpdateQuestRequest 퀘스트 수정 요청
type UpdateQuestRequest struct {
	Title             *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description       *string    `json:"description"`
	Difficulty        *int       `json:"difficulty"`
	Status            *string    `json:"status" validate:"omitempty,oneof=active completed abandoned"`
	Priority          *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	Deadline          *time.Time `json:"deadline"`
	RewardExperience  *int       `json:"reward_experience" validate:"omitempty,min=0"`
	RewardDescription *string    `json:"reward_description"`
	Tags              []string   `json:"tags" validate:"omitempty,dive,max=50"`
	IsPublic          *bool      `json:"is_public"`
}

// QuestHandler 퀘스트 CRUD HTTP 핸들러
type QuestHandler struct {
	logger       *zap.Logger
	questUseCase interfaces.QuestUseCase
}

// NewQuestHandler 퀘스트 핸들러 생성
func NewQuestHandler(logger *zap.Logger, questUseCase interfaces.QuestUseCase) *QuestHandler {
	return &QuestHandler{
		logger:       logger,
		questUseCase: questUseCase,
	}
}

// List handles GET /api/v1/quests
func (h *QuestHandler) List(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	params, err := parseListParams(c)
	if err != nil {
		return err
	}

	quests, err := h.questUseCase.List(c.Request().Context(), actor, params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuestResponses(quests))
}

// Create handles POST /api/v1/quests
func (h *QuestHandler) Create(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	var req CreateQuestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	quest, err := h.questUseCase.Create(c.Request().Context(), actor, dto.CreateQuestParams{
		Title:             req.Title,
		Description:       req.Description,
		Difficulty:        req.Difficulty,
		Priority:          entity.Priority(req.Priority),
		Deadline:          req.Deadline,
		RewardExperience:  req.RewardExperience,
		RewardDescription: req.RewardDescription,
		Tags:              req.Tags,
		IsPublic:          req.IsPublic,
		QuestType:         req.QuestType,
		Metadata:          req.Metadata,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toQuestResponse(quest))
}

// Get handles GET /api/v1/quests/:id
func (h *QuestHandler) Get(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	quest, err := h.questUseCase.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuestResponse(quest))
}

// Update handles PUT /api/v1/quests/:id
func (h *QuestHandler) Update(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	var req UpdateQuestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	params := dto.UpdateQuestParams{
		Title:             req.Title,
		Description:       req.Description,
		Difficulty:        req.Difficulty,
		Deadline:          req.Deadline,
		RewardExperience:  req.RewardExperience,
		RewardDescription: req.RewardDescription,
		Tags:              req.Tags,
		IsPublic:          req.IsPublic,
	}
	if req.Status != nil {
		status := entity.QuestStatus(*req.Status)
		params.Status = &status
	}
	if req.Priority != nil {
		priority := entity.Priority(*req.Priority)
		params.Priority = &priority
	}

	quest, err := h.questUseCase.Update(c.Request().Context(), actor, c.Param("id"), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuestResponse(quest))
}

// Complete handles POST /api/v1/quests/:id/complete
func (h *QuestHandler) Complete(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	quest, err := h.questUseCase.Complete(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuestResponse(quest))
}

// Delete handles DELETE /api/v1/quests/:id
func (h *QuestHandler) Delete(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	if err := h.questUseCase.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
