package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/questgen"
	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/http/middleware"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/irlquest-backend/pkg/errors"
)

// GenerateQuestRequest 퀘스트 생성 요청.
// user_level은 호환을 위해 받기만 하고 인증된 사용자의 레벨을 사용합니다.
type GenerateQuestRequest struct {
	TodoText             string   `json:"todo_text" validate:"required,max=2000"`
	Context              string   `json:"context" validate:"max=2000"`
	DifficultyPreference *int     `json:"difficulty_preference"`
	ThemePreference      string   `json:"theme_preference"`
	UserLevel            *int     `json:"user_level"`
	TagsOverride         []string `json:"tags_override" validate:"omitempty,dive,max=50"`
}

// EnhanceTaskRequest 작업 강화 요청
type EnhanceTaskRequest struct {
	TaskText             string `json:"task_text" validate:"required,max=2000"`
	Context              string `json:"context" validate:"max=2000"`
	DifficultyPreference *int   `json:"difficulty_preference"`
	UserLevel            *int   `json:"user_level"`
}

// TodoToQuestRequest 데이터셋 일괄 생성 요청
type TodoToQuestRequest struct {
	Todos                []string `json:"todos"`
	Context              string   `json:"context"`
	DifficultyPreference *int     `json:"difficulty_preference"`
}

// TaskTagsRequest 데이터셋 태그 요청
type TaskTagsRequest struct {
	Tasks []string `json:"tasks"`
}

// GenerationHandler 퀘스트 생성 엔진 HTTP 핸들러
type GenerationHandler struct {
	logger            *zap.Logger
	generationUseCase interfaces.GenerationUseCase
}

// NewGenerationHandler 생성 핸들러 생성
func NewGenerationHandler(logger *zap.Logger, generationUseCase interfaces.GenerationUseCase) *GenerationHandler {
	return &GenerationHandler{
		logger:            logger,
		generationUseCase: generationUseCase,
	}
}

// GenerateQuest handles POST /api/v1/rag/generate-quest
func (h *GenerationHandler) GenerateQuest(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	var req GenerateQuestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	params := dto.GenerateQuestParams{
		TodoText:             req.TodoText,
		Context:              req.Context,
		DifficultyPreference: req.DifficultyPreference,
		TagsOverride:         req.TagsOverride,
	}
	if req.ThemePreference != "" {
		theme, err := questgen.ParseTheme(req.ThemePreference)
		if err != nil {
			return apperrors.NewAppError(apperrors.ErrInvalidArgument, "지원하지 않는 테마입니다: "+req.ThemePreference, err)
		}
		params.ThemePreference = &theme
	}

	quest, err := h.generationUseCase.GenerateQuest(c.Request().Context(), actor, params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quest)
}

// EnhanceTask handles POST /api/v1/rag/enhance-task
func (h *GenerationHandler) EnhanceTask(c echo.Context) error {
	actor, err := middleware.GetUserFromContext(c)
	if err != nil {
		return err
	}

	var req EnhanceTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	enhanced, err := h.generationUseCase.EnhanceTask(c.Request().Context(), actor, dto.EnhanceTaskParams{
		TaskText:             req.TaskText,
		Context:              req.Context,
		DifficultyPreference: req.DifficultyPreference,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enhanced)
}

// TodoToQuest handles POST /api/v1/ml/dataset/todo-to-quest
func (h *GenerationHandler) TodoToQuest(c echo.Context) error {
	var req TodoToQuestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pairs, err := h.generationUseCase.GenerateQuests(c.Request().Context(), dto.BulkGenerateParams{
		Todos:                req.Todos,
		Context:              req.Context,
		DifficultyPreference: req.DifficultyPreference,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pairs)
}

// TaskTags handles POST /api/v1/ml/dataset/task-tags
func (h *GenerationHandler) TaskTags(c echo.Context) error {
	var req TaskTagsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	records, err := h.generationUseCase.TagTasks(c.Request().Context(), req.Tasks)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}
