package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/irlquest-backend/pkg/errors"
)

// AddKnowledgeRequest 지식 레코드 추가 요청
type AddKnowledgeRequest struct {
	Content     string                 `json:"content" validate:"required"`
	ContentType string                 `json:"content_type" validate:"required,max=50"`
	Tags        []string               `json:"tags" validate:"omitempty,dive,max=50"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// KnowledgeHandler 지식 레코드 HTTP 핸들러
type KnowledgeHandler struct {
	logger           *zap.Logger
	knowledgeUseCase interfaces.KnowledgeUseCase
}

// NewKnowledgeHandler 지식 핸들러 생성
func NewKnowledgeHandler(logger *zap.Logger, knowledgeUseCase interfaces.KnowledgeUseCase) *KnowledgeHandler {
	return &KnowledgeHandler{
		logger:           logger,
		knowledgeUseCase: knowledgeUseCase,
	}
}

// Add handles POST /api/v1/rag/knowledge
func (h *KnowledgeHandler) Add(c echo.Context) error {
	var req AddKnowledgeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	knowledge, err := h.knowledgeUseCase.Add(c.Request().Context(), dto.AddKnowledgeParams{
		Content:     req.Content,
		ContentType: req.ContentType,
		Tags:        req.Tags,
		Metadata:    req.Metadata,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toKnowledgeResponse(knowledge))
}

// Search handles GET /api/v1/rag/knowledge?q=&limit=
func (h *KnowledgeHandler) Search(c echo.Context) error {
	var limit int
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			return apperrors.InvalidArgument("잘못된 limit 파라미터입니다")
		}
		limit = parsed
	}

	records, err := h.knowledgeUseCase.Search(c.Request().Context(), c.QueryParam("q"), limit)
	if err != nil {
		return err
	}

	out := make([]KnowledgeResponse, len(records))
	for i, k := range records {
		out[i] = toKnowledgeResponse(k)
	}
	return c.JSON(http.StatusOK, out)
}
