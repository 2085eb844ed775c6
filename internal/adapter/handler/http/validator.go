package http

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
	apperrors "github.com/wekeepgrowing/irlquest-backend/pkg/errors"
)

// RequestValidator validator/v10 기반 echo.Validator 구현체
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator 요청 검증기 생성. 에러 메시지에는 JSON 필드 이름을 사용합니다.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

// Validate 구조체 태그 규칙을 검사합니다
func (rv *RequestValidator) Validate(i interface{}) error {
	if err := rv.validate.Struct(i); err != nil {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, formatValidationError(err), err)
	}
	return nil
}

func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "잘못된 요청입니다"
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Field() + ": " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		messages = append(messages, msg)
	}
	return "입력값 검증 실패 (" + strings.Join(messages, "; ") + ")"
}

// bindAndValidate 요청 본문을 바인딩하고 검증합니다
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, "잘못된 요청 본문입니다", err)
	}
	return c.Validate(req)
}

// parseListParams status, limit, offset 쿼리 파라미터 파싱
func parseListParams(c echo.Context) (dto.ListParams, error) {
	params := dto.ListParams{Status: c.QueryParam("status")}

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return params, apperrors.InvalidArgument("잘못된 limit 파라미터입니다")
		}
		params.Limit = limit
	}

	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return params, apperrors.InvalidArgument("잘못된 offset 파라미터입니다")
		}
		params.Offset = offset
	}

	return params, nil
}
