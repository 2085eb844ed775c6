package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ToHTTPStatus는 에러 코드를 HTTP 상태 코드로 변환합니다
func ToHTTPStatus(code string) int {
	if status, ok := httpStatusMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ToHTTPError는 에러를 Echo HTTP 에러로 변환합니다.
// 내부 에러(5xx)는 원인 메시지를 응답에 노출하지 않습니다.
func ToHTTPError(err error) *echo.HTTPError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		status := ToHTTPStatus(appErr.Code())
		if status >= http.StatusInternalServerError {
			return echo.NewHTTPError(status, http.StatusText(status)).SetInternal(err)
		}
		return echo.NewHTTPError(status, appErr.Message()).SetInternal(err)
	}

	// Echo 에러인 경우 그대로 반환
	var echoErr *echo.HTTPError
	if As(err, &echoErr) {
		return echoErr
	}

	// 기본 에러는 500으로 처리
	return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).SetInternal(err)
}

// FromHTTPError는 Echo HTTP 에러를 내부 에러로 변환합니다
func FromHTTPError(err error) error {
	if err == nil {
		return nil
	}

	// 이미 AppError인 경우 그대로 반환
	var appErr *AppError
	if As(err, &appErr) {
		return err
	}

	var echoErr *echo.HTTPError
	if As(err, &echoErr) {
		msg, ok := echoErr.Message.(string)
		if !ok {
			msg = "HTTP error"
		}
		return NewAppError(httpStatusToCode(echoErr.Code), msg, nil)
	}

	// 기본 에러는 Internal로 처리
	return NewAppError(ErrInternal, err.Error(), err)
}

// httpStatusToCode는 HTTP 상태 코드를 내부 에러 코드로 변환합니다
func httpStatusToCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrInvalidArgument
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusConflict:
		return ErrConflict
	case http.StatusGatewayTimeout:
		return ErrTimeout
	case http.StatusServiceUnavailable:
		return ErrUnavailable
	default:
		return ErrInternal
	}
}
