package errors

import (
	"errors"
	"fmt"
)

// 표준 라이브러리 함수 재노출
var (
	New    = errors.New
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// Error는 기본 에러 인터페이스를 확장합니다
type Error interface {
	error
	Code() string  // 에러 코드 반환
	Unwrap() error // 내부 에러 반환
}

// AppError는 기본 에러 구현체입니다
type AppError struct {
	code    string
	message string
	err     error
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

func (e *AppError) Code() string {
	return e.code
}

// Message 내부 에러를 제외한 사용자용 메시지
func (e *AppError) Message() string {
	return e.message
}

func (e *AppError) Unwrap() error {
	return e.err
}

// NewAppError는 새 애플리케이션 에러를 생성합니다
func NewAppError(code string, message string, err error) *AppError {
	return &AppError{
		code:    code,
		message: message,
		err:     err,
	}
}

// Wrap은 기존 에러를 래핑합니다
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// 기존 AppError인 경우 코드를 유지합니다
	var appErr *AppError
	if As(err, &appErr) {
		return NewAppError(appErr.Code(), message, err)
	}

	return NewAppError(ErrInternal, message, err)
}

// CodeOf 에러 체인에서 AppError 코드를 찾아 반환합니다. 없으면 INTERNAL.
func CodeOf(err error) string {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.Code()
	}
	return ErrInternal
}

// HasCode 에러 체인에 주어진 코드의 AppError가 있는지 확인합니다
func HasCode(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}

// NotFound 리소스 없음 에러
func NotFound(message string) *AppError {
	return NewAppError(ErrNotFound, message, nil)
}

// InvalidArgument 잘못된 입력 에러
func InvalidArgument(message string) *AppError {
	return NewAppError(ErrInvalidArgument, message, nil)
}

// Unauthenticated 인증 실패 에러
func Unauthenticated(message string) *AppError {
	return NewAppError(ErrUnauthenticated, message, nil)
}

// Unauthorized 권한 없음 에러
func Unauthorized(message string) *AppError {
	return NewAppError(ErrUnauthorized, message, nil)
}

// Conflict 중복 리소스 에러
func Conflict(message string) *AppError {
	return NewAppError(ErrConflict, message, nil)
}

// Internal 내부 에러
func Internal(message string, err error) *AppError {
	return NewAppError(ErrInternal, message, err)
}
