package errors

import (
	"go.uber.org/zap"
)

// LogError는 에러를 구조화된 로그로 기록합니다.
// 4xx 계열 코드는 Warn, 그 외는 Error 레벨로 기록합니다.
func LogError(logger *zap.Logger, err error, msg string, fields ...zap.Field) {
	if err == nil || logger == nil {
		return
	}

	allFields := make([]zap.Field, 0, len(fields)+2)
	allFields = append(allFields, zap.Error(err))

	// AppError에서 추가 정보 추출
	var appErr *AppError
	if As(err, &appErr) {
		allFields = append(allFields, zap.String("error_code", appErr.Code()))
	}

	allFields = append(allFields, fields...)

	if appErr != nil && ToHTTPStatus(appErr.Code()) < 500 {
		logger.Warn(msg, allFields...)
		return
	}
	logger.Error(msg, allFields...)
}
