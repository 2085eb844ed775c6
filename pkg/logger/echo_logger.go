// File: pkg/logger/echo_logger.go
package logger

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	apperrors "github.com/wekeepgrowing/irlquest-backend/pkg/errors"
)

// 요청 로그에서 제외할 경로
var skippedPaths = map[string]struct{}{
	"/health":  {},
	"/ready":   {},
	"/metrics": {},
}

// NewEchoRequestLogger는 Echo 서버를 위한 Request Logger를 생성합니다.
// zap을 사용하여 HTTP 요청과 응답을 로깅합니다.
func NewEchoRequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	config := middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			_, skip := skippedPaths[c.Request().URL.Path]
			return skip
		},
		// 다음 미들웨어나 핸들러가 실행되기 전 실행되는 함수
		BeforeNextFunc: func(c echo.Context) {
			// Request 시작 시간을 context에 저장
			c.Set("request-start-time", time.Now())
		},
		// 에러를 글로벌 핸들러로 넘겨 상태 코드를 확정한 뒤 기록
		HandleError: true,

		// 로그로 남길 항목
		LogLatency:       true,
		LogProtocol:      true,
		LogRemoteIP:      true,
		LogHost:          true,
		LogMethod:        true,
		LogURI:           true,
		LogURIPath:       true,
		LogRoutePath:     true,
		LogRequestID:     true,
		LogReferer:       true,
		LogUserAgent:     true,
		LogStatus:        true,
		LogError:         true,
		LogContentLength: true,
		LogResponseSize:  true,

		LogHeaders:     []string{"Content-Type", "Accept", "Authorization"},
		LogQueryParams: []string{"q", "status", "limit", "offset"},
		LogFormValues:  []string{},

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			// BeforeNextFunc에서 설정한 정보 가져오기
			startTime, _ := c.Get("request-start-time").(time.Time)
			elapsed := time.Since(startTime)

			// 로그 필드를 zap.Field 형태로 구성
			fields := []zap.Field{
				zap.String("request.remote_ip", v.RemoteIP),
				zap.String("request.host", v.Host),
				zap.String("request.protocol", v.Protocol),
				zap.String("request.method", v.Method),
				zap.String("request.uri", v.URI),
				zap.String("request.path", v.URIPath),
				zap.String("request.route", v.RoutePath),
				zap.String("request.user_agent", v.UserAgent),
				zap.String("request.referer", v.Referer),
				zap.Int("response.status", v.Status),
				zap.Duration("response.latency", v.Latency),
				zap.String("response.latency_human", v.Latency.String()),
				zap.Duration("response.elapsed_since_before_next", elapsed),
				zap.String("request.request_id", v.RequestID),
				zap.Int64("response.response_size", v.ResponseSize),
				zap.String("request.content_length", v.ContentLength),
			}

			// Header, QueryParam, FormValue 같은 slice 형태 데이터들을 로깅하는 예시
			if len(v.Headers) > 0 {
				// Authorization 헤더 내용은 마스킹 처리
				headers := make(map[string]string)
				for k, values := range v.Headers {
					if len(values) > 0 {
						if k == "Authorization" {
							headers[k] = MaskToken(values[0])
						} else {
							headers[k] = values[0]
						}
					}
				}
				fields = append(fields, zap.Any("request.headers", headers))
			}

			if len(v.QueryParams) > 0 {
				fields = append(fields, zap.Any("request.query_params", v.QueryParams))
			}

			if len(v.FormValues) > 0 {
				fields = append(fields, zap.Any("request.form_values", v.FormValues))
			}

			// 에러가 있는 경우
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
				if v.Status < 500 {
					logger.Warn("Request rejected", fields...)
					return nil
				}
				logger.Error("Request failed", fields...)
				return nil
			}

			// 4XX 에러는 Warn 레벨로 기록
			if v.Status >= 400 && v.Status < 500 {
				logger.Warn("Client error", fields...)
				return nil
			}

			// 5XX 에러는 Error 레벨로 기록
			if v.Status >= 500 {
				logger.Error("Server error", fields...)
				return nil
			}

			// 정상 응답의 경우 Info 레벨로 기록
			logger.Info("Request completed", fields...)
			return nil
		},
	}

	return middleware.RequestLoggerWithConfig(config)
}

// MaskToken Authorization 헤더 값을 앞뒤 일부만 남기고 가립니다 (예: "Bearer eyJ...x9Q").
func MaskToken(val string) string {
	if len(val) > 15 {
		return val[:10] + "..." + val[len(val)-5:]
	}
	return "[MASKED]"
}

// ErrorResponse 에러 응답 본문
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// WithEchoLogger Echo에 대한 커스텀 에러 핸들러를 설정합니다.
// AppError 코드를 HTTP 상태 코드로 매핑하고 {"error","code","message"} 형태로 응답합니다.
func WithEchoLogger(e *echo.Echo, logger *zap.Logger) {
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		he := apperrors.ToHTTPError(err)
		code := he.Code

		fields := []zap.Field{
			zap.Int("status", code),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.String("ip", c.RealIP()),
		}
		if code >= http.StatusInternalServerError {
			apperrors.LogError(logger, err, "HTTP error", fields...)
		} else {
			logger.Debug("HTTP error", append(fields, zap.Error(err))...)
		}

		if c.Response().Committed {
			return
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			body := ErrorResponse{
				Error: http.StatusText(code),
				Code:  apperrors.CodeOf(apperrors.FromHTTPError(err)),
			}
			if msg, ok := he.Message.(string); ok && msg != body.Error {
				body.Message = msg
			}
			err = c.JSON(code, body)
		}
		if err != nil {
			logger.Error("Failed to send error response", zap.Error(err))
		}
	}
}
