package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config 로거 설정
type Config struct {
	// Level 로그 레벨 (debug, info, warn, error, dpanic, panic, fatal). 비어 있으면 info.
	Level string
	// Format 로그 포맷 (json, console)
	Format string
	// Output 출력 대상 (stdout, stderr, file)
	Output string
	// FilePath Output이 file일 때의 경로
	FilePath string
	// Development 컬러 레벨과 호출자 정보 출력
	Development bool
	// Service 모든 로그에 붙는 service.name
	Service string
	// Version 모든 로그에 붙는 service.version
	Version string
}

// NewZapLogger 설정으로 zap 로거를 만듭니다. 알 수 없는 레벨은 에러입니다.
func NewZapLogger(config Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if config.Level != "" {
		parsed, err := zapcore.ParseLevel(config.Level)
		if err != nil {
			return nil, fmt.Errorf("로그 레벨 파싱 실패: %w", err)
		}
		level = parsed
	}

	sink, _, err := zap.Open(outputPath(config))
	if err != nil {
		return nil, fmt.Errorf("로그 출력 열기 실패: %w", err)
	}

	core := zapcore.NewCore(newEncoder(config), sink, zap.NewAtomicLevelAt(level))

	opts := []zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}
	if config.Development {
		opts = append(opts, zap.AddCaller(), zap.Development())
	}

	logger := zap.New(core, opts...)
	if config.Service != "" {
		logger = logger.With(zap.String("service.name", config.Service))
	}
	if config.Version != "" {
		logger = logger.With(zap.String("service.version", config.Version))
	}
	return logger, nil
}

// newEncoder ECS 스타일 키를 쓰는 인코더. 개발 모드는 컬러 레벨.
func newEncoder(config Config) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.LevelKey = "log.level"
	encoderConfig.MessageKey = "message"

	if config.Development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if config.Format == "console" {
		return zapcore.NewConsoleEncoder(encoderConfig)
	}
	return zapcore.NewJSONEncoder(encoderConfig)
}

// outputPath zap.Open이 받는 경로. 파일 경로가 없으면 stdout.
func outputPath(config Config) string {
	switch config.Output {
	case "stderr":
		return "stderr"
	case "file":
		if config.FilePath != "" {
			return config.FilePath
		}
	}
	return "stdout"
}
