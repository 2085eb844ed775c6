package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/questgen"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/repository"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/constants"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/irlquest-backend/pkg/errors"
)

// GenerationConfig 생성 유스케이스 설정
type GenerationConfig struct {
	BulkMaxItems    int
	BulkParallelism int
}

// GenerationUseCase 퀘스트 생성 유스케이스 구현체
type GenerationUseCase struct {
	logger   *zap.Logger
	config   GenerationConfig
	cache    repository.QuestCacheRepository
	recorder interfaces.KnowledgeRecorder
}

// NewGenerationUseCase 새 생성 유스케이스 생성
func NewGenerationUseCase(
	logger *zap.Logger,
	config GenerationConfig,
	cache repository.QuestCacheRepository,
	recorder interfaces.KnowledgeRecorder,
) interfaces.GenerationUseCase {
	if config.BulkMaxItems <= 0 {
		config.BulkMaxItems = constants.BulkMaxItems
	}
	if config.BulkParallelism <= 0 {
		config.BulkParallelism = constants.BulkParallelism
	}
	return &GenerationUseCase{
		logger:   logger,
		config:   config,
		cache:    cache,
		recorder: recorder,
	}
}

// GenerateQuest 퀘스트 생성
func (uc *GenerationUseCase) GenerateQuest(ctx context.Context, actor *entity.User, params dto.GenerateQuestParams) (*questgen.Quest, error) {
	// 1. 입력 검증
	if strings.TrimSpace(params.TodoText) == "" {
		return nil, apperrors.InvalidArgument("할 일 텍스트는 필수입니다")
	}

	// 2. 요청 구성. 레벨은 요청 값이 아닌 인증된 사용자의 레벨을 사용합니다.
	req := questgen.Request{
		Text:               params.TodoText,
		Context:            params.Context,
		DifficultyOverride: params.DifficultyPreference,
		ActorLevel:         actor.Level,
		TagOverride:        params.TagsOverride,
		ThemeOverride:      params.ThemePreference,
	}

	// 3. 요청 기록 (실패해도 생성은 계속)
	uc.record(&entity.Knowledge{
		Content:     params.TodoText,
		ContentType: entity.ContentTypeQuestGenerationRequest,
		Tags:        append([]string(nil), constants.QuestGenerationTags...),
		Metadata: map[string]interface{}{
			"context":               optionalString(params.Context),
			"difficulty_preference": params.DifficultyPreference,
			"theme_preference":      optionalTheme(params.ThemePreference),
			"user_level":            actor.Level,
			"type":                  constants.KnowledgeTypeQuestGeneration,
		},
	})

	// 4. 캐시 조회
	key := QuestCacheKey(req)
	if cached, ok := uc.cache.Get(ctx, key); ok {
		uc.logger.Debug("퀘스트 캐시 적중", zap.String("key", key))
		return cached, nil
	}

	// 5. 생성 후 캐시에 저장
	quest := questgen.Generate(req)
	uc.cache.Set(ctx, key, &quest)

	uc.logger.Debug("퀘스트 생성 완료",
		zap.String("user_id", actor.ID),
		zap.Stringer("theme", quest.Theme),
		zap.Int("difficulty", quest.Difficulty),
	)

	return &quest, nil
}

// EnhanceTask 작업 강화
func (uc *GenerationUseCase) EnhanceTask(ctx context.Context, actor *entity.User, params dto.EnhanceTaskParams) (*questgen.EnhancedTask, error) {
	if strings.TrimSpace(params.TaskText) == "" {
		return nil, apperrors.InvalidArgument("작업 텍스트는 필수입니다")
	}

	req := questgen.Request{
		Text:               params.TaskText,
		Context:            params.Context,
		DifficultyOverride: params.DifficultyPreference,
		ActorLevel:         actor.Level,
	}

	uc.record(&entity.Knowledge{
		Content:     params.TaskText,
		ContentType: entity.ContentTypeTaskEnhancementRequest,
		Tags:        append([]string(nil), constants.TaskEnhancementTags...),
		Metadata: map[string]interface{}{
			"context":    optionalString(params.Context),
			"user_level": actor.Level,
			"type":       constants.KnowledgeTypeTaskEnhancement,
		},
	})

	enhanced := questgen.Enhance(req)
	return &enhanced, nil
}

// TagTasks 데이터셋용 태그 레코드 생성
func (uc *GenerationUseCase) TagTasks(ctx context.Context, texts []string) ([]questgen.TagRecord, error) {
	if err := uc.checkBulkSize(len(texts)); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return questgen.TagTasks(texts), nil
}

// GenerateQuests 일괄 퀘스트 생성. 제한된 동시성으로 실행하되 입력 순서를 유지합니다.
func (uc *GenerationUseCase) GenerateQuests(ctx context.Context, params dto.BulkGenerateParams) ([]questgen.TodoQuestPair, error) {
	if err := uc.checkBulkSize(len(params.Todos)); err != nil {
		return nil, err
	}

	pairs := make([]questgen.TodoQuestPair, len(params.Todos))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.config.BulkParallelism)

	for i, todo := range params.Todos {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			req := questgen.BatchRequest(todo, params.Context, params.DifficultyPreference)
			pairs[i] = questgen.TodoQuestPair{
				TodoText: todo,
				Quest:    questgen.Generate(req),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return pairs, nil
}

func (uc *GenerationUseCase) checkBulkSize(n int) error {
	if n > uc.config.BulkMaxItems {
		return apperrors.InvalidArgument(
			"한 번에 처리할 수 있는 항목 수를 초과했습니다 (최대 " + strconv.Itoa(uc.config.BulkMaxItems) + ")",
		)
	}
	return nil
}

func (uc *GenerationUseCase) record(knowledge *entity.Knowledge) {
	if uc.recorder == nil {
		return
	}
	uc.recorder.Record(knowledge)
}

// QuestCacheKey 정규화된 생성 입력의 sha256 해시.
// 보정 후 같은 값이 되는 입력(레벨 0과 1, 난이도 9와 5)은 같은 키를 가집니다.
func QuestCacheKey(req questgen.Request) string {
	level := req.ActorLevel
	if level < 1 {
		level = 1
	}

	difficulty := "auto"
	if req.DifficultyOverride != nil {
		difficulty = strconv.Itoa(questgen.ClampDifficulty(*req.DifficultyOverride))
	}

	theme := "auto"
	if req.ThemeOverride != nil && req.ThemeOverride.Valid() {
		theme = req.ThemeOverride.String()
	}

	// nil과 빈 목록은 결과가 다르므로 구분합니다
	tags := "auto"
	if req.TagOverride != nil {
		tags = "[" + strings.Join(req.TagOverride, "\x1e") + "]"
	}

	h := sha256.New()
	for _, part := range []string{req.Text, req.Context, difficulty, theme, strconv.Itoa(level), tags} {
		h.Write([]byte(part))
		h.Write([]byte{0x1f})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func optionalString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func optionalTheme(t *questgen.Theme) interface{} {
	if t == nil || !t.Valid() {
		return nil
	}
	return t.String()
}
