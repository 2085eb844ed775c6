package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/repository"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/constants"
	apperrors "github.com/wekeepgrowing/irlquest-backend/pkg/errors"
	"github.com/wekeepgrowing/irlquest-backend/pkg/messaging"
)

// RecorderConfig 지식 레코더 설정
type RecorderConfig struct {
	Workers int    // 워커 고루틴 수
	Buffer  int    // 대기열 크기
	Channel string // 발행 채널. 비어 있으면 발행하지 않습니다.
}

// KnowledgeEvent 기록 완료 시 발행되는 이벤트
type KnowledgeEvent struct {
	ID          string    `json:"id"`
	ContentType string    `json:"content_type"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

// KnowledgeRecorder 생성 요청을 대기열에 넣고 워커가 저장/발행합니다.
// 기록은 부가 작업이므로 실패해도 호출자에게 전파하지 않습니다.
type KnowledgeRecorder struct {
	logger     *zap.Logger
	repository repository.KnowledgeRepository
	publisher  messaging.Publisher
	channel    string

	queue  chan *entity.Knowledge
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// NewKnowledgeRecorder 레코더를 생성하고 워커를 시작합니다
func NewKnowledgeRecorder(
	logger *zap.Logger,
	config RecorderConfig,
	knowledgeRepo repository.KnowledgeRepository,
	publisher messaging.Publisher,
) *KnowledgeRecorder {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.Buffer < 0 {
		config.Buffer = 0
	}
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}

	r := &KnowledgeRecorder{
		logger:     logger,
		repository: knowledgeRepo,
		publisher:  publisher,
		channel:    config.Channel,
		queue:      make(chan *entity.Knowledge, config.Buffer),
	}

	for i := 0; i < config.Workers; i++ {
		r.wg.Add(1)
		go r.work()
	}

	return r
}

// Record 레코드를 대기열에 넣습니다. 가득 찼거나 닫힌 경우 버리고 false를 반환합니다.
func (r *KnowledgeRecorder) Record(knowledge *entity.Knowledge) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.logger.Warn("종료된 레코더에 기록 시도", zap.String("content_type", knowledge.ContentType))
		return false
	}

	select {
	case r.queue <- knowledge:
		return true
	default:
		r.logger.Warn("지식 기록 대기열이 가득 차 요청을 버립니다",
			zap.String("content_type", knowledge.ContentType),
			zap.Int("capacity", cap(r.queue)),
		)
		return false
	}
}

// Close 새 기록을 막고 남은 대기열을 처리합니다. ctx가 먼저 끝나면 ctx.Err()를 반환합니다.
func (r *KnowledgeRecorder) Close(ctx context.Context) error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *KnowledgeRecorder) work() {
	defer r.wg.Done()
	for knowledge := range r.queue {
		r.persist(knowledge)
	}
}

// persist 저장 후 이벤트를 발행합니다. 저장에 실패하면 발행하지 않습니다.
func (r *KnowledgeRecorder) persist(knowledge *entity.Knowledge) {
	ctx, cancel := context.WithTimeout(context.Background(), constants.RecordTimeout)
	defer cancel()

	if knowledge.ID == "" {
		id, err := GenerateID(constants.KnowledgeIDPrefix)
		if err != nil {
			r.logger.Error("지식 ID 생성 실패", zap.Error(err))
			return
		}
		knowledge.ID = id
	}
	if knowledge.CreatedAt.IsZero() {
		knowledge.CreatedAt = time.Now()
	}

	if err := r.repository.Create(ctx, knowledge); err != nil {
		apperrors.LogError(r.logger, apperrors.Internal("지식 기록 저장 실패", err), "지식 기록 저장 실패",
			zap.String("content_type", knowledge.ContentType),
		)
		return
	}

	if r.channel == "" {
		return
	}

	event := KnowledgeEvent{
		ID:          knowledge.ID,
		ContentType: knowledge.ContentType,
		Tags:        knowledge.Tags,
		CreatedAt:   knowledge.CreatedAt,
	}
	if err := r.publisher.Publish(ctx, r.channel, event); err != nil {
		r.logger.Warn("지식 이벤트 발행 실패", zap.String("channel", r.channel), zap.Error(err))
	}
}
