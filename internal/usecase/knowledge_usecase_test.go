package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
	apperrors "github.com/wekeepgrowing/irlquest-backend/pkg/errors"
)

// blockingKnowledgeRepository Create가 release될 때까지 대기합니다
type blockingKnowledgeRepository struct {
	mu      sync.Mutex
	created []*entity.Knowledge
	entered chan struct{}
	release chan struct{}
	fail    bool
}

func newBlockingKnowledgeRepository(blocking bool) *blockingKnowledgeRepository {
	r := &blockingKnowledgeRepository{
		entered: make(chan struct{}, 16),
		release: make(chan struct{}),
	}
	if !blocking {
		close(r.release)
	}
	return r
}

func (r *blockingKnowledgeRepository) Create(_ context.Context, knowledge *entity.Knowledge) error {
	r.entered <- struct{}{}
	<-r.release
	if r.fail {
		return errors.New("db down")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, knowledge)
	return nil
}

func (r *blockingKnowledgeRepository) Search(context.Context, string, int) ([]*entity.Knowledge, error) {
	return nil, nil
}

func (r *blockingKnowledgeRepository) ExistsByContent(context.Context, string) (bool, error) {
	return false, nil
}

func (r *blockingKnowledgeRepository) all() []*entity.Knowledge {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.Knowledge(nil), r.created...)
}

// capturePublisher 발행된 메시지를 모읍니다
type capturePublisher struct {
	mu       sync.Mutex
	channels []string
	messages []interface{}
}

func (p *capturePublisher) Publish(_ context.Context, channel string, message interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.channels = append(p.channels, channel)
	p.messages = append(p.messages, message)
	return nil
}

func TestKnowledgeRecorder_PersistsAndPublishes(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := newBlockingKnowledgeRepository(false)
	publisher := &capturePublisher{}
	recorder := usecase.NewKnowledgeRecorder(zap.NewNop(), usecase.RecorderConfig{
		Workers: 2,
		Buffer:  8,
		Channel: "irlquest.knowledge",
	}, repo, publisher)

	for i := 0; i < 5; i++ {
		assert.True(t, recorder.Record(&entity.Knowledge{
			Content:     "Buy groceries",
			ContentType: entity.ContentTypeQuestGenerationRequest,
			Tags:        []string{"request"},
		}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, recorder.Close(ctx))

	created := repo.all()
	require.Len(t, created, 5)
	for _, k := range created {
		assert.Regexp(t, `^K[0-9]{2}`, k.ID)
		assert.False(t, k.CreatedAt.IsZero())
	}

	require.Len(t, publisher.messages, 5)
	assert.Equal(t, "irlquest.knowledge", publisher.channels[0])
	event, ok := publisher.messages[0].(usecase.KnowledgeEvent)
	require.True(t, ok)
	assert.Equal(t, entity.ContentTypeQuestGenerationRequest, event.ContentType)

	// 종료 후 기록은 거부
	assert.False(t, recorder.Record(&entity.Knowledge{Content: "late"}))
	// 두 번 닫아도 안전
	assert.NoError(t, recorder.Close(ctx))
}

func TestKnowledgeRecorder_DropsWhenFull(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := newBlockingKnowledgeRepository(true)
	recorder := usecase.NewKnowledgeRecorder(zap.NewNop(), usecase.RecorderConfig{
		Workers: 1,
		Buffer:  1,
	}, repo, nil)

	// 첫 레코드는 워커가 잡고 Create에서 대기
	require.True(t, recorder.Record(&entity.Knowledge{Content: "first"}))
	<-repo.entered

	// 두 번째는 버퍼에, 세 번째는 버려짐
	assert.True(t, recorder.Record(&entity.Knowledge{Content: "second"}))
	assert.False(t, recorder.Record(&entity.Knowledge{Content: "third"}))

	close(repo.release)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, recorder.Close(ctx))

	created := repo.all()
	require.Len(t, created, 2)
	assert.Equal(t, "first", created[0].Content)
	assert.Equal(t, "second", created[1].Content)
}

func TestKnowledgeRecorder_StoreFailureSkipsPublish(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := newBlockingKnowledgeRepository(false)
	repo.fail = true
	publisher := &capturePublisher{}
	recorder := usecase.NewKnowledgeRecorder(zap.NewNop(), usecase.RecorderConfig{
		Workers: 1,
		Buffer:  4,
		Channel: "irlquest.knowledge",
	}, repo, publisher)

	require.True(t, recorder.Record(&entity.Knowledge{Content: "Buy groceries"}))
	require.NoError(t, recorder.Close(context.Background()))

	assert.Empty(t, repo.all())
	assert.Empty(t, publisher.messages)
}

func TestKnowledgeUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("add", func(t *testing.T) {
		repo := new(MockKnowledgeRepository)
		uc := usecase.NewKnowledgeUseCase(zap.NewNop(), repo)
		repo.On("Create", ctx, mock.AnythingOfType("*entity.Knowledge")).Return(nil)

		knowledge, err := uc.Add(ctx, dto.AddKnowledgeParams{
			Content:     "  Dragons guard the laundry  ",
			ContentType: "lore",
			Tags:        []string{"fantasy", " fantasy", ""},
		})
		require.NoError(t, err)
		assert.Equal(t, "Dragons guard the laundry", knowledge.Content)
		assert.Equal(t, []string{"fantasy"}, knowledge.Tags)
		assert.NotNil(t, knowledge.Metadata)

		_, err = uc.Add(ctx, dto.AddKnowledgeParams{Content: "x"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidArgument))
	})

	t.Run("search limits", func(t *testing.T) {
		repo := new(MockKnowledgeRepository)
		uc := usecase.NewKnowledgeUseCase(zap.NewNop(), repo)
		repo.On("Search", ctx, "fantasy", 10).Return([]*entity.Knowledge{}, nil).Once()
		repo.On("Search", ctx, "fantasy", 100).Return([]*entity.Knowledge{}, nil).Once()
		repo.On("Search", ctx, "fantasy", 25).Return([]*entity.Knowledge{}, nil).Once()

		_, err := uc.Search(ctx, " fantasy ", 0)
		require.NoError(t, err)
		_, err = uc.Search(ctx, "fantasy", 1000)
		require.NoError(t, err)
		_, err = uc.Search(ctx, "fantasy", 25)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("seed is idempotent", func(t *testing.T) {
		repo := new(MockKnowledgeRepository)
		uc := usecase.NewKnowledgeUseCase(zap.NewNop(), repo)

		repo.On("ExistsByContent", ctx, "Fantasy quest templates for turning everyday tasks into epic adventures").Return(true, nil)
		repo.On("ExistsByContent", ctx, mock.Anything).Return(false, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(k *entity.Knowledge) bool {
			return k.ContentType == entity.ContentTypeTemplate && k.Metadata["category"] == "quest_template"
		})).Return(nil)

		added, err := uc.SeedDefaults(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, added)
		repo.AssertNumberOfCalls(t, "Create", 2)
	})
}
