package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	domainrepo "github.com/wekeepgrowing/irlquest-backend/internal/domain/repository"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/questgen"
)

// dryRunDB 실제 연결 없이 SQL만 생성하는 GORM 인스턴스와 마지막으로 만든 SQL을 돌려줍니다
func dryRunDB(t *testing.T) (*gorm.DB, func() (string, []interface{})) {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost port=5432 user=test dbname=test sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	var sql string
	var vars []interface{}
	capture := func(tx *gorm.DB) {
		sql = tx.Statement.SQL.String()
		vars = tx.Statement.Vars
	}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture", capture))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:capture", capture))
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:capture", capture))

	return db, func() (string, []interface{}) { return sql, vars }
}

func TestKnowledgeSearchQuery(t *testing.T) {
	db, last := dryRunDB(t)
	repo := NewKnowledgeRepository(db)

	results, err := repo.Search(context.Background(), "  50%_off ", 0)
	require.NoError(t, err)
	assert.Empty(t, results)

	sql, vars := last()
	assert.Contains(t, sql, "content ILIKE")
	assert.Contains(t, sql, "tags @>")
	assert.Contains(t, sql, "ORDER BY created_at DESC")
	assert.Contains(t, vars, `%50\%\_off%`)

	_, err = repo.Search(context.Background(), "", 500)
	require.NoError(t, err)
	sql, _ = last()
	assert.NotContains(t, sql, "ILIKE")
}

func TestTaskListQuery(t *testing.T) {
	db, last := dryRunDB(t)
	repo := NewTaskRepository(db)

	status := entity.TaskStatusCompleted
	questID := "Qabc"
	_, err := repo.List(context.Background(), domainrepo.TaskFilter{
		OwnerID: "U1",
		Status:  &status,
		QuestID: &questID,
		Limit:   1000,
		Offset:  -5,
	})
	require.NoError(t, err)

	sql, vars := last()
	assert.True(t, strings.HasPrefix(sql, `SELECT * FROM "tasks"`))
	assert.Contains(t, sql, "owner_id =")
	assert.Contains(t, sql, "status =")
	assert.Contains(t, sql, "quest_id =")
	assert.Contains(t, sql, `"tasks"."deleted_at" IS NULL`)
	assert.Contains(t, vars, "U1")
	assert.Contains(t, vars, "completed")
}

func TestMarkRewardedIsConditional(t *testing.T) {
	db, last := dryRunDB(t)
	at := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

	claimed, err := NewTaskRepository(db).MarkRewarded(context.Background(), "U1", "T1", at)
	require.NoError(t, err)
	assert.False(t, claimed, "갱신된 행이 없으면 false")

	sql, vars := last()
	assert.True(t, strings.HasPrefix(sql, `UPDATE "tasks" SET "rewarded_at"=`))
	assert.Contains(t, sql, "rewarded_at IS NULL")
	assert.Contains(t, vars, "U1")
	assert.Contains(t, vars, "T1")

	_, err = NewQuestRepository(db).MarkRewarded(context.Background(), "U1", "Q1", at)
	require.NoError(t, err)
	sql, _ = last()
	assert.True(t, strings.HasPrefix(sql, `UPDATE "quests"`))
	assert.Contains(t, sql, "rewarded_at IS NULL")
}

func TestUpdateKeepsRewardMarker(t *testing.T) {
	db, last := dryRunDB(t)
	at := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

	task := &entity.Task{ID: "T1", OwnerID: "U1", Title: "t", Status: entity.TaskStatusPending, RewardedAt: &at}
	require.NoError(t, NewTaskRepository(db).Update(context.Background(), task))
	sql, _ := last()
	assert.True(t, strings.HasPrefix(sql, `UPDATE "tasks"`))
	assert.NotContains(t, sql, "rewarded_at")

	quest := &entity.Quest{ID: "Q1", OwnerID: "U1", Title: "q", Status: entity.QuestStatusActive, RewardedAt: &at}
	require.NoError(t, NewQuestRepository(db).Update(context.Background(), quest))
	sql, _ = last()
	assert.True(t, strings.HasPrefix(sql, `UPDATE "quests"`))
	assert.NotContains(t, sql, "rewarded_at")
}

func TestDailyStatsIncrementUpserts(t *testing.T) {
	db, last := dryRunDB(t)
	rating := 4
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	err := NewDailyStatsRepository(db).Increment(context.Background(), "U1", day, entity.StatsDelta{
		FocusSessions: 1,
		FocusMinutes:  25,
		Rating:        &rating,
	})
	require.NoError(t, err)

	sql, vars := last()
	assert.True(t, strings.HasPrefix(sql, `INSERT INTO "daily_stats"`))
	assert.Contains(t, sql, `ON CONFLICT ("owner_id","date") DO UPDATE SET`)
	assert.Contains(t, sql, "daily_stats.total_focus_time +")
	assert.Contains(t, sql, "daily_stats.rating_total +")
	assert.Contains(t, vars, 25)
}

func TestFocusSessionEndOnlyActive(t *testing.T) {
	db, last := dryRunDB(t)

	session, err := NewFocusSessionRepository(db).End(context.Background(), "U1", "F1", time.Now(), nil, nil)
	require.NoError(t, err)
	assert.Nil(t, session)

	sql, _ := last()
	assert.Contains(t, sql, "ended_at IS NULL")
	assert.Contains(t, sql, "RETURNING *")
}

var errNoDatabase = errors.New("no database")

// fakeConn 실행 없이 트랜잭션만 흉내내는 연결
type fakeConn struct{}

func (fakeConn) PrepareContext(context.Context, string) (*sql.Stmt, error) { return nil, errNoDatabase }
func (fakeConn) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, errNoDatabase
}
func (fakeConn) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errNoDatabase
}
func (fakeConn) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }

type fakeTx struct {
	fakeConn
	rolledBack bool
}

func (tx *fakeTx) Commit() error   { return nil }
func (tx *fakeTx) Rollback() error { tx.rolledBack = true; return nil }

type fakePool struct {
	fakeConn
	tx *fakeTx
}

func (p *fakePool) BeginTx(context.Context, *sql.TxOptions) (gorm.ConnPool, error) { return p.tx, nil }

func TestAddExperienceMissingUser(t *testing.T) {
	pool := &fakePool{tx: &fakeTx{}}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: pool}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	require.NoError(t, db.Callback().Query().Replace("gorm:query", func(tx *gorm.DB) {
		_ = tx.AddError(gorm.ErrRecordNotFound)
	}))

	user, err := NewUserRepository(db).AddExperience(context.Background(), "U404", 50)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.True(t, pool.tx.rolledBack)
}

func TestLimits(t *testing.T) {
	assert.Equal(t, defaultListLimit, clampLimit(0))
	assert.Equal(t, maxListLimit, clampLimit(10_000))
	assert.Equal(t, 7, clampLimit(7))
	assert.Equal(t, defaultSearchLimit, searchLimit(-1))
	assert.Equal(t, maxSearchLimit, searchLimit(101))
}

func TestQuestCacheLocalOnly(t *testing.T) {
	cache := NewQuestCacheRepository(QuestCacheConfig{Size: 2, TTL: time.Minute}, nil, zap.NewNop())
	ctx := context.Background()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	quest := questgen.Generate(questgen.Request{Text: "Buy groceries"})
	cache.Set(ctx, "a", &quest)

	got, ok := cache.Get(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, quest, *got)

	// 반환값 수정이 캐시에 영향을 주지 않아야 함
	got.Tags[0] = "mutated"
	again, _ := cache.Get(ctx, "a")
	assert.Equal(t, "modern", again.Tags[0])

	// LRU 크기 초과 시 가장 오래된 항목 제거
	cache.Set(ctx, "b", &quest)
	cache.Set(ctx, "c", &quest)
	_, ok = cache.Get(ctx, "a")
	assert.False(t, ok)

	cache.Set(ctx, "nil", nil)
	_, ok = cache.Get(ctx, "nil")
	assert.False(t, ok)
}

func TestQuestCacheRedisUnavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	cache := NewQuestCacheRepository(QuestCacheConfig{Size: 8, TTL: time.Minute, Prefix: "test"}, client, zap.NewNop())
	ctx := context.Background()

	_, ok := cache.Get(ctx, "k")
	assert.False(t, ok)

	quest := questgen.Generate(questgen.Request{Text: "release deadline"})
	cache.Set(ctx, "k", &quest)

	got, ok := cache.Get(ctx, "k")
	require.True(t, ok, "L1은 Redis 장애와 무관하게 동작")
	assert.Equal(t, quest.Title, got.Title)
}
