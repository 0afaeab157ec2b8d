package repository

import (
	"context"
	"credit_edu_backend/internal/model"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.QuizAttempt{}, &model.UserProfile{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func attempt(id, lesson, user string, score float64, n int) *model.QuizAttempt {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return &model.QuizAttempt{
		ID:             id,
		LessonID:       lesson,
		UserID:         user,
		Score:          score,
		CorrectAnswers: 3,
		TotalQuestions: 5,
		Answers:        model.AnswerMap{"q1": 1, "q2": 0},
		TimeSpent:      42,
		CompletedAt:    base.Add(time.Duration(n) * time.Minute),
		AttemptNumber:  n,
		CreatedAt:      base.Add(time.Duration(n) * time.Minute),
	}
}

func ids(attempts []model.QuizAttempt) []string {
	out := make([]string, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, a.ID)
	}
	return out
}

func runQuizAttemptStoreContract(t *testing.T, newStore func(t *testing.T) QuizAttemptStore) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		store := newStore(t)

		got, err := store.FindByLessonAndUser(ctx, "1", "nobody")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)

		all, err := store.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)

		n, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("separators inside ids do not collide", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Append(ctx, attempt("a1", "a:user:b", "c", 70, 1)))

		got, err := store.FindByLessonAndUser(ctx, "a", "b:user:c")
		require.NoError(t, err)
		assert.Empty(t, got)

		got, err = store.FindByLessonAndUser(ctx, "a:user:b", "c")
		require.NoError(t, err)
		assert.Equal(t, []string{"a1"}, ids(got))
	})

	t.Run("append and query keep insertion order", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Append(ctx, attempt("a1", "1", "u1", 65, 1)))
		require.NoError(t, store.Append(ctx, attempt("b1", "2", "u1", 90, 1)))
		require.NoError(t, store.Append(ctx, attempt("c1", "1", "u2", 50, 1)))
		require.NoError(t, store.Append(ctx, attempt("a2", "1", "u1", 80, 2)))

		got, err := store.FindByLessonAndUser(ctx, "1", "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{"a1", "a2"}, ids(got))
		assert.Equal(t, model.AnswerMap{"q1": 1, "q2": 0}, got[0].Answers)
		assert.Equal(t, 2, got[1].AttemptNumber)
		assert.InDelta(t, 80, got[1].Score, 0.0001)

		byUser, err := store.FindByUser(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{"a1", "b1", "a2"}, ids(byUser))

		all, err := store.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a1", "b1", "c1", "a2"}, ids(all))

		n, err := store.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 4, n)
	})

	t.Run("stored attempts are not affected by caller mutation", func(t *testing.T) {
		store := newStore(t)

		a := attempt("a1", "1", "u1", 65, 1)
		require.NoError(t, store.Append(ctx, a))
		a.Answers["q1"] = 3
		a.Score = 0

		got, err := store.FindByLessonAndUser(ctx, "1", "u1")
		require.NoError(t, err)
		require.Len(t, got, 1)
		got[0].Answers["q2"] = 3

		again, err := store.FindByLessonAndUser(ctx, "1", "u1")
		require.NoError(t, err)
		assert.Equal(t, model.AnswerMap{"q1": 1, "q2": 0}, again[0].Answers)
		assert.InDelta(t, 65, again[0].Score, 0.0001)
	})
}

func TestMemoryQuizAttemptStore(t *testing.T) {
	runQuizAttemptStoreContract(t, func(t *testing.T) QuizAttemptStore {
		return NewMemoryQuizAttemptStore()
	})
}

func TestGormQuizAttemptStore(t *testing.T) {
	runQuizAttemptStoreContract(t, func(t *testing.T) QuizAttemptStore {
		return NewGormQuizAttemptStore(newTestDB(t))
	})
}

func TestRedisQuizAttemptStore(t *testing.T) {
	runQuizAttemptStoreContract(t, func(t *testing.T) QuizAttemptStore {
		return NewRedisQuizAttemptStore(newTestRedis(t))
	})
}

func TestLessonUserKey(t *testing.T) {
	assert.NotEqual(t, lessonUserKey("a:user:b", "c"), lessonUserKey("a", "b:user:c"))
	assert.NotEqual(t, lessonUserKey(`a"`, "b"), lessonUserKey("a", `"b`))
	assert.Equal(t, `quiz:attempts:lesson:"1":user:"u1"`, lessonUserKey("1", "u1"))
}

func TestRedisQuizAttemptStore_Ping(t *testing.T) {
	store := NewRedisQuizAttemptStore(newTestRedis(t))
	assert.NoError(t, store.Ping(context.Background()))
}

func TestGormQuizAttemptStore_Ping(t *testing.T) {
	store := NewGormQuizAttemptStore(newTestDB(t))
	assert.NoError(t, store.Ping(context.Background()))
}
