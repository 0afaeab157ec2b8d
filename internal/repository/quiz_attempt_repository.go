package repository

import (
	"context"
	"credit_edu_backend/internal/model"
	"sync"
)

// QuizAttemptStore 测验记录存储，只允许追加
type QuizAttemptStore interface {
	Append(ctx context.Context, attempt *model.QuizAttempt) error
	// 按插入顺序返回，无记录时返回空切片
	FindByLessonAndUser(ctx context.Context, lessonID, userID string) ([]model.QuizAttempt, error)
	FindByUser(ctx context.Context, userID string) ([]model.QuizAttempt, error)
	FindAll(ctx context.Context) ([]model.QuizAttempt, error)
	Count(ctx context.Context) (int64, error)
}

// MemoryQuizAttemptStore 进程内存储，进程重启后数据全部丢失
type MemoryQuizAttemptStore struct {
	mu       sync.RWMutex
	attempts []model.QuizAttempt
}

func NewMemoryQuizAttemptStore() *MemoryQuizAttemptStore {
	return &MemoryQuizAttemptStore{}
}

func (s *MemoryQuizAttemptStore) Append(_ context.Context, attempt *model.QuizAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := attempt.Clone()
	stored.Seq = uint(len(s.attempts) + 1)
	s.attempts = append(s.attempts, stored)
	attempt.Seq = stored.Seq
	return nil
}

func (s *MemoryQuizAttemptStore) FindByLessonAndUser(_ context.Context, lessonID, userID string) ([]model.QuizAttempt, error) {
	return s.filter(func(a *model.QuizAttempt) bool {
		return a.LessonID == lessonID && a.UserID == userID
	}), nil
}

func (s *MemoryQuizAttemptStore) FindByUser(_ context.Context, userID string) ([]model.QuizAttempt, error) {
	return s.filter(func(a *model.QuizAttempt) bool {
		return a.UserID == userID
	}), nil
}

func (s *MemoryQuizAttemptStore) FindAll(_ context.Context) ([]model.QuizAttempt, error) {
	return s.filter(func(*model.QuizAttempt) bool { return true }), nil
}

func (s *MemoryQuizAttemptStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.attempts)), nil
}

func (s *MemoryQuizAttemptStore) filter(match func(*model.QuizAttempt) bool) []model.QuizAttempt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.QuizAttempt, 0)
	for i := range s.attempts {
		if match(&s.attempts[i]) {
			out = append(out, s.attempts[i].Clone())
		}
	}
	return out
}
