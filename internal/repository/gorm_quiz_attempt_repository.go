package repository

import (
	"context"
	"credit_edu_backend/internal/model"

	"gorm.io/gorm"
)

type GormQuizAttemptStore struct {
	DB *gorm.DB
}

func NewGormQuizAttemptStore(db *gorm.DB) *GormQuizAttemptStore {
	return &GormQuizAttemptStore{DB: db}
}

func (r *GormQuizAttemptStore) Append(ctx context.Context, attempt *model.QuizAttempt) error {
	return r.DB.WithContext(ctx).Create(attempt).Error
}

func (r *GormQuizAttemptStore) FindByLessonAndUser(ctx context.Context, lessonID, userID string) ([]model.QuizAttempt, error) {
	attempts := make([]model.QuizAttempt, 0)
	err := r.DB.WithContext(ctx).
		Where("lesson_id = ? AND user_id = ?", lessonID, userID).
		Order("seq ASC").
		Find(&attempts).Error
	return attempts, err
}

func (r *GormQuizAttemptStore) FindByUser(ctx context.Context, userID string) ([]model.QuizAttempt, error) {
	attempts := make([]model.QuizAttempt, 0)
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("seq ASC").
		Find(&attempts).Error
	return attempts, err
}

func (r *GormQuizAttemptStore) FindAll(ctx context.Context) ([]model.QuizAttempt, error) {
	attempts := make([]model.QuizAttempt, 0)
	err := r.DB.WithContext(ctx).Order("seq ASC").Find(&attempts).Error
	return attempts, err
}

func (r *GormQuizAttemptStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.QuizAttempt{}).Count(&count).Error
	return count, err
}

func (r *GormQuizAttemptStore) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
