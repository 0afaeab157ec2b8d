package repository

import (
	"context"
	"credit_edu_backend/internal/model"
	"credit_edu_backend/internal/util"
	"errors"
	"sync"

	"gorm.io/gorm"
)

type ProfileStore interface {
	FindByID(ctx context.Context, userID string) (*model.UserProfile, error)
	Save(ctx context.Context, profile *model.UserProfile) error
}

type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]model.UserProfile
}

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profiles: make(map[string]model.UserProfile)}
}

func (s *MemoryProfileStore) FindByID(_ context.Context, userID string) (*model.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, util.ErrProfileNotFound
	}
	out := p.Clone()
	return &out, nil
}

func (s *MemoryProfileStore) Save(_ context.Context, profile *model.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[profile.ID] = profile.Clone()
	return nil
}

type GormProfileStore struct {
	DB *gorm.DB
}

func NewGormProfileStore(db *gorm.DB) *GormProfileStore {
	return &GormProfileStore{DB: db}
}

func (r *GormProfileStore) FindByID(ctx context.Context, userID string) (*model.UserProfile, error) {
	var p model.UserProfile
	if err := r.DB.WithContext(ctx).First(&p, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormProfileStore) Save(ctx context.Context, profile *model.UserProfile) error {
	return r.DB.WithContext(ctx).Save(profile).Error
}
