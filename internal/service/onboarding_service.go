package service

import (
	"context"
	"credit_edu_backend/internal/model"
	"credit_edu_backend/internal/repository"
	"credit_edu_backend/internal/util"
	"credit_edu_backend/pkg/logger"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type OnboardingService struct {
	Profiles repository.ProfileStore
	Identity IdentityResolver
}

func NewOnboardingService(profiles repository.ProfileStore, identity IdentityResolver) *OnboardingService {
	return &OnboardingService{
		Profiles: profiles,
		Identity: identity,
	}
}

type OnboardingProgressRequest struct {
	Stage   string        `json:"onboarding_stage" binding:"required"`
	Substep string        `json:"onboarding_substep" binding:"required"`
	Data    model.RawJSON `json:"onboarding_data"`
}

type OnboardingProgress struct {
	Completed bool          `json:"onboarding_completed"`
	Stage     *string       `json:"onboarding_stage"`
	Substep   *string       `json:"onboarding_substep"`
	Data      model.RawJSON `json:"onboarding_data"`
}

type PersonalDetails struct {
	FirstName    string `json:"firstName"`
	Surname      string `json:"surname"`
	MobileNumber string `json:"mobileNumber"`
	Password     string `json:"password,omitempty"`
}

type AccountSetup struct {
	StatusInCanada    string   `json:"statusInCanada"`
	Province          string   `json:"province"`
	PrimaryGoal       string   `json:"primaryGoal"`
	CreditProducts    []string `json:"creditProducts"`
	ImmigrationStatus string   `json:"immigrationStatus"`
	CreditKnowledge   string   `json:"creditKnowledge"`
	CurrentSituation  string   `json:"currentSituation"`
}

type OnboardingCompleteRequest struct {
	PersonalDetails   *PersonalDetails `json:"personalDetails" binding:"required"`
	AccountSetup      *AccountSetup    `json:"accountSetup" binding:"required"`
	IsEditingPassword bool             `json:"isEditingPassword"`
}

type OnboardingCompleteResult struct {
	Completed          bool   `json:"completed"`
	PreferredDashboard string `json:"preferred_dashboard"`
}

// PreferredDashboard 有一定信用知识的用户直接进入卡片面板
func PreferredDashboard(creditKnowledge string) string {
	switch creditKnowledge {
	case "intermediate", "advanced":
		return util.DashboardCard
	default:
		return util.DashboardLearn
	}
}

func (s *OnboardingService) loadProfile(ctx context.Context) (*model.UserProfile, error) {
	userID, err := s.Identity.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.Profiles.FindByID(ctx, userID)
	if errors.Is(err, util.ErrProfileNotFound) {
		return &model.UserProfile{ID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load profile: %w", util.ErrInternal, err)
	}
	return profile, nil
}

func (s *OnboardingService) GetProgress(ctx context.Context) (*OnboardingProgress, error) {
	profile, err := s.loadProfile(ctx)
	if err != nil {
		return nil, err
	}
	return &OnboardingProgress{
		Completed: profile.OnboardingCompleted,
		Stage:     profile.OnboardingStage,
		Substep:   profile.OnboardingSubstep,
		Data:      profile.OnboardingData,
	}, nil
}

func (s *OnboardingService) SaveProgress(ctx context.Context, req OnboardingProgressRequest) error {
	stage := strings.TrimSpace(req.Stage)
	substep := strings.TrimSpace(req.Substep)
	if stage == "" || substep == "" {
		return fmt.Errorf("%w: missing onboarding stage or substep", util.ErrValidation)
	}

	profile, err := s.loadProfile(ctx)
	if err != nil {
		return err
	}

	profile.OnboardingStage = &stage
	profile.OnboardingSubstep = &substep
	profile.OnboardingData = req.Data

	if err := s.Profiles.Save(ctx, profile); err != nil {
		return fmt.Errorf("%w: save onboarding progress: %w", util.ErrInternal, err)
	}
	return nil
}

func (s *OnboardingService) Complete(ctx context.Context, req OnboardingCompleteRequest) (*OnboardingCompleteResult, error) {
	if req.PersonalDetails == nil || req.AccountSetup == nil {
		return nil, fmt.Errorf("%w: missing onboarding data", util.ErrValidation)
	}

	profile, err := s.loadProfile(ctx)
	if err != nil {
		return nil, err
	}

	// 密码由身份提供方管理，这里不处理
	if req.IsEditingPassword && req.PersonalDetails.Password != "" {
		logger.Log.Warn("Ignoring password change during onboarding", zap.String("userId", profile.ID))
	}

	pd, as := req.PersonalDetails, req.AccountSetup
	dashboard := PreferredDashboard(as.CreditKnowledge)

	profile.OnboardingCompleted = true
	profile.FirstName = pd.FirstName
	profile.Surname = pd.Surname
	profile.MobileNumber = pd.MobileNumber
	profile.StatusInCanada = as.StatusInCanada
	profile.Province = as.Province
	profile.PrimaryGoal = as.PrimaryGoal
	profile.CreditProducts = model.StringList(as.CreditProducts)
	profile.ImmigrationStatus = as.ImmigrationStatus
	profile.CreditKnowledge = as.CreditKnowledge
	profile.CurrentSituation = as.CurrentSituation
	profile.PreferredDashboard = dashboard
	profile.OnboardingStage = nil
	profile.OnboardingSubstep = nil
	profile.OnboardingData = nil

	if err := s.Profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("%w: complete onboarding: %w", util.ErrInternal, err)
	}

	logger.Log.Info("Onboarding completed",
		zap.String("userId", profile.ID),
		zap.String("preferredDashboard", dashboard),
	)
	return &OnboardingCompleteResult{Completed: true, PreferredDashboard: dashboard}, nil
}
