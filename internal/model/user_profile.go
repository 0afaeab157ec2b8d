package model

import "time"

// UserProfile 用户资料，ID 与身份提供方的用户ID一致
type UserProfile struct {
	ID                  string     `gorm:"primaryKey;type:varchar(64)" json:"id"`
	FirstName           string     `gorm:"size:100" json:"firstName"`
	Surname             string     `gorm:"size:100" json:"surname"`
	MobileNumber        string     `gorm:"size:32" json:"mobileNumber"`
	StatusInCanada      string     `gorm:"size:64" json:"statusInCanada"`
	Province            string     `gorm:"size:64" json:"province"`
	PrimaryGoal         string     `gorm:"size:128" json:"primaryGoal"`
	CreditProducts      StringList `gorm:"type:json" json:"creditProducts"`
	ImmigrationStatus   string     `gorm:"size:64" json:"immigrationStatus"`
	CreditKnowledge     string     `gorm:"size:32" json:"creditKnowledge"`
	CurrentSituation    string     `gorm:"size:128" json:"currentSituation"`
	PreferredDashboard  string     `gorm:"size:16" json:"preferredDashboard"`
	OnboardingCompleted bool       `gorm:"default:false" json:"onboardingCompleted"`
	OnboardingStage     *string    `gorm:"size:64" json:"onboardingStage"`
	OnboardingSubstep   *string    `gorm:"size:64" json:"onboardingSubstep"`
	OnboardingData      RawJSON    `gorm:"type:json" json:"onboardingData"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

func (p UserProfile) Clone() UserProfile {
	if p.CreditProducts != nil {
		p.CreditProducts = append(StringList(nil), p.CreditProducts...)
	}
	if p.OnboardingData != nil {
		p.OnboardingData = append(RawJSON(nil), p.OnboardingData...)
	}
	if p.OnboardingStage != nil {
		s := *p.OnboardingStage
		p.OnboardingStage = &s
	}
	if p.OnboardingSubstep != nil {
		s := *p.OnboardingSubstep
		p.OnboardingSubstep = &s
	}
	return p
}
