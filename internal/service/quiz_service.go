package service

import (
	"context"
	"credit_edu_backend/internal/model"
	"credit_edu_backend/internal/repository"
	"credit_edu_backend/internal/util"
	"credit_edu_backend/pkg/logger"
	"credit_edu_backend/pkg/monitoring"
	"credit_edu_backend/pkg/tracing"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// CertificateThreshold 达到该分数即获得证书
const CertificateThreshold = 80.0

type QuizService struct {
	Store    repository.QuizAttemptStore
	Catalog  *repository.QuizCatalogRepository
	Identity IdentityResolver

	Now   func() time.Time
	NewID func() (string, error)

	passingScore atomic.Int32
	locks        *keyedMutex
}

func NewQuizService(
	store repository.QuizAttemptStore,
	catalog *repository.QuizCatalogRepository,
	identity IdentityResolver,
	passingScore int,
) *QuizService {
	s := &QuizService{
		Store:    store,
		Catalog:  catalog,
		Identity: identity,
		Now:      time.Now,
		NewID:    model.GenerateUUID,
		locks:    newKeyedMutex(),
	}
	s.passingScore.Store(int32(passingScore))
	return s
}

func (s *QuizService) SetPassingScore(score int) {
	s.passingScore.Store(int32(score))
}

func (s *QuizService) PassingScore() int {
	return int(s.passingScore.Load())
}

// QuizSubmission 前端提交的测验结果
type QuizSubmission struct {
	LessonID       string         `json:"lessonId" binding:"required"`
	Score          *float64       `json:"score" binding:"required"`
	CorrectAnswers *int           `json:"correctAnswers" binding:"required"`
	TotalQuestions *int           `json:"totalQuestions" binding:"required"`
	Answers        map[string]int `json:"answers" binding:"required"`
	TimeSpent      *int           `json:"timeSpent"`
	CompletedAt    *time.Time     `json:"completedAt"`
}

func (q *QuizSubmission) Validate() error {
	switch {
	case strings.TrimSpace(q.LessonID) == "":
		return fmt.Errorf("%w: lessonId is required", util.ErrValidation)
	case utf8.RuneCountInString(strings.TrimSpace(q.LessonID)) > model.LessonIDMaxLength:
		return fmt.Errorf("%w: lessonId must be at most %d characters", util.ErrValidation, model.LessonIDMaxLength)
	case q.Score == nil:
		return fmt.Errorf("%w: score is required", util.ErrValidation)
	case q.CorrectAnswers == nil:
		return fmt.Errorf("%w: correctAnswers is required", util.ErrValidation)
	case q.TotalQuestions == nil:
		return fmt.Errorf("%w: totalQuestions is required", util.ErrValidation)
	case q.Answers == nil:
		return fmt.Errorf("%w: answers is required", util.ErrValidation)
	}

	if math.IsNaN(*q.Score) || *q.Score < 0 || *q.Score > 100 {
		return fmt.Errorf("%w: score must be between 0 and 100", util.ErrValidation)
	}
	if *q.CorrectAnswers < 0 || *q.TotalQuestions < 0 {
		return fmt.Errorf("%w: answer counts must not be negative", util.ErrValidation)
	}
	if *q.CorrectAnswers > *q.TotalQuestions {
		return fmt.Errorf("%w: correctAnswers exceeds totalQuestions", util.ErrValidation)
	}
	if q.TimeSpent != nil && *q.TimeSpent < 0 {
		return fmt.Errorf("%w: timeSpent must not be negative", util.ErrValidation)
	}
	return nil
}

type QuizSubmitResult struct {
	QuizResultID      string `json:"quizResultId"`
	NewBestScore      bool   `json:"newBestScore"`
	CertificateEarned bool   `json:"certificateEarned"`
	AttemptNumber     int    `json:"attemptNumber"`
}

// evaluateAttempt 根据历史记录计算序号、是否刷新最好成绩以及证书资格。
// 与历史最高分持平也算刷新最好成绩。
func evaluateAttempt(prior []model.QuizAttempt, score float64) (attemptNumber int, newBest, certificate bool) {
	best := score
	for _, a := range prior {
		if a.Score > best {
			best = a.Score
		}
	}
	return len(prior) + 1, score >= best, score >= CertificateThreshold
}

// SubmitResult 校验提交、计算派生字段并写入一条新的测验记录。
// 同一课程+用户的读取与写入串行执行，保证序号不重复。
func (s *QuizService) SubmitResult(ctx context.Context, sub QuizSubmission) (*QuizSubmitResult, error) {
	ctx, span := tracing.Tracer().Start(ctx, "QuizService.SubmitResult")
	defer span.End()

	if err := sub.Validate(); err != nil {
		monitoring.ObserveQuizRejected("validation")
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	userID, err := s.Identity.CurrentUserID(ctx)
	if err != nil {
		monitoring.ObserveQuizRejected("unauthenticated")
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	lessonID := strings.TrimSpace(sub.LessonID)
	span.SetAttributes(attribute.String("quiz.lesson_id", lessonID))

	unlock := s.locks.Lock(lessonID + "\x00" + userID)
	defer unlock()

	prior, err := s.Store.FindByLessonAndUser(ctx, lessonID, userID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: load prior attempts: %w", util.ErrInternal, err)
	}

	score := *sub.Score
	attemptNumber, newBest, certificate := evaluateAttempt(prior, score)

	id, err := s.NewID()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: generate attempt id: %w", util.ErrInternal, err)
	}

	now := s.Now()
	completedAt := now
	if sub.CompletedAt != nil && !sub.CompletedAt.IsZero() {
		completedAt = *sub.CompletedAt
	}
	timeSpent := 0
	if sub.TimeSpent != nil {
		timeSpent = *sub.TimeSpent
	}

	attempt := &model.QuizAttempt{
		ID:             id,
		LessonID:       lessonID,
		UserID:         userID,
		Score:          score,
		CorrectAnswers: *sub.CorrectAnswers,
		TotalQuestions: *sub.TotalQuestions,
		Answers:        model.AnswerMap(sub.Answers).Clone(),
		TimeSpent:      timeSpent,
		CompletedAt:    completedAt,
		AttemptNumber:  attemptNumber,
		CreatedAt:      now,
	}

	if err := s.Store.Append(ctx, attempt); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: store attempt: %w", util.ErrInternal, err)
	}

	monitoring.ObserveQuizAttempt(s.metricLesson(lessonID), score, certificate)
	logger.Log.Info("Saved quiz result",
		zap.String("id", attempt.ID),
		zap.String("lessonId", lessonID),
		zap.String("userId", userID),
		zap.Float64("score", score),
		zap.Int("attemptNumber", attemptNumber),
	)

	return &QuizSubmitResult{
		QuizResultID:      attempt.ID,
		NewBestScore:      newBest,
		CertificateEarned: certificate,
		AttemptNumber:     attemptNumber,
	}, nil
}

// metricLesson 指标标签只使用题库中已知的课程
func (s *QuizService) metricLesson(lessonID string) string {
	if s.Catalog.HasLesson(lessonID) {
		return lessonID
	}
	return monitoring.OtherLessonLabel
}

// AttemptView 历史记录中对外展示的字段
type AttemptView struct {
	AttemptNumber  int             `json:"attemptNumber"`
	Score          float64         `json:"score"`
	CorrectAnswers int             `json:"correctAnswers"`
	TotalQuestions int             `json:"totalQuestions"`
	Answers        model.AnswerMap `json:"answers"`
	TimeSpent      int             `json:"timeSpent"`
	CompletedAt    time.Time       `json:"completedAt"`
}

// sortRecentFirst 按完成时间倒序，时间相同保持插入顺序
func sortRecentFirst(attempts []model.QuizAttempt) {
	sort.SliceStable(attempts, func(i, j int) bool {
		return attempts[i].CompletedAt.After(attempts[j].CompletedAt)
	})
}

func (s *QuizService) ListAttempts(ctx context.Context, lessonID string) ([]AttemptView, error) {
	lessonID = strings.TrimSpace(lessonID)
	if lessonID == "" {
		return nil, fmt.Errorf("%w: lesson id is required", util.ErrValidation)
	}

	userID, err := s.Identity.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	attempts, err := s.Store.FindByLessonAndUser(ctx, lessonID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: load attempts: %w", util.ErrInternal, err)
	}
	sortRecentFirst(attempts)

	views := make([]AttemptView, 0, len(attempts))
	for _, a := range attempts {
		views = append(views, AttemptView{
			AttemptNumber:  a.AttemptNumber,
			Score:          a.Score,
			CorrectAnswers: a.CorrectAnswers,
			TotalQuestions: a.TotalQuestions,
			Answers:        a.Answers,
			TimeSpent:      a.TimeSpent,
			CompletedAt:    a.CompletedAt,
		})
	}

	logger.Log.Debug("Fetched quiz attempts",
		zap.String("lessonId", lessonID),
		zap.String("userId", userID),
		zap.Int("count", len(views)),
	)
	return views, nil
}

type QuizView struct {
	Questions []model.QuizQuestion `json:"questions"`
	Settings  model.QuizSettings   `json:"settings"`
}

func (s *QuizService) GetQuiz(lessonID string) *QuizView {
	return &QuizView{
		Questions: s.Catalog.FindQuestions(lessonID),
		Settings:  s.Catalog.DefaultSettings(s.PassingScore()),
	}
}

type LearningStatus string

const (
	StatusComplete   LearningStatus = "complete"
	StatusInProgress LearningStatus = "in-progress"
)

type LearningHistoryItem struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Subtitle    string            `json:"subtitle"`
	Type        model.ContentType `json:"type"`
	Progress    float64           `json:"progress"`
	Status      LearningStatus    `json:"status"`
	Category    string            `json:"category"`
	Topic       string            `json:"topic"`
	CompletedAt time.Time         `json:"completedAt"`
}

// LearningHistory 每门课程取最高分的一次记录，同分取最近一次
func (s *QuizService) LearningHistory(ctx context.Context) ([]LearningHistoryItem, error) {
	userID, err := s.Identity.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	attempts, err := s.Store.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: load attempts: %w", util.ErrInternal, err)
	}
	sortRecentFirst(attempts)

	best := make(map[string]model.QuizAttempt)
	order := make([]string, 0)
	for _, a := range attempts {
		existing, ok := best[a.LessonID]
		if !ok {
			order = append(order, a.LessonID)
		}
		if !ok || a.Score > existing.Score {
			best[a.LessonID] = a
		}
	}

	passing := float64(s.PassingScore())
	items := make([]LearningHistoryItem, 0, len(order))
	for _, lessonID := range order {
		a := best[lessonID]
		content := s.Catalog.FindContent(lessonID)
		status := StatusInProgress
		if a.Score >= passing {
			status = StatusComplete
		}
		items = append(items, LearningHistoryItem{
			ID:          lessonID,
			Title:       content.Title,
			Subtitle:    content.Subtitle,
			Type:        content.Type,
			Progress:    a.Score,
			Status:      status,
			Category:    content.Category,
			Topic:       content.Topic,
			CompletedAt: a.CompletedAt,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CompletedAt.After(items[j].CompletedAt)
	})
	return items, nil
}

type DebugAttempt struct {
	ID            string    `json:"id"`
	LessonID      string    `json:"lessonId"`
	UserID        string    `json:"userId"`
	Score         float64   `json:"score"`
	AttemptNumber int       `json:"attemptNumber"`
	CompletedAt   time.Time `json:"completedAt"`
	CreatedAt     time.Time `json:"createdAt"`
}

type DebugListing struct {
	TotalAttempts int            `json:"totalAttempts"`
	Attempts      []DebugAttempt `json:"attempts"`
}

// DebugAttempts 列出全部测验记录，仅用于排查
func (s *QuizService) DebugAttempts(ctx context.Context) (*DebugListing, error) {
	attempts, err := s.Store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load attempts: %w", util.ErrInternal, err)
	}

	out := &DebugListing{
		TotalAttempts: len(attempts),
		Attempts:      make([]DebugAttempt, 0, len(attempts)),
	}
	for _, a := range attempts {
		out.Attempts = append(out.Attempts, DebugAttempt{
			ID:            a.ID,
			LessonID:      a.LessonID,
			UserID:        a.UserID,
			Score:         a.Score,
			AttemptNumber: a.AttemptNumber,
			CompletedAt:   a.CompletedAt,
			CreatedAt:     a.CreatedAt,
		})
	}
	return out, nil
}
