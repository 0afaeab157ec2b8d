package repository

import (
	"credit_edu_backend/internal/model"
	"fmt"
)

const defaultLessonID = "1"

// QuizCatalogRepository 课程题库与展示信息，目前为内置数据
type QuizCatalogRepository struct {
	questionSets map[string][]model.QuizQuestion
	contents     map[string]model.LessonContent
}

func NewQuizCatalogRepository() *QuizCatalogRepository {
	return &QuizCatalogRepository{
		questionSets: defaultQuestionSets(),
		contents:     defaultLessonContents(),
	}
}

// FindQuestions 未知课程回退到默认题库
func (r *QuizCatalogRepository) FindQuestions(lessonID string) []model.QuizQuestion {
	questions, ok := r.questionSets[lessonID]
	if !ok {
		questions = r.questionSets[defaultLessonID]
	}
	out := make([]model.QuizQuestion, len(questions))
	for i, q := range questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

func (r *QuizCatalogRepository) DefaultSettings(passingScore int) model.QuizSettings {
	return model.QuizSettings{
		ShowExplanations: true,
		AllowReview:      true,
		ShuffleQuestions: false,
		ShuffleOptions:   false,
		ShowProgressBar:  true,
		EnableTimer:      true,
		TimeLimit:        300,
		PassingScore:     passingScore,
	}
}

func (r *QuizCatalogRepository) HasLesson(lessonID string) bool {
	_, ok := r.contents[lessonID]
	return ok
}

func (r *QuizCatalogRepository) FindContent(lessonID string) model.LessonContent {
	if c, ok := r.contents[lessonID]; ok {
		return c
	}
	return model.LessonContent{
		Title:    fmt.Sprintf("Lesson %s", lessonID),
		Subtitle: "Credit education content",
		Type:     model.ContentVideo,
		Category: "beginner",
		Topic:    "general",
	}
}

func defaultLessonContents() map[string]model.LessonContent {
	return map[string]model.LessonContent{
		"1": {Title: "Understanding Credit Basics", Subtitle: "Learn the fundamentals of credit scores and credit history", Type: model.ContentVideo, Category: "beginner", Topic: "credit-basics"},
		"2": {Title: "Building Your Credit History", Subtitle: "Practical steps to establish credit as a newcomer", Type: model.ContentVideo, Category: "beginner", Topic: "credit-building"},
		"3": {Title: "Credit Cards 101", Subtitle: "Everything you need to know about credit cards", Type: model.ContentArticle, Category: "intermediate", Topic: "credit-cards"},
		"4": {Title: "Managing Credit Utilization", Subtitle: "How to optimize your credit card usage", Type: model.ContentGuide, Category: "intermediate", Topic: "credit-management"},
		"5": {Title: "Avoiding Common Credit Mistakes", Subtitle: "Pitfalls to avoid when building credit", Type: model.ContentVideo, Category: "advanced", Topic: "credit-mistakes"},
	}
}

func defaultQuestionSets() map[string][]model.QuizQuestion {
	return map[string][]model.QuizQuestion{
		defaultLessonID: {
			{
				ID:            "q1",
				Question:      "What is the recommended credit utilization ratio?",
				Options:       []string{"Under 10%", "Under 30%", "Under 50%", "Under 70%"},
				CorrectAnswer: 1,
				Explanation:   "Keeping your credit utilization under 30% is recommended for maintaining a healthy credit score.",
			},
			{
				ID:       "q2",
				Question: "Why do newcomers to Canada start with no credit file?",
				Options: []string{
					"They have bad credit from their home country",
					"Canadian credit bureaus don't track international credit history",
					"They need to apply for citizenship first",
					"It's a requirement by law",
				},
				CorrectAnswer: 1,
				Explanation:   "Canadian credit bureaus only track credit activity within Canada.",
			},
			{
				ID:       "q3",
				Question: `What does "hard inquiry" mean in credit terms?`,
				Options: []string{
					"A difficult question about your credit",
					"When you check your own credit score",
					"When a lender checks your credit for a loan decision",
					"When your credit card company reviews your account",
				},
				CorrectAnswer: 2,
				Explanation:   "A hard inquiry occurs when a financial institution checks your credit report to make a lending decision. It can temporarily lower your credit score.",
			},
			{
				ID:       "q4",
				Question: "Which payment method helps build credit history in Canada?",
				Options: []string{
					"Using cash only",
					"Using a debit card",
					"Using a secured credit card",
					"Using a prepaid card",
				},
				CorrectAnswer: 2,
				Explanation:   "Secured credit cards are an excellent tool for newcomers to build credit history as they report to credit bureaus.",
			},
			{
				ID:            "q5",
				Question:      "How long does it typically take to establish a credit score in Canada?",
				Options:       []string{"1-2 weeks", "1-2 months", "3-6 months", "1-2 years"},
				CorrectAnswer: 2,
				Explanation:   "It typically takes 3-6 months of credit activity to establish a credit score in Canada.",
			},
		},
	}
}
