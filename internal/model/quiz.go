package model

// QuizQuestion 单选题
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

type QuizSettings struct {
	ShowExplanations bool `json:"showExplanations"`
	AllowReview      bool `json:"allowReview"`
	ShuffleQuestions bool `json:"shuffleQuestions"`
	ShuffleOptions   bool `json:"shuffleOptions"`
	ShowProgressBar  bool `json:"showProgressBar"`
	EnableTimer      bool `json:"enableTimer"`
	// 秒
	TimeLimit    int  `json:"timeLimit,omitempty"`
	PassingScore int  `json:"passingScore"`
	MaxAttempts  *int `json:"maxAttempts,omitempty"`
}

type ContentType string

const (
	ContentGuide   ContentType = "3-step guide"
	ContentVideo   ContentType = "video"
	ContentArticle ContentType = "article"
)

// LessonContent 课程的展示信息
type LessonContent struct {
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Type     ContentType `json:"type"`
	Category string      `json:"category"`
	Topic    string      `json:"topic"`
}
