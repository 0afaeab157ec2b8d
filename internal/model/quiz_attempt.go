package model

import "time"

// LessonIDMaxLength 与 lesson_id 列宽一致
const LessonIDMaxLength = 64

// QuizAttempt 一次完成的测验提交，写入后不可修改
type QuizAttempt struct {
	// 自增序号，保证按插入顺序读取
	Seq            uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ID             string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"id"`
	LessonID       string    `gorm:"type:varchar(64);not null;index:idx_quiz_attempts_lesson_user,priority:1" json:"lessonId"`
	UserID         string    `gorm:"type:varchar(64);not null;index:idx_quiz_attempts_lesson_user,priority:2;index" json:"userId"`
	Score          float64   `gorm:"not null" json:"score"`
	CorrectAnswers int       `gorm:"not null" json:"correctAnswers"`
	TotalQuestions int       `gorm:"not null" json:"totalQuestions"`
	Answers        AnswerMap `gorm:"type:json" json:"answers"`
	TimeSpent      int       `gorm:"not null;default:0" json:"timeSpent"`
	CompletedAt    time.Time `json:"completedAt"`
	AttemptNumber  int       `gorm:"not null" json:"attemptNumber"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// Clone 返回深拷贝，避免调用方修改存储中的记录
func (a QuizAttempt) Clone() QuizAttempt {
	a.Answers = a.Answers.Clone()
	return a
}
