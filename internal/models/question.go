package models

import (
	"time"

	"github.com/google/uuid"
)

// QuestionDB is a multiple-choice quiz question. CorrectAnswer and
// Explanation stay hidden until the question is answered.
type QuestionDB struct {
	QuestionID    uuid.UUID `json:"question_id" validate:"required"`
	Category      string    `json:"category" validate:"required"`
	Text          string    `json:"question" validate:"required"`
	MediaType     *string   `json:"media_type,omitempty"`
	MediaURL      *string   `json:"media_url,omitempty"`
	Options       []string  `json:"options" validate:"min=2,dive,required"`
	CorrectAnswer int       `json:"-" validate:"gte=0"` // Index into Options
	Difficulty    string    `json:"difficulty,omitempty"`
	Explanation   string    `json:"-"`
}

// IsOption reports whether answer indexes one of the options.
func (q *QuestionDB) IsOption(answer int) bool {
	return answer >= 0 && answer < len(q.Options)
}

// QuizAnswerDB records the first answer an account gave to a question.
type QuizAnswerDB struct {
	AccountID  uuid.UUID `db:"account_id"`
	QuestionID uuid.UUID `db:"question_id"`
	Answer     int       `db:"answer"`
	Correct    bool      `db:"correct"`
	Score      int       `db:"score"`
	CreatedAt  time.Time `db:"created_at"`
}

// AnswerResult is the outcome of answering a question.
type AnswerResult struct {
	QuestionID    uuid.UUID `json:"question_id"`
	Answer        int       `json:"answer"`
	Correct       bool      `json:"correct"`
	CorrectAnswer int       `json:"correct_answer"`
	Explanation   string    `json:"explanation,omitempty"`
	Score         int       `json:"score"`
	TotalScore    int       `json:"total_score"`
}
