package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/expertise-hunt/internal/models"
)

// QuestionRepository reads the quiz question catalog.
type QuestionRepository struct {
	db *sqlx.DB
}

func NewQuestionRepository(db *sqlx.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

type questionRow struct {
	QuestionID    uuid.UUID `db:"question_id"`
	Category      string    `db:"category"`
	Text          string    `db:"question"`
	MediaType     *string   `db:"media_type"`
	MediaURL      *string   `db:"media_url"`
	Options       []byte    `db:"options"`
	CorrectAnswer int       `db:"correct_answer"`
	Difficulty    string    `db:"difficulty"`
	Explanation   string    `db:"explanation"`
}

func (row questionRow) toModel() (*models.QuestionDB, error) {
	q := &models.QuestionDB{
		QuestionID:    row.QuestionID,
		Category:      row.Category,
		Text:          row.Text,
		MediaType:     row.MediaType,
		MediaURL:      row.MediaURL,
		CorrectAnswer: row.CorrectAnswer,
		Difficulty:    row.Difficulty,
		Explanation:   row.Explanation,
	}
	if err := json.Unmarshal(row.Options, &q.Options); err != nil {
		return nil, fmt.Errorf("%w: question %s options: %v", ErrMalformedRecord, row.QuestionID, err)
	}
	if err := validateRecord(q); err != nil {
		return nil, err
	}
	if !q.IsOption(q.CorrectAnswer) {
		return nil, fmt.Errorf("%w: question %s: correct answer %d out of range", ErrMalformedRecord, q.QuestionID, q.CorrectAnswer)
	}
	return q, nil
}

const questionColumns = `question_id, category, question, media_type, media_url, options, correct_answer, difficulty, explanation`

func (r *QuestionRepository) GetByID(ctx context.Context, questionID uuid.UUID) (*models.QuestionDB, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE question_id = $1`
	var row questionRow
	err := r.db.GetContext(ctx, &row, query, questionID)
	logQuery(query, []any{questionID}, row.QuestionID, err)
	if err != nil {
		return nil, translate(err)
	}
	return row.toModel()
}

// ListByCategory returns the questions of category in a stable order.
func (r *QuestionRepository) ListByCategory(ctx context.Context, category string) ([]models.QuestionDB, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE category = $1 ORDER BY question_id`
	var rows []questionRow
	err := r.db.SelectContext(ctx, &rows, query, category)
	logQuery(query, []any{category}, len(rows), err)
	if err != nil {
		return nil, err
	}

	questions := make([]models.QuestionDB, 0, len(rows))
	for _, row := range rows {
		q, err := row.toModel()
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}
	return questions, nil
}

// ListCategories returns every category that has at least one question.
func (r *QuestionRepository) ListCategories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM questions ORDER BY category`
	var categories []string
	err := r.db.SelectContext(ctx, &categories, query)
	logQuery(query, nil, len(categories), err)
	return categories, err
}
