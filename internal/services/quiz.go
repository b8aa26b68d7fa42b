package services

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/expertise-hunt/internal/logger"
	"github.com/sbilibin2017/expertise-hunt/internal/models"
	"github.com/sbilibin2017/expertise-hunt/internal/repositories"
)

// QuizCorrectPoints is credited for a correct first answer.
const QuizCorrectPoints = 10

var categoryPattern = regexp.MustCompile(`^[a-z0-9_]{1,64}$`)

// QuestionReader reads the quiz catalog.
type QuestionReader interface {
	GetByID(ctx context.Context, questionID uuid.UUID) (*models.QuestionDB, error)
	ListByCategory(ctx context.Context, category string) ([]models.QuestionDB, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// QuizAnswerWriter records scored answers.
type QuizAnswerWriter interface {
	Create(ctx context.Context, a *models.QuizAnswerDB) error // Returns ErrConflict when already answered
}

// QuizService serves category quizzes and scores answers into the same
// account total as the guessing game.
type QuizService struct {
	tx        TxRunner
	identity  IdentityProvider
	questions QuestionReader
	answers   QuizAnswerWriter
	scores    ScoreWriter
}

func NewQuizService(tx TxRunner, identity IdentityProvider, questions QuestionReader, answers QuizAnswerWriter, scores ScoreWriter) *QuizService {
	return &QuizService{tx: tx, identity: identity, questions: questions, answers: answers, scores: scores}
}

func (s *QuizService) ListCategories(ctx context.Context) ([]string, error) {
	if _, err := currentIdentity(ctx, s.identity); err != nil {
		return nil, err
	}
	categories, err := s.questions.ListCategories(ctx)
	if err != nil {
		return nil, storeError("list question categories", err)
	}
	return categories, nil
}

// ListQuestions returns the questions of category without their answers.
// An unknown category yields an empty list.
func (s *QuizService) ListQuestions(ctx context.Context, category string) ([]models.QuestionDB, error) {
	if _, err := currentIdentity(ctx, s.identity); err != nil {
		return nil, err
	}
	if !categoryPattern.MatchString(category) {
		return nil, ErrInvalidCategory
	}
	questions, err := s.questions.ListByCategory(ctx, category)
	if err != nil {
		return nil, storeError("list questions", err)
	}
	return questions, nil
}

// Answer checks the caller's answer. Only the first answer to a question is
// recorded and scored; later ones return ErrAlreadyAnswered.
func (s *QuizService) Answer(ctx context.Context, questionID uuid.UUID, answer int) (*models.AnswerResult, error) {
	me, err := currentIdentity(ctx, s.identity)
	if err != nil {
		return nil, err
	}

	q, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, storeError("load question", err)
	}
	if !q.IsOption(answer) {
		return nil, ErrInvalidAnswer
	}

	correct := answer == q.CorrectAnswer
	points := 0
	if correct {
		points = QuizCorrectPoints
	}

	var total int
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		err := s.answers.Create(ctx, &models.QuizAnswerDB{
			AccountID:  me,
			QuestionID: questionID,
			Answer:     answer,
			Correct:    correct,
			Score:      points,
			CreatedAt:  time.Now().UTC(),
		})
		switch {
		case errors.Is(err, repositories.ErrConflict):
			return ErrAlreadyAnswered
		case errors.Is(err, repositories.ErrNotFound):
			return ErrAccountNotFound
		case err != nil:
			return storeError("record answer", err)
		}

		total, err = creditScore(ctx, s.scores, me, points)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to score answer", "account_id", me, "question_id", questionID, "error", err)
		return nil, classify("score answer", err)
	}

	return &models.AnswerResult{
		QuestionID:    questionID,
		Answer:        answer,
		Correct:       correct,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Score:         points,
		TotalScore:    total,
	}, nil
}
