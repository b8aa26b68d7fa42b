package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/expertise-hunt/internal/models"
)

// QuizBrowser lists quiz categories and their questions.
type QuizBrowser interface {
	ListCategories(ctx context.Context) ([]string, error)
	ListQuestions(ctx context.Context, category string) ([]models.QuestionDB, error)
}

// Answerer scores quiz answers.
type Answerer interface {
	Answer(ctx context.Context, questionID uuid.UUID, answer int) (*models.AnswerResult, error)
}

// CategoriesResponse represents the quiz categories
// swagger:model CategoriesResponse
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// QuestionsResponse represents the questions of one category
// swagger:model QuestionsResponse
type QuestionsResponse struct {
	Category  string              `json:"category"`
	Questions []models.QuestionDB `json:"questions"`
}

// AnswerRequest represents the JSON body for a quiz answer
// swagger:model AnswerRequest
type AnswerRequest struct {
	// Question being answered
	// required: true
	QuestionID uuid.UUID `json:"question_id" validate:"required"`

	// Zero-based index of the chosen option
	// required: true
	Answer *int `json:"answer" validate:"required"`
}

// NewListCategoriesHandler returns an HTTP handler listing quiz categories.
// @Summary List quiz categories
// @Tags quiz
// @Produce json
// @Success 200 {object} handlers.CategoriesResponse "Categories"
// @Router /quiz/categories [get]
// @Security BearerAuth
func NewListCategoriesHandler(svc QuizBrowser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		if categories == nil {
			categories = []string{}
		}
		writeJSON(w, http.StatusOK, CategoriesResponse{Categories: categories})
	}
}

// NewListQuestionsHandler returns an HTTP handler listing the questions of a
// category. Correct answers and explanations are not included.
// @Summary List quiz questions
// @Tags quiz
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} handlers.QuestionsResponse "Questions"
// @Failure 400 {object} handlers.ErrorResponse "Invalid category"
// @Router /quiz/categories/{category}/questions [get]
// @Security BearerAuth
func NewListQuestionsHandler(svc QuizBrowser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := chi.URLParam(r, "category")

		questions, err := svc.ListQuestions(r.Context(), category)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if questions == nil {
			questions = []models.QuestionDB{}
		}
		writeJSON(w, http.StatusOK, QuestionsResponse{Category: category, Questions: questions})
	}
}

// NewAnswerHandler returns an HTTP handler checking a quiz answer.
// @Summary Answer a quiz question
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body handlers.AnswerRequest true "Answer"
// @Success 200 {object} models.AnswerResult "Result"
// @Failure 400 {object} handlers.ErrorResponse "Invalid answer"
// @Failure 404 {object} handlers.ErrorResponse "Question not found"
// @Failure 409 {object} handlers.ErrorResponse "Question already answered"
// @Router /quiz/answer [post]
// @Security BearerAuth
func NewAnswerHandler(svc Answerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnswerRequest
		if err := decodeJSON(r, &req); err != nil {
			writeBadRequest(w, err.Error())
			return
		}

		result, err := svc.Answer(r.Context(), req.QuestionID, *req.Answer)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
