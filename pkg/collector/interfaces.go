package collector

import (
	"context"

	"stackcollect/pkg/models"
)

// Request holds the filter parameters for one collection run. FromDate
// and ToDate are inclusive epoch-second bounds; zero means unset.
type Request struct {
	Tag        string
	MinAnswers int
	MinScore   int
	MaxCount   int
	FromDate   int64
	ToDate     int64
}

// QuestionSource fetches questions matching a request, newest first
type QuestionSource interface {
	FetchQuestions(ctx context.Context, req Request) ([]models.Question, error)
}

// AnswerSource fetches the answers for one question, best scored first
type AnswerSource interface {
	FetchAnswers(ctx context.Context, questionID int) ([]models.Answer, error)
}

// CheckpointWriter persists intermediate collection snapshots
type CheckpointWriter interface {
	Write(questions []models.Question, count int) error
}
