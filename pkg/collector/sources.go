package collector

import (
	"context"

	"stackcollect/pkg/logger"
	"stackcollect/pkg/mockgen"
	"stackcollect/pkg/models"
	"stackcollect/pkg/stackexchange"
)

// liveSource adapts the Stack Exchange API client to the source interfaces
type liveSource struct {
	client *stackexchange.Client
}

func (s *liveSource) FetchQuestions(ctx context.Context, req Request) ([]models.Question, error) {
	return s.client.FetchQuestions(ctx, stackexchange.QuestionQuery{
		Tag:        req.Tag,
		MinAnswers: req.MinAnswers,
		MinScore:   req.MinScore,
		MaxCount:   req.MaxCount,
		FromDate:   req.FromDate,
		ToDate:     req.ToDate,
	})
}

func (s *liveSource) FetchAnswers(ctx context.Context, questionID int) ([]models.Answer, error) {
	return s.client.FetchAnswers(ctx, questionID)
}

// mockSource serves generated records instead of hitting the API. The
// request's filters are not applied to generated data; only MaxCount is
// honored.
type mockSource struct {
	gen    *mockgen.Generator
	logger logger.Logger
}

func (s *mockSource) FetchQuestions(ctx context.Context, req Request) ([]models.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.InfoWithFields("generating mock questions", map[string]interface{}{
		"tag":   req.Tag,
		"count": req.MaxCount,
	})
	return s.gen.GenerateQuestions(req.MaxCount), nil
}

func (s *mockSource) FetchAnswers(ctx context.Context, questionID int) ([]models.Answer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.gen.GenerateAnswers(questionID), nil
}
