package collector

import (
	"context"
	"fmt"

	"stackcollect/pkg/checkpoint"
	"stackcollect/pkg/config"
	"stackcollect/pkg/logger"
	"stackcollect/pkg/mockgen"
	"stackcollect/pkg/models"
	"stackcollect/pkg/stackexchange"
)

// checkpointEvery is the number of processed questions between
// intermediate snapshots. A final snapshot is always written after the
// last question regardless of alignment.
const checkpointEvery = 10

// Collector runs the question collection pipeline: fetch questions,
// fetch and merge answers per question, checkpoint periodically.
//
// Whether a Collector serves live API data or generated mock data is
// fixed at construction; the two modes never mix within one instance.
type Collector struct {
	questions   QuestionSource
	answers     AnswerSource
	checkpoints CheckpointWriter
	logger      logger.Logger
}

// New creates a Collector wired according to cfg. In mock mode the
// sources are backed by a seeded generator; otherwise by the Stack
// Exchange API client. Construction fails if the client cannot be built.
func New(cfg *config.Config, log logger.Logger) (*Collector, error) {
	if log == nil {
		log = logger.GetLogger()
	}

	checkpoints := checkpoint.NewManager(
		cfg.Output.BaseDirectory,
		cfg.Output.CheckpointPrefix,
		log,
	)

	if cfg.Collection.UseMockData {
		log.Warn("mock data mode enabled, no API requests will be sent")
		src := &mockSource{
			gen:    mockgen.New(cfg.Collection.MockSeed),
			logger: log,
		}
		return &Collector{
			questions:   src,
			answers:     src,
			checkpoints: checkpoints,
			logger:      log,
		}, nil
	}

	client, err := stackexchange.NewClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize API client: %w", err)
	}
	src := &liveSource{client: client}

	return &Collector{
		questions:   src,
		answers:     src,
		checkpoints: checkpoints,
		logger:      log,
	}, nil
}

// NewWithSources creates a Collector from explicit sources. Used by tests
// and by callers that need custom wiring.
func NewWithSources(questions QuestionSource, answers AnswerSource, checkpoints CheckpointWriter, log logger.Logger) *Collector {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Collector{
		questions:   questions,
		answers:     answers,
		checkpoints: checkpoints,
		logger:      log,
	}
}

// Collect fetches questions matching req and enriches each with its
// answers, in fetch order.
//
// A failed question fetch degrades to an empty run: the failure is
// logged and Collect returns an empty slice without error. A failed
// answer fetch degrades to empty answers for that one question only;
// sibling questions are unaffected. Checkpoint I/O failures are the one
// thing that aborts the pipeline.
func (c *Collector) Collect(ctx context.Context, req Request) ([]models.Question, error) {
	questions, err := c.questions.FetchQuestions(ctx, req)
	if err != nil {
		c.logger.ErrorWithFields("question fetch failed", map[string]interface{}{
			"tag":   req.Tag,
			"error": err.Error(),
		})
		questions = nil
	}

	if len(questions) == 0 {
		c.logger.WarnWithFields("no questions matched the given filters", map[string]interface{}{
			"tag": req.Tag,
		})
		return []models.Question{}, nil
	}

	total := len(questions)
	collected := make([]models.Question, 0, total)

	for i, question := range questions {
		if err := ctx.Err(); err != nil {
			return collected, err
		}

		answers, err := c.answers.FetchAnswers(ctx, question.QuestionID)
		if err != nil {
			c.logger.ErrorWithFields("answer fetch failed", map[string]interface{}{
				"question_id": question.QuestionID,
				"error":       err.Error(),
			})
			answers = nil
		}

		question.Answers = answers
		collected = append(collected, question)

		c.logger.InfoWithFields("collection progress", map[string]interface{}{
			"progress":     fmt.Sprintf("%d/%d", i+1, total),
			"question_id":  question.QuestionID,
			"answer_count": len(answers),
		})

		if (i+1)%checkpointEvery == 0 || i == total-1 {
			if err := c.checkpoints.Write(collected, len(collected)); err != nil {
				return nil, err
			}
		}
	}

	return collected, nil
}
