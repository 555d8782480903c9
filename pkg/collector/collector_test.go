package collector

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackcollect/pkg/config"
	"stackcollect/pkg/logger"
	"stackcollect/pkg/models"
)

// fakeQuestionSource returns a canned question list or error
type fakeQuestionSource struct {
	questions []models.Question
	err       error
	calls     int
}

func (f *fakeQuestionSource) FetchQuestions(ctx context.Context, req Request) ([]models.Question, error) {
	f.calls++
	return f.questions, f.err
}

// fakeAnswerSource serves two answers per question, with optional
// per-question failure injection
type fakeAnswerSource struct {
	failFor map[int]bool
	calls   int
}

func (f *fakeAnswerSource) FetchAnswers(ctx context.Context, questionID int) ([]models.Answer, error) {
	f.calls++
	if f.failFor[questionID] {
		return nil, errors.New("simulated fetch failure")
	}
	return []models.Answer{
		{AnswerID: questionID*100 + 1, IsAccepted: true},
		{AnswerID: questionID*100 + 2},
	}, nil
}

// recordingCheckpoints captures every checkpoint write
type recordingCheckpoints struct {
	counts    []int
	snapshots [][]models.Question
	err       error
}

func (r *recordingCheckpoints) Write(questions []models.Question, count int) error {
	if r.err != nil {
		return r.err
	}
	r.counts = append(r.counts, count)
	snapshot := make([]models.Question, len(questions))
	copy(snapshot, questions)
	r.snapshots = append(r.snapshots, snapshot)
	return nil
}

func makeQuestions(n int) []models.Question {
	questions := make([]models.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, models.Question{
			QuestionID: i,
			Title:      fmt.Sprintf("Question %d", i),
			Tags:       []string{"nlp"},
		})
	}
	return questions
}

func TestCollectMergesAnswersInFetchOrder(t *testing.T) {
	questions := &fakeQuestionSource{questions: makeQuestions(5)}
	answers := &fakeAnswerSource{}
	checkpoints := &recordingCheckpoints{}

	c := NewWithSources(questions, answers, checkpoints, logger.NewNopLogger())
	result, err := c.Collect(context.Background(), Request{Tag: "nlp", MaxCount: 5})

	require.NoError(t, err)
	require.Len(t, result, 5)

	for i, q := range result {
		assert.Equal(t, i+1, q.QuestionID, "output order must equal fetch order")
		require.Len(t, q.Answers, 2)
		assert.Equal(t, q.QuestionID*100+1, q.Answers[0].AnswerID)
	}
	assert.Equal(t, 5, answers.calls)
}

func TestCollectCheckpointCadence(t *testing.T) {
	questions := &fakeQuestionSource{questions: makeQuestions(25)}
	checkpoints := &recordingCheckpoints{}

	c := NewWithSources(questions, &fakeAnswerSource{}, checkpoints, logger.NewNopLogger())
	result, err := c.Collect(context.Background(), Request{Tag: "nlp", MaxCount: 25})

	require.NoError(t, err)
	require.Len(t, result, 25)

	// After question 10, question 20 and the last question, and no others
	assert.Equal(t, []int{10, 20, 25}, checkpoints.counts)

	// Every snapshot is a cumulative prefix of the final result
	for i, snapshot := range checkpoints.snapshots {
		require.Len(t, snapshot, checkpoints.counts[i])
		for j, q := range snapshot {
			assert.Equal(t, result[j].QuestionID, q.QuestionID)
		}
	}
}

func TestCollectCheckpointAlignedEnd(t *testing.T) {
	// The 20th question is both a 10th-question checkpoint and the last
	// one; it must be written once, not twice.
	questions := &fakeQuestionSource{questions: makeQuestions(20)}
	checkpoints := &recordingCheckpoints{}

	c := NewWithSources(questions, &fakeAnswerSource{}, checkpoints, logger.NewNopLogger())
	_, err := c.Collect(context.Background(), Request{Tag: "nlp", MaxCount: 20})

	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, checkpoints.counts)
}

func TestCollectEmptyResult(t *testing.T) {
	questions := &fakeQuestionSource{questions: nil}
	answers := &fakeAnswerSource{}
	checkpoints := &recordingCheckpoints{}

	c := NewWithSources(questions, answers, checkpoints, logger.NewNopLogger())
	result, err := c.Collect(context.Background(), Request{Tag: "nlp", MaxCount: 10})

	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Equal(t, 0, answers.calls, "no answer fetches on empty result")
	assert.Empty(t, checkpoints.counts, "no checkpoint writes on empty result")
}

func TestCollectQuestionFetchFailureDegradesToEmpty(t *testing.T) {
	questions := &fakeQuestionSource{err: errors.New("api unavailable")}
	answers := &fakeAnswerSource{}
	checkpoints := &recordingCheckpoints{}

	c := NewWithSources(questions, answers, checkpoints, logger.NewNopLogger())
	result, err := c.Collect(context.Background(), Request{Tag: "nlp", MaxCount: 10})

	require.NoError(t, err, "a failed question fetch must not escape Collect")
	assert.Empty(t, result)
	assert.Equal(t, 0, answers.calls)
}

func TestCollectAnswerFailureIsIsolated(t *testing.T) {
	questions := &fakeQuestionSource{questions: makeQuestions(5)}
	answers := &fakeAnswerSource{failFor: map[int]bool{3: true}}
	checkpoints := &recordingCheckpoints{}

	c := NewWithSources(questions, answers, checkpoints, logger.NewNopLogger())
	result, err := c.Collect(context.Background(), Request{Tag: "nlp", MaxCount: 5})

	require.NoError(t, err)
	require.Len(t, result, 5)

	for _, q := range result {
		if q.QuestionID == 3 {
			assert.Empty(t, q.Answers, "failed question should carry empty answers")
		} else {
			assert.NotEmpty(t, q.Answers, "siblings of a failed question keep their answers")
		}
	}
}

func TestCollectCheckpointFailureAborts(t *testing.T) {
	questions := &fakeQuestionSource{questions: makeQuestions(15)}
	checkpoints := &recordingCheckpoints{err: errors.New("disk full")}

	c := NewWithSources(questions, &fakeAnswerSource{}, checkpoints, logger.NewNopLogger())
	_, err := c.Collect(context.Background(), Request{Tag: "nlp", MaxCount: 15})

	assert.Error(t, err, "checkpoint I/O failure must propagate")
}

func TestCollectContextCancellation(t *testing.T) {
	questions := &fakeQuestionSource{questions: makeQuestions(5)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewWithSources(questions, &fakeAnswerSource{}, &recordingCheckpoints{}, logger.NewNopLogger())
	_, err := c.Collect(ctx, Request{Tag: "nlp", MaxCount: 5})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewMockModeEndToEnd(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Collection.UseMockData = true
	cfg.Collection.MockSeed = 42
	cfg.Output.BaseDirectory = t.TempDir()

	c, err := New(cfg, logger.NewNopLogger())
	require.NoError(t, err)

	result, err := c.Collect(context.Background(), Request{Tag: "nlp", MaxCount: 12})
	require.NoError(t, err)
	require.Len(t, result, 12)

	for _, q := range result {
		assert.NotEmpty(t, q.Answers, "mock mode guarantees at least one answer per question")
		assert.Contains(t, q.Tags, "nlp")
	}
}
