package mockgen

import (
	"fmt"
	"math/rand"
	"time"

	"stackcollect/pkg/models"
)

// BaseTag is attached to every generated question
const BaseTag = "nlp"

var topics = []string{
	"tokenization",
	"word embeddings",
	"named entity recognition",
	"sentiment analysis",
	"text classification",
	"machine translation",
	"question answering",
	"summarization",
	"speech recognition",
	"BERT",
}

var libraries = []string{"NLTK", "spaCy", "Transformers", "TensorFlow", "PyTorch", "Gensim"}

// Generator produces synthetic question and answer records that carry the
// same field set as live API responses, so the pipeline and persistence
// layers can run without network access.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// New creates a Generator seeded for reproducible output. The same seed
// always yields the same records for the same call sequence.
func New(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// GenerateQuestions produces count synthetic questions with IDs 1..count.
// Each question carries the base tag plus one to three random topic tags,
// a score in [0,50], an answer count in [1,5] and a creation time within
// the past 30 days.
func (g *Generator) GenerateQuestions(count int) []models.Question {
	questions := make([]models.Question, 0, count)

	for i := 1; i <= count; i++ {
		topic := topics[g.rng.Intn(len(topics))]
		library := libraries[g.rng.Intn(len(libraries))]
		accepted := i * 100

		questions = append(questions, models.Question{
			QuestionID:       i,
			Title:            fmt.Sprintf("How do I implement %s in an NLP project?", topic),
			Body:             fmt.Sprintf("I am trying to implement %s using Python and %s, but I have run into some problems...", topic, library),
			Score:            g.rng.Intn(51),
			AnswerCount:      1 + g.rng.Intn(5),
			CreationDate:     g.pastTimestamp(30),
			Tags:             g.sampleTags(),
			AcceptedAnswerID: &accepted,
		})
	}

	return questions
}

// GenerateAnswers produces one to five synthetic answers for a question.
// Answer IDs are derived as questionID*100 + index, and exactly the first
// generated answer is marked accepted.
//
// The derived ID scheme collides once questionID grows past ~10^7 or a
// question gets more than 99 answers; mock runs use small sequential IDs
// so neither bound is hit in practice.
func (g *Generator) GenerateAnswers(questionID int) []models.Answer {
	count := 1 + g.rng.Intn(5)
	answers := make([]models.Answer, 0, count)

	for i := 1; i <= count; i++ {
		library := libraries[g.rng.Intn(len(libraries))]

		answers = append(answers, models.Answer{
			AnswerID:     questionID*100 + i,
			Body:         fmt.Sprintf("You can solve this with the %s library. For example:\n```python\nimport %s\n\n# your logic here\n```\nHope this helps!", library, library),
			Score:        g.rng.Intn(31),
			IsAccepted:   i == 1,
			CreationDate: g.pastTimestamp(15),
			Owner: models.Owner{
				UserID:      1000 + g.rng.Intn(9000),
				DisplayName: fmt.Sprintf("nlp_expert_%d", 1+g.rng.Intn(100)),
			},
		})
	}

	return answers
}

// sampleTags returns the base tag plus 1-3 distinct random topic tags
func (g *Generator) sampleTags() []string {
	n := 1 + g.rng.Intn(3)
	perm := g.rng.Perm(len(topics))

	tags := make([]string, 0, n+1)
	tags = append(tags, BaseTag)
	for _, idx := range perm[:n] {
		tags = append(tags, topics[idx])
	}
	return tags
}

// pastTimestamp returns an epoch second uniformly within the past maxDays
func (g *Generator) pastTimestamp(maxDays int) int64 {
	window := int64(maxDays) * 24 * 60 * 60
	return g.now().Unix() - g.rng.Int63n(window)
}
