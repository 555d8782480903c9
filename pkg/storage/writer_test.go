package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackcollect/pkg/models"
)

func sampleQuestions() []models.Question {
	accepted := 101
	return []models.Question{
		{
			QuestionID:       1,
			Title:            "How do I tokenize 中文 text?",
			Body:             "Working with mixed <code>中文</code> and English input...",
			Score:            12,
			AnswerCount:      2,
			CreationDate:     1617235200,
			Tags:             []string{"nlp", "tokenization"},
			AcceptedAnswerID: &accepted,
			Answers: []models.Answer{
				{
					AnswerID:     101,
					Body:         "Use a segmentation library.",
					Score:        5,
					IsAccepted:   true,
					CreationDate: 1617235300,
					Owner:        models.Owner{UserID: 1001, DisplayName: "Tokenizer Tom"},
				},
				{
					AnswerID:     102,
					Body:         "Character-level models work too.",
					Score:        3,
					CreationDate: 1617235400,
					Owner:        models.Owner{UserID: 1002, DisplayName: "Ngram Nadia"},
				},
			},
		},
		{
			QuestionID:   2,
			Title:        "Second question",
			Body:         "Body 2",
			Score:        5,
			AnswerCount:  0,
			CreationDate: 1617321600,
			Tags:         []string{"nlp"},
		},
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	questions := sampleQuestions()

	require.NoError(t, Save(questions, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, questions, loaded)
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data", "raw", "nested", "out.json")

	require.NoError(t, Save(sampleQuestions(), path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSavePreservesNonASCIIAndHTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, Save(sampleQuestions(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "中文", "non-ASCII characters should not be escaped")
	assert.Contains(t, content, "<code>", "HTML should not be escaped")
	assert.Contains(t, content, "\n  ", "output should be indented")
}

func TestSaveOverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, Save(sampleQuestions(), path))

	replacement := []models.Question{{QuestionID: 99, Title: "Replacement", Tags: []string{"nlp"}}}
	require.NoError(t, Save(replacement, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 99, loaded[0].QuestionID)
}

func TestSaveEmptySlice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, Save([]models.Question{}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}

func TestSaveUnwritablePathFails(t *testing.T) {
	// A path whose parent is a regular file cannot be created
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := Save(sampleQuestions(), filepath.Join(blocker, "out.json"))
	assert.Error(t, err)
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, Save(sampleQuestions(), path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasSuffix(entry.Name(), ".tmp"), "temp file left behind: %s", entry.Name())
	}
}
