package checkpoint

import (
	"os"
	"path/filepath"
	"testing"

	"stackcollect/pkg/logger"
	"stackcollect/pkg/models"
	"stackcollect/pkg/storage"
)

func TestWriteCheckpoint(t *testing.T) {
	dir := t.TempDir()
	mgr := NewManager(dir, "questions", logger.NewNopLogger())

	questions := []models.Question{
		{QuestionID: 1, Title: "First", Tags: []string{"nlp"}},
		{QuestionID: 2, Title: "Second", Tags: []string{"nlp"}},
	}

	if err := mgr.Write(questions, 2); err != nil {
		t.Fatalf("Failed to write checkpoint: %v", err)
	}

	path := filepath.Join(dir, "questions_temp_2.json")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Expected checkpoint file at %s: %v", path, err)
	}

	loaded, err := storage.Load(path)
	if err != nil {
		t.Fatalf("Failed to read checkpoint back: %v", err)
	}
	if len(loaded) != 2 {
		t.Errorf("Expected 2 questions in checkpoint, got %d", len(loaded))
	}
	if loaded[0].QuestionID != 1 || loaded[1].QuestionID != 2 {
		t.Error("Checkpoint does not preserve question order")
	}
}

func TestCheckpointsAreCumulative(t *testing.T) {
	dir := t.TempDir()
	mgr := NewManager(dir, "questions", logger.NewNopLogger())

	var accumulated []models.Question
	for i := 1; i <= 20; i++ {
		accumulated = append(accumulated, models.Question{QuestionID: i})
		if i%10 == 0 {
			if err := mgr.Write(accumulated, i); err != nil {
				t.Fatalf("Failed to write checkpoint at %d: %v", i, err)
			}
		}
	}

	first, err := storage.Load(mgr.Path(10))
	if err != nil {
		t.Fatalf("Failed to load first checkpoint: %v", err)
	}
	second, err := storage.Load(mgr.Path(20))
	if err != nil {
		t.Fatalf("Failed to load second checkpoint: %v", err)
	}

	if len(first) != 10 || len(second) != 20 {
		t.Fatalf("Expected 10 and 20 questions, got %d and %d", len(first), len(second))
	}

	// Every earlier checkpoint must be a prefix of the later one
	for i := range first {
		if first[i].QuestionID != second[i].QuestionID {
			t.Errorf("Checkpoint at 10 is not a prefix of checkpoint at 20 (index %d)", i)
		}
	}
}

func TestWriteCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "raw")
	mgr := NewManager(dir, "questions", logger.NewNopLogger())

	if err := mgr.Write([]models.Question{{QuestionID: 1}}, 1); err != nil {
		t.Fatalf("Failed to write checkpoint into missing directory: %v", err)
	}

	if _, err := os.Stat(mgr.Path(1)); err != nil {
		t.Errorf("Expected checkpoint file: %v", err)
	}
}

func TestWriteFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	mgr := NewManager(blocker, "questions", logger.NewNopLogger())
	if err := mgr.Write([]models.Question{{QuestionID: 1}}, 1); err == nil {
		t.Error("Expected error writing checkpoint under a regular file")
	}
}
