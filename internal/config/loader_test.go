package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadQuestionSet_JSON(t *testing.T) {
	path := writeFile(t, "question_set.json", `{
		"question_set_id": "qs_v0",
		"version": "1.0.0",
		"questions": [
			{"question_id": "Q1", "prompt": "Strategy?", "answer_mode": "single"},
			{"question_id": "Q2", "prompt": "Factors?", "answer_mode": "multi_atomic", "expected_mechanisms": ["waiver"]}
		]
	}`)

	qs, err := LoadQuestionSet(path)
	if err != nil {
		t.Fatalf("LoadQuestionSet: %v", err)
	}
	if qs.QuestionSetID != "qs_v0" || qs.Version != "1.0.0" {
		t.Fatalf("unexpected identity: %s@%s", qs.QuestionSetID, qs.Version)
	}
	if len(qs.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs.Questions))
	}
	if qs.StrategyQuestionID() != "Q1" {
		t.Fatalf("expected Q1 as strategy question, got %q", qs.StrategyQuestionID())
	}
	q := qs.Question("Q2")
	if q == nil || len(q.ExpectedMechanisms) != 1 || q.ExpectedMechanisms[0] != "waiver" {
		t.Fatalf("unexpected Q2: %+v", q)
	}
	if qs.Question("Q9") != nil {
		t.Fatalf("lookup of an unknown question must return nil")
	}
}

func TestLoadQuestionSet_YAML(t *testing.T) {
	path := writeFile(t, "question_set.yaml", `
question_set_id: qs_v0
version: 1.0.0
questions:
  - question_id: Q1
    prompt: Strategy?
    answer_mode: single
  - question_id: Q2
    prompt: Factors?
    answer_mode: multi_atomic
`)

	qs, err := LoadQuestionSet(path)
	if err != nil {
		t.Fatalf("LoadQuestionSet: %v", err)
	}
	if len(qs.Questions) != 2 || qs.Questions[1].AnswerMode != AnswerModeMultiAtomic {
		t.Fatalf("unexpected questions: %+v", qs.Questions)
	}
}

func TestLoadQuestionSet_RejectsInvalidAnswerMode(t *testing.T) {
	path := writeFile(t, "question_set.json", `{
		"question_set_id": "qs_v0",
		"version": "1.0.0",
		"questions": [{"question_id": "Q1", "answer_mode": "freeform"}]
	}`)

	if _, err := LoadQuestionSet(path); err == nil {
		t.Fatalf("expected an error for an invalid answer_mode")
	}
}

func TestLoadQuestionSet_RequiresIdentity(t *testing.T) {
	path := writeFile(t, "question_set.json", `{
		"version": "1.0.0",
		"questions": [{"question_id": "Q1", "answer_mode": "single"}]
	}`)

	if _, err := LoadQuestionSet(path); err == nil {
		t.Fatalf("expected an error for a missing question_set_id")
	}
}

func TestLoadMechanismSet_JSON(t *testing.T) {
	path := writeFile(t, "mechanism_set.json", `{
		"mechanism_set_id": "ms_v0",
		"version": "1.0.0",
		"mechanisms": [
			{"mechanism_id": "waiver", "name": "Waiver", "allowed_question_ids": ["Q2"]}
		]
	}`)

	ms, err := LoadMechanismSet(path)
	if err != nil {
		t.Fatalf("LoadMechanismSet: %v", err)
	}
	if ms.MechanismSetID != "ms_v0" || len(ms.Mechanisms) != 1 {
		t.Fatalf("unexpected mechanism set: %+v", ms)
	}
}

func TestLoadMechanismSet_RequiresMechanismID(t *testing.T) {
	path := writeFile(t, "mechanism_set.json", `{
		"mechanism_set_id": "ms_v0",
		"version": "1.0.0",
		"mechanisms": [{"name": "Waiver"}]
	}`)

	if _, err := LoadMechanismSet(path); err == nil {
		t.Fatalf("expected an error for a missing mechanism_id")
	}
}
