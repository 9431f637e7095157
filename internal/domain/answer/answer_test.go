package answer_test

import (
	"encoding/json"
	"testing"

	"github.com/TuhinKundu/ai2thor-data-viewer/internal/domain/answer"
)

func TestNew_CorrectAnswer(t *testing.T) {
	rec := answer.New("How many mugs are visible?", "B", "B", nil)

	if !rec.IsCorrect {
		t.Error("expected matching answer to be correct")
	}
	if rec.Timestamp == "" {
		t.Error("expected timestamp to be set")
	}
}

func TestNew_IncorrectAnswer(t *testing.T) {
	rec := answer.New("How many mugs are visible?", "C", "B", nil)

	if rec.IsCorrect {
		t.Error("expected mismatching answer to be incorrect")
	}
}

func TestNew_EqualityIsCaseSensitive(t *testing.T) {
	rec := answer.New("q", "b", "B", nil)

	if rec.IsCorrect {
		t.Error("expected case-mismatched answer to be incorrect")
	}
}

func TestNew_EqualityIsWhitespaceSensitive(t *testing.T) {
	rec := answer.New("q", "B ", "B", nil)

	if rec.IsCorrect {
		t.Error("expected answer with trailing space to be incorrect")
	}
}

func TestMarshal_InlinesExtraFields(t *testing.T) {
	rec := answer.New("q", "A", "A", map[string]any{"query_object": "Mug"})

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if m["query_object"] != "Mug" {
		t.Errorf("expected query_object inline in record JSON, got %v", m["query_object"])
	}
	if m["user_answer"] != "A" {
		t.Errorf("expected user_answer=A, got %v", m["user_answer"])
	}
	if _, hasExtra := m["Extra"]; hasExtra {
		t.Error("Extra must not appear as a nested field")
	}
}

func TestUnmarshal_SplitsExtraFromFixedFields(t *testing.T) {
	data := []byte(`{
		"question": "q",
		"user_answer": "C",
		"correct_answer": "B",
		"is_correct": false,
		"timestamp": "2026-02-14T12:00:40Z",
		"query_object": "Fridge",
		"scene_name": "FloorPlan12"
	}`)

	var rec answer.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if rec.UserAnswer != "C" || rec.CorrectAnswer != "B" || rec.IsCorrect {
		t.Errorf("fixed fields not restored: %+v", rec)
	}
	if rec.Extra["query_object"] != "Fridge" || rec.Extra["scene_name"] != "FloorPlan12" {
		t.Errorf("extra fields not restored: %+v", rec.Extra)
	}
}

func TestMarshal_ExtraCannotShadowFixedFields(t *testing.T) {
	rec := answer.New("q", "A", "A", map[string]any{"is_correct": false})

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["is_correct"] != true {
		t.Error("fixed is_correct must win over a colliding extra field")
	}
}
