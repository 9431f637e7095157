// Package answer holds the per-row answer record of an annotation session.
package answer

import (
	"encoding/json"
	"time"
)

// Record is one row's answer. A record is written whole: the first
// submission creates it and every correction replaces it entirely.
type Record struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Timestamp     string `json:"timestamp"` // RFC 3339
	// Extra carries dataset-specific scalar fields (e.g. query_object)
	// untouched. They are serialized inline beside the fixed fields.
	Extra map[string]any `json:"-"`
}

// clock is swapped out in tests.
var clock = time.Now

// New builds a Record for the given submission. Correctness is exact,
// case-sensitive string equality; dataset values are assumed to be
// normalized upstream.
func New(question, userAnswer, correctAnswer string, extra map[string]any) Record {
	return Record{
		Question:      question,
		UserAnswer:    userAnswer,
		CorrectAnswer: correctAnswer,
		IsCorrect:     userAnswer == correctAnswer,
		Timestamp:     clock().Format(time.RFC3339),
		Extra:         extra,
	}
}

// fixedKeys are the record's own JSON fields. Extra entries that collide
// with them are dropped on marshal so the fixed fields always win.
var fixedKeys = map[string]bool{
	"question":       true,
	"user_answer":    true,
	"correct_answer": true,
	"is_correct":     true,
	"timestamp":      true,
}

// MarshalJSON flattens Extra into the same object as the fixed fields,
// matching the session file format consumed by the analysis tooling.
func (r Record) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.Extra)+5)
	for k, v := range r.Extra {
		if !fixedKeys[k] {
			m[k] = v
		}
	}
	m["question"] = r.Question
	m["user_answer"] = r.UserAnswer
	m["correct_answer"] = r.CorrectAnswer
	m["is_correct"] = r.IsCorrect
	m["timestamp"] = r.Timestamp
	return json.Marshal(m)
}

// UnmarshalJSON is the inverse of MarshalJSON: fixed fields are picked
// out and everything else lands in Extra.
func (r *Record) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	r.Question, _ = m["question"].(string)
	r.UserAnswer, _ = m["user_answer"].(string)
	r.CorrectAnswer, _ = m["correct_answer"].(string)
	r.IsCorrect, _ = m["is_correct"].(bool)
	r.Timestamp, _ = m["timestamp"].(string)
	r.Extra = nil
	for k, v := range m {
		if fixedKeys[k] {
			continue
		}
		if r.Extra == nil {
			r.Extra = make(map[string]any)
		}
		r.Extra[k] = v
	}
	return nil
}
