// Package session is the state engine of one annotation run: the answer
// map, bookmarks, and the counters derived from them.
package session

import (
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/TuhinKundu/ai2thor-data-viewer/internal/domain/answer"
	"github.com/TuhinKundu/ai2thor-data-viewer/internal/id"
)

// Session is one continuous annotation run over a dataset split.
//
// AnsweredCount, CorrectCount and IncorrectCount are derived from the
// Answers map and recomputed on every mutation; they are stored in the
// session file for the read-only analysis tooling but never trusted as
// a source of truth (see ValidateCounters).
type Session struct {
	ID          string `json:"id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	ArchivedAt  string `json:"archived_at,omitempty"`
	Dataset     string `json:"dataset"`
	SplitSubset string `json:"split_subset"`

	TotalQuestions int `json:"total_questions"`
	AnsweredCount  int `json:"answered_count"`
	CorrectCount   int `json:"correct_count"`
	IncorrectCount int `json:"incorrect_count"`

	// Answers is keyed by the decimal row index, matching the session
	// file format. Navigation treats the index as a total order over
	// 0..TotalQuestions-1 regardless of map order.
	Answers   map[string]answer.Record `json:"answers"`
	Bookmarks []int                    `json:"bookmarks"`

	CurrentRow int `json:"current_row"`
}

// Summary is a snapshot of session progress.
type Summary struct {
	Total     int     `json:"total"`
	Answered  int     `json:"answered"`
	Remaining int     `json:"remaining"`
	Correct   int     `json:"correct"`
	Incorrect int     `json:"incorrect"`
	Accuracy  float64 `json:"accuracy"`
	Progress  float64 `json:"progress"`
	Bookmarks int     `json:"bookmarks"`
}

var clock = time.Now

// New creates an empty session for the given dataset and split/subset.
// TotalQuestions is filled in once the row universe is loaded.
func New(dataset, splitSubset string) *Session {
	now := clock()
	return &Session{
		ID:          id.NewSessionID(now),
		CreatedAt:   now.Format(time.RFC3339),
		UpdatedAt:   now.Format(time.RFC3339),
		Dataset:     dataset,
		SplitSubset: splitSubset,
		Answers:     map[string]answer.Record{},
		Bookmarks:   []int{},
	}
}

// Clone returns a deep copy that shares no mutable state with s.
// Readers outside the engine hold clones, so an in-flight mutation can
// never race with them.
func (s *Session) Clone() *Session {
	c := *s
	c.Answers = make(map[string]answer.Record, len(s.Answers))
	for k, rec := range s.Answers {
		rec.Extra = maps.Clone(rec.Extra)
		c.Answers[k] = rec
	}
	c.Bookmarks = slices.Clone(s.Bookmarks)
	return &c
}

// RowKey converts a row index to its answer-map key.
func RowKey(rowIndex int) string {
	return strconv.Itoa(rowIndex)
}

// ApplyAnswer records or replaces the answer for a row and recomputes the
// derived counters. Changing an existing answer moves the row between the
// correct and incorrect buckets without changing the answered count.
func (s *Session) ApplyAnswer(rowIndex int, userAnswer, correctAnswer, question string, extra map[string]any) answer.Record {
	if s.Answers == nil {
		s.Answers = map[string]answer.Record{}
	}
	rec := answer.New(question, userAnswer, correctAnswer, extra)
	s.Answers[RowKey(rowIndex)] = rec
	s.RecountStats()
	s.touch()
	return rec
}

// ToggleBookmark flips the bookmark on a row, independent of whether the
// row is answered. The bookmark list stays sorted.
func (s *Session) ToggleBookmark(rowIndex int) {
	if i := slices.Index(s.Bookmarks, rowIndex); i >= 0 {
		s.Bookmarks = slices.Delete(s.Bookmarks, i, i+1)
	} else {
		s.Bookmarks = append(s.Bookmarks, rowIndex)
		slices.Sort(s.Bookmarks)
	}
	s.touch()
}

// IsAnswered reports whether the row has an answer recorded.
func (s *Session) IsAnswered(rowIndex int) bool {
	_, ok := s.Answers[RowKey(rowIndex)]
	return ok
}

// IsBookmarked reports whether the row is bookmarked.
func (s *Session) IsBookmarked(rowIndex int) bool {
	return slices.Contains(s.Bookmarks, rowIndex)
}

// Answer returns the recorded answer for a row, if any.
func (s *Session) Answer(rowIndex int) (answer.Record, bool) {
	rec, ok := s.Answers[RowKey(rowIndex)]
	return rec, ok
}

// AnsweredRows returns the answered row indices in increasing order.
func (s *Session) AnsweredRows() []int {
	rows := make([]int, 0, len(s.Answers))
	for k := range s.Answers {
		idx, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		rows = append(rows, idx)
	}
	slices.Sort(rows)
	return rows
}

// RecountStats recomputes all derived counters from the answers map.
// O(answered), which is bounded by the dataset size.
func (s *Session) RecountStats() {
	correct := 0
	for _, rec := range s.Answers {
		if rec.IsCorrect {
			correct++
		}
	}
	s.AnsweredCount = len(s.Answers)
	s.CorrectCount = correct
	s.IncorrectCount = s.AnsweredCount - correct
}

// ValidateCounters recomputes the counters and, if the stored values
// disagree, corrects them and logs a warning. Stored counters can drift
// if a file was hand-edited or written by an older build; drift is
// recoverable and must not be treated as corruption.
func (s *Session) ValidateCounters(logger *slog.Logger) {
	answered, correct, incorrect := s.AnsweredCount, s.CorrectCount, s.IncorrectCount
	s.RecountStats()
	if answered != s.AnsweredCount || correct != s.CorrectCount || incorrect != s.IncorrectCount {
		logger.Warn("stored session counters disagree with answers, recomputed",
			"session_id", s.ID,
			"stored_answered", answered,
			"recomputed_answered", s.AnsweredCount,
			"stored_correct", correct,
			"recomputed_correct", s.CorrectCount,
		)
	}
}

// Snapshot returns the current progress summary. Accuracy and progress
// are defined as 0 when their denominators are 0.
func (s *Session) Snapshot() Summary {
	sum := Summary{
		Total:     s.TotalQuestions,
		Answered:  s.AnsweredCount,
		Remaining: s.TotalQuestions - s.AnsweredCount,
		Correct:   s.CorrectCount,
		Incorrect: s.IncorrectCount,
		Bookmarks: len(s.Bookmarks),
	}
	if s.AnsweredCount > 0 {
		sum.Accuracy = float64(s.CorrectCount) / float64(s.AnsweredCount) * 100
	}
	if s.TotalQuestions > 0 {
		sum.Progress = float64(s.AnsweredCount) / float64(s.TotalQuestions) * 100
	}
	return sum
}

func (s *Session) touch() {
	s.UpdatedAt = clock().Format(time.RFC3339)
}
