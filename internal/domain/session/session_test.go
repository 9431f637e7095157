package session_test

import (
	"log/slog"
	"testing"

	"github.com/TuhinKundu/ai2thor-data-viewer/internal/domain/session"
)

func newTestSession(total int) *session.Session {
	s := session.New("weikaih/ai2thor-vsi-eval-400", "rotation")
	s.TotalQuestions = total
	return s
}

func TestApplyAnswer_CorrectThenChangedToWrong(t *testing.T) {
	s := newTestSession(400)

	rec := s.ApplyAnswer(0, "B", "B", "Which direction did the camera rotate?", nil)
	if !rec.IsCorrect {
		t.Fatal("expected first answer to be correct")
	}
	if s.CorrectCount != 1 || s.IncorrectCount != 0 || s.AnsweredCount != 1 {
		t.Fatalf("counters after correct answer: correct=%d incorrect=%d answered=%d",
			s.CorrectCount, s.IncorrectCount, s.AnsweredCount)
	}

	rec = s.ApplyAnswer(0, "C", "B", "Which direction did the camera rotate?", nil)
	if rec.IsCorrect {
		t.Fatal("expected changed answer to be incorrect")
	}
	if s.CorrectCount != 0 || s.IncorrectCount != 1 || s.AnsweredCount != 1 {
		t.Fatalf("counters after correction: correct=%d incorrect=%d answered=%d",
			s.CorrectCount, s.IncorrectCount, s.AnsweredCount)
	}
}

func TestApplyAnswer_WrongThenRightMovesBuckets(t *testing.T) {
	s := newTestSession(10)

	s.ApplyAnswer(3, "A", "B", "q", nil)
	if s.IncorrectCount != 1 || s.CorrectCount != 0 {
		t.Fatalf("expected 1 incorrect, got correct=%d incorrect=%d", s.CorrectCount, s.IncorrectCount)
	}

	s.ApplyAnswer(3, "B", "B", "q", nil)
	if s.CorrectCount != 1 || s.IncorrectCount != 0 || s.AnsweredCount != 1 {
		t.Fatalf("expected row to move to correct bucket, got correct=%d incorrect=%d answered=%d",
			s.CorrectCount, s.IncorrectCount, s.AnsweredCount)
	}
}

func TestApplyAnswer_IdenticalResubmissionIsIdempotent(t *testing.T) {
	s := newTestSession(10)

	s.ApplyAnswer(5, "B", "B", "q", nil)
	s.ApplyAnswer(5, "B", "B", "q", nil)

	if s.AnsweredCount != 1 || s.CorrectCount != 1 || s.IncorrectCount != 0 {
		t.Fatalf("expected single contribution after resubmission, got answered=%d correct=%d incorrect=%d",
			s.AnsweredCount, s.CorrectCount, s.IncorrectCount)
	}
}

func TestApplyAnswer_CounterInvariantHoldsUnderCorrections(t *testing.T) {
	s := newTestSession(10)

	answers := []string{"A", "B", "C", "B", "A", "B"}
	for _, a := range answers {
		s.ApplyAnswer(2, a, "B", "q", nil)
		if s.AnsweredCount != 1 {
			t.Fatalf("answered count drifted to %d", s.AnsweredCount)
		}
		if s.CorrectCount+s.IncorrectCount != s.AnsweredCount {
			t.Fatalf("invariant broken: correct=%d incorrect=%d answered=%d",
				s.CorrectCount, s.IncorrectCount, s.AnsweredCount)
		}
	}
}

func TestApplyAnswer_ToleratesRowBeyondTotal(t *testing.T) {
	s := newTestSession(5)

	// The dataset may have shrunk since the session was created.
	s.ApplyAnswer(12, "A", "A", "q", nil)

	if !s.IsAnswered(12) || s.AnsweredCount != 1 {
		t.Fatal("expected answer beyond total_questions to be recorded")
	}
}

func TestToggleBookmark(t *testing.T) {
	s := newTestSession(10)

	s.ToggleBookmark(7)
	s.ToggleBookmark(2)
	if !s.IsBookmarked(7) || !s.IsBookmarked(2) {
		t.Fatal("expected rows 2 and 7 bookmarked")
	}
	if s.Bookmarks[0] != 2 || s.Bookmarks[1] != 7 {
		t.Fatalf("expected sorted bookmarks, got %v", s.Bookmarks)
	}

	s.ToggleBookmark(7)
	if s.IsBookmarked(7) {
		t.Fatal("expected bookmark on row 7 cleared")
	}
}

func TestToggleBookmark_IndependentOfAnswers(t *testing.T) {
	s := newTestSession(10)

	s.ToggleBookmark(4)

	if s.AnsweredCount != 0 {
		t.Fatal("bookmarking must not affect answer counters")
	}
	if !s.IsBookmarked(4) || s.IsAnswered(4) {
		t.Fatal("expected unanswered bookmarked row")
	}
}

func TestSnapshot_EmptySession(t *testing.T) {
	s := newTestSession(0)

	sum := s.Snapshot()
	if sum.Accuracy != 0 || sum.Progress != 0 {
		t.Fatalf("expected zero accuracy and progress on empty session, got %+v", sum)
	}
}

func TestSnapshot_Stats(t *testing.T) {
	s := newTestSession(4)
	s.ApplyAnswer(0, "A", "A", "q", nil)
	s.ApplyAnswer(1, "B", "C", "q", nil)
	s.ToggleBookmark(3)

	sum := s.Snapshot()
	if sum.Answered != 2 || sum.Remaining != 2 {
		t.Fatalf("expected 2 answered / 2 remaining, got %+v", sum)
	}
	if sum.Accuracy != 50 {
		t.Fatalf("expected 50%% accuracy, got %v", sum.Accuracy)
	}
	if sum.Progress != 50 {
		t.Fatalf("expected 50%% progress, got %v", sum.Progress)
	}
	if sum.Bookmarks != 1 {
		t.Fatalf("expected 1 bookmark, got %d", sum.Bookmarks)
	}
}

func TestValidateCounters_CorrectsDriftedValues(t *testing.T) {
	s := newTestSession(10)
	s.ApplyAnswer(0, "A", "A", "q", nil)
	s.ApplyAnswer(1, "B", "C", "q", nil)

	// Simulate a session file with stale counters.
	s.AnsweredCount = 9
	s.CorrectCount = 9
	s.IncorrectCount = 0

	s.ValidateCounters(slog.New(slog.DiscardHandler))

	if s.AnsweredCount != 2 || s.CorrectCount != 1 || s.IncorrectCount != 1 {
		t.Fatalf("expected recomputed counters, got answered=%d correct=%d incorrect=%d",
			s.AnsweredCount, s.CorrectCount, s.IncorrectCount)
	}
}

func TestAnsweredRows_SortedNumerically(t *testing.T) {
	s := newTestSession(30)
	for _, idx := range []int{21, 3, 10, 1} {
		s.ApplyAnswer(idx, "A", "A", "q", nil)
	}

	rows := s.AnsweredRows()
	want := []int{1, 3, 10, 21}
	if len(rows) != len(want) {
		t.Fatalf("expected %v, got %v", want, rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, rows)
		}
	}
}

func TestClone_SharesNoMutableState(t *testing.T) {
	s := newTestSession(10)
	s.ApplyAnswer(1, "B", "B", "q1", map[string]any{"query_object": "chair"})
	s.ToggleBookmark(4)

	c := s.Clone()
	c.ApplyAnswer(2, "A", "B", "q2", nil)
	c.ToggleBookmark(7)
	c.Answers["1"].Extra["query_object"] = "table"

	if s.AnsweredCount != 1 || len(s.Answers) != 1 {
		t.Errorf("original answers changed through clone: %+v", s)
	}
	if rec, _ := s.Answer(1); rec.Extra["query_object"] != "chair" {
		t.Errorf("original record changed through clone: %+v", rec)
	}
	if len(s.Bookmarks) != 1 || s.Bookmarks[0] != 4 {
		t.Errorf("original bookmarks changed through clone: %v", s.Bookmarks)
	}
}
