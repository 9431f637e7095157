package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TuhinKundu/ai2thor-data-viewer/internal/dataset"
	"github.com/TuhinKundu/ai2thor-data-viewer/internal/domain/session"
	"github.com/TuhinKundu/ai2thor-data-viewer/internal/service"
	"github.com/TuhinKundu/ai2thor-data-viewer/internal/store"
)

func rowsJSONL(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b,
			`{"question": "Which direction did the camera rotate in clip %d?", "choices": [{"label": "A", "text": "left"}, {"label": "B", "text": "right"}], "correct_answer": "B", "extra_metadata": {"scene_name": "FloorPlan%d"}}`+"\n",
			i, i)
	}
	return b.String()
}

func newTestService(t *testing.T, rows int) (*service.SessionService, *store.FileStore) {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)

	st, err := store.NewFileStore(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("store: %v", err)
	}

	cache, err := dataset.OpenCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	t.Cleanup(func() { cache.Close() })

	if _, err := cache.ImportJSONL(context.Background(), dataset.VSIEval, "rotation", strings.NewReader(rowsJSONL(rows))); err != nil {
		t.Fatalf("import: %v", err)
	}

	return service.NewSessionService(st, cache, logger), st
}

func loadRotation(t *testing.T, svc *service.SessionService) *session.Session {
	t.Helper()
	s, err := svc.LoadDataset(context.Background(), dataset.VSIEval, "rotation")
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	return s
}

func TestLoadDataset_CreatesEmptySession(t *testing.T) {
	svc, st := newTestService(t, 5)

	s := loadRotation(t, svc)
	if s.TotalQuestions != 5 || s.AnsweredCount != 0 {
		t.Fatalf("expected fresh session over 5 rows, got %+v", s)
	}

	// Created session is persisted immediately.
	cur, err := st.LoadCurrent()
	if err != nil {
		t.Fatalf("expected persisted current slot: %v", err)
	}
	if cur.ID != s.ID {
		t.Errorf("persisted id %q != active id %q", cur.ID, s.ID)
	}
}

func TestLoadDataset_ResumesMatchingSession(t *testing.T) {
	svc, _ := newTestService(t, 5)

	first := loadRotation(t, svc)
	if _, _, err := svc.SubmitAnswer(2, "B"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Simulate a restart: a new controller over the same store.
	resumed := loadRotation(t, svc)
	if resumed.ID != first.ID {
		t.Errorf("expected resume of session %q, got %q", first.ID, resumed.ID)
	}
	if resumed.AnsweredCount != 1 {
		t.Errorf("expected answered count to survive resume, got %d", resumed.AnsweredCount)
	}
}

func TestSubmitAnswer_PersistsEveryAnswer(t *testing.T) {
	svc, st := newTestService(t, 5)
	loadRotation(t, svc)

	rec, sum, err := svc.SubmitAnswer(0, "B")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !rec.IsCorrect {
		t.Error("expected B to be graded correct")
	}
	if rec.Question == "" {
		t.Error("expected question text snapshot in the record")
	}
	if rec.Extra["scene_name"] != "FloorPlan0" {
		t.Errorf("expected row metadata snapshot, got %+v", rec.Extra)
	}
	if sum.Answered != 1 || sum.Correct != 1 {
		t.Errorf("summary after submit: %+v", sum)
	}

	cur, err := st.LoadCurrent()
	if err != nil {
		t.Fatalf("load current: %v", err)
	}
	if cur.AnsweredCount != 1 {
		t.Error("expected answer committed to disk before SubmitAnswer returned")
	}
}

func TestSubmitAnswer_OutOfRangeRow(t *testing.T) {
	svc, _ := newTestService(t, 5)
	loadRotation(t, svc)

	if _, _, err := svc.SubmitAnswer(12, "B"); err == nil {
		t.Fatal("expected out-of-range row to be rejected")
	}
}

func TestSubmitAnswer_NoSession(t *testing.T) {
	svc, _ := newTestService(t, 5)

	_, _, err := svc.SubmitAnswer(0, "B")
	if !errors.Is(err, service.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestNewSession_ArchivesAndResets(t *testing.T) {
	svc, _ := newTestService(t, 5)
	first := loadRotation(t, svc)

	svc.SubmitAnswer(0, "B")
	svc.SubmitAnswer(1, "A")

	archivedID, err := svc.NewSession()
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	summaries, err := svc.ListSessions()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected exactly current + 1 archive, got %d", len(summaries))
	}

	var archived *store.SessionSummary
	for i := range summaries {
		if summaries[i].ID == archivedID {
			archived = &summaries[i]
		}
	}
	if archived == nil {
		t.Fatalf("archived session %q missing from listing", archivedID)
	}
	if archived.AnsweredCount != 2 || archived.CorrectCount != 1 {
		t.Errorf("archived counters not frozen: %+v", archived)
	}

	cur, err := svc.Current()
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cur.AnsweredCount != 0 {
		t.Errorf("expected reset session, answered=%d", cur.AnsweredCount)
	}
	if cur.ID == first.ID {
		t.Error("expected a fresh session ID")
	}
	if cur.TotalQuestions != 5 {
		t.Errorf("expected row universe carried forward, total=%d", cur.TotalQuestions)
	}
}

func TestLoadSessionByID_SwitchesWithoutArchiving(t *testing.T) {
	svc, _ := newTestService(t, 5)
	loadRotation(t, svc)

	svc.SubmitAnswer(0, "B")
	archivedID, err := svc.NewSession()
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	svc.SubmitAnswer(1, "A")

	loaded, err := svc.LoadSessionByID(context.Background(), archivedID, false)
	if err != nil {
		t.Fatalf("load by id: %v", err)
	}
	if loaded.ID != archivedID || loaded.AnsweredCount != 1 {
		t.Fatalf("expected archived session restored, got %+v", loaded)
	}

	// Switching must not create a new archive entry.
	summaries, _ := svc.ListSessions()
	archives := 0
	for _, s := range summaries {
		if !s.Current {
			archives++
		}
	}
	if archives != 1 {
		t.Errorf("expected 1 archive after switch, got %d", archives)
	}

	// The loaded session now owns the current slot and stays mutable.
	if _, _, err := svc.SubmitAnswer(2, "B"); err != nil {
		t.Fatalf("submit on loaded session: %v", err)
	}
	cur, _ := svc.Current()
	if cur.AnsweredCount != 2 {
		t.Errorf("expected 2 answers on loaded session, got %d", cur.AnsweredCount)
	}
}

func TestLoadSessionByID_FragmentMatch(t *testing.T) {
	svc, _ := newTestService(t, 5)
	loadRotation(t, svc)
	svc.SubmitAnswer(0, "B")
	archivedID, _ := svc.NewSession()

	frag := archivedID[len(archivedID)-6:]
	loaded, err := svc.LoadSessionByID(context.Background(), frag, false)
	if err != nil {
		t.Fatalf("load by fragment: %v", err)
	}
	if loaded.ID != archivedID {
		t.Errorf("expected %q, got %q", archivedID, loaded.ID)
	}
}

func TestNavigate_SkipsAnsweredRows(t *testing.T) {
	svc, _ := newTestService(t, 5)
	loadRotation(t, svc)

	svc.SubmitAnswer(1, "B")

	idx, err := svc.Navigate(session.Forward, session.Unanswered)
	if err != nil {
		t.Fatalf("navigate: %v", err)
	}
	// Position was on row 1 after the submit; nearest unanswered is 2.
	if idx != 2 {
		t.Errorf("expected row 2, got %d", idx)
	}

	// New position survives a restart.
	resumed := loadRotation(t, svc)
	if resumed.CurrentRow != 2 {
		t.Errorf("expected persisted position 2, got %d", resumed.CurrentRow)
	}
}

func TestSetCurrentRow_Clamps(t *testing.T) {
	svc, _ := newTestService(t, 5)
	loadRotation(t, svc)

	idx, err := svc.SetCurrentRow(99)
	if err != nil {
		t.Fatalf("set current row: %v", err)
	}
	if idx != 4 {
		t.Errorf("expected clamp to 4, got %d", idx)
	}
}

func TestToggleBookmark_Persists(t *testing.T) {
	svc, st := newTestService(t, 5)
	loadRotation(t, svc)

	on, err := svc.ToggleBookmark(3)
	if err != nil || !on {
		t.Fatalf("expected bookmark on, got %v, %v", on, err)
	}

	cur, _ := st.LoadCurrent()
	if len(cur.Bookmarks) != 1 || cur.Bookmarks[0] != 3 {
		t.Errorf("bookmark not persisted: %v", cur.Bookmarks)
	}

	off, err := svc.ToggleBookmark(3)
	if err != nil || off {
		t.Fatalf("expected bookmark off, got %v, %v", off, err)
	}
}

func TestCurrent_ReturnsDetachedCopy(t *testing.T) {
	svc, _ := newTestService(t, 5)
	loadRotation(t, svc)
	svc.SubmitAnswer(0, "B")

	cur, err := svc.Current()
	if err != nil {
		t.Fatalf("current: %v", err)
	}

	// Mutating the returned session must not leak into the live one.
	cur.ApplyAnswer(3, "A", "B", "tampered", nil)
	cur.ToggleBookmark(4)

	again, err := svc.Current()
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if again.AnsweredCount != 1 || len(again.Answers) != 1 {
		t.Errorf("live session changed through a copy: %+v", again)
	}
	if len(again.Bookmarks) != 0 {
		t.Errorf("live bookmarks changed through a copy: %v", again.Bookmarks)
	}
}

func TestCurrent_SafeToEncodeDuringSubmits(t *testing.T) {
	svc, _ := newTestService(t, 50)
	loadRotation(t, svc)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			if _, _, err := svc.SubmitAnswer(i, "B"); err != nil {
				t.Errorf("submit %d: %v", i, err)
				return
			}
		}
	}()

	// Encoding the session returned by Current must never observe the
	// answers map mid-write.
	for i := 0; i < 50; i++ {
		cur, err := svc.Current()
		if err != nil {
			t.Fatalf("current: %v", err)
		}
		if _, err := json.Marshal(cur); err != nil {
			t.Fatalf("marshal: %v", err)
		}
	}
	<-done
}

func TestRow_ReturnsAnswerState(t *testing.T) {
	svc, _ := newTestService(t, 5)
	loadRotation(t, svc)
	svc.SubmitAnswer(2, "A")

	row, rec, answered, bookmarked, err := svc.Row(2)
	if err != nil {
		t.Fatalf("row: %v", err)
	}
	if row.Index != 2 || row.CorrectAnswer != "B" {
		t.Errorf("unexpected row: %+v", row)
	}
	if !answered || rec.UserAnswer != "A" || rec.IsCorrect {
		t.Errorf("unexpected answer state: answered=%v rec=%+v", answered, rec)
	}
	if bookmarked {
		t.Error("row 2 should not be bookmarked")
	}
}
