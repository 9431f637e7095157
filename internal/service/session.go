// internal/service/session.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/TuhinKundu/ai2thor-data-viewer/internal/dataset"
	"github.com/TuhinKundu/ai2thor-data-viewer/internal/domain/answer"
	"github.com/TuhinKundu/ai2thor-data-viewer/internal/domain/session"
	"github.com/TuhinKundu/ai2thor-data-viewer/internal/store"
)

// ErrNoSession means an operation needs an active session but no
// dataset has been loaded yet.
var ErrNoSession = errors.New("no session loaded")

// SessionService is the lifecycle controller: it owns the single live
// session, mediates every mutation, and persists after each one so a
// crash loses at most the in-flight interaction. One mutex serializes
// all mutations (single-writer contract).
type SessionService struct {
	store  *store.FileStore
	cache  *dataset.Cache
	logger *slog.Logger

	mu      sync.Mutex
	current *session.Session
	rows    []dataset.Row
}

// NewSessionService creates the controller. No session is active until
// LoadDataset or LoadSessionByID is called.
func NewSessionService(st *store.FileStore, cache *dataset.Cache, logger *slog.Logger) *SessionService {
	return &SessionService{
		store:  st,
		cache:  cache,
		logger: logger,
	}
}

// LoadDataset activates a dataset split: the current slot is resumed if
// it matches, otherwise a fresh session is created. A non-matching
// current slot with answers is archived first so committed answers are
// never lost as a side effect of switching datasets.
func (svc *SessionService) LoadDataset(ctx context.Context, datasetID, splitSubset string) (*session.Session, error) {
	if err := dataset.Validate(datasetID, splitSubset); err != nil {
		return nil, err
	}

	rows, err := svc.cache.Rows(ctx, datasetID, splitSubset)
	if err != nil {
		return nil, err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	cur, err := svc.store.LoadCurrent()
	switch {
	case err == nil && cur.Dataset == datasetID && cur.SplitSubset == splitSubset:
		// Resume.
	case err == nil:
		if cur.AnsweredCount > 0 {
			archivedID, archErr := svc.store.ArchiveCurrent()
			if archErr != nil {
				return nil, fmt.Errorf("archiving session before dataset switch: %w", archErr)
			}
			svc.logger.Info("archived session before dataset switch",
				"archived_id", archivedID, "dataset", cur.Dataset)
		}
		cur = session.New(datasetID, splitSubset)
	case errors.Is(err, store.ErrNotFound):
		cur = session.New(datasetID, splitSubset)
	default:
		return nil, err
	}

	// The dataset may have changed size since the session was created.
	cur.TotalQuestions = len(rows)
	cur.CurrentRow = session.Clamp(cur.CurrentRow, len(rows))

	if err := svc.store.SaveCurrent(cur); err != nil {
		return nil, err
	}

	svc.current = cur
	svc.rows = rows
	svc.logger.Info("dataset loaded",
		"dataset", datasetID, "split_subset", splitSubset,
		"rows", len(rows), "session_id", cur.ID, "answered", cur.AnsweredCount)
	return cur.Clone(), nil
}

// SubmitAnswer records the annotator's choice for a row, snapshotting
// the row's question and metadata, and persists before returning.
func (svc *SessionService) SubmitAnswer(rowIndex int, userAnswer string) (answer.Record, session.Summary, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.current == nil {
		return answer.Record{}, session.Summary{}, ErrNoSession
	}
	if rowIndex < 0 || rowIndex >= len(svc.rows) {
		return answer.Record{}, session.Summary{}, fmt.Errorf("row %d out of range (0..%d)", rowIndex, len(svc.rows)-1)
	}

	row := svc.rows[rowIndex]
	rec := svc.current.ApplyAnswer(rowIndex, userAnswer, row.CorrectAnswer, row.Question, row.Extra)
	svc.current.CurrentRow = rowIndex

	if err := svc.store.SaveCurrent(svc.current); err != nil {
		return answer.Record{}, session.Summary{}, err
	}
	return rec, svc.current.Snapshot(), nil
}

// ToggleBookmark flips a row's bookmark and persists. Returns the new
// bookmark state.
func (svc *SessionService) ToggleBookmark(rowIndex int) (bool, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.current == nil {
		return false, ErrNoSession
	}

	svc.current.ToggleBookmark(rowIndex)
	if err := svc.store.SaveCurrent(svc.current); err != nil {
		return false, err
	}
	return svc.current.IsBookmarked(rowIndex), nil
}

// Navigate moves the annotator's position to the nearest row matching
// the predicate and persists the new position.
func (svc *SessionService) Navigate(dir session.Direction, pred session.Predicate) (int, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.current == nil {
		return 0, ErrNoSession
	}

	idx := session.NextMatching(svc.current, svc.current.CurrentRow, len(svc.rows), dir, pred)
	svc.current.CurrentRow = idx
	if err := svc.store.SaveCurrent(svc.current); err != nil {
		return 0, err
	}
	return idx, nil
}

// SetCurrentRow jumps to a row, clamped into range, and persists.
func (svc *SessionService) SetCurrentRow(rowIndex int) (int, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.current == nil {
		return 0, ErrNoSession
	}

	svc.current.CurrentRow = session.Clamp(rowIndex, len(svc.rows))
	if err := svc.store.SaveCurrent(svc.current); err != nil {
		return 0, err
	}
	return svc.current.CurrentRow, nil
}

// NewSession archives the active session and starts a fresh one over
// the same dataset split. Returns the archived session's ID.
func (svc *SessionService) NewSession() (string, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.current == nil {
		return "", ErrNoSession
	}

	// The slot already holds the latest state via autosave; write once
	// more so the archive can never miss an in-memory mutation.
	if err := svc.store.SaveCurrent(svc.current); err != nil {
		return "", err
	}

	archivedID, err := svc.store.ArchiveCurrent()
	if err != nil {
		return "", err
	}

	fresh, err := svc.store.LoadCurrent()
	if err != nil {
		return "", err
	}
	fresh.TotalQuestions = len(svc.rows)
	if err := svc.store.SaveCurrent(fresh); err != nil {
		return "", err
	}

	svc.current = fresh
	svc.logger.Info("new session started", "archived_id", archivedID, "session_id", fresh.ID)
	return archivedID, nil
}

// LoadSessionByID replaces the active session with a stored one,
// resolved by exact ID or ID fragment. The previous current session is
// NOT archived unless archivePrevious is set; it is already persisted
// in the current slot via autosave, and that slot now belongs to the
// loaded session.
func (svc *SessionService) LoadSessionByID(ctx context.Context, fragment string, archivePrevious bool) (*session.Session, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	loaded, err := svc.store.Find(fragment)
	if err != nil {
		return nil, err
	}

	if archivePrevious && svc.current != nil && svc.current.ID != loaded.ID {
		archivedID, err := svc.store.ArchiveCurrent()
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		if err == nil {
			svc.logger.Info("archived previous session before load", "archived_id", archivedID)
		}
	}

	rows, err := svc.cache.Rows(ctx, loaded.Dataset, loaded.SplitSubset)
	if err != nil {
		return nil, fmt.Errorf("loading rows for session %s: %w", loaded.ID, err)
	}

	loaded.TotalQuestions = len(rows)
	loaded.CurrentRow = session.Clamp(loaded.CurrentRow, len(rows))
	if err := svc.store.SaveCurrent(loaded); err != nil {
		return nil, err
	}

	svc.current = loaded
	svc.rows = rows
	svc.logger.Info("session loaded", "session_id", loaded.ID, "dataset", loaded.Dataset)
	return loaded.Clone(), nil
}

// ListSessions enumerates the current and archived sessions, newest
// first.
func (svc *SessionService) ListSessions() ([]store.SessionSummary, error) {
	return svc.store.List()
}

// Summary returns the active session's progress snapshot.
func (svc *SessionService) Summary() (session.Summary, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.current == nil {
		return session.Summary{}, ErrNoSession
	}
	return svc.current.Snapshot(), nil
}

// Current returns a copy of the active session, or ErrNoSession. The
// copy is detached: callers can read or encode it without holding the
// engine lock, and mutating it has no effect on the live session.
func (svc *SessionService) Current() (*session.Session, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.current == nil {
		return nil, ErrNoSession
	}
	return svc.current.Clone(), nil
}

// Row returns the feed row at the given index together with its answer
// and bookmark state. The index is clamped into range.
func (svc *SessionService) Row(rowIndex int) (dataset.Row, answer.Record, bool, bool, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.current == nil || len(svc.rows) == 0 {
		return dataset.Row{}, answer.Record{}, false, false, ErrNoSession
	}

	rowIndex = session.Clamp(rowIndex, len(svc.rows))
	row := svc.rows[rowIndex]
	rec, answered := svc.current.Answer(rowIndex)
	return row, rec, answered, svc.current.IsBookmarked(rowIndex), nil
}

// RowCount returns the size of the active row universe.
func (svc *SessionService) RowCount() int {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return len(svc.rows)
}
