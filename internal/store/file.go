package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/TuhinKundu/ai2thor-data-viewer/internal/domain/answer"
	"github.com/TuhinKundu/ai2thor-data-viewer/internal/domain/session"
	"github.com/TuhinKundu/ai2thor-data-viewer/internal/id"
)

const (
	currentFile   = "current_session.json"
	archivePrefix = "session_"
)

// SessionSummary is one entry of a session listing.
type SessionSummary struct {
	ID             string `json:"id"`
	Dataset        string `json:"dataset"`
	SplitSubset    string `json:"split_subset"`
	CreatedAt      string `json:"created_at"`
	TotalQuestions int    `json:"total_questions"`
	AnsweredCount  int    `json:"answered_count"`
	CorrectCount   int    `json:"correct_count"`
	IncorrectCount int    `json:"incorrect_count"`
	Bookmarks      int    `json:"bookmarks"`
	Current        bool   `json:"current"`
}

// FileStore keeps one mutable "current" session slot plus immutable
// archived snapshots in a directory. All writes go through a temp file
// and an atomic rename so a crash mid-write can never corrupt the last
// good state. A single mutex serializes writers.
type FileStore struct {
	dir    string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewFileStore creates the sessions directory if needed.
func NewFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating sessions dir: %w", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

// Dir returns the sessions directory path.
func (st *FileStore) Dir() string {
	return st.dir
}

// SaveCurrent writes the session to the current slot atomically.
func (st *FileStore) SaveCurrent(s *session.Session) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.writeAtomic(filepath.Join(st.dir, currentFile), s)
}

// LoadCurrent reads the current slot. ErrNotFound if the slot is empty.
func (st *FileStore) LoadCurrent() (*session.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.readSession(filepath.Join(st.dir, currentFile))
}

// Load looks up a session by exact ID among the current slot and the
// archives. ErrNotFound if no session carries the ID; ErrCorrupt if
// the only place the ID could live is an unreadable current slot.
func (st *FileStore) Load(sessionID string) (*session.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.load(sessionID)
}

func (st *FileStore) load(sessionID string) (*session.Session, error) {
	cur, err := st.readSession(filepath.Join(st.dir, currentFile))
	if err == nil && cur.ID == sessionID {
		return cur, nil
	}
	var curErr error
	if err != nil && !errors.Is(err, ErrNotFound) {
		// A corrupt current slot must not mask archived sessions, but
		// the requested ID may live in that slot, so if no archive
		// matches either the corruption is surfaced, not swallowed.
		st.logger.Warn("current session slot unreadable during lookup", "error", err)
		curErr = err
	}

	s, err := st.readSession(filepath.Join(st.dir, archivePrefix+sessionID+".json"))
	if errors.Is(err, ErrNotFound) {
		if curErr != nil {
			return nil, fmt.Errorf("session %q: %w", sessionID, curErr)
		}
		return nil, fmt.Errorf("session %q: %w", sessionID, ErrNotFound)
	}
	return s, err
}

// Find resolves an ID or ID fragment to a session: exact match first,
// then substring search over the archived IDs.
func (st *FileStore) Find(fragment string) (*session.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, err := st.load(fragment)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrCorrupt) {
		return nil, err
	}

	for _, archiveID := range st.archiveIDs() {
		if strings.Contains(archiveID, fragment) {
			return st.readSession(filepath.Join(st.dir, archivePrefix+archiveID+".json"))
		}
	}
	if errors.Is(err, ErrCorrupt) {
		return nil, err
	}
	return nil, fmt.Errorf("session matching %q: %w", fragment, ErrNotFound)
}

// ArchiveCurrent snapshots the current slot into a uniquely named
// archive file, then resets the slot to a fresh empty session with the
// same dataset and split. Returns the archived session's ID.
func (st *FileStore) ArchiveCurrent() (string, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	cur, err := st.readSession(filepath.Join(st.dir, currentFile))
	if err != nil {
		return "", err
	}

	cur.ArchivedAt = time.Now().Format(time.RFC3339)

	// Two archives within one second would collide on the
	// timestamp-derived ID; disambiguate rather than overwrite.
	archiveID := cur.ID
	for fileExists(filepath.Join(st.dir, archivePrefix+archiveID+".json")) {
		archiveID = cur.ID + "_" + id.Suffix(4)
	}
	cur.ID = archiveID

	if err := st.writeAtomic(filepath.Join(st.dir, archivePrefix+archiveID+".json"), cur); err != nil {
		return "", fmt.Errorf("archiving session %s: %w", archiveID, err)
	}

	fresh := session.New(cur.Dataset, cur.SplitSubset)
	fresh.TotalQuestions = cur.TotalQuestions
	// Archiving and resetting within the same second would hand the
	// fresh session the ID just archived.
	for fresh.ID == archiveID || fileExists(filepath.Join(st.dir, archivePrefix+fresh.ID+".json")) {
		fresh.ID = id.NewSessionID(time.Now()) + "_" + id.Suffix(4)
	}
	if err := st.writeAtomic(filepath.Join(st.dir, currentFile), fresh); err != nil {
		return "", fmt.Errorf("resetting current slot: %w", err)
	}
	return archiveID, nil
}

// DeleteCurrent removes the current slot. A missing slot is not an error.
func (st *FileStore) DeleteCurrent() error {
	st.mu.Lock()
	defer st.mu.Unlock()

	err := os.Remove(filepath.Join(st.dir, currentFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// List enumerates the current slot and every archive, newest first.
// Unreadable archive files are skipped with a warning; the listing is
// best-effort, unlike Load.
func (st *FileStore) List() ([]SessionSummary, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	var summaries []SessionSummary

	cur, err := st.readSession(filepath.Join(st.dir, currentFile))
	switch {
	case err == nil:
		summaries = append(summaries, summarize(cur, true))
	case !errors.Is(err, ErrNotFound):
		st.logger.Warn("skipping unreadable current session in listing", "error", err)
	}

	for _, archiveID := range st.archiveIDs() {
		s, err := st.readSession(filepath.Join(st.dir, archivePrefix+archiveID+".json"))
		if err != nil {
			st.logger.Warn("skipping unreadable archived session", "id", archiveID, "error", err)
			continue
		}
		summaries = append(summaries, summarize(s, false))
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt > summaries[j].CreatedAt
	})
	return summaries, nil
}

func summarize(s *session.Session, current bool) SessionSummary {
	return SessionSummary{
		ID:             s.ID,
		Dataset:        s.Dataset,
		SplitSubset:    s.SplitSubset,
		CreatedAt:      s.CreatedAt,
		TotalQuestions: s.TotalQuestions,
		AnsweredCount:  s.AnsweredCount,
		CorrectCount:   s.CorrectCount,
		IncorrectCount: s.IncorrectCount,
		Bookmarks:      len(s.Bookmarks),
		Current:        current,
	}
}

// archiveIDs lists archived session IDs sorted descending, so newest
// timestamp-derived IDs come first.
func (st *FileStore) archiveIDs() []string {
	entries, err := os.ReadDir(st.dir)
	if err != nil {
		return nil
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, archivePrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(strings.TrimPrefix(name, archivePrefix), ".json"))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(ids)))
	return ids
}

func (st *FileStore) readSession(path string) (*session.Session, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	var s session.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", filepath.Base(path), err, ErrCorrupt)
	}
	if s.ID == "" {
		return nil, fmt.Errorf("%s: missing session id: %w", filepath.Base(path), ErrCorrupt)
	}
	if s.Answers == nil {
		s.Answers = map[string]answer.Record{}
	}
	s.ValidateCounters(st.logger)
	return &s, nil
}

// writeAtomic marshals the session to a temp file in the same directory
// and renames it over the target, so readers only ever see a complete
// file. Autosave runs on every answer, making this the durability
// contract of the whole engine.
func (st *FileStore) writeAtomic(path string, s *session.Session) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	tmp, err := os.CreateTemp(st.dir, ".session-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing session: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
