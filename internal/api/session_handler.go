package api

import (
	"net/http"
	"strconv"

	"github.com/TuhinKundu/ai2thor-data-viewer/internal/domain/session"
)

// ── Request / Response types ────────────────────────────────────────────────

type SessionResponse struct {
	ID          string          `json:"id"`
	Dataset     string          `json:"dataset"`
	SplitSubset string          `json:"split_subset"`
	CurrentRow  int             `json:"current_row"`
	Summary     session.Summary `json:"summary"`
}

type SubmitAnswerRequest struct {
	RowIndex int    `json:"row_index"`
	Answer   string `json:"answer"`
}

type SubmitAnswerResponse struct {
	RowIndex      int             `json:"row_index"`
	IsCorrect     bool            `json:"is_correct"`
	CorrectAnswer string          `json:"correct_answer"`
	Summary       session.Summary `json:"summary"`
}

type ToggleBookmarkResponse struct {
	RowIndex   int  `json:"row_index"`
	Bookmarked bool `json:"bookmarked"`
}

type NavigateRequest struct {
	Direction string `json:"direction"` // "forward" or "backward"
	Predicate string `json:"predicate"` // "any", "unanswered", "answered", "bookmarked"
}

type NavigateResponse struct {
	RowIndex int `json:"row_index"`
}

type SetPositionRequest struct {
	RowIndex int `json:"row_index"`
}

type NewSessionResponse struct {
	ArchivedID string `json:"archived_id"`
	SessionID  string `json:"session_id"`
}

type LoadSessionRequest struct {
	ID              string `json:"id"`
	ArchivePrevious bool   `json:"archive_previous,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getSession returns the active session with its progress summary.
// @Summary      Get the current session
// @Description  Return the active session and its derived progress counters.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  SessionResponse
// @Failure      409  {object}  map[string]string  "no session loaded"
// @Router       /session [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Current()
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse(s))
}

// submitAnswer records an answer for a row and returns the grade.
// @Summary      Submit an answer
// @Description  Record the annotator's choice for a row. Resubmitting replaces the previous answer.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitAnswerRequest  true  "Row index and chosen answer"
// @Success      200   {object}  SubmitAnswerResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "no session loaded"
// @Router       /session/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Answer == "" {
		respondError(w, http.StatusBadRequest, "answer is required")
		return
	}

	rec, sum, err := h.sessions.SubmitAnswer(req.RowIndex, req.Answer)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, SubmitAnswerResponse{
		RowIndex:      req.RowIndex,
		IsCorrect:     rec.IsCorrect,
		CorrectAnswer: rec.CorrectAnswer,
		Summary:       sum,
	})
}

// toggleBookmark flips the bookmark on a row.
// @Summary      Toggle a bookmark
// @Description  Flip the bookmark on a row, independent of its answer state.
// @Tags         Session
// @Produce      json
// @Param        rowIndex  path      int  true  "Row index"
// @Success      200       {object}  ToggleBookmarkResponse
// @Failure      400       {object}  map[string]string
// @Failure      409       {object}  map[string]string  "no session loaded"
// @Router       /session/bookmarks/{rowIndex} [post]
func (h *Handler) toggleBookmark(w http.ResponseWriter, r *http.Request) {
	rowIndex, err := strconv.Atoi(r.PathValue("rowIndex"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid row index")
		return
	}

	bookmarked, err := h.sessions.ToggleBookmark(rowIndex)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, ToggleBookmarkResponse{
		RowIndex:   rowIndex,
		Bookmarked: bookmarked,
	})
}

// navigate moves the position to the nearest row matching a predicate.
// @Summary      Navigate to the next matching row
// @Description  Move to the nearest row matching the predicate, wrapping around the ends. Position is unchanged when no row matches.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      NavigateRequest  true  "Direction and predicate"
// @Success      200   {object}  NavigateResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "no session loaded"
// @Router       /session/navigate [post]
func (h *Handler) navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var dir session.Direction
	switch req.Direction {
	case "forward", "":
		dir = session.Forward
	case "backward":
		dir = session.Backward
	default:
		respondError(w, http.StatusBadRequest, "direction must be forward or backward")
		return
	}

	var pred session.Predicate
	switch req.Predicate {
	case "", "any":
		pred = session.Any
	case "unanswered":
		pred = session.Unanswered
	case "answered":
		pred = session.Answered
	case "bookmarked":
		pred = session.Bookmarked
	default:
		respondError(w, http.StatusBadRequest, "unknown predicate")
		return
	}

	idx, err := h.sessions.Navigate(dir, pred)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, NavigateResponse{RowIndex: idx})
}

// setPosition jumps to a row, clamped into range.
// @Summary      Set the current row
// @Description  Jump straight to a row index. Out-of-range indices are clamped.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      SetPositionRequest  true  "Target row index"
// @Success      200   {object}  NavigateResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "no session loaded"
// @Router       /session/position [post]
func (h *Handler) setPosition(w http.ResponseWriter, r *http.Request) {
	var req SetPositionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	idx, err := h.sessions.SetCurrentRow(req.RowIndex)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, NavigateResponse{RowIndex: idx})
}

// newSession archives the active session and starts a fresh one.
// @Summary      Start a new session
// @Description  Archive the active session and start a fresh one over the same dataset split.
// @Tags         Session
// @Produce      json
// @Success      201  {object}  NewSessionResponse
// @Failure      409  {object}  map[string]string  "no session loaded"
// @Router       /session/new [post]
func (h *Handler) newSession(w http.ResponseWriter, r *http.Request) {
	archivedID, err := h.sessions.NewSession()
	if h.handleServiceError(w, err) {
		return
	}

	s, err := h.sessions.Current()
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, NewSessionResponse{
		ArchivedID: archivedID,
		SessionID:  s.ID,
	})
}

// loadSession replaces the active session with a stored one.
// @Summary      Load a stored session
// @Description  Resolve a session by exact ID or ID fragment and make it the active session. The previous session is archived only when archive_previous is set.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      LoadSessionRequest  true  "Session ID or fragment"
// @Success      200   {object}  SessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string  "session not found"
// @Router       /session/load [post]
func (h *Handler) loadSession(w http.ResponseWriter, r *http.Request) {
	var req LoadSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	s, err := h.sessions.LoadSessionByID(r.Context(), req.ID, req.ArchivePrevious)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse(s))
}

// listSessions enumerates the current and archived sessions.
// @Summary      List sessions
// @Description  List the current and archived sessions, newest first.
// @Tags         Sessions
// @Produce      json
// @Success      200  {array}   store.SessionSummary
// @Failure      500  {object}  map[string]string
// @Router       /sessions [get]
func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.sessions.ListSessions()
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, summaries)
}

func sessionResponse(s *session.Session) SessionResponse {
	return SessionResponse{
		ID:          s.ID,
		Dataset:     s.Dataset,
		SplitSubset: s.SplitSubset,
		CurrentRow:  s.CurrentRow,
		Summary:     s.Snapshot(),
	}
}
