package api

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// ── Handlers ────────────────────────────────────────────────────────────────

// exportSessionJSON downloads the active session as a JSON file.
// @Summary      Export session as JSON
// @Description  Download the active session, answers and all, as an indented JSON attachment.
// @Tags         Export
// @Produce      json
// @Success      200  {object}  session.Session
// @Failure      409  {object}  map[string]string  "no session loaded"
// @Router       /export/session [get]
func (h *Handler) exportSessionJSON(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Current()
	if h.handleServiceError(w, err) {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=session_%s.json", s.ID))
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(s)
}

// exportSessionCSV downloads the answered rows as a CSV file.
// @Summary      Export session as CSV
// @Description  Download the answered rows as a CSV attachment, one line per answer.
// @Tags         Export
// @Produce      text/csv
// @Success      200  {string}  string
// @Failure      409  {object}  map[string]string  "no session loaded"
// @Router       /export/session.csv [get]
func (h *Handler) exportSessionCSV(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Current()
	if h.handleServiceError(w, err) {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=session_%s.csv", s.ID))

	cw := csv.NewWriter(w)
	cw.Write([]string{"row_idx", "question", "user_answer", "correct_answer", "is_correct", "query_object", "timestamp"})

	for _, rowIdx := range s.AnsweredRows() {
		rec, ok := s.Answer(rowIdx)
		if !ok {
			continue
		}
		queryObject, _ := rec.Extra["query_object"].(string)
		cw.Write([]string{
			strconv.Itoa(rowIdx),
			rec.Question,
			rec.UserAnswer,
			rec.CorrectAnswer,
			strconv.FormatBool(rec.IsCorrect),
			queryObject,
			rec.Timestamp,
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.logger.Error("csv export failed", "error", err)
	}
}
