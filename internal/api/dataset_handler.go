package api

import (
	"net/http"
	"strconv"

	"github.com/TuhinKundu/ai2thor-data-viewer/internal/dataset"
	"github.com/TuhinKundu/ai2thor-data-viewer/internal/domain/answer"
)

// ── Request / Response types ────────────────────────────────────────────────

type DatasetResponse struct {
	dataset.Info
	Imports []dataset.ImportInfo `json:"imports"`
}

type LoadDatasetRequest struct {
	Dataset     string `json:"dataset"`
	SplitSubset string `json:"split_subset"`
}

type ImportResponse struct {
	Dataset     string `json:"dataset"`
	SplitSubset string `json:"split_subset"`
	Rows        int    `json:"rows"`
}

type RowStateResponse struct {
	Row        dataset.Row    `json:"row"`
	Answered   bool           `json:"answered"`
	Bookmarked bool           `json:"bookmarked"`
	Answer     *answer.Record `json:"answer,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listDatasets returns the dataset registry with import state.
// @Summary      List datasets
// @Description  Return every known dataset with its split/subsets and which of them have rows imported.
// @Tags         Datasets
// @Produce      json
// @Success      200  {array}   DatasetResponse
// @Failure      500  {object}  map[string]string
// @Router       /datasets [get]
func (h *Handler) listDatasets(w http.ResponseWriter, r *http.Request) {
	imports, err := h.cache.List(r.Context())
	if h.handleServiceError(w, err) {
		return
	}

	byDataset := make(map[string][]dataset.ImportInfo)
	for _, imp := range imports {
		byDataset[imp.Dataset] = append(byDataset[imp.Dataset], imp)
	}

	infos := dataset.Registry()
	response := make([]DatasetResponse, len(infos))
	for i, info := range infos {
		response[i] = DatasetResponse{
			Info:    info,
			Imports: byDataset[info.ID],
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// loadDataset activates a dataset split, resuming or creating a session.
// @Summary      Load a dataset split
// @Description  Activate a dataset split. A matching current session is resumed; otherwise a fresh one is created.
// @Tags         Datasets
// @Accept       json
// @Produce      json
// @Param        body  body      LoadDatasetRequest  true  "Dataset and split/subset"
// @Success      200   {object}  SessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string  "split not imported"
// @Router       /datasets/load [post]
func (h *Handler) loadDataset(w http.ResponseWriter, r *http.Request) {
	var req LoadDatasetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Dataset == "" || req.SplitSubset == "" {
		respondError(w, http.StatusBadRequest, "dataset and split_subset are required")
		return
	}

	s, err := h.sessions.LoadDataset(r.Context(), req.Dataset, req.SplitSubset)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse(s))
}

// importDataset caches a JSONL row feed for a dataset split.
// @Summary      Import dataset rows
// @Description  Cache a JSONL row feed for a dataset split. The request body is the feed; re-importing replaces prior rows.
// @Tags         Datasets
// @Accept       plain
// @Produce      json
// @Param        dataset       query     string  true  "Dataset ID"
// @Param        split_subset  query     string  true  "Split or subset name"
// @Success      201           {object}  ImportResponse
// @Failure      400           {object}  map[string]string
// @Router       /datasets/import [post]
func (h *Handler) importDataset(w http.ResponseWriter, r *http.Request) {
	datasetID := r.URL.Query().Get("dataset")
	splitSubset := r.URL.Query().Get("split_subset")
	if datasetID == "" || splitSubset == "" {
		respondError(w, http.StatusBadRequest, "dataset and split_subset query parameters are required")
		return
	}

	n, err := h.cache.ImportJSONL(r.Context(), datasetID, splitSubset, r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Info("dataset imported", "dataset", datasetID, "split_subset", splitSubset, "rows", n)
	respondJSON(w, http.StatusCreated, ImportResponse{
		Dataset:     datasetID,
		SplitSubset: splitSubset,
		Rows:        n,
	})
}

// getRow returns a feed row with its answer and bookmark state.
// @Summary      Get a row
// @Description  Return the feed row at an index together with its answer and bookmark state. The index is clamped into range.
// @Tags         Datasets
// @Produce      json
// @Param        rowIndex  path      int  true  "Row index"
// @Success      200       {object}  RowStateResponse
// @Failure      400       {object}  map[string]string
// @Failure      409       {object}  map[string]string  "no session loaded"
// @Router       /rows/{rowIndex} [get]
func (h *Handler) getRow(w http.ResponseWriter, r *http.Request) {
	rowIndex, err := strconv.Atoi(r.PathValue("rowIndex"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid row index")
		return
	}

	row, rec, answered, bookmarked, err := h.sessions.Row(rowIndex)
	if h.handleServiceError(w, err) {
		return
	}

	response := RowStateResponse{
		Row:        row,
		Answered:   answered,
		Bookmarked: bookmarked,
	}
	if answered {
		response.Answer = &rec
	}
	respondJSON(w, http.StatusOK, response)
}
