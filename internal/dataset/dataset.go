// Package dataset knows the supported AI2Thor evaluation datasets and
// caches their normalized rows locally. The engine consumes rows as an
// opaque ordered feed; per-dataset parsing happens upstream of the
// JSONL import.
package dataset

import "fmt"

// Supported dataset identifiers.
const (
	VSIEval           = "weikaih/ai2thor-vsi-eval-400"
	PathTracing       = "linjieli222/ai2thor_path_tracing_2point_tifa_filtered_eval"
	MultiviewCounting = "weikaih/ai2thor-multiview-counting-val-800-v2-400"
)

// Info describes one supported dataset: which splits or subsets it
// offers and which metadata fields its rows carry.
type Info struct {
	ID             string   `json:"id"`
	SplitSubsets   []string `json:"split_subsets"`
	MetadataFields []string `json:"metadata_fields"`
}

var registry = []Info{
	{
		ID:           VSIEval,
		SplitSubsets: []string{"rotation", "multi_camera"},
		MetadataFields: []string{
			"question", "answer", "choices",
			"scene_name", "question_type", "movement_type", "total_frames",
		},
	},
	{
		ID: PathTracing,
		SplitSubsets: []string{
			"dh_midpoint",
			"td_ego_dir",
			"td_ego_dir_arrow",
			"td_ego_side",
			"td_ego_side_arrow",
			"td_midpoint",
			"td_path",
			"td_path_arrow",
		},
		MetadataFields: []string{
			"question", "answer", "choices",
			"room_type", "variant_type", "is_egocentric",
		},
	},
	{
		ID:           MultiviewCounting,
		SplitSubsets: []string{"train"},
		MetadataFields: []string{
			"question", "answer", "query_object",
			"scene_name", "question_type", "movement_type", "count",
		},
	},
}

// Registry returns the supported datasets.
func Registry() []Info {
	out := make([]Info, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds a dataset by ID.
func Lookup(datasetID string) (Info, bool) {
	for _, info := range registry {
		if info.ID == datasetID {
			return info, true
		}
	}
	return Info{}, false
}

// Validate checks that the dataset is known and offers the split/subset.
func Validate(datasetID, splitSubset string) error {
	info, ok := Lookup(datasetID)
	if !ok {
		return fmt.Errorf("unknown dataset %q", datasetID)
	}
	for _, s := range info.SplitSubsets {
		if s == splitSubset {
			return nil
		}
	}
	return fmt.Errorf("dataset %q has no split/subset %q (available: %v)",
		datasetID, splitSubset, info.SplitSubsets)
}

// Choice is one labeled answer option of a multiple-choice row.
type Choice struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Row is the normalized feed item the engine consumes. The session
// engine reads only Index, Question, CorrectAnswer and Extra; choices
// and images are rendered by the UI.
type Row struct {
	Index         int            `json:"row_index"`
	Question      string         `json:"question"`
	Choices       []Choice       `json:"choices"`
	CorrectAnswer string         `json:"correct_answer"`
	Images        []string       `json:"images,omitempty"`
	Extra         map[string]any `json:"extra_metadata,omitempty"`
}
