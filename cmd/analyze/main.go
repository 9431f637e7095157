// Command analyze inspects saved annotation sessions and prints reports.
// It only ever reads session files; the viewer owns all writes.
//
// Usage:
//
//	analyze -list                 list all sessions
//	analyze -current              report on the current session
//	analyze -session <id>         report on a specific session
//	analyze -all                  report on every session
//	analyze -export               also write the session's answers to CSV
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"

	"github.com/TuhinKundu/ai2thor-data-viewer/internal/domain/session"
	"github.com/TuhinKundu/ai2thor-data-viewer/internal/store"
)

func main() {
	var (
		dir       = flag.String("dir", "./sessions", "sessions directory")
		list      = flag.Bool("list", false, "list all sessions")
		sessionID = flag.String("session", "", "session ID to analyze")
		current   = flag.Bool("current", false, "analyze the current session")
		all       = flag.Bool("all", false, "analyze every session")
		exportCSV = flag.Bool("export", false, "export analyzed session answers to CSV")
		quiet     = flag.Bool("quiet", false, "less verbose output")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	st, err := store.NewFileStore(*dir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening sessions directory: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *list:
		listSessions(st)
	case *current:
		s, err := st.LoadCurrent()
		if err != nil {
			fmt.Fprintf(os.Stderr, "no current session: %v\n", err)
			os.Exit(1)
		}
		report(s, !*quiet)
		maybeExport(s, *exportCSV)
	case *sessionID != "":
		s, err := st.Find(*sessionID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "session not found: %v\n", err)
			os.Exit(1)
		}
		report(s, !*quiet)
		maybeExport(s, *exportCSV)
	case *all:
		summaries, err := st.List()
		if err != nil {
			fmt.Fprintf(os.Stderr, "listing sessions: %v\n", err)
			os.Exit(1)
		}
		for _, sum := range summaries {
			s, err := st.Load(sum.ID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "skipping %s: %v\n", sum.ID, err)
				continue
			}
			report(s, !*quiet)
			fmt.Println()
		}
	default:
		// Default: report on the current session if one exists,
		// otherwise fall back to the listing.
		if s, err := st.LoadCurrent(); err == nil {
			report(s, !*quiet)
		} else {
			listSessions(st)
		}
	}
}

func listSessions(st *store.FileStore) {
	summaries, err := st.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "listing sessions: %v\n", err)
		os.Exit(1)
	}
	if len(summaries) == 0 {
		fmt.Println("No sessions found.")
		return
	}

	fmt.Printf("%-24s %-45s %-12s %-10s %s\n", "ID", "Dataset", "Answered", "Accuracy", "Bookmarks")
	for _, s := range summaries {
		label := s.ID
		if s.Current {
			label = "current (" + s.ID + ")"
		}
		accuracy := 0.0
		if s.AnsweredCount > 0 {
			accuracy = float64(s.CorrectCount) / float64(s.AnsweredCount) * 100
		}
		fmt.Printf("%-24s %-45s %d/%-10d %5.1f%%    %d\n",
			label, s.Dataset, s.AnsweredCount, s.TotalQuestions, accuracy, s.Bookmarks)
	}
	fmt.Printf("Total sessions: %d\n", len(summaries))
}

func report(s *session.Session, verbose bool) {
	sum := s.Snapshot()

	fmt.Printf("Session ID:    %s\n", s.ID)
	fmt.Printf("Dataset:       %s\n", s.Dataset)
	fmt.Printf("Split/Subset:  %s\n", s.SplitSubset)
	fmt.Printf("Created:       %s\n", s.CreatedAt)
	fmt.Printf("Last Updated:  %s\n", s.UpdatedAt)
	fmt.Println()
	fmt.Printf("Total Questions: %d\n", sum.Total)
	fmt.Printf("Answered:        %d (%.1f%%)\n", sum.Answered, sum.Progress)
	fmt.Printf("Remaining:       %d\n", sum.Remaining)
	fmt.Printf("Correct:         %d\n", sum.Correct)
	fmt.Printf("Incorrect:       %d\n", sum.Incorrect)
	fmt.Printf("Accuracy:        %.1f%%\n", sum.Accuracy)
	fmt.Printf("Bookmarks:       %d\n", sum.Bookmarks)

	incorrect := incorrectByObject(s)
	if len(incorrect) > 0 {
		fmt.Printf("\nIncorrect answers (%d):\n", countRows(incorrect))
		for _, obj := range sortedKeys(incorrect) {
			fmt.Printf("  %s:\n", obj)
			for _, idx := range incorrect[obj] {
				rec, _ := s.Answer(idx)
				fmt.Printf("    Row %d: You=%s, Correct=%s\n", idx+1, rec.UserAnswer, rec.CorrectAnswer)
			}
		}
	}

	if verbose {
		printObjectAccuracy(s)
	}

	if len(s.Bookmarks) > 0 {
		fmt.Printf("\nBookmarked rows (%d):\n", len(s.Bookmarks))
		for _, idx := range s.Bookmarks {
			if rec, ok := s.Answer(idx); ok {
				mark := "wrong"
				if rec.IsCorrect {
					mark = "right"
				}
				fmt.Printf("  Row %d: answered (%s)\n", idx+1, mark)
			} else {
				fmt.Printf("  Row %d: not answered\n", idx+1)
			}
		}
	}
}

// incorrectByObject groups incorrectly answered row indices by their
// query_object metadata field.
func incorrectByObject(s *session.Session) map[string][]int {
	out := make(map[string][]int)
	for _, idx := range s.AnsweredRows() {
		rec, _ := s.Answer(idx)
		if rec.IsCorrect {
			continue
		}
		obj, _ := rec.Extra["query_object"].(string)
		if obj == "" {
			obj = "unknown"
		}
		out[obj] = append(out[obj], idx)
	}
	return out
}

func printObjectAccuracy(s *session.Session) {
	type stats struct{ correct, incorrect int }
	perObject := make(map[string]*stats)
	tagged := false

	for _, idx := range s.AnsweredRows() {
		rec, _ := s.Answer(idx)
		obj, _ := rec.Extra["query_object"].(string)
		if obj == "" {
			obj = "unknown"
		} else {
			tagged = true
		}
		st, ok := perObject[obj]
		if !ok {
			st = &stats{}
			perObject[obj] = st
		}
		if rec.IsCorrect {
			st.correct++
		} else {
			st.incorrect++
		}
	}
	if !tagged {
		return
	}

	fmt.Printf("\nAccuracy by object type:\n")
	fmt.Printf("  %-25s %-10s %-10s %s\n", "Object", "Correct", "Incorrect", "Accuracy")
	for _, obj := range sortedStatKeys(perObject) {
		st := perObject[obj]
		total := st.correct + st.incorrect
		acc := float64(st.correct) / float64(total) * 100
		fmt.Printf("  %-25s %-10d %-10d %5.1f%%\n", obj, st.correct, st.incorrect, acc)
	}
}

func maybeExport(s *session.Session, enabled bool) {
	if !enabled {
		return
	}
	name := fmt.Sprintf("session_%s.csv", s.ID)
	f, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s: %v\n", name, err)
		os.Exit(1)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Write([]string{"row_idx", "question", "user_answer", "correct_answer", "is_correct", "query_object", "timestamp"})
	for _, idx := range s.AnsweredRows() {
		rec, _ := s.Answer(idx)
		obj, _ := rec.Extra["query_object"].(string)
		w.Write([]string{
			strconv.Itoa(idx),
			rec.Question,
			rec.UserAnswer,
			rec.CorrectAnswer,
			strconv.FormatBool(rec.IsCorrect),
			obj,
			rec.Timestamp,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %v\n", name, err)
		os.Exit(1)
	}
	fmt.Printf("Exported to: %s\n", name)
}

func countRows(m map[string][]int) int {
	n := 0
	for _, rows := range m {
		n += len(rows)
	}
	return n
}

func sortedKeys(m map[string][]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedStatKeys[T any](m map[string]*T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
