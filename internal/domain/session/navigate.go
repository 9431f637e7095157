package session

// Direction of a navigation scan.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Predicate selects which rows a navigation scan may land on.
type Predicate string

const (
	Any        Predicate = "any"
	Unanswered Predicate = "unanswered"
	Answered   Predicate = "answered"
	Bookmarked Predicate = "bookmarked"
)

// Matches reports whether the row satisfies the predicate.
func (p Predicate) Matches(s *Session, rowIndex int) bool {
	switch p {
	case Unanswered:
		return !s.IsAnswered(rowIndex)
	case Answered:
		return s.IsAnswered(rowIndex)
	case Bookmarked:
		return s.IsBookmarked(rowIndex)
	default:
		return true
	}
}

// NextMatching scans from current in the given direction for the nearest
// row satisfying the predicate, wrapping around at the ends. If no row
// matches, current is returned unchanged (clamped). Out-of-range inputs
// are clamped rather than rejected; navigation never fails mid-session.
func NextMatching(s *Session, current, total int, dir Direction, pred Predicate) int {
	if total <= 0 {
		return 0
	}
	current = Clamp(current, total)

	idx := current
	for i := 0; i < total; i++ {
		idx = (idx + int(dir) + total) % total
		if pred.Matches(s, idx) {
			return idx
		}
	}
	return current
}

// Step moves by delta through a sequence of count items with no wrapping,
// clamping at both ends. Used for gallery image stepping.
func Step(current, delta, count int) int {
	if count <= 0 {
		return 0
	}
	return Clamp(current+delta, count)
}

// Clamp restricts idx to [0, total-1].
func Clamp(idx, total int) int {
	if idx < 0 {
		return 0
	}
	if idx >= total {
		return total - 1
	}
	return idx
}
