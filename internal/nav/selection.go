// Package nav owns which branch, commit, file and diff position is active
// and keeps the cached collections consistent with the repository.
package nav

// Mode is the input mode of the viewer.
type Mode int

const (
	ModeNormal Mode = iota
	ModeBranchPicker
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeBranchPicker:
		return "branch-picker"
	default:
		return "unknown"
	}
}

// Selection is the cursor and scroll state of every level.
type Selection struct {
	Mode         Mode
	BranchIndex  int
	CommitIndex  int
	FileIndex    int
	DiffScroll   int
	BranchScroll int
	CommitScroll int
	FileScroll   int
}

// Viewport is how many rows each list and the diff pane can show.
type Viewport struct {
	Branches  int
	Commits   int
	Files     int
	DiffLines int
}

// DefaultViewport is used until the first window size is known.
var DefaultViewport = Viewport{Branches: 10, Commits: 10, Files: 10, DiffLines: 20}

// ScrollIntoView returns the scroll offset that keeps index visible within
// a window of visible rows, moving as little as possible.
func ScrollIntoView(index, offset, visible int) int {
	visible = max(1, visible)
	switch {
	case index < offset:
		return index
	case index >= offset+visible:
		return index - visible + 1
	default:
		return offset
	}
}

// ClickIndex maps a row inside a list panel to an item index. ok is false
// when the row lands on the header or past the end of the list.
func ClickIndex(row, header, scroll, length int) (int, bool) {
	if row < header {
		return 0, false
	}
	index := row - header + scroll
	if index < 0 || index >= length {
		return 0, false
	}
	return index, true
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
