// Package commitinfo formats the one-line description of the entry being
// diffed, shown at the right of the diff header.
package commitinfo

import (
	"fmt"
	"time"

	"github.com/yourusername/gitti/internal/git"
	"github.com/yourusername/gitti/internal/ui/styles"
)

// Mode describes what the live entry is compared against.
type Mode struct {
	Staged   bool
	Baseline string
}

func (m Mode) describe() string {
	base := m.Baseline
	if len(base) > 7 {
		base = base[:7]
	}
	switch {
	case base != "" && m.Staged:
		return "index vs " + base
	case base != "":
		return "working tree vs " + base
	case m.Staged:
		return "staged"
	default:
		return "working tree"
	}
}

// Summary describes c, e.g. "a1b2c3d Jane Doe, 2 days ago".
func Summary(c git.Commit, mode Mode, now time.Time) string {
	if c.IsLiveChanges {
		return mode.describe()
	}
	if c.Author == "" {
		return c.ShortHash
	}
	return fmt.Sprintf("%s %s, %s", c.ShortHash, c.Author, styles.RelativeTime(c.Date, now))
}
