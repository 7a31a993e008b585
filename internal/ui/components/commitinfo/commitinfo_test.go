package commitinfo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/gitti/internal/git"
)

func TestSummary_LiveEntry(t *testing.T) {
	live := git.LiveChanges()
	now := time.Now()

	require.Equal(t, "working tree", Summary(live, Mode{}, now))
	require.Equal(t, "staged", Summary(live, Mode{Staged: true}, now))
	require.Equal(t, "working tree vs 0123456", Summary(live, Mode{Baseline: "0123456789abcdef"}, now))
	require.Equal(t, "index vs v1", Summary(live, Mode{Staged: true, Baseline: "v1"}, now))
}

func TestSummary_Commit(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	c := git.Commit{ShortHash: "abc1234", Author: "Jane Doe", Date: now.Add(-2 * time.Hour)}

	require.Equal(t, "abc1234 Jane Doe, 2 hours ago", Summary(c, Mode{}, now))
	require.Equal(t, "abc1234", Summary(git.Commit{ShortHash: "abc1234"}, Mode{}, now))
}
