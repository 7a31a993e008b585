package nav

import (
	"slices"
	"time"

	"github.com/yourusername/gitti/internal/diff"
	"github.com/yourusername/gitti/internal/git"
	"github.com/yourusername/gitti/internal/log"
)

// Throttle admits at most one run per interval, measured against the wall
// clock each time it is asked.
type Throttle struct {
	interval time.Duration
	last     time.Time
}

func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{interval: interval}
}

// Due reports whether interval has elapsed since the last admitted run and,
// if so, records now as the new last run.
func (t *Throttle) Due(now time.Time) bool {
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}

// Result says which cached collections a reconciliation replaced.
type Result struct {
	CommitsChanged bool
	FilesChanged   bool
	HunksChanged   bool
}

// Repaint reports whether the screen must be fully redrawn.
func (r Result) Repaint() bool {
	return r.CommitsChanged || r.FilesChanged || r.HunksChanged
}

// Tick runs a reconciliation if the viewer is in normal mode and the
// refresh interval has elapsed since the last one.
func (n *Navigator) Tick(now time.Time) Result {
	switch n.sel.Mode {
	case ModeBranchPicker:
		return Result{}
	case ModeNormal:
		if !n.throttle.Due(now) {
			return Result{}
		}
		return n.Reconcile()
	default:
		return Result{}
	}
}

// Reconcile re-queries the repository and replaces only the collections
// whose content changed. Historical commits are never re-read.
func (n *Navigator) Reconcile() Result {
	commits, err := n.loadCommits(n.branch)
	if err != nil {
		log.ErrorErr(log.CatRefresh, "re-reading commits failed", err)
		return Result{}
	}

	if !sameCommits(commits, n.commits) {
		return n.replaceCommits(commits)
	}

	commit, ok := n.SelectedCommit()
	if !ok || !commit.IsLiveChanges {
		return Result{}
	}

	var res Result
	files, err := n.loadFiles(commit)
	if err != nil {
		log.ErrorErr(log.CatRefresh, "re-reading files failed", err)
		return Result{}
	}
	if !samePaths(files, n.files) {
		n.files = files
		n.sel.FileIndex = clamp(n.sel.FileIndex, 0, len(files)-1)
		n.sel.FileScroll = ScrollIntoView(n.sel.FileIndex, min(n.sel.FileScroll, n.sel.FileIndex), n.view.Files)
		res.FilesChanged = true
	}

	hunks := n.currentHunks()
	if !diff.EqualHunks(hunks, n.hunks) {
		n.hunks = hunks
		n.sel.DiffScroll = clamp(n.sel.DiffScroll, 0, n.MaxDiffScroll())
		res.HunksChanged = true
	}

	if res.Repaint() {
		log.Debug(log.CatRefresh, "live changes updated",
			"files_changed", res.FilesChanged, "hunks_changed", res.HunksChanged)
	}
	return res
}

// replaceCommits swaps in a changed commit list and reloads everything
// below it, keeping the commit cursor where it can.
func (n *Navigator) replaceCommits(commits []git.Commit) Result {
	index := clamp(n.sel.CommitIndex, 0, len(commits)-1)

	var files []git.ChangedPath
	if len(commits) > 0 {
		var err error
		if files, err = n.loadFiles(commits[index]); err != nil {
			log.ErrorErr(log.CatRefresh, "re-reading files failed", err)
			return Result{}
		}
	}

	log.Debug(log.CatRefresh, "commit list changed", "before", len(n.commits), "after", len(commits))
	n.commits = commits
	n.sel.CommitIndex = index
	n.sel.CommitScroll = ScrollIntoView(index, min(n.sel.CommitScroll, index), n.view.Commits)
	n.setFiles(files)
	return Result{CommitsChanged: true, FilesChanged: true, HunksChanged: true}
}

func sameCommits(a, b []git.Commit) bool {
	return slices.EqualFunc(a, b, func(x, y git.Commit) bool {
		return x.Hash == y.Hash && x.IsLiveChanges == y.IsLiveChanges
	})
}

func samePaths(a, b []git.ChangedPath) bool {
	return slices.EqualFunc(a, b, func(x, y git.ChangedPath) bool {
		return x.Path == y.Path
	})
}
